package menu

import (
	"fmt"
	"strings"
)

// Event is one of the four abstract inputs.
type Event int

const (
	EventUp Event = iota
	EventDown
	EventAccept
	EventCancel
)

// String returns the wire name of the event
func (e Event) String() string {
	switch e {
	case EventUp:
		return "up"
	case EventDown:
		return "down"
	case EventAccept:
		return "ok"
	case EventCancel:
		return "cancel"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// ParseEvent converts a command name into an Event. Accepts the wire names
// plus a few aliases used by button boards and scripts.
func ParseEvent(s string) (Event, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u", "next", "+":
		return EventUp, nil
	case "down", "d", "prev", "-":
		return EventDown, nil
	case "ok", "accept", "enter":
		return EventAccept, nil
	case "cancel", "stop", "esc":
		return EventCancel, nil
	default:
		return 0, fmt.Errorf("unknown event %q", s)
	}
}

// ParseEvents parses a comma or whitespace separated list of events.
func ParseEvents(s string) ([]Event, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	events := make([]Event, 0, len(fields))
	for _, f := range fields {
		ev, err := ParseEvent(f)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}
