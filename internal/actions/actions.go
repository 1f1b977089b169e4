package actions

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/kvdijken/Settings/internal/logging"
	"github.com/kvdijken/Settings/internal/settings"
)

// Handler names understood by Lookup. Menu files refer to these.
const (
	HandlerAccept      = "accept"
	HandlerReject      = "reject"
	HandlerApply       = "apply"
	HandlerApplyReject = "apply-reject"
)

// Applied records the values pushed to the outside world, keyed by setting
// name. It stands in for the hardware a real acceptor would drive.
type Applied struct {
	mu     sync.RWMutex
	values map[string]string
	last   string // name of the most recently applied setting
	count  int
}

// NewApplied creates an empty store
func NewApplied() *Applied {
	return &Applied{values: make(map[string]string)}
}

func (a *Applied) record(name, value string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.values[name] = value
	a.last = name
	a.count++
}

// Get returns the applied value for a setting
func (a *Applied) Get(name string) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	v, ok := a.values[name]
	return v, ok
}

// Last returns the most recently applied setting and value
func (a *Applied) Last() (name, value string, ok bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.last == "" {
		return "", "", false
	}
	return a.last, a.values[a.last], true
}

// Count returns how many values have been applied
func (a *Applied) Count() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.count
}

// Set is the collection of named acceptors available to menu files.
type Set struct {
	applied  *Applied
	handlers map[string]settings.Acceptor
}

// NewSet creates the built-in handlers, recording applied values in applied.
// A nil store gets a fresh one.
func NewSet(applied *Applied) *Set {
	if applied == nil {
		applied = NewApplied()
	}
	s := &Set{
		applied:  applied,
		handlers: make(map[string]settings.Acceptor),
	}

	s.Register(HandlerAccept, settings.AcceptorFunc(func(st *settings.Setting) settings.Decision {
		return settings.Decision{Accepted: true}
	}))
	s.Register(HandlerReject, settings.AcceptorFunc(func(st *settings.Setting) settings.Decision {
		return settings.Decision{Accepted: false}
	}))
	s.Register(HandlerApply, s.applier(true))
	s.Register(HandlerApplyReject, s.applier(false))

	return s
}

// applier pushes the tentative value into the Applied store and votes.
func (s *Set) applier(vote bool) settings.Acceptor {
	return settings.AcceptorFunc(func(st *settings.Setting) settings.Decision {
		value := st.TentativeValue()
		s.applied.record(st.Name, value)
		logging.Debug("Value applied",
			zap.String("setting", st.Name),
			zap.String("value", value),
			zap.Bool("vote", vote),
		)
		return settings.Decision{Applied: true, Accepted: vote}
	})
}

// Register adds or replaces a named handler
func (s *Set) Register(name string, a settings.Acceptor) {
	s.handlers[name] = a
}

// Lookup returns the handler with the given name. An empty name means
// HandlerAccept.
func (s *Set) Lookup(name string) (settings.Acceptor, error) {
	if name == "" {
		name = HandlerAccept
	}
	a, ok := s.handlers[name]
	if !ok {
		return nil, fmt.Errorf("unknown handler %q (available: %v)", name, s.Names())
	}
	return a, nil
}

// Names returns the registered handler names in sorted order
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.handlers))
	for name := range s.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Applied returns the store the apply handlers write to
func (s *Set) Applied() *Applied {
	return s.applied
}
