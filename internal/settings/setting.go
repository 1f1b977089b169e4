package settings

// NoName is the name given to separator rows. A separator occupies a
// registry slot but has no values and can never be selected.
const NoName = ""

// Decision is what an Acceptor reports back after it has been handed a
// tentative value.
type Decision struct {
	// Applied is true when the value was pushed to the outside world
	// (e.g. a live audio parameter changed). An applied value that is
	// later abandoned gets a second OnChange call so it can be reverted.
	// Only Applied drives that call on Cancel; a live value that was
	// accepted but not applied is never handed back.
	Applied bool
	// Accepted is true when the caller should keep the value.
	Accepted bool
}

// Acceptor decides whether the tentative value of a setting may be accepted.
// For live settings it is called on every value change while editing; for
// other settings only when the user accepts the value.
//
// OnChange runs synchronously inside the event that triggered it and must
// not call back into the menu.
type Acceptor interface {
	OnChange(s *Setting) Decision
}

// AcceptorFunc adapts an ordinary function to the Acceptor interface.
type AcceptorFunc func(s *Setting) Decision

// OnChange implements Acceptor
func (f AcceptorFunc) OnChange(s *Setting) Decision {
	return f(s)
}

// Predicate adapts a boolean callback. The call itself counts as having
// applied the value and the boolean is the accept vote.
func Predicate(fn func(s *Setting) bool) Acceptor {
	return AcceptorFunc(func(s *Setting) Decision {
		return Decision{Applied: true, Accepted: fn(s)}
	})
}

// Setting is a named item with an ordered list of selectable values.
type Setting struct {
	Name      string
	Values    []string
	Current   int // index of the last committed value
	Tentative int // index being browsed; equals Current outside edit mode
	Live      bool

	// LastDecision caches the most recent OnChange result. Only meaningful
	// for live settings, where it drives commit and rollback.
	LastDecision Decision

	OnChange Acceptor
}

// IsSeparator reports whether the setting is a grouping row.
func (s *Setting) IsSeparator() bool {
	return s.Name == NoName
}

// Value returns the committed value text.
func (s *Setting) Value() string {
	if s.IsSeparator() || len(s.Values) == 0 {
		return ""
	}
	return s.Values[s.Current]
}

// TentativeValue returns the value text currently being browsed.
func (s *Setting) TentativeValue() string {
	if s.IsSeparator() || len(s.Values) == 0 {
		return ""
	}
	return s.Values[s.Tentative]
}

// Modified reports whether the browsed value differs from the committed one.
func (s *Setting) Modified() bool {
	return s.Tentative != s.Current
}

// Decide hands the setting to its Acceptor and caches the result in
// LastDecision.
func (s *Setting) Decide() Decision {
	if s.OnChange == nil {
		return Decision{}
	}
	d := s.OnChange.OnChange(s)
	s.LastDecision = d
	return d
}
