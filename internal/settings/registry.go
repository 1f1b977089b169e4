package settings

import "fmt"

// Registry is a fixed-capacity, append-only list of settings. Registry order
// is row order on the display.
type Registry struct {
	items    []*Setting
	capacity int
}

// NewRegistry creates an empty registry that can hold up to capacity
// settings, separators included.
func NewRegistry(capacity int) *Registry {
	if capacity < 0 {
		capacity = 0
	}
	return &Registry{
		items:    make([]*Setting, 0, capacity),
		capacity: capacity,
	}
}

// Create appends a new setting. A name equal to NoName creates a separator
// and the remaining arguments are ignored.
//
// Returns a CapacityExceeded error once the registry is full; the settings
// created before are left untouched.
func (r *Registry) Create(name string, values []string, initial int, live bool, onChange Acceptor) (*Setting, error) {
	if len(r.items) >= r.capacity {
		return nil, NewCapacityError(name, r.capacity)
	}

	if name == NoName {
		return r.add(&Setting{Name: NoName}), nil
	}

	if len(values) == 0 {
		return nil, NewInvalidSettingError(name, "at least one value is required")
	}
	if initial < 0 || initial >= len(values) {
		return nil, NewInvalidSettingError(name,
			fmt.Sprintf("initial value %d out of range [0, %d)", initial, len(values)))
	}
	if onChange == nil {
		return nil, NewInvalidSettingError(name, "an acceptance callback is required")
	}

	vals := make([]string, len(values))
	copy(vals, values)

	return r.add(&Setting{
		Name:      name,
		Values:    vals,
		Current:   initial,
		Tentative: initial,
		Live:      live,
		OnChange:  onChange,
	}), nil
}

// AddSeparator appends a blank grouping row.
func (r *Registry) AddSeparator() (*Setting, error) {
	return r.Create(NoName, nil, 0, false, nil)
}

func (r *Registry) add(s *Setting) *Setting {
	r.items = append(r.items, s)
	return s
}

// Len returns the number of settings created so far.
func (r *Registry) Len() int {
	return len(r.items)
}

// Cap returns the fixed capacity.
func (r *Registry) Cap() int {
	return r.capacity
}

// At returns the setting at index i, or nil when i is out of range.
func (r *Registry) At(i int) *Setting {
	if i < 0 || i >= len(r.items) {
		return nil
	}
	return r.items[i]
}

// Selectable reports whether the row at index i can carry the cursor.
func (r *Registry) Selectable(i int) bool {
	s := r.At(i)
	return s != nil && !s.IsSeparator()
}

// All returns the settings in row order. The slice is a copy; the settings
// are shared.
func (r *Registry) All() []*Setting {
	out := make([]*Setting, len(r.items))
	copy(out, r.items)
	return out
}

// Find returns the first setting with the given name.
func (r *Registry) Find(name string) *Setting {
	if name == NoName {
		return nil
	}
	for _, s := range r.items {
		if s.Name == name {
			return s
		}
	}
	return nil
}
