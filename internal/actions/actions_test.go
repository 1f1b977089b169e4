package actions

import (
	"reflect"
	"testing"

	"github.com/kvdijken/Settings/internal/menu"
	"github.com/kvdijken/Settings/internal/settings"
)

func TestLookup(t *testing.T) {
	set := NewSet(nil)

	for _, name := range []string{"", HandlerAccept, HandlerReject, HandlerApply, HandlerApplyReject} {
		if _, err := set.Lookup(name); err != nil {
			t.Errorf("Lookup(%q) error = %v", name, err)
		}
	}

	if _, err := set.Lookup("launch-missiles"); err == nil {
		t.Error("Lookup() of unknown handler should fail")
	}

	want := []string{HandlerAccept, HandlerApply, HandlerApplyReject, HandlerReject}
	if got := set.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestHandlerDecisions(t *testing.T) {
	tests := []struct {
		name string
		want settings.Decision
	}{
		{HandlerAccept, settings.Decision{Applied: false, Accepted: true}},
		{HandlerReject, settings.Decision{Applied: false, Accepted: false}},
		{HandlerApply, settings.Decision{Applied: true, Accepted: true}},
		{HandlerApplyReject, settings.Decision{Applied: true, Accepted: false}},
	}

	set := NewSet(nil)
	for _, tt := range tests {
		acc, _ := set.Lookup(tt.name)
		s := &settings.Setting{Name: "X", Values: []string{"a", "b"}, Tentative: 1}
		if got := acc.OnChange(s); got != tt.want {
			t.Errorf("%s: OnChange() = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestApplyRecordsValues(t *testing.T) {
	store := NewApplied()
	set := NewSet(store)

	if _, _, ok := store.Last(); ok {
		t.Error("Last() on empty store should report ok=false")
	}

	apply, _ := set.Lookup(HandlerApply)
	reg := settings.NewRegistry(1)
	s, err := reg.Create("VOLUME", []string{"0", "5", "10"}, 0, true, apply)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	m := menu.New(reg, nil)
	m.Accept()
	m.MoveUp()
	m.MoveUp()

	if v, ok := store.Get("VOLUME"); !ok || v != "10" {
		t.Errorf("Get(VOLUME) = %q, %v; want 10, true", v, ok)
	}

	// Cancelling a live edit re-applies the committed value
	m.Cancel()
	name, value, ok := store.Last()
	if !ok || name != "VOLUME" || value != "0" {
		t.Errorf("Last() = %q, %q, %v; want VOLUME, 0, true", name, value, ok)
	}
	if store.Count() != 3 {
		t.Errorf("Count() = %v, want 3", store.Count())
	}
	if s.Current != 0 {
		t.Errorf("Current = %v, want 0", s.Current)
	}
	if set.Applied() != store {
		t.Error("Applied() should return the store passed to NewSet")
	}
}

func TestRegisterOverrides(t *testing.T) {
	set := NewSet(nil)
	called := false
	set.Register(HandlerAccept, settings.AcceptorFunc(func(*settings.Setting) settings.Decision {
		called = true
		return settings.Decision{}
	}))

	acc, _ := set.Lookup("")
	acc.OnChange(&settings.Setting{Name: "X"})
	if !called {
		t.Error("Register() should replace an existing handler")
	}
}
