// Package settings holds the setting records edited by the menu.
//
// A Setting is a name plus an ordered list of value strings. Two indices
// point into that list: Current is the last committed value, Tentative is
// the value the user is browsing. Outside edit mode both are equal.
//
// # Registry
//
// Settings live in a Registry with a capacity fixed at construction. The
// registry is append-only; settings are created once at startup and keep
// their position for the process lifetime:
//
//	reg := settings.NewRegistry(8)
//	reg.Create("SAMPLERATE", []string{"48000", "96000"}, 1, false, acceptor)
//	reg.AddSeparator()
//	reg.Create("VOLUME", []string{"0", "5", "10"}, 1, true, acceptor)
//
// Creating more settings than the capacity returns a CapacityExceeded error
// and leaves the registry unchanged.
//
// # Acceptors
//
// Every editable setting carries an Acceptor. It receives the setting with
// the tentative value in place and answers with a Decision:
//
//   - Applied: the value was pushed to the outside world
//   - Accepted: the value may be kept
//
// Live settings call the Acceptor on every value change so the effect is
// visible immediately; other settings call it once, on accept.
package settings
