package model

import "github.com/iliyamo/hotel-occupancy/internal/clock"

// Result is the outcome of applying one command, handed to the renderer.
// Err is nil on success and otherwise holds the state machine or registry
// failure. Charge and CleaningCompletion are set only for successful
// checkouts; Adults, Children and Nights describe the stay that was checked
// in or checked out.
type Result struct {
	Kind       CommandKind
	At         clock.Timestamp
	RoomNumber int
	GuestID    string
	Err        error

	Adults   int
	Children int
	Nights   int

	Charge             int
	CleaningCompletion clock.Timestamp
}

// OK reports whether the command was applied.
func (r Result) OK() bool { return r.Err == nil }
