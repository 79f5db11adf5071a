package model

import "github.com/iliyamo/hotel-occupancy/internal/clock"

// CommandKind is the tag that follows the timestamp on an event line.
type CommandKind string

const (
	KindCheckIn  CommandKind = "check-in"
	KindCheckOut CommandKind = "check-out"
)

// Command is a parsed event addressed to one room.
type Command interface {
	Kind() CommandKind
	At() clock.Timestamp
	Target() int
}

// CheckIn asks to place a guest party in a room for a number of nights.
type CheckIn struct {
	Timestamp  clock.Timestamp
	RoomNumber int
	Adults     int
	Children   int
	Nights     int
	GuestID    string
}

func (c CheckIn) Kind() CommandKind   { return KindCheckIn }
func (c CheckIn) At() clock.Timestamp { return c.Timestamp }
func (c CheckIn) Target() int         { return c.RoomNumber }

// CheckOut releases a room held by GuestID and schedules its cleaning.
type CheckOut struct {
	Timestamp       clock.Timestamp
	GuestID         string
	RoomNumber      int
	CleaningMinutes int
}

func (c CheckOut) Kind() CommandKind   { return KindCheckOut }
func (c CheckOut) At() clock.Timestamp { return c.Timestamp }
func (c CheckOut) Target() int         { return c.RoomNumber }
