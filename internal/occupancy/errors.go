package occupancy

import (
	"errors"

	"github.com/iliyamo/hotel-occupancy/internal/model"
)

// Failures of the room state machine. A failed operation leaves the room
// untouched.
var (
	// ErrRoomBeingCleaned is returned by CheckIn while a cleaning window is
	// still open.
	ErrRoomBeingCleaned = errors.New("room is being cleaned")
	// ErrRoomNotVacant is returned by CheckIn when the room is held by a
	// guest. Callers receive it wrapped in a *StatusError.
	ErrRoomNotVacant = errors.New("room is not vacant")
	// ErrCapacityExceeded is returned by CheckIn when adults plus children
	// exceed the room capacity.
	ErrCapacityExceeded = errors.New("party exceeds room capacity")
	// ErrGuestNotFound is returned by CheckOut when the named guest does not
	// hold the room.
	ErrGuestNotFound = errors.New("guest is not in room")
)

// StatusError carries the status that blocked a check-in.
type StatusError struct {
	Status model.RoomStatus
}

func (e *StatusError) Error() string { return "room is " + e.Status.String() }

func (e *StatusError) Unwrap() error { return ErrRoomNotVacant }
