// Package occupancy implements the room state machine: check-in validation,
// checkout billing and the lazy end of cleaning windows.
//
// Rooms move Vacant -> Occupied on check-in and Occupied -> Cleaning on
// checkout. There is no event that ends cleaning; a Cleaning room whose
// completion time has been reached is treated as Vacant by the next check-in.
package occupancy

import (
	"github.com/iliyamo/hotel-occupancy/internal/clock"
	"github.com/iliyamo/hotel-occupancy/internal/model"
)

// Receipt describes a completed checkout.
type Receipt struct {
	Charge             int
	CleaningCompletion clock.Timestamp
}

// IsEffectivelyVacant reports whether room can accept a guest at now.
func IsEffectivelyVacant(room model.Room, now clock.Timestamp) bool {
	switch room.Status {
	case model.StatusVacant:
		return true
	case model.StatusCleaning:
		return !now.Before(room.CleaningCompletion)
	}
	return false
}

// EffectiveStatus is the status room would be observed in at now.
func EffectiveStatus(room model.Room, now clock.Timestamp) model.RoomStatus {
	if room.Status == model.StatusCleaning && IsEffectivelyVacant(room, now) {
		return model.StatusVacant
	}
	return room.Status
}

// CheckIn validates cmd against room and returns the occupied room. On
// failure the original room is returned unchanged together with one of
// ErrRoomBeingCleaned, a *StatusError, or ErrCapacityExceeded.
func CheckIn(room model.Room, cmd model.CheckIn) (model.Room, error) {
	if room.Status == model.StatusCleaning && cmd.Timestamp.Before(room.CleaningCompletion) {
		return room, ErrRoomBeingCleaned
	}
	if !IsEffectivelyVacant(room, cmd.Timestamp) {
		return room, &StatusError{Status: room.Status}
	}
	if cmd.Adults+cmd.Children > room.Capacity {
		return room, ErrCapacityExceeded
	}

	next := room
	next.Status = model.StatusOccupied
	next.GuestID = cmd.GuestID
	next.OccupiedNights = cmd.Nights
	next.Adults = cmd.Adults
	next.Children = cmd.Children
	next.CleaningMinutes = 0
	next.CleaningCompletion = clock.Timestamp{}
	return next, nil
}

// CheckOut bills the stay held by cmd.GuestID and moves the room into
// cleaning until cmd.Timestamp plus cmd.CleaningMinutes.
func CheckOut(room model.Room, cmd model.CheckOut) (model.Room, Receipt, error) {
	if room.Status != model.StatusOccupied || room.GuestID != cmd.GuestID {
		return room, Receipt{}, ErrGuestNotFound
	}

	receipt := Receipt{
		Charge:             Charge(room.WeekdayRate, room.Adults, room.Children, room.OccupiedNights),
		CleaningCompletion: clock.AddTime(cmd.Timestamp, cmd.CleaningMinutes),
	}

	next := room
	next.Status = model.StatusCleaning
	next.GuestID = ""
	next.OccupiedNights = 0
	next.Adults = 0
	next.Children = 0
	next.CleaningMinutes = cmd.CleaningMinutes
	next.CleaningCompletion = receipt.CleaningCompletion
	return next, receipt, nil
}

// ChildRate is the nightly rate for one child: 80% of the adult rate,
// rounded up to a whole unit.
func ChildRate(weekdayRate int) int {
	return ceilDiv(4*weekdayRate, 5)
}

// Charge is the total bill for a stay.
func Charge(weekdayRate, adults, children, nights int) int {
	return (adults*weekdayRate + children*ChildRate(weekdayRate)) * nights
}

func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a > 0) == (b > 0) {
		q++
	}
	return q
}
