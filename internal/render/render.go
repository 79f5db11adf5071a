// Package render turns dispatch results into the text lines of the batch
// output. Every line but the cleaning notice starts with the event timestamp.
package render

import (
	"errors"
	"fmt"

	"github.com/iliyamo/hotel-occupancy/internal/model"
	"github.com/iliyamo/hotel-occupancy/internal/occupancy"
	"github.com/iliyamo/hotel-occupancy/internal/repository"
)

// Lines renders res. A successful checkout yields two lines, anything else
// yields one.
func Lines(res model.Result) []string {
	ts := res.At.String()

	if errors.Is(res.Err, repository.ErrRoomNotFound) {
		return []string{fmt.Sprintf("%s %s error: %d is not registered.", ts, res.Kind, res.RoomNumber)}
	}

	switch res.Kind {
	case model.KindCheckIn:
		return []string{checkIn(ts, res)}
	case model.KindCheckOut:
		if res.Err != nil {
			return []string{checkOutError(ts, res)}
		}
		return []string{
			fmt.Sprintf("%s check-out %s has to pay %d to leave %d.", ts, res.GuestID, res.Charge, res.RoomNumber),
			fmt.Sprintf("cleaning of %d will be completed at %s.", res.RoomNumber, res.CleaningCompletion),
		}
	}
	return []string{fmt.Sprintf("%s %s error: %v.", ts, res.Kind, res.Err)}
}

func checkIn(ts string, res model.Result) string {
	if res.Err == nil {
		return fmt.Sprintf("%s check-in %s successfully checked in to %d.", ts, res.GuestID, res.RoomNumber)
	}
	var statusErr *occupancy.StatusError
	switch {
	case errors.Is(res.Err, occupancy.ErrRoomBeingCleaned):
		return fmt.Sprintf("%s check-in error: %d is being cleaned.", ts, res.RoomNumber)
	case errors.As(res.Err, &statusErr):
		return fmt.Sprintf("%s check-in error: %d is %s.", ts, res.RoomNumber, statusErr.Status)
	case errors.Is(res.Err, occupancy.ErrCapacityExceeded):
		return fmt.Sprintf("%s check-in error: %d cannot accommodate %s.", ts, res.RoomNumber, res.GuestID)
	}
	return fmt.Sprintf("%s check-in error: %v.", ts, res.Err)
}

func checkOutError(ts string, res model.Result) string {
	if errors.Is(res.Err, occupancy.ErrGuestNotFound) {
		return fmt.Sprintf("%s check-out error: %s is not in %d.", ts, res.GuestID, res.RoomNumber)
	}
	return fmt.Sprintf("%s check-out error: %v.", ts, res.Err)
}
