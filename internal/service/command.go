package service

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/iliyamo/hotel-occupancy/internal/clock"
	"github.com/iliyamo/hotel-occupancy/internal/model"
)

var (
	// ErrUnknownCommand is returned by ParseCommand for a tag other than
	// check-in or check-out.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMalformedEvent is returned by ParseCommand when a field is missing,
	// extra, not a number, or negative.
	ErrMalformedEvent = errors.New("malformed event")
)

// ParseCommand turns the whitespace-separated fields of one event line into
// a typed command:
//
//	<ts> check-in  <room> <adults> <children> <nights> <guest>
//	<ts> check-out <guest> <room> <cleaning-minutes>
func ParseCommand(fields []string) (model.Command, error) {
	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: want timestamp and command", ErrMalformedEvent)
	}
	kind := model.CommandKind(fields[1])
	if kind != model.KindCheckIn && kind != model.KindCheckOut {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[1])
	}
	at, err := clock.Parse(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}

	switch kind {
	case model.KindCheckIn:
		if len(fields) != 7 {
			return nil, fmt.Errorf("%w: check-in wants 5 fields, got %d", ErrMalformedEvent, len(fields)-2)
		}
		nums, err := counts(fields[2:6], "room", "adults", "children", "nights")
		if err != nil {
			return nil, err
		}
		return model.CheckIn{
			Timestamp:  at,
			RoomNumber: nums[0],
			Adults:     nums[1],
			Children:   nums[2],
			Nights:     nums[3],
			GuestID:    fields[6],
		}, nil
	default:
		if len(fields) != 5 {
			return nil, fmt.Errorf("%w: check-out wants 3 fields, got %d", ErrMalformedEvent, len(fields)-2)
		}
		nums, err := counts(fields[3:5], "room", "cleaning minutes")
		if err != nil {
			return nil, err
		}
		if nums[1] > clock.MaxMinutes {
			return nil, fmt.Errorf("%w: cleaning minutes %d exceed %d", ErrMalformedEvent, nums[1], clock.MaxMinutes)
		}
		return model.CheckOut{
			Timestamp:       at,
			GuestID:         fields[2],
			RoomNumber:      nums[0],
			CleaningMinutes: nums[1],
		}, nil
	}
}

func counts(fields []string, names ...string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q is not an integer", ErrMalformedEvent, names[i], f)
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: %s %d is negative", ErrMalformedEvent, names[i], n)
		}
		out[i] = n
	}
	return out, nil
}
