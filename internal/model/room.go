package model

import (
	"fmt"

	"github.com/iliyamo/hotel-occupancy/internal/clock"
)

// RoomStatus is the occupancy state of a room. The set of values is closed:
// a room is always exactly one of Vacant, Occupied or Cleaning.
type RoomStatus uint8

const (
	StatusVacant RoomStatus = iota
	StatusOccupied
	StatusCleaning
)

// String returns the lower-case label used in rendered messages.
func (s RoomStatus) String() string {
	switch s {
	case StatusVacant:
		return "vacant"
	case StatusOccupied:
		return "occupied"
	case StatusCleaning:
		return "cleaning"
	}
	return fmt.Sprintf("RoomStatus(%d)", uint8(s))
}

func (s RoomStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// RoomConfig is one entry of the room configuration block. Number is the
// registry key, Capacity the most adults plus children the room takes, and
// WeekdayRate the nightly rate for one adult.
type RoomConfig struct {
	Number      int `json:"number"`
	Capacity    int `json:"capacity"`
	WeekdayRate int `json:"weekday_rate"`
}

// Room is the mutable occupancy record of a single room.
//
// Stay fields (GuestID, OccupiedNights, Adults, Children) are meaningful only
// while Status is StatusOccupied. Cleaning fields (CleaningMinutes,
// CleaningCompletion) are meaningful only while Status is StatusCleaning.
type Room struct {
	Number      int
	Capacity    int
	WeekdayRate int
	Status      RoomStatus

	GuestID        string
	OccupiedNights int
	Adults         int
	Children       int

	CleaningMinutes    int
	CleaningCompletion clock.Timestamp
}

// NewRoom returns a vacant room built from its configuration.
func NewRoom(cfg RoomConfig) Room {
	return Room{
		Number:      cfg.Number,
		Capacity:    cfg.Capacity,
		WeekdayRate: cfg.WeekdayRate,
		Status:      StatusVacant,
	}
}
