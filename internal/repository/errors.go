// Package repository holds the room registry and the data sources that feed
// it. Sentinel errors defined here let the dispatcher and handlers tell
// missing rooms apart from invalid configuration.
package repository

import "errors"

// ErrRoomNotFound is returned when a room number is not in the registry.
var ErrRoomNotFound = errors.New("room not found")

// ErrInvalidRoomConfig is returned when a room definition has a negative
// capacity or rate.
var ErrInvalidRoomConfig = errors.New("invalid room config")
