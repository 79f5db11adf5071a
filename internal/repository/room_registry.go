package repository

import (
	"fmt"
	"sort"

	"github.com/iliyamo/hotel-occupancy/internal/model"
)

// RoomRegistry is the in-memory collection of rooms for one run. It is filled
// once from configuration and afterwards only updated through Save. It is not
// safe for concurrent use; callers that share a registry must serialize
// access.
type RoomRegistry struct {
	rooms map[int]model.Room
}

// NewRoomRegistry returns an empty registry.
func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{rooms: make(map[int]model.Room)}
}

// Register inserts a vacant room for every config. A later config for the
// same number replaces the earlier one. Nothing is inserted when any config
// is invalid.
func (r *RoomRegistry) Register(configs ...model.RoomConfig) error {
	for _, cfg := range configs {
		if cfg.Capacity < 0 || cfg.WeekdayRate < 0 {
			return fmt.Errorf("%w: room %d capacity=%d rate=%d", ErrInvalidRoomConfig, cfg.Number, cfg.Capacity, cfg.WeekdayRate)
		}
	}
	for _, cfg := range configs {
		r.rooms[cfg.Number] = model.NewRoom(cfg)
	}
	return nil
}

// Get returns a copy of the room with the given number.
func (r *RoomRegistry) Get(number int) (model.Room, error) {
	room, ok := r.rooms[number]
	if !ok {
		return model.Room{}, ErrRoomNotFound
	}
	return room, nil
}

// Save stores room under its number. Only registered rooms can be saved.
func (r *RoomRegistry) Save(room model.Room) error {
	if _, ok := r.rooms[room.Number]; !ok {
		return ErrRoomNotFound
	}
	r.rooms[room.Number] = room
	return nil
}

// All returns every room ordered by number.
func (r *RoomRegistry) All() []model.Room {
	out := make([]model.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, room)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

func (r *RoomRegistry) Len() int { return len(r.rooms) }
