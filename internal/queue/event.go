// Package queue defines message payloads exchanged over the message broker.
package queue

// CheckedOutQueue is the default queue for checkout notices.
const CheckedOutQueue = "room.checked_out"

// GuestCheckedOutEvent is published when a guest checks out of a room. It
// carries the billed stay so downstream consumers can book revenue without
// access to the live room registry.
type GuestCheckedOutEvent struct {
	EventID             string `json:"event_id"`
	RoomNumber          int    `json:"room_number"`
	GuestID             string `json:"guest_id"`
	Adults              int    `json:"adults"`
	Children            int    `json:"children"`
	Nights              int    `json:"nights"`
	TotalCharge         int    `json:"total_charge"`
	CheckedOutAt        string `json:"checked_out_at"`
	CleaningCompletesAt string `json:"cleaning_completes_at"`
}
