// Package service applies parsed events to the room registry and runs whole
// batch inputs.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/iliyamo/hotel-occupancy/internal/model"
	"github.com/iliyamo/hotel-occupancy/internal/occupancy"
	"github.com/iliyamo/hotel-occupancy/internal/repository"
)

// Notifier is told about every successful checkout. Notification failures
// are logged and never undo or fail the checkout.
type Notifier interface {
	CheckedOut(ctx context.Context, res model.Result) error
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithNotifier attaches n to the dispatcher.
func WithNotifier(n Notifier) Option {
	return func(d *Dispatcher) { d.notifier = n }
}

// Dispatcher routes commands to the room state machine and stores the
// resulting room state. It owns no locking: one event is fully applied before
// Dispatch returns, and callers sharing a Dispatcher must serialize calls.
type Dispatcher struct {
	rooms    *repository.RoomRegistry
	notifier Notifier
	log      *zap.Logger
}

func NewDispatcher(rooms *repository.RoomRegistry, log *zap.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{rooms: rooms, log: log}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Rooms exposes the registry the dispatcher mutates.
func (d *Dispatcher) Rooms() *repository.RoomRegistry { return d.rooms }

// Dispatch applies cmd and reports the outcome. Unknown room numbers yield a
// result carrying repository.ErrRoomNotFound.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd model.Command) model.Result {
	res := model.Result{Kind: cmd.Kind(), At: cmd.At(), RoomNumber: cmd.Target()}

	room, err := d.rooms.Get(cmd.Target())
	if err != nil {
		res.Err = err
		switch c := cmd.(type) {
		case model.CheckIn:
			res.GuestID = c.GuestID
		case model.CheckOut:
			res.GuestID = c.GuestID
		}
		d.log.Warn("event for unregistered room", zap.Int("room", cmd.Target()), zap.String("command", string(cmd.Kind())))
		return res
	}

	switch c := cmd.(type) {
	case model.CheckIn:
		res.GuestID = c.GuestID
		res.Adults, res.Children, res.Nights = c.Adults, c.Children, c.Nights
		next, err := occupancy.CheckIn(room, c)
		if err != nil {
			res.Err = err
			return res
		}
		res.Err = d.rooms.Save(next)

	case model.CheckOut:
		res.GuestID = c.GuestID
		next, receipt, err := occupancy.CheckOut(room, c)
		if err != nil {
			res.Err = err
			return res
		}
		res.Adults, res.Children, res.Nights = room.Adults, room.Children, room.OccupiedNights
		res.Charge = receipt.Charge
		res.CleaningCompletion = receipt.CleaningCompletion
		if res.Err = d.rooms.Save(next); res.Err != nil {
			return res
		}
		if d.notifier != nil {
			if err := d.notifier.CheckedOut(ctx, res); err != nil {
				d.log.Error("checkout notification failed",
					zap.Int("room", res.RoomNumber),
					zap.String("guest_id", res.GuestID),
					zap.Error(err),
				)
			}
		}
	}
	return res
}
