package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iliyamo/hotel-occupancy/internal/clock"
	"github.com/iliyamo/hotel-occupancy/internal/model"
	"github.com/iliyamo/hotel-occupancy/internal/occupancy"
	"github.com/iliyamo/hotel-occupancy/internal/repository"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) CheckedOut(ctx context.Context, res model.Result) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}

func newTestDispatcher(t *testing.T, opts ...Option) *Dispatcher {
	t.Helper()
	rooms := repository.NewRoomRegistry()
	require.NoError(t, rooms.Register(model.RoomConfig{Number: 101, Capacity: 3, WeekdayRate: 100}))
	return NewDispatcher(rooms, zap.NewNop(), opts...)
}

func mustParse(t *testing.T, line string) model.Command {
	t.Helper()
	cmd, err := ParseCommand(strings.Fields(line))
	require.NoError(t, err)
	return cmd
}

func TestDispatcher_CheckInPersistsRoom(t *testing.T) {
	d := newTestDispatcher(t)
	ctx := context.Background()

	res := d.Dispatch(ctx, mustParse(t, "2024-05-01T09:00:00 check-in 101 2 0 2 A"))
	require.True(t, res.OK())
	assert.Equal(t, "A", res.GuestID)
	assert.Equal(t, 101, res.RoomNumber)

	room, err := d.Rooms().Get(101)
	require.NoError(t, err)
	assert.Equal(t, model.StatusOccupied, room.Status)
	assert.Equal(t, "A", room.GuestID)
}

func TestDispatcher_FailureLeavesRoomUnchanged(t *testing.T) {
	d := newTestDispatcher(t)
	ctx := context.Background()

	require.True(t, d.Dispatch(ctx, mustParse(t, "2024-05-01T09:00:00 check-in 101 2 0 2 A")).OK())
	before, _ := d.Rooms().Get(101)

	res := d.Dispatch(ctx, mustParse(t, "2024-05-01T10:00:00 check-in 101 1 0 1 B"))
	assert.ErrorIs(t, res.Err, occupancy.ErrRoomNotVacant)
	res = d.Dispatch(ctx, mustParse(t, "2024-05-01T10:00:00 check-out B 101 30"))
	assert.ErrorIs(t, res.Err, occupancy.ErrGuestNotFound)

	after, _ := d.Rooms().Get(101)
	assert.Equal(t, before, after)
}

func TestDispatcher_UnknownRoom(t *testing.T) {
	d := newTestDispatcher(t)

	res := d.Dispatch(context.Background(), mustParse(t, "2024-05-01T09:00:00 check-in 999 1 0 1 A"))
	assert.ErrorIs(t, res.Err, repository.ErrRoomNotFound)
	assert.Equal(t, "A", res.GuestID)
	assert.Equal(t, 1, d.Rooms().Len())
}

func TestDispatcher_CheckOutNotifies(t *testing.T) {
	n := new(MockNotifier)
	d := newTestDispatcher(t, WithNotifier(n))
	ctx := context.Background()

	n.On("CheckedOut", ctx, mock.MatchedBy(func(res model.Result) bool {
		return res.RoomNumber == 101 && res.GuestID == "A" && res.Charge == 840 &&
			res.Adults == 2 && res.Children == 1 && res.Nights == 3
	})).Return(nil).Once()

	require.True(t, d.Dispatch(ctx, mustParse(t, "2024-05-01T14:00:00 check-in 101 2 1 3 A")).OK())
	res := d.Dispatch(ctx, mustParse(t, "2024-05-04T10:00:00 check-out A 101 45"))
	require.True(t, res.OK())
	assert.Equal(t, clock.MustParse("2024-05-04T10:45:00"), res.CleaningCompletion)

	n.AssertExpectations(t)
}

func TestDispatcher_NotifierErrorDoesNotFailCheckout(t *testing.T) {
	n := new(MockNotifier)
	d := newTestDispatcher(t, WithNotifier(n))
	ctx := context.Background()
	n.On("CheckedOut", ctx, mock.Anything).Return(errors.New("broker down"))

	require.True(t, d.Dispatch(ctx, mustParse(t, "2024-05-01T14:00:00 check-in 101 1 0 1 A")).OK())
	res := d.Dispatch(ctx, mustParse(t, "2024-05-02T10:00:00 check-out A 101 30"))

	assert.True(t, res.OK())
	room, _ := d.Rooms().Get(101)
	assert.Equal(t, model.StatusCleaning, room.Status)
}

func TestDispatcher_FailedCheckOutDoesNotNotify(t *testing.T) {
	n := new(MockNotifier)
	d := newTestDispatcher(t, WithNotifier(n))

	res := d.Dispatch(context.Background(), mustParse(t, "2024-05-02T10:00:00 check-out A 101 30"))
	assert.ErrorIs(t, res.Err, occupancy.ErrGuestNotFound)
	n.AssertNotCalled(t, "CheckedOut", mock.Anything, mock.Anything)
}
