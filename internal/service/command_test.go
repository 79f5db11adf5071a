package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-occupancy/internal/clock"
	"github.com/iliyamo/hotel-occupancy/internal/model"
)

func TestParseCommand_CheckIn(t *testing.T) {
	cmd, err := ParseCommand(strings.Fields("2024-05-01T09:00:00 check-in 101 2 1 3 guest-7"))
	require.NoError(t, err)

	in, ok := cmd.(model.CheckIn)
	require.True(t, ok)
	assert.Equal(t, model.KindCheckIn, in.Kind())
	assert.Equal(t, "2024-05-01T09:00:00", in.At().String())
	assert.Equal(t, 101, in.Target())
	assert.Equal(t, 2, in.Adults)
	assert.Equal(t, 1, in.Children)
	assert.Equal(t, 3, in.Nights)
	assert.Equal(t, "guest-7", in.GuestID)
}

func TestParseCommand_CheckOut(t *testing.T) {
	cmd, err := ParseCommand(strings.Fields("2024-05-04T10:00:00 check-out guest-7 101 45"))
	require.NoError(t, err)

	out, ok := cmd.(model.CheckOut)
	require.True(t, ok)
	assert.Equal(t, model.KindCheckOut, out.Kind())
	assert.Equal(t, "guest-7", out.GuestID)
	assert.Equal(t, 101, out.Target())
	assert.Equal(t, 45, out.CleaningMinutes)
}

func TestParseCommand_CleaningMinutesLimit(t *testing.T) {
	cmd, err := ParseCommand(strings.Fields("2024-05-04T10:00:00 check-out A 101 52560000"))
	require.NoError(t, err)
	assert.Equal(t, clock.MaxMinutes, cmd.(model.CheckOut).CleaningMinutes)
}

func TestParseCommand_Errors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"2024-05-01T09:00:00", ErrMalformedEvent},
		{"2024-05-01T09:00:00 check-up 101", ErrUnknownCommand},
		{"not-a-time check-in 101 2 1 3 A", ErrMalformedEvent},
		{"2024-05-01T09:00:00 check-in 101 2 1 3", ErrMalformedEvent},
		{"2024-05-01T09:00:00 check-in 101 2 1 3 A extra", ErrMalformedEvent},
		{"2024-05-01T09:00:00 check-in 101 two 1 3 A", ErrMalformedEvent},
		{"2024-05-01T09:00:00 check-in 101 2 -1 3 A", ErrMalformedEvent},
		{"2024-05-01T09:00:00 check-out A 101", ErrMalformedEvent},
		{"2024-05-01T09:00:00 check-out A 101 -5", ErrMalformedEvent},
		{"2024-05-01T09:00:00 check-out A room 5", ErrMalformedEvent},
		{"2024-05-01T09:00:00 check-out A 101 200000000000", ErrMalformedEvent},
		{"2024-05-01T09:00:00 check-out A 101 52560001", ErrMalformedEvent},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := ParseCommand(strings.Fields(tt.line))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
