package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iliyamo/hotel-occupancy/internal/input"
	"github.com/iliyamo/hotel-occupancy/internal/repository"
)

func TestRunBatch_Scenario(t *testing.T) {
	in := strings.Join([]string{
		"2",
		"101 3 100",
		"102 2 80",
		"2024-05-01T09:00:00 check-in 101 2 0 2 A",
		"2024-05-01T09:05:00 check-in 101 1 0 1 B",
		"2024-05-01T09:10:00 check-in 102 2 1 1 C",
		"2024-05-03T10:00:00 check-out A 101 30",
		"2024-05-03T10:00:00 check-in 101 1 0 1 D",
		"2024-05-03T10:30:00 check-in 101 2 1 3 D",
		"2024-05-03T11:00:00 check-out Z 101 10",
		"2024-05-03T11:00:00 check-out A 102 10",
		"2024-05-06T09:00:00 check-out D 101 20",
		"",
	}, "\n")

	var out bytes.Buffer
	sum, err := RunBatch(context.Background(), strings.NewReader(in), &out, zap.NewNop())
	require.NoError(t, err)

	want := strings.Join([]string{
		"2024-05-01T09:00:00 check-in A successfully checked in to 101.",
		"2024-05-01T09:05:00 check-in error: 101 is occupied.",
		"2024-05-01T09:10:00 check-in error: 102 cannot accommodate C.",
		"2024-05-03T10:00:00 check-out A has to pay 400 to leave 101.",
		"cleaning of 101 will be completed at 2024-05-03T10:30:00.",
		"2024-05-03T10:00:00 check-in error: 101 is being cleaned.",
		"2024-05-03T10:30:00 check-in D successfully checked in to 101.",
		"2024-05-03T11:00:00 check-out error: Z is not in 101.",
		"2024-05-03T11:00:00 check-out error: A is not in 102.",
		"2024-05-06T09:00:00 check-out D has to pay 840 to leave 101.",
		"cleaning of 101 will be completed at 2024-05-06T09:20:00.",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())

	assert.NotEmpty(t, sum.RunID)
	assert.Equal(t, 2, sum.Rooms)
	assert.Equal(t, 9, sum.Events)
	assert.Equal(t, 5, sum.Failed)
	assert.Zero(t, sum.Skipped)
}

func TestRunBatch_OutOfOrderTimestampsAreNotSorted(t *testing.T) {
	in := "1\n101 2 100\n" +
		"2024-05-02T10:00:00 check-in 101 1 0 1 A\n" +
		"2024-05-01T10:00:00 check-out A 101 60\n" +
		"2024-05-01T10:30:00 check-in 101 1 0 1 B\n"

	var out bytes.Buffer
	_, err := RunBatch(context.Background(), strings.NewReader(in), &out, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "2024-05-02T10:00:00 check-in A successfully checked in to 101.\n"+
		"2024-05-01T10:00:00 check-out A has to pay 100 to leave 101.\n"+
		"cleaning of 101 will be completed at 2024-05-01T11:00:00.\n"+
		"2024-05-01T10:30:00 check-in error: 101 is being cleaned.\n", out.String())
}

func TestRunBatch_SkipsBadLines(t *testing.T) {
	in := "1\n101 2 100\n" +
		"2024-05-01T09:00:00 check-up 101 1 0 1 A\n" +
		"garbage\n" +
		"2024-05-01T09:00:00 check-in 101 x 0 1 A\n" +
		"2024-05-01T09:00:00 check-in 555 1 0 1 A\n" +
		"2024-05-01T09:00:00 check-in 101 1 0 1 A\n"

	var out bytes.Buffer
	sum, err := RunBatch(context.Background(), strings.NewReader(in), &out, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "2024-05-01T09:00:00 check-in error: 555 is not registered.\n"+
		"2024-05-01T09:00:00 check-in A successfully checked in to 101.\n", out.String())
	assert.Equal(t, 3, sum.Skipped)
	assert.Equal(t, 2, sum.Events)
	assert.Equal(t, 1, sum.Failed)
}

func TestRunBatch_ConfigErrors(t *testing.T) {
	_, err := RunBatch(context.Background(), strings.NewReader("3\n101 2 100\n"), &bytes.Buffer{}, zap.NewNop())
	assert.ErrorIs(t, err, input.ErrTruncatedConfig)

	_, err = RunBatch(context.Background(), strings.NewReader("1\n101 2 -100\n"), &bytes.Buffer{}, zap.NewNop())
	assert.ErrorIs(t, err, repository.ErrInvalidRoomConfig)
}

func TestRunBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunBatch(ctx, strings.NewReader("1\n101 2 100\n2024-05-01T09:00:00 check-in 101 1 0 1 A\n"), &bytes.Buffer{}, zap.NewNop())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunBatch_OversizedCleaningKeepsRoomBlocked(t *testing.T) {
	in := strings.Join([]string{
		"1",
		"101 2 100",
		"2024-05-01T10:00:00 check-in 101 1 0 1 A",
		"2024-05-02T10:00:00 check-out A 101 200000000000",
		"2024-05-02T11:00:00 check-in 101 1 0 1 B",
	}, "\n")

	var out bytes.Buffer
	sum, err := RunBatch(context.Background(), strings.NewReader(in), &out, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Skipped)
	assert.Equal(t, "2024-05-01T10:00:00 check-in A successfully checked in to 101.\n"+
		"2024-05-02T11:00:00 check-in error: 101 is occupied.\n", out.String())
}
