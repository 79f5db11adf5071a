package clock

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTime(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		minutes int
		want    string
	}{
		{"same hour", "2024-03-10T10:00:00", 15, "2024-03-10T10:15:00"},
		{"zero offset", "2024-03-10T10:00:00", 0, "2024-03-10T10:00:00"},
		{"hour rollover", "2024-03-10T10:50:30", 20, "2024-03-10T11:10:30"},
		{"month rollover", "2024-01-31T23:50:00", 20, "2024-02-01T00:10:00"},
		{"leap day", "2024-02-28T23:30:00", 60, "2024-02-29T00:30:00"},
		{"non leap year", "2023-02-28T23:30:00", 60, "2023-03-01T00:30:00"},
		{"year rollover", "2023-12-31T23:59:59", 1, "2024-01-01T00:00:59"},
		{"multiple days", "2024-04-29T12:00:00", 3 * 24 * 60, "2024-05-02T12:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddTime(MustParse(tt.start), tt.minutes)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestAddTime_Saturates(t *testing.T) {
	start := MustParse("2024-05-02T10:00:00")

	huge := AddTime(start, 200000000000)
	assert.False(t, huge.Before(start))
	assert.Equal(t, AddTime(start, MaxMinutes), huge)
	assert.Equal(t, "2124-04-08T10:00:00", huge.String())

	late := MustParse("9999-12-01T00:00:00")
	assert.Equal(t, Max, AddTime(late, 60*24*60))
	assert.Equal(t, "9999-12-31T23:59:59", AddTime(late, MaxMinutes).String())
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "2024-01-31 23:50:00", "2024-02-30T10:00:00", "2024-1-3T1:00:00", "yesterday"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalidTimestamp, in)
	}
}

func TestTimestamp_Ordering(t *testing.T) {
	a := MustParse("2024-05-01T09:00:00")
	b := MustParse("2024-05-01T09:00:01")

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
	assert.True(t, a.Equal(MustParse(a.String())))
	assert.Less(t, a.String(), b.String())
}

func TestTimestamp_JSON(t *testing.T) {
	var out struct {
		At Timestamp `json:"at"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"at":"2024-05-01T09:00:00"}`), &out))
	assert.Equal(t, "2024-05-01T09:00:00", out.At.String())

	b, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"2024-05-01T09:00:00"}`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`{"at":"nope"}`), &out))
}
