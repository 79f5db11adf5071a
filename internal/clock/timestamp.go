// Package clock holds the event timestamp type and the minute arithmetic used
// to compute cleaning completion times. Event timestamps are the only notion
// of time in the system; wall-clock time is never consulted.
package clock

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the fixed-width format of every timestamp read from or written to
// the event stream. Formatted values sort lexicographically in chronological
// order.
const Layout = "2006-01-02T15:04:05"

// ErrInvalidTimestamp is returned by Parse when the input does not match
// Layout or names a date that does not exist.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Timestamp is a calendar instant with second precision. Values are kept in
// UTC so that comparisons are chronological and free of offset surprises.
type Timestamp struct {
	t time.Time
}

// Parse reads a timestamp in Layout.
func Parse(s string) (Timestamp, error) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return Timestamp{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
	}
	return Timestamp{t: t}, nil
}

// MustParse is like Parse but panics on malformed input. Intended for
// constants and tests.
func MustParse(s string) Timestamp {
	ts, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// MaxMinutes is the largest offset AddTime applies (100 years). Larger
// offsets are clamped to it.
const MaxMinutes = 100 * 365 * 24 * 60

// Max is the latest timestamp Layout can represent.
var Max = Timestamp{t: time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)}

// AddTime returns ts advanced by the given number of minutes. Calendar
// rollover (month lengths, leap years) is handled by the time package. The
// result never precedes ts for non-negative minutes and never passes Max.
func AddTime(ts Timestamp, minutes int) Timestamp {
	if minutes > MaxMinutes {
		minutes = MaxMinutes
	}
	t := ts.t.Add(time.Duration(minutes) * time.Minute)
	if t.After(Max.t) {
		return Max
	}
	return Timestamp{t: t}
}

func (ts Timestamp) String() string { return ts.t.Format(Layout) }

// Time exposes the underlying UTC time.
func (ts Timestamp) Time() time.Time { return ts.t }

func (ts Timestamp) IsZero() bool { return ts.t.IsZero() }

// Before reports whether ts is strictly earlier than other.
func (ts Timestamp) Before(other Timestamp) bool { return ts.t.Before(other.t) }

func (ts Timestamp) Equal(other Timestamp) bool { return ts.t.Equal(other.t) }

// MarshalText renders ts in Layout so timestamps travel as plain strings in
// JSON payloads.
func (ts Timestamp) MarshalText() ([]byte, error) {
	return []byte(ts.String()), nil
}

func (ts *Timestamp) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
