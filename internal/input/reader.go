// Package input reads the batch input format: a room configuration block
// (a count followed by that many number/capacity/rate triples, separated by
// any whitespace) and then one event per line.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/iliyamo/hotel-occupancy/internal/model"
)

const maxLineBytes = 1 << 20

var (
	// ErrInvalidConfig is returned when the configuration block holds a
	// token that is not an integer or a negative room count.
	ErrInvalidConfig = errors.New("invalid room configuration")
	// ErrTruncatedConfig is returned when the input ends before the
	// announced number of rooms has been read.
	ErrTruncatedConfig = errors.New("truncated room configuration")
)

// Line is one non-blank event line with its 1-based position in the input.
type Line struct {
	Number int
	Text   string
	Fields []string
}

// Reader walks a batch input. Rooms must be called once before Next.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Reader{sc: sc}
}

// Rooms reads the configuration block. Tokens may span several lines; the
// remainder of the line holding the last token is discarded.
func (r *Reader) Rooms() ([]model.RoomConfig, error) {
	var (
		want   = -1
		tokens []int
	)
	for want < 0 || len(tokens) < 3*want {
		if !r.sc.Scan() {
			if err := r.sc.Err(); err != nil {
				return nil, fmt.Errorf("read configuration: %w", err)
			}
			if want < 0 {
				return nil, fmt.Errorf("%w: missing room count", ErrTruncatedConfig)
			}
			return nil, fmt.Errorf("%w: want %d rooms, got %d values", ErrTruncatedConfig, want, len(tokens))
		}
		r.line++
		for _, f := range strings.Fields(r.sc.Text()) {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not an integer", ErrInvalidConfig, r.line, f)
			}
			if want < 0 {
				if n < 0 {
					return nil, fmt.Errorf("%w: negative room count %d", ErrInvalidConfig, n)
				}
				want = n
			} else {
				tokens = append(tokens, n)
			}
			if want >= 0 && len(tokens) == 3*want {
				break
			}
		}
	}

	out := make([]model.RoomConfig, 0, want)
	for i := 0; i < want; i++ {
		out = append(out, model.RoomConfig{
			Number:      tokens[3*i],
			Capacity:    tokens[3*i+1],
			WeekdayRate: tokens[3*i+2],
		})
	}
	return out, nil
}

// Next returns the next non-blank line. It returns false at end of input or
// on a read error; check Err afterwards.
func (r *Reader) Next() (Line, bool) {
	for r.sc.Scan() {
		r.line++
		text := r.sc.Text()
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		return Line{Number: r.line, Text: strings.TrimSpace(text), Fields: fields}, true
	}
	return Line{}, false
}

func (r *Reader) Err() error { return r.sc.Err() }

// ReadRoomsFile reads only the configuration block of the file at path.
// Anything after the block is ignored.
func ReadRoomsFile(path string) ([]model.RoomConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rooms file: %w", err)
	}
	defer f.Close()
	return NewReader(f).Rooms()
}
