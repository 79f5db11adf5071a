package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iliyamo/hotel-occupancy/internal/input"
	"github.com/iliyamo/hotel-occupancy/internal/render"
	"github.com/iliyamo/hotel-occupancy/internal/repository"
)

// Summary counts what happened during one batch run.
type Summary struct {
	RunID   string `json:"run_id"`
	Rooms   int    `json:"rooms"`
	Events  int    `json:"events"`
	Failed  int    `json:"failed"`
	Skipped int    `json:"skipped"`
}

// RunBatch reads a complete batch input from in, applies every event in input
// order against a fresh registry and writes the rendered lines to out. Lines
// that cannot be parsed are logged and skipped. An error is returned only for
// an unusable configuration block or an I/O failure.
func RunBatch(ctx context.Context, in io.Reader, out io.Writer, log *zap.Logger, opts ...Option) (Summary, error) {
	sum := Summary{RunID: uuid.NewString()}
	log = log.With(zap.String("run_id", sum.RunID))

	r := input.NewReader(in)
	configs, err := r.Rooms()
	if err != nil {
		return sum, err
	}
	rooms := repository.NewRoomRegistry()
	if err := rooms.Register(configs...); err != nil {
		return sum, err
	}
	sum.Rooms = rooms.Len()

	d := NewDispatcher(rooms, log, opts...)
	for {
		line, ok := r.Next()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		cmd, err := ParseCommand(line.Fields)
		if err != nil {
			sum.Skipped++
			lvl := log.Warn
			if errors.Is(err, ErrUnknownCommand) {
				lvl = log.Info
			}
			lvl("skipping event line", zap.Int("line", line.Number), zap.String("text", line.Text), zap.Error(err))
			continue
		}

		res := d.Dispatch(ctx, cmd)
		sum.Events++
		if !res.OK() {
			sum.Failed++
		}
		for _, l := range render.Lines(res) {
			if _, err := fmt.Fprintln(out, l); err != nil {
				return sum, fmt.Errorf("write result: %w", err)
			}
		}
	}
	if err := r.Err(); err != nil {
		return sum, fmt.Errorf("read events: %w", err)
	}
	log.Info("batch run finished",
		zap.Int("rooms", sum.Rooms),
		zap.Int("events", sum.Events),
		zap.Int("failed", sum.Failed),
		zap.Int("skipped", sum.Skipped),
	)
	return sum, nil
}
