package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/hotel-occupancy/internal/clock"
	"github.com/iliyamo/hotel-occupancy/internal/model"
	"github.com/iliyamo/hotel-occupancy/internal/occupancy"
	"github.com/iliyamo/hotel-occupancy/internal/render"
	"github.com/iliyamo/hotel-occupancy/internal/repository"
	"github.com/iliyamo/hotel-occupancy/internal/service"
)

// FrontDeskHandler serves the live registry. All access to the registry goes
// through mu so events are applied one at a time.
type FrontDeskHandler struct {
	mu  sync.Mutex
	d   *service.Dispatcher
	log *zap.Logger
}

func NewFrontDeskHandler(d *service.Dispatcher, log *zap.Logger) *FrontDeskHandler {
	return &FrontDeskHandler{d: d, log: log}
}

type roomView struct {
	Number             int               `json:"number"`
	Capacity           int               `json:"capacity"`
	WeekdayRate        int               `json:"weekday_rate"`
	Status             model.RoomStatus  `json:"status"`
	EffectiveStatus    *model.RoomStatus `json:"effective_status,omitempty"`
	GuestID            string            `json:"guest_id,omitempty"`
	Adults             int               `json:"adults,omitempty"`
	Children           int               `json:"children,omitempty"`
	Nights             int               `json:"nights,omitempty"`
	CleaningCompletion *clock.Timestamp  `json:"cleaning_completion,omitempty"`
}

func toRoomView(r model.Room, at *clock.Timestamp) roomView {
	v := roomView{
		Number:      r.Number,
		Capacity:    r.Capacity,
		WeekdayRate: r.WeekdayRate,
		Status:      r.Status,
	}
	switch r.Status {
	case model.StatusOccupied:
		v.GuestID = r.GuestID
		v.Adults, v.Children, v.Nights = r.Adults, r.Children, r.OccupiedNights
	case model.StatusCleaning:
		done := r.CleaningCompletion
		v.CleaningCompletion = &done
	}
	if at != nil {
		eff := occupancy.EffectiveStatus(r, *at)
		v.EffectiveStatus = &eff
	}
	return v
}

// parseAt reads the optional ?at= timestamp.
func parseAt(c echo.Context) (*clock.Timestamp, error) {
	raw := c.QueryParam("at")
	if raw == "" {
		return nil, nil
	}
	ts, err := clock.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

// ListRooms returns every registered room ordered by number.
func (h *FrontDeskHandler) ListRooms(c echo.Context) error {
	at, err := parseAt(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid at timestamp"})
	}
	h.mu.Lock()
	rooms := h.d.Rooms().All()
	h.mu.Unlock()

	out := make([]roomView, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, toRoomView(r, at))
	}
	return c.JSON(http.StatusOK, out)
}

// GetRoom returns one room.
func (h *FrontDeskHandler) GetRoom(c echo.Context) error {
	n, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room number"})
	}
	at, err := parseAt(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid at timestamp"})
	}
	h.mu.Lock()
	room, err := h.d.Rooms().Get(n)
	h.mu.Unlock()
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	}
	return c.JSON(http.StatusOK, toRoomView(room, at))
}

type eventReq struct {
	Line string `json:"line"`
}

type eventResp struct {
	OK                 bool             `json:"ok"`
	Command            string           `json:"command"`
	Room               int              `json:"room"`
	GuestID            string           `json:"guest_id,omitempty"`
	Error              string           `json:"error,omitempty"`
	Charge             int              `json:"charge,omitempty"`
	CleaningCompletion *clock.Timestamp `json:"cleaning_completion,omitempty"`
	Lines              []string         `json:"lines"`
}

// PostEvent applies a single event line to the live registry. Rejected
// events answer 409, events for unregistered rooms 404.
func (h *FrontDeskHandler) PostEvent(c echo.Context) error {
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	fields := strings.Fields(req.Line)
	if len(fields) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "line required"})
	}
	cmd, err := service.ParseCommand(fields)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	h.mu.Lock()
	res := h.d.Dispatch(c.Request().Context(), cmd)
	h.mu.Unlock()

	resp := eventResp{
		OK:      res.OK(),
		Command: string(res.Kind),
		Room:    res.RoomNumber,
		GuestID: res.GuestID,
		Lines:   render.Lines(res),
	}
	status := http.StatusOK
	switch {
	case res.OK():
		if res.Kind == model.KindCheckOut {
			resp.Charge = res.Charge
			done := res.CleaningCompletion
			resp.CleaningCompletion = &done
		}
	case errors.Is(res.Err, repository.ErrRoomNotFound):
		resp.Error = res.Err.Error()
		status = http.StatusNotFound
	default:
		resp.Error = res.Err.Error()
		status = http.StatusConflict
	}
	h.log.Info("front desk event",
		zap.String("command", resp.Command),
		zap.Int("room", resp.Room),
		zap.Bool("ok", resp.OK),
	)
	return c.JSON(status, resp)
}
