package handler

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/hotel-occupancy/internal/input"
	"github.com/iliyamo/hotel-occupancy/internal/repository"
	"github.com/iliyamo/hotel-occupancy/internal/service"
)

// defaultMaxUploadBytes bounds a batch input accepted over HTTP.
const defaultMaxUploadBytes = 8 << 20

var allowedExtensions = map[string]bool{".txt": true, ".in": true, ".csv": true}

// RunHandler executes uploaded batch inputs. Every run uses its own fresh
// registry and never touches the live front-desk state.
type RunHandler struct {
	log      *zap.Logger
	maxBytes int64
}

func NewRunHandler(log *zap.Logger) *RunHandler {
	return &RunHandler{log: log, maxBytes: defaultMaxUploadBytes}
}

type runResp struct {
	service.Summary
	Lines []string `json:"lines"`
}

// Create runs the input sent as multipart field "file" or as a raw body.
func (h *RunHandler) Create(c echo.Context) error {
	var src []byte
	var err error
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		src, err = h.readUpload(c)
	} else {
		src, err = readLimited(c.Request().Body, h.maxBytes)
		if err == nil && len(bytes.TrimSpace(src)) == 0 {
			err = errNoFile
		}
	}
	if errors.Is(err, errTooLarge) {
		return c.JSON(http.StatusRequestEntityTooLarge, echo.Map{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	var out bytes.Buffer
	sum, err := service.RunBatch(c.Request().Context(), bytes.NewReader(src), &out, h.log)
	if err != nil {
		if errors.Is(err, input.ErrInvalidConfig) || errors.Is(err, input.ErrTruncatedConfig) ||
			errors.Is(err, repository.ErrInvalidRoomConfig) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error(), "run_id": sum.RunID})
		}
		h.log.Error("batch run failed", zap.String("run_id", sum.RunID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "run failed", "run_id": sum.RunID})
	}

	lines := []string{}
	if s := strings.TrimRight(out.String(), "\n"); s != "" {
		lines = strings.Split(s, "\n")
	}
	return c.JSON(http.StatusOK, runResp{Summary: sum, Lines: lines})
}

var (
	errNoFile      = errors.New("no file uploaded")
	errNoSelected  = errors.New("no selected file")
	errUnsupported = errors.New("unsupported file type (allowed: .txt, .in, .csv)")
	errUnreadable  = errors.New("unreadable upload")
	errTooLarge    = errors.New("input too large")
)

func (h *RunHandler) readUpload(c echo.Context) ([]byte, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		// A part named "file" without a filename is parsed as a plain value.
		if errors.Is(err, http.ErrMissingFile) {
			if form := c.Request().MultipartForm; form != nil {
				if _, ok := form.Value["file"]; ok {
					return nil, errNoSelected
				}
			}
		}
		return nil, errNoFile
	}
	if fh.Filename == "" {
		return nil, errNoSelected
	}
	if !allowedExtensions[strings.ToLower(filepath.Ext(fh.Filename))] {
		return nil, errUnsupported
	}
	if fh.Size > h.maxBytes {
		return nil, errTooLarge
	}
	return readPart(fh, h.maxBytes)
}

func readPart(fh *multipart.FileHeader, limit int64) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, errUnreadable
	}
	defer f.Close()
	return readLimited(f, limit)
}

// readLimited reads all of r, failing with errTooLarge past limit bytes
// instead of truncating.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, errUnreadable
	}
	if int64(len(b)) > limit {
		return nil, errTooLarge
	}
	return b, nil
}
