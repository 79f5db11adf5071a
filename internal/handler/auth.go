package handler

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/hotel-occupancy/internal/config"
	"github.com/iliyamo/hotel-occupancy/internal/utils"
)

// RoleFrontDesk is the only role the occupancy API issues and accepts.
const RoleFrontDesk = "FRONT_DESK"

// AuthHandler logs in the front-desk operator configured through
// OPERATOR_USER and OPERATOR_PASSWORD_HASH.
type AuthHandler struct {
	Cfg config.Config
	log *zap.Logger
}

func NewAuthHandler(cfg config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{Cfg: cfg, log: log}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type loginResp struct {
	Operator string    `json:"operator"`
	Role     string    `json:"role"`
	Access   tokenPart `json:"access"`
}

// Login verifies the operator credentials and returns an access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.Cfg.OperatorUser)) == 1
	if !userOK || !utils.VerifyPassword(h.Cfg.OperatorPasswordHash, req.Password) {
		h.log.Info("operator login rejected", zap.String("username", req.Username), zap.String("ip", c.RealIP()))
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, h.Cfg.OperatorUser, RoleFrontDesk, h.Cfg.AccessTTLMin)
	if err != nil {
		h.log.Error("issue access token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusOK, loginResp{
		Operator: h.Cfg.OperatorUser,
		Role:     RoleFrontDesk,
		Access:   tokenPart{Token: access.Token, Expires: access.Exp},
	})
}
