package handlers

import (
	"net/http"
	"time"

	"github.com/anonto42/bluo/backend/internal/clock"
	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness
type HealthHandler struct {
	clock clock.Clock
}

func NewHealthHandler(clk clock.Clock) *HealthHandler {
	return &HealthHandler{clock: clk}
}

func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": h.clock.Now().Format(time.RFC3339Nano),
	})
}
