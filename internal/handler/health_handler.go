package handler

import (
	"net/http"
	"time"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type HealthHandler struct {
	clock usecase.Clock
}

func NewHealthHandler(clock usecase.Clock) *HealthHandler {
	return &HealthHandler{clock: clock}
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.check)
}

func (h *HealthHandler) check(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "OK", Timestamp: h.clock.Now()})
}
