package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/tables のHTTP（QR読み取りの記録）
type TableHandler struct {
	uc *usecase.TableUsecase
}

func NewTableHandler(uc *usecase.TableUsecase) *TableHandler {
	return &TableHandler{uc: uc}
}

func (h *TableHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/tables/:id/scan", h.scan)
}

func (h *TableHandler) scan(c echo.Context) error {
	out, err := h.uc.Scan(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
