package server

import (
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, h Handlers) {
	h.Menu.RegisterRoutes(e)
	h.Order.RegisterRoutes(e)
	h.Table.RegisterRoutes(e)
	h.Health.RegisterRoutes(e)
}
