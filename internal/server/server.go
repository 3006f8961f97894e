package server

import (
	"context"

	appmw "app/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Server はechoの組み立てと起動・停止を受け持つ。
type Server struct {
	e *echo.Echo
}

type Handlers struct {
	Menu   RouteRegistrar
	Order  RouteRegistrar
	Table  RouteRegistrar
	Health RouteRegistrar
}

type RouteRegistrar interface {
	RegisterRoutes(e *echo.Echo)
}

// New はミドルウェアとルートを組み立てる。
// staticDir が空でなければ /images 以下で画像を配信する
// （カタログの image パスと1:1に対応する）。
func New(logger *zap.Logger, staticDir string, h Handlers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// ハンドラ内のpanicは500へ落とし、プロセスは殺さない
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(appmw.RequestLogger(logger))

	if staticDir != "" {
		e.Static("/images", staticDir)
	}

	RegisterRoutes(e, h)

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

// Echo はテストからルータへ直接アクセスするために公開する。
func (s *Server) Echo() *echo.Echo {
	return s.e
}
