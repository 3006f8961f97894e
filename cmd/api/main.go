package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"app/internal/catalog"
	"app/internal/config"
	"app/internal/handler"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	// .envが無くても起動する（デプロイ環境では実環境変数を使う）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// メニューは起動時に1回だけ構築する（画像を増やしたら再起動）
	overrides := catalog.LoadOverrides(cfg.MenuJSON, logger)
	cat := catalog.Build(cfg.MenuRoot, overrides, logger)

	// Repository（メモリ実装）生成
	orderRepo := infraRepo.NewOrderMemoryRepository()
	scanRepo := infraRepo.NewTableScanMemoryRepository()

	// usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	// Usecase生成
	menuUC := usecase.NewMenuUsecase(cat)
	orderUC := usecase.NewOrderUsecase(orderRepo, idGen, clock)
	tableUC := usecase.NewTableUsecase(scanRepo, clock)

	// Server組み立て
	srv := server.New(logger, cfg.StaticDir, server.Handlers{
		Menu:   handler.NewMenuHandler(menuUC),
		Order:  handler.NewOrderHandler(orderUC),
		Table:  handler.NewTableHandler(tableUC),
		Health: handler.NewHealthHandler(clock),
	})

	go func() {
		logger.Info("order api starting",
			zap.String("port", cfg.Port),
			zap.Int("menu_items", cat.Len()))
		if err := srv.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	logger.Info("order api stopped")
}
