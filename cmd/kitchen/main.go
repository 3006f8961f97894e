package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"app/internal/client"
	"app/internal/config"
	"app/internal/kitchen"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// キッチン表示。注文APIを固定間隔でポーリングし、
// ステータス別にまとめた内容をターミナルへ描画する。
func main() {
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

	api := client.New(cfg.APIBaseURL)
	svc := kitchen.NewService(api, logger, cfg.KitchenPollInterval)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Ctrl-Cで止める
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	logger.Info("kitchen display starting",
		zap.String("api", cfg.APIBaseURL),
		zap.Duration("interval", cfg.KitchenPollInterval))

	// 同期のたびに最新ビューを描画する
	go func() {
		if err := svc.Run(ctx); err != nil {
			logger.Error("kitchen sync stopped", zap.Error(err))
		}
	}()

	ticker := time.NewTicker(cfg.KitchenPollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("kitchen display stopped")
			return
		case <-ticker.C:
			fmt.Print(svc.View().Render())
		}
	}
}
