package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/game-reviews-service/internal/config"
	"github.com/preston-bernstein/game-reviews-service/internal/logging"
	"github.com/preston-bernstein/game-reviews-service/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg, envErr := config.LoadDotEnv()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		File:    cfg.Logging.File,
		Service: "game-reviews-service",
		Version: appVersion,
	})
	if envErr != nil {
		logger.Warn("failed to read .env file", "error", envErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("server setup failed", "error", err)
		os.Exit(1)
	}
	srv.Run(ctx, stop)
}
