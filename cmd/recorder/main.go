package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samvad-hq/upbit-quotation/internal/app"
	"github.com/samvad-hq/upbit-quotation/internal/config"
	"github.com/samvad-hq/upbit-quotation/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "recorder start failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.InfoObj("recorder starting", "config", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	recorder, err := app.NewRecorder(ctx, cfg, log)
	if err != nil {
		logger.ErrorObj("failed to initialize recorder", "error", err.Error())
		return err
	}

	if err := recorder.Run(ctx); err != nil {
		return fmt.Errorf("recorder run: %w", err)
	}

	return nil
}
