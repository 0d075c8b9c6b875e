package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/mutker/hwtriage/internal/assess"
	"codeberg.org/mutker/hwtriage/internal/config"
	"codeberg.org/mutker/hwtriage/internal/hwinfo"
	"codeberg.org/mutker/hwtriage/internal/logger"
	"codeberg.org/mutker/hwtriage/internal/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogLevel, logger.IsService()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	elevated := cfg.AssumeElevated || os.Geteuid() == 0
	if !elevated {
		logger.Info().Msg("Running without elevation; disk and battery detail may be unavailable")
	}

	provider := hwinfo.New(hwinfo.Config{Elevated: elevated})
	engine := assess.NewEngine(provider, time.Duration(cfg.ProbeTimeout)*time.Second)

	report := engine.Run(ctx)

	renderer := render.New(os.Stdout, cfg.NoColor)
	if err := renderer.Render(report); err != nil {
		logger.Fatal().Err(err).Msg("failed to render report")
	}
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}
