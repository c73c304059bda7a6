package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/esigns/signbot/internal/bot"
	_ "github.com/esigns/signbot/internal/modules/fansign"
	_ "github.com/esigns/signbot/internal/modules/keys"
	_ "github.com/esigns/signbot/internal/modules/link"
	_ "github.com/esigns/signbot/internal/modules/privateroom"
)

// version is set at build time via ldflags:
// go build -ldflags "-X main.version=1.0.0" ./cmd/signbot
var version = "dev"

func main() {
	// Configure JSON logging until the configured level is known
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// Load configuration
	cfg, err := bot.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))
	slog.Info("starting signbot", "version", version)

	// Create the bot with every registered module
	b := bot.NewBot(cfg)
	b.LoadModules()

	// Start bot
	if err := b.Start(); err != nil {
		slog.Error("failed to start bot", "error", err)
		os.Exit(1)
	}

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("received termination signal, shutting down")
	if err := b.Stop(); err != nil {
		slog.Error("failed to shutdown", "error", err)
	}

	slog.Info("completed bot shutdown")
	os.Exit(0)
}
