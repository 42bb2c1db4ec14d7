package main

import (
	"attendance-lab/internal"
	"attendance-lab/projection"
	"attendance-lab/roster"
	"attendance-lab/services"
	"attendance-lab/sink"
	"attendance-lab/ui"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the roster behind the terminal console and blocks until the user
// quits, stdin closes, or the process is interrupted.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Roster
	opts, err := config.RosterOptions()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	store := roster.New(opts...)

	// 3. Service & sinks
	feed := projection.NewActivityFeed(config.FeedSize)
	service := services.NewRosterService(store, log, sink.NewLogSink(log), feed)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Console
	console := ui.NewConsole(service, feed, os.Stdout, config.Title, config.Colours)
	log.Debug("Console started", "id_strategy", config.IDStrategy, "strict_edits", config.StrictEdits)
	if err := console.Run(ctx, os.Stdin); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	summary := service.Summary()
	log.Info("Session closed", "present", summary.Present, "total", summary.Total)
	return nil
}
