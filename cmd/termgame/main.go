// cmd/termgame/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"wavesurvival/internal/config"
	"wavesurvival/internal/terminal"

	"github.com/gdamore/tcell/v2"
)

func run(settings config.Settings) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return terminal.Run(ctx, screen, settings)
}

func main() {
	settingsPath := flag.String("settings", "", "path to a JSON settings file")
	seed := flag.Int64("seed", 0, "spawn seed, 0 picks one from the clock")
	fireCooldown := flag.Duration("fire-cooldown", -1, "minimum time between shots, overrides settings")
	logPath := flag.String("log", "", "write logs to this file; discarded when empty")
	flag.Parse()

	// The terminal owns stdout while the game runs.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	settings := config.DefaultSettings()
	if *settingsPath != "" {
		loaded, err := config.LoadSettings(*settingsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		settings = loaded
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	if *fireCooldown >= 0 {
		settings.FireCooldownMS = int(*fireCooldown / time.Millisecond)
	}

	if err := run(settings); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
