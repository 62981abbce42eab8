package terminal

import (
	"context"
	"log"
	"time"

	"wavesurvival/internal/app"
	"wavesurvival/internal/config"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// TickInterval is the frame period of the terminal frontend.
const TickInterval = 16 * time.Millisecond

// Run plays a session on screen until the player quits or ctx ends. The
// screen is finalized before Run returns.
//
// Events are pumped on their own goroutine; the simulation itself only runs
// on the loop goroutine.
func Run(ctx context.Context, screen tcell.Screen, settings config.Settings) error {
	view := NewView(screen, settings.ArenaWidth, settings.ArenaHeight)
	game := app.NewGame(settings, view)
	sampler := NewKeySampler(nil)

	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 100)

	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer screen.Fini()
		return loop(ctx, game, view, sampler, events)
	})

	return g.Wait()
}

func loop(ctx context.Context, game *app.Game, view *View, sampler *KeySampler, events <-chan tcell.Event) error {
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	paused := false
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if !sampler.HandleEvent(ev) {
				log.Printf("Session %s quit at wave %d", game.ID, game.ECS.Wave.Number)
				return nil
			}

		case now := <-ticker.C:
			deltaTime := now.Sub(last).Seconds()
			if deltaTime > config.MaxDeltaTime {
				deltaTime = config.MaxDeltaTime
			}
			last = now

			if sampler.ResetPressed() {
				game.Reset()
			}
			if sampler.PausePressed() {
				paused = !paused
				view.SetPaused(paused)
			}
			if paused {
				sampler.Advance()
			} else {
				game.Update(deltaTime, sampler)
			}
			view.Draw(game.Snapshot())
		}
	}
}
