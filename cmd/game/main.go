// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"wavesurvival/internal/config"
	"wavesurvival/internal/state"
	"wavesurvival/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	settingsPath := flag.String("settings", "", "path to a JSON settings file")
	seed := flag.Int64("seed", 0, "spawn seed, 0 picks one from the clock")
	fireCooldown := flag.Duration("fire-cooldown", -1, "minimum time between shots, overrides settings")
	fireRepeat := flag.Int("fire-repeat", 0, "ticks between shots while the fire key is held, 0 disables")
	flag.Parse()

	settings := config.DefaultSettings()
	if *settingsPath != "" {
		loaded, err := config.LoadSettings(*settingsPath)
		if err != nil {
			log.Fatal(err)
		}
		settings = loaded
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	if *fireCooldown >= 0 {
		settings.FireCooldownMS = int(*fireCooldown / time.Millisecond)
	}

	keyboard := ui.NewKeyboard()
	keyboard.Repeat = *fireRepeat

	sm := state.NewStateMachine()
	sm.SetState(state.NewPlayState(sm, settings, keyboard))
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          int(settings.ArenaWidth),
		height:         int(settings.ArenaHeight),
	}
	ebiten.SetWindowSize(app.width, app.height)
	ebiten.SetWindowTitle("Wave Survival")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
