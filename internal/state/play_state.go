package state

import (
	"wavesurvival/internal/app"
	"wavesurvival/internal/config"
	"wavesurvival/internal/input"
	"wavesurvival/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PlayState runs the simulation one tick per frame.
type PlayState struct {
	sm       *StateMachine
	game     *app.Game
	input    input.Sampler
	renderer *ui.Renderer
	hud      *ui.HUD
}

func NewPlayState(sm *StateMachine, settings config.Settings, in input.Sampler) *PlayState {
	hud := ui.NewHUD(config.HUDMarginX, config.HUDMarginY)
	game := app.NewGame(settings, hud)
	return &PlayState{
		sm:       sm,
		game:     game,
		input:    in,
		renderer: ui.NewRenderer(game.ECS),
		hud:      hud,
	}
}

func (s *PlayState) Game() *app.Game {
	return s.game
}

func (s *PlayState) Enter() {}

func (s *PlayState) Update(deltaTime float64) {
	if s.input.PausePressed() {
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.game.Reset()
		return
	}
	s.game.Update(deltaTime, s.input)
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	w := float32(s.game.Settings.ArenaWidth)
	h := float32(s.game.Settings.ArenaHeight)
	vector.StrokeRect(screen, 0, 0, w, h, float32(config.StrokeWidth), config.ArenaBorder, false)
	s.renderer.Draw(screen, 0, 0)
	s.hud.Draw(screen)
}

func (s *PlayState) Exit() {}
