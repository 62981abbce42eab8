package ui

import (
	"wavesurvival/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var movementKeys = map[input.Direction][]ebiten.Key{
	input.Up:    {ebiten.KeyW, ebiten.KeyArrowUp},
	input.Down:  {ebiten.KeyS, ebiten.KeyArrowDown},
	input.Left:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	input.Right: {ebiten.KeyD, ebiten.KeyArrowRight},
}

var fireKeys = []ebiten.Key{ebiten.KeyE, ebiten.KeySpace}

var _ input.Sampler = (*Keyboard)(nil)

// Keyboard samples ebiten's keyboard state. WASD or arrows move, E or Space
// fire, P pauses.
//
// With Repeat set, holding a fire key produces a trigger every Repeat ticks
// after the first one, the way a host key-repeat would.
type Keyboard struct {
	Repeat int
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) Held(d input.Direction) bool {
	for _, key := range movementKeys[d] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func (k *Keyboard) FirePressed() bool {
	for _, key := range fireKeys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
		if k.Repeat > 0 {
			if d := inpututil.KeyPressDuration(key); d > 1 && d%k.Repeat == 0 {
				return true
			}
		}
	}
	return false
}

func (k *Keyboard) PausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP)
}
