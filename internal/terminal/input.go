package terminal

import (
	"time"

	"wavesurvival/internal/input"

	"github.com/gdamore/tcell/v2"
)

// HoldWindow is how long a key counts as held after its last press event.
// Terminals send repeats while a key is down but never a release.
const HoldWindow = 150 * time.Millisecond

// KeySampler turns tcell key events into an input.Sampler.
type KeySampler struct {
	now       func() time.Time
	lastPress map[input.Direction]time.Time
	fire      bool
	pause     bool
	reset     bool
}

func NewKeySampler(now func() time.Time) *KeySampler {
	if now == nil {
		now = time.Now
	}
	return &KeySampler{
		now:       now,
		lastPress: make(map[input.Direction]time.Time),
	}
}

// HandleEvent records ev. It returns false when the player asked to quit.
func (k *KeySampler) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}
	return k.handleKey(key.Key(), key.Rune())
}

func (k *KeySampler) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		k.press(input.Up)
	case tcell.KeyDown:
		k.press(input.Down)
	case tcell.KeyLeft:
		k.press(input.Left)
	case tcell.KeyRight:
		k.press(input.Right)
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			k.press(input.Up)
		case 's', 'S':
			k.press(input.Down)
		case 'a', 'A':
			k.press(input.Left)
		case 'd', 'D':
			k.press(input.Right)
		case 'e', 'E', ' ':
			k.fire = true
		case 'p', 'P':
			k.pause = true
		case 'r', 'R':
			k.reset = true
		case 'q', 'Q':
			return false
		}
	}
	return true
}

func (k *KeySampler) press(d input.Direction) {
	k.lastPress[d] = k.now()
}

func (k *KeySampler) Held(d input.Direction) bool {
	last, ok := k.lastPress[d]
	return ok && k.now().Sub(last) < HoldWindow
}

func (k *KeySampler) FirePressed() bool {
	return k.fire
}

func (k *KeySampler) PausePressed() bool {
	return k.pause
}

// ResetPressed reports a pending reset request and clears it.
func (k *KeySampler) ResetPressed() bool {
	r := k.reset
	k.reset = false
	return r
}

// Advance clears the one-shot triggers after a tick consumed them.
func (k *KeySampler) Advance() {
	k.fire = false
	k.pause = false
}
