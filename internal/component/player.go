// internal/component/player.go
package component

import "wavesurvival/internal/input"

// Player is the avatar controlled by the Input sampler.
type Player struct {
	Facing input.Direction // Last applied movement direction, used for aiming
	Speed  float64         // Units per tick
}
