// internal/system/player.go
package system

import (
	"wavesurvival/internal/config"
	"wavesurvival/internal/entity"
	"wavesurvival/internal/input"
	"wavesurvival/internal/utils"
)

// PlayerSystem moves the player from held movement keys.
type PlayerSystem struct {
	ecs      *entity.ECS
	settings config.Settings
}

func NewPlayerSystem(ecs *entity.ECS, settings config.Settings) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, settings: settings}
}

// Update applies every held direction at once, so diagonals move on both
// axes and opposite keys cancel out. Facing ends on the last held key in
// up, down, left, right order.
func (s *PlayerSystem) Update(in input.Sampler) {
	pos, body, player, ok := s.ecs.Player()
	if !ok {
		return
	}

	var dx, dy float64
	for _, d := range input.Directions {
		if !in.Held(d) {
			continue
		}
		vx, vy := d.Vector()
		dx += vx * player.Speed
		dy += vy * player.Speed
		player.Facing = d
	}

	pos.X = utils.Clamp(pos.X+dx, 0, s.settings.ArenaWidth-body.Size)
	pos.Y = utils.Clamp(pos.Y+dy, 0, s.settings.ArenaHeight-body.Size)
}
