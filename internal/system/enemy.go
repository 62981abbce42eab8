package system

import (
	"wavesurvival/internal/entity"
	"wavesurvival/internal/utils"
)

// EnemySystem steers every enemy straight at the player.
type EnemySystem struct {
	ecs *entity.ECS
}

func NewEnemySystem(ecs *entity.ECS) *EnemySystem {
	return &EnemySystem{ecs: ecs}
}

func (s *EnemySystem) Update() {
	target, _, _, ok := s.ecs.Player()
	if !ok {
		return
	}

	for _, id := range s.ecs.EnemyIDs() {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		speed := s.ecs.Enemies[id].Speed

		nx, ny, dist := utils.Normalize(target.X-pos.X, target.Y-pos.Y)
		switch {
		case dist == 0:
			// Already on the player.
		case dist <= speed:
			pos.X = target.X
			pos.Y = target.Y
		default:
			pos.X += nx * speed
			pos.Y += ny * speed
		}
	}
}
