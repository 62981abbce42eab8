// internal/system/projectile.go
package system

import (
	"wavesurvival/internal/config"
	"wavesurvival/internal/entity"
	"wavesurvival/internal/event"
	"wavesurvival/internal/types"
)

// ProjectileSystem moves bullets and expires the ones that left the arena.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	settings        config.Settings
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, settings config.Settings) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		settings:        settings,
	}
}

// Update returns the ids of expired bullets.
func (s *ProjectileSystem) Update() []types.EntityID {
	var expired []types.EntityID
	for _, id := range s.ecs.BulletIDs() {
		bullet := s.ecs.Bullets[id]
		pos := s.ecs.Positions[id]
		if pos == nil {
			expired = append(expired, id)
			continue
		}

		pos.X += bullet.DirX * bullet.Speed
		pos.Y += bullet.DirY * bullet.Speed

		margin := s.settings.BulletSize
		if body, ok := s.ecs.Bodies[id]; ok {
			margin = body.Size
		}
		if s.outOfArena(pos.X, pos.Y, margin) {
			expired = append(expired, id)
		}
	}

	for _, id := range expired {
		s.removeProjectile(id)
	}
	return expired
}

func (s *ProjectileSystem) outOfArena(x, y, margin float64) bool {
	return x < -margin || y < -margin ||
		x > s.settings.ArenaWidth+margin || y > s.settings.ArenaHeight+margin
}

func (s *ProjectileSystem) removeProjectile(id types.EntityID) {
	s.ecs.RemoveEntity(id)
	s.eventDispatcher.Dispatch(event.Event{Type: event.BulletExpired, Data: id})
}
