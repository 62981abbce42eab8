package system

import (
	"time"

	"wavesurvival/internal/component"
	"wavesurvival/internal/config"
	"wavesurvival/internal/entity"
	"wavesurvival/internal/event"
	"wavesurvival/internal/input"
	"wavesurvival/internal/types"
)

// FirePolicy limits how often the weapon fires. A zero Cooldown fires once
// per trigger without limit.
type FirePolicy struct {
	Cooldown time.Duration
}

// WeaponSystem turns fire triggers into bullets.
type WeaponSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	settings        config.Settings
	policy          FirePolicy
	clock           time.Duration
	lastShot        time.Duration
	hasShot         bool
}

func NewWeaponSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, settings config.Settings) *WeaponSystem {
	return &WeaponSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		settings:        settings,
		policy:          FirePolicy{Cooldown: settings.FireCooldown()},
	}
}

// SetPolicy replaces the fire-rate policy.
func (s *WeaponSystem) SetPolicy(p FirePolicy) {
	s.policy = p
}

// Update advances the cooldown clock by dt and fires if triggered and
// allowed. It returns the new bullet id, or zero.
func (s *WeaponSystem) Update(dt time.Duration, fire bool) types.EntityID {
	s.clock += dt
	if !fire {
		return 0
	}
	if s.hasShot && s.policy.Cooldown > 0 && s.clock-s.lastShot < s.policy.Cooldown {
		return 0
	}
	id := s.Fire()
	if id != 0 {
		s.lastShot = s.clock
		s.hasShot = true
	}
	return id
}

// Fire spawns one bullet at the player's muzzle along the current facing,
// ignoring the policy.
func (s *WeaponSystem) Fire() types.EntityID {
	pos, body, player, ok := s.ecs.Player()
	if !ok {
		return 0
	}

	center := (body.Size - s.settings.BulletSize) / 2
	dx, dy := player.Facing.Vector()
	x := pos.X + center + dx*s.settings.MuzzleOffset
	y := pos.Y + center + dy*s.settings.MuzzleOffset

	return s.SpawnBullet(x, y, player.Facing)
}

// SpawnBullet creates a bullet at (x, y) flying towards dir.
func (s *WeaponSystem) SpawnBullet(x, y float64, dir input.Direction) types.EntityID {
	dx, dy := dir.Vector()

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Bodies[id] = &component.Body{Size: s.settings.BulletSize}
	s.ecs.Bullets[id] = &component.Bullet{DirX: dx, DirY: dy, Speed: s.settings.BulletSpeed}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     config.BulletColor,
		HasStroke: true,
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.BulletFired, Data: id})
	return id
}
