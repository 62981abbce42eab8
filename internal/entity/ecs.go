// internal/entity/ecs.go
package entity

import (
	"slices"

	"wavesurvival/internal/component"
	"wavesurvival/internal/types"
)

// ECS stores every component of one game session keyed by entity id.
type ECS struct {
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Bodies      map[types.EntityID]*component.Body
	Renderables map[types.EntityID]*component.Renderable
	Bullets     map[types.EntityID]*component.Bullet
	Enemies     map[types.EntityID]*component.Enemy
	Players     map[types.EntityID]*component.Player
	PlayerID    types.EntityID
	Wave        *component.Wave
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Bodies:      make(map[types.EntityID]*component.Body),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Bullets:     make(map[types.EntityID]*component.Bullet),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Players:     make(map[types.EntityID]*component.Player),
		Wave: &component.Wave{
			Phase: component.InWave,
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity drops every component of id. Removing the player is refused.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	if id == ecs.PlayerID {
		return
	}
	delete(ecs.Positions, id)
	delete(ecs.Bodies, id)
	delete(ecs.Renderables, id)
	delete(ecs.Bullets, id)
	delete(ecs.Enemies, id)
}

// Player returns the player components. ok is false before the player exists.
func (ecs *ECS) Player() (pos *component.Position, body *component.Body, player *component.Player, ok bool) {
	player, ok = ecs.Players[ecs.PlayerID]
	if !ok {
		return nil, nil, nil, false
	}
	return ecs.Positions[ecs.PlayerID], ecs.Bodies[ecs.PlayerID], player, true
}

// BulletIDs returns live bullet ids in creation order.
func (ecs *ECS) BulletIDs() []types.EntityID {
	return sortedKeys(ecs.Bullets)
}

// EnemyIDs returns live enemy ids in creation order.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	return sortedKeys(ecs.Enemies)
}

func sortedKeys[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Clear removes every entity except the player.
func (ecs *ECS) Clear() {
	for id := range ecs.Bullets {
		ecs.RemoveEntity(id)
	}
	for id := range ecs.Enemies {
		ecs.RemoveEntity(id)
	}
}
