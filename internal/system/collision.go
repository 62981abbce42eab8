package system

import (
	"wavesurvival/internal/entity"
	"wavesurvival/internal/event"
	"wavesurvival/internal/types"
	"wavesurvival/internal/utils"
)

// CollisionSystem resolves bullet and enemy hits.
type CollisionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update tests every bullet against every enemy. A bullet destroys at most
// one enemy per tick and a destroyed enemy is not tested again. Removal
// happens after the scan.
func (s *CollisionSystem) Update() []event.Hit {
	var hits []event.Hit
	dead := make(map[types.EntityID]bool)
	enemies := s.ecs.EnemyIDs()

	for _, bulletID := range s.ecs.BulletIDs() {
		bMinX, bMinY, bMaxX, bMaxY, ok := s.rect(bulletID)
		if !ok {
			continue
		}
		for _, enemyID := range enemies {
			if dead[enemyID] {
				continue
			}
			eMinX, eMinY, eMaxX, eMaxY, ok := s.rect(enemyID)
			if !ok {
				continue
			}
			if utils.Overlaps(bMinX, bMinY, bMaxX, bMaxY, eMinX, eMinY, eMaxX, eMaxY) {
				dead[enemyID] = true
				hits = append(hits, event.Hit{Bullet: bulletID, Enemy: enemyID})
				break
			}
		}
	}

	for _, hit := range hits {
		s.ecs.RemoveEntity(hit.Bullet)
		s.ecs.RemoveEntity(hit.Enemy)
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: hit})
	}
	return hits
}

func (s *CollisionSystem) rect(id types.EntityID) (minX, minY, maxX, maxY float64, ok bool) {
	pos, hasPos := s.ecs.Positions[id]
	body, hasBody := s.ecs.Bodies[id]
	if !hasPos || !hasBody {
		return 0, 0, 0, 0, false
	}
	minX, minY, maxX, maxY = body.Rect(*pos)
	return minX, minY, maxX, maxY, true
}
