package system

import (
	"wavesurvival/internal/component"
	"wavesurvival/internal/config"
	"wavesurvival/internal/entity"
	"wavesurvival/internal/event"
	"wavesurvival/internal/types"
	"wavesurvival/internal/utils"
)

// Edge is an arena side enemies spawn behind.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// SpawnSystem places new enemies just outside the arena.
type SpawnSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	settings        config.Settings
}

func NewSpawnSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, settings config.Settings) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		settings:        settings,
	}
}

// SpawnWave spawns the enemies of wave w and returns how many were added.
func (s *SpawnSystem) SpawnWave(w int) int {
	count := s.settings.EnemiesPerWave * w
	for i := 0; i < count; i++ {
		s.spawnEnemy(w)
	}
	return count
}

func (s *SpawnSystem) spawnEnemy(w int) types.EntityID {
	x, y := s.spawnPoint(Edge(s.rng.Intn(4)))

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Bodies[id] = &component.Body{Size: s.settings.EnemySize}
	s.ecs.Enemies[id] = &component.Enemy{Speed: s.settings.EnemySpeed, Wave: w}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.EnemyColor}
	s.ecs.Wave.Remaining++

	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
	return id
}

// spawnPoint returns a position one enemy size beyond the given edge, at a
// uniform offset along it.
func (s *SpawnSystem) spawnPoint(edge Edge) (float64, float64) {
	w, h, size := s.settings.ArenaWidth, s.settings.ArenaHeight, s.settings.EnemySize
	switch edge {
	case EdgeTop:
		return s.rng.Range(0, w), -size
	case EdgeRight:
		return w + size, s.rng.Range(0, h)
	case EdgeBottom:
		return s.rng.Range(0, w), h + size
	default:
		return -size, s.rng.Range(0, h)
	}
}
