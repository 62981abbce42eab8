// internal/system/wave.go
package system

import (
	"log"
	"time"

	"wavesurvival/internal/component"
	"wavesurvival/internal/entity"
	"wavesurvival/internal/event"
	"wavesurvival/internal/utils"
)

// WaveSystem advances waves. When a wave is cleared it waits for the
// configured delay, then spawns the next one.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	scheduler       *utils.Scheduler
	spawner         *SpawnSystem
	delay           time.Duration
	pending         *utils.Timer
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, scheduler *utils.Scheduler, spawner *SpawnSystem, delay time.Duration) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		scheduler:       scheduler,
		spawner:         spawner,
		delay:           delay,
	}
	eventDispatcher.Subscribe(event.EnemyDestroyed, ws)
	return ws
}

// StartWave begins wave n immediately.
func (s *WaveSystem) StartWave(n int) {
	wave := s.ecs.Wave
	wave.Number = n
	wave.Phase = component.InWave
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: n})
	spawned := s.spawner.SpawnWave(n)
	log.Printf("Wave %d started with %d enemies", n, spawned)
}

// Update moves to Transitioning once the wave is cleared. Only one deferred
// advance is ever pending.
func (s *WaveSystem) Update() {
	wave := s.ecs.Wave
	if wave.Phase != component.InWave {
		return
	}
	if wave.Remaining != 0 || len(s.ecs.Enemies) != 0 {
		return
	}

	wave.Phase = component.Transitioning
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: wave.Number})
	s.pending = s.scheduler.After(s.delay, s.advance)
}

func (s *WaveSystem) advance() {
	s.pending = nil
	s.StartWave(s.ecs.Wave.Number + 1)
}

// Reset cancels a pending advance.
func (s *WaveSystem) Reset() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.ecs.Wave.Remaining = 0
	s.ecs.Wave.Phase = component.InWave
}

func (s *WaveSystem) OnEvent(e event.Event) {
	if e.Type == event.EnemyDestroyed && s.ecs.Wave.Remaining > 0 {
		s.ecs.Wave.Remaining--
	}
}
