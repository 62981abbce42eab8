package system

import (
	"wavesurvival/internal/component"
	"wavesurvival/internal/config"
	"wavesurvival/internal/entity"
	"wavesurvival/internal/event"
	"wavesurvival/internal/types"
	"wavesurvival/internal/utils"
)

type world struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	settings   config.Settings
	scheduler  *utils.Scheduler
	spawner    *SpawnSystem
	waves      *WaveSystem
}

func newWorld() *world {
	settings := config.DefaultSettings()
	settings.Seed = 1
	w := &world{
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		settings:   settings,
		scheduler:  utils.NewScheduler(),
	}
	w.spawner = NewSpawnSystem(w.ecs, w.dispatcher, utils.NewPRNGService(settings.Seed), settings)
	w.waves = NewWaveSystem(w.ecs, w.dispatcher, w.scheduler, w.spawner, settings.WaveDelay())
	return w
}

func (w *world) addPlayer(x, y float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.PlayerID = id
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Bodies[id] = &component.Body{Size: w.settings.PlayerSize}
	w.ecs.Players[id] = &component.Player{Speed: w.settings.PlayerSpeed}
	return id
}

// addEnemy places an enemy and counts it as remaining, as the spawner does.
func (w *world) addEnemy(x, y float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Bodies[id] = &component.Body{Size: w.settings.EnemySize}
	w.ecs.Enemies[id] = &component.Enemy{Speed: w.settings.EnemySpeed, Wave: 1}
	w.ecs.Wave.Remaining++
	return id
}

func (w *world) addBullet(x, y, dx, dy float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Bodies[id] = &component.Body{Size: w.settings.BulletSize}
	w.ecs.Bullets[id] = &component.Bullet{DirX: dx, DirY: dy, Speed: w.settings.BulletSpeed}
	return id
}

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}
