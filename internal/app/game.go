// internal/app/game.go
package app

import (
	"log"
	"time"

	"wavesurvival/internal/component"
	"wavesurvival/internal/config"
	"wavesurvival/internal/entity"
	"wavesurvival/internal/event"
	"wavesurvival/internal/input"
	"wavesurvival/internal/interfaces"
	"wavesurvival/internal/system"
	"wavesurvival/internal/types"
	"wavesurvival/internal/utils"

	"github.com/google/uuid"
)

// Game is one independent play session. It owns every entity, system and
// pending deferred action; nothing is shared between sessions.
type Game struct {
	ID               string
	Settings         config.Settings
	ECS              *entity.ECS
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	Scheduler        *utils.Scheduler
	PlayerSystem     *system.PlayerSystem
	WeaponSystem     *system.WeaponSystem
	ProjectileSystem *system.ProjectileSystem
	EnemySystem      *system.EnemySystem
	CollisionSystem  *system.CollisionSystem
	SpawnSystem      *system.SpawnSystem
	WaveSystem       *system.WaveSystem

	display interfaces.Display
	ticks   uint64
}

// NewGame builds a session and starts wave 1. A nil display is allowed.
func NewGame(settings config.Settings, display interfaces.Display) *Game {
	if display == nil {
		display = nopDisplay{}
	}

	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Seed)
	scheduler := utils.NewScheduler()
	spawner := system.NewSpawnSystem(ecs, dispatcher, rng, settings)

	g := &Game{
		ID:               uuid.NewString(),
		Settings:         settings,
		ECS:              ecs,
		EventDispatcher:  dispatcher,
		Rng:              rng,
		Scheduler:        scheduler,
		PlayerSystem:     system.NewPlayerSystem(ecs, settings),
		WeaponSystem:     system.NewWeaponSystem(ecs, dispatcher, settings),
		ProjectileSystem: system.NewProjectileSystem(ecs, dispatcher, settings),
		EnemySystem:      system.NewEnemySystem(ecs),
		CollisionSystem:  system.NewCollisionSystem(ecs, dispatcher),
		SpawnSystem:      spawner,
		WaveSystem:       system.NewWaveSystem(ecs, dispatcher, scheduler, spawner, settings.WaveDelay()),
		display:          display,
	}
	dispatcher.Subscribe(event.WaveStarted, g)

	g.createPlayer()
	log.Printf("Session %s started (seed %d)", g.ID, rng.Seed())
	g.WaveSystem.StartWave(config.FirstWave)
	g.display.SetEnemiesLeft(ecs.Wave.Remaining)
	return g
}

func (g *Game) createPlayer() {
	id := g.ECS.NewEntity()
	g.ECS.PlayerID = id
	g.ECS.Positions[id] = &component.Position{}
	g.ECS.Bodies[id] = &component.Body{Size: g.Settings.PlayerSize}
	g.ECS.Players[id] = &component.Player{Speed: g.Settings.PlayerSpeed}
	g.ECS.Renderables[id] = &component.Renderable{Color: config.PlayerColor}
	g.placePlayer()
}

func (g *Game) placePlayer() {
	pos, _, player, _ := g.ECS.Player()
	pos.X = g.Settings.ArenaWidth / 2
	pos.Y = g.Settings.ArenaHeight / 2
	player.Facing = input.Down
}

// Update runs one simulation tick. Deferred actions due within deltaTime run
// first, then player, weapon, bullets, enemies, collisions and the wave
// check, in that order.
func (g *Game) Update(deltaTime float64, in input.Sampler) {
	if in == nil {
		in = input.None{}
	}
	dt := time.Duration(deltaTime * float64(time.Second))

	g.Scheduler.Advance(dt)

	g.PlayerSystem.Update(in)
	g.WeaponSystem.Update(dt, in.FirePressed())
	g.ProjectileSystem.Update()
	g.EnemySystem.Update()
	g.CollisionSystem.Update()
	g.WaveSystem.Update()

	g.display.SetEnemiesLeft(g.ECS.Wave.Remaining)
	g.ticks++

	if a, ok := in.(interface{ Advance() }); ok {
		a.Advance()
	}
}

// Reset returns the session to wave 1 and drops any pending wave advance.
func (g *Game) Reset() {
	g.WaveSystem.Reset()
	g.ECS.Clear()
	g.placePlayer()
	g.ticks = 0
	log.Printf("Session %s reset", g.ID)
	g.WaveSystem.StartWave(config.FirstWave)
	g.display.SetEnemiesLeft(g.ECS.Wave.Remaining)
}

// Ticks returns the number of ticks since start or the last reset.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

func (g *Game) OnEvent(e event.Event) {
	if e.Type == event.WaveStarted {
		if n, ok := e.Data.(int); ok {
			g.display.SetWave(n)
		}
	}
}

// Rect is an entity's bounding box in arena units.
type Rect struct {
	ID         types.EntityID
	X, Y, Size float64
}

// Snapshot is a read-only copy of the session state.
type Snapshot struct {
	Wave      int
	Remaining int
	Phase     component.WavePhase
	Facing    input.Direction
	Player    Rect
	Bullets   []Rect
	Enemies   []Rect
}

func (g *Game) Snapshot() Snapshot {
	pos, body, player, _ := g.ECS.Player()
	snap := Snapshot{
		Wave:      g.ECS.Wave.Number,
		Remaining: g.ECS.Wave.Remaining,
		Phase:     g.ECS.Wave.Phase,
		Facing:    player.Facing,
		Player:    Rect{ID: g.ECS.PlayerID, X: pos.X, Y: pos.Y, Size: body.Size},
	}
	for _, id := range g.ECS.BulletIDs() {
		snap.Bullets = append(snap.Bullets, g.rect(id))
	}
	for _, id := range g.ECS.EnemyIDs() {
		snap.Enemies = append(snap.Enemies, g.rect(id))
	}
	return snap
}

func (g *Game) rect(id types.EntityID) Rect {
	r := Rect{ID: id}
	if pos, ok := g.ECS.Positions[id]; ok {
		r.X, r.Y = pos.X, pos.Y
	}
	if body, ok := g.ECS.Bodies[id]; ok {
		r.Size = body.Size
	}
	return r
}

type nopDisplay struct{}

func (nopDisplay) SetWave(int)        {}
func (nopDisplay) SetEnemiesLeft(int) {}
