package event

import "wavesurvival/internal/types"

const (
	WaveStarted    EventType = "WaveStarted"    // Data: wave number
	WaveCleared    EventType = "WaveCleared"    // Data: wave number
	EnemySpawned   EventType = "EnemySpawned"   // Data: types.EntityID
	EnemyDestroyed EventType = "EnemyDestroyed" // Data: Hit
	BulletFired    EventType = "BulletFired"    // Data: types.EntityID
	BulletExpired  EventType = "BulletExpired"  // Data: types.EntityID
)

// Hit pairs a bullet with the enemy it destroyed.
type Hit struct {
	Bullet types.EntityID
	Enemy  types.EntityID
}
