package entity

import (
	"testing"

	"wavesurvival/internal/component"
	"wavesurvival/internal/types"
)

func addEnemy(ecs *ECS, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Bodies[id] = &component.Body{Size: 30}
	ecs.Enemies[id] = &component.Enemy{Speed: 1}
	return id
}

func TestNewEntityIDsAreUnique(t *testing.T) {
	ecs := NewECS()
	seen := make(map[types.EntityID]bool)
	for i := 0; i < 100; i++ {
		id := ecs.NewEntity()
		if seen[id] {
			t.Fatalf("id %d reused", id)
		}
		seen[id] = true
	}
}

func TestEnemyIDsSorted(t *testing.T) {
	ecs := NewECS()
	var want []types.EntityID
	for i := 0; i < 20; i++ {
		want = append(want, addEnemy(ecs, float64(i), 0))
	}

	got := ecs.EnemyIDs()
	if len(got) != len(want) {
		t.Fatalf("got %d ids, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ids out of order at %d: %v", i, got)
		}
	}
}

func TestRemoveEntityClearsComponents(t *testing.T) {
	ecs := NewECS()
	id := addEnemy(ecs, 1, 2)
	ecs.RemoveEntity(id)

	if _, ok := ecs.Positions[id]; ok {
		t.Error("position left behind")
	}
	if _, ok := ecs.Bodies[id]; ok {
		t.Error("body left behind")
	}
	if _, ok := ecs.Enemies[id]; ok {
		t.Error("enemy left behind")
	}
}

func TestClearKeepsPlayer(t *testing.T) {
	ecs := NewECS()
	ecs.PlayerID = ecs.NewEntity()
	ecs.Positions[ecs.PlayerID] = &component.Position{X: 5, Y: 5}
	ecs.Bodies[ecs.PlayerID] = &component.Body{Size: 30}
	ecs.Players[ecs.PlayerID] = &component.Player{Speed: 5}
	addEnemy(ecs, 0, 0)
	addEnemy(ecs, 10, 10)

	ecs.Clear()
	ecs.RemoveEntity(ecs.PlayerID)

	if len(ecs.Enemies) != 0 {
		t.Errorf("%d enemies left after Clear", len(ecs.Enemies))
	}
	if _, _, _, ok := ecs.Player(); !ok {
		t.Error("player removed")
	}
}
