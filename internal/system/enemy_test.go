package system

import (
	"math"
	"testing"
)

func TestEnemyHomesOnPlayer(t *testing.T) {
	w := newWorld()
	w.addPlayer(400, 300)
	left := w.addEnemy(300, 300)
	diag := w.addEnemy(400-30, 300-40)

	NewEnemySystem(w.ecs).Update()

	if pos := w.ecs.Positions[left]; pos.X != 301.5 || pos.Y != 300 {
		t.Errorf("left enemy at (%v, %v), want (301.5, 300)", pos.X, pos.Y)
	}
	pos := w.ecs.Positions[diag]
	if math.Abs(pos.X-(370+0.9)) > 1e-9 || math.Abs(pos.Y-(260+1.2)) > 1e-9 {
		t.Errorf("diagonal enemy at (%v, %v), want (370.9, 261.2)", pos.X, pos.Y)
	}
}

func TestEnemyOnPlayerDoesNotMove(t *testing.T) {
	w := newWorld()
	w.addPlayer(200, 200)
	id := w.addEnemy(200, 200)

	NewEnemySystem(w.ecs).Update()

	pos := w.ecs.Positions[id]
	if math.IsNaN(pos.X) || math.IsNaN(pos.Y) || math.IsInf(pos.X, 0) || math.IsInf(pos.Y, 0) {
		t.Fatalf("non-finite position (%v, %v)", pos.X, pos.Y)
	}
	if pos.X != 200 || pos.Y != 200 {
		t.Fatalf("enemy moved to (%v, %v)", pos.X, pos.Y)
	}
}

func TestEnemySnapsWhenCloserThanStep(t *testing.T) {
	w := newWorld()
	w.addPlayer(200, 200)
	id := w.addEnemy(199, 200)

	NewEnemySystem(w.ecs).Update()

	if pos := w.ecs.Positions[id]; pos.X != 200 || pos.Y != 200 {
		t.Fatalf("enemy at (%v, %v), want snapped to (200, 200)", pos.X, pos.Y)
	}
}

func TestEnemiesIdleWithoutPlayer(t *testing.T) {
	w := newWorld()
	id := w.addEnemy(10, 10)

	NewEnemySystem(w.ecs).Update()

	if pos := w.ecs.Positions[id]; pos.X != 10 || pos.Y != 10 {
		t.Fatalf("enemy moved without a target: (%v, %v)", pos.X, pos.Y)
	}
}
