package system

import (
	"testing"

	"wavesurvival/internal/event"
)

func TestBulletDestroysOneEnemy(t *testing.T) {
	w := newWorld()
	first := w.addEnemy(100, 100)
	second := w.addEnemy(105, 100)
	bullet := w.addBullet(110, 110, 1, 0)
	log := &eventLog{}
	w.dispatcher.Subscribe(event.EnemyDestroyed, log)

	hits := NewCollisionSystem(w.ecs, w.dispatcher).Update()

	if len(hits) != 1 || hits[0] != (event.Hit{Bullet: bullet, Enemy: first}) {
		t.Fatalf("hits = %v", hits)
	}
	if _, ok := w.ecs.Enemies[second]; !ok {
		t.Fatal("second enemy destroyed by the same bullet")
	}
	if _, ok := w.ecs.Bullets[bullet]; ok {
		t.Fatal("bullet survived the hit")
	}
	if w.ecs.Wave.Remaining != 1 {
		t.Fatalf("remaining = %d, want 1", w.ecs.Wave.Remaining)
	}
	if log.count(event.EnemyDestroyed) != 1 {
		t.Fatalf("EnemyDestroyed dispatched %d times", log.count(event.EnemyDestroyed))
	}
}

func TestDestroyedEnemyNotHitTwice(t *testing.T) {
	w := newWorld()
	w.addEnemy(100, 100)
	b1 := w.addBullet(110, 110, 1, 0)
	b2 := w.addBullet(115, 115, 1, 0)

	hits := NewCollisionSystem(w.ecs, w.dispatcher).Update()

	if len(hits) != 1 || hits[0].Bullet != b1 {
		t.Fatalf("hits = %v", hits)
	}
	if _, ok := w.ecs.Bullets[b2]; !ok {
		t.Fatal("second bullet removed without a target")
	}
	if w.ecs.Wave.Remaining != 0 {
		t.Fatalf("remaining = %d, want 0", w.ecs.Wave.Remaining)
	}
}

func TestTouchingEdgesDoNotCollide(t *testing.T) {
	w := newWorld()
	w.addEnemy(100, 100)
	w.addBullet(130, 100, 1, 0)

	if hits := NewCollisionSystem(w.ecs, w.dispatcher).Update(); len(hits) != 0 {
		t.Fatalf("touching rectangles collided: %v", hits)
	}
}

func TestCollisionExclusivity(t *testing.T) {
	w := newWorld()
	for i := 0; i < 8; i++ {
		for j := 0; j < 4; j++ {
			w.addEnemy(float64(i*35), float64(j*35))
		}
	}
	for i := 0; i < 40; i++ {
		w.addBullet(float64(i*7), float64((i%5)*30+5), 1, 0)
	}

	hits := NewCollisionSystem(w.ecs, w.dispatcher).Update()
	if len(hits) == 0 {
		t.Fatal("expected some hits")
	}

	seenBullet := make(map[uint64]bool)
	seenEnemy := make(map[uint64]bool)
	for _, h := range hits {
		if seenBullet[uint64(h.Bullet)] || seenEnemy[uint64(h.Enemy)] {
			t.Fatalf("entity used in two hits: %v", h)
		}
		seenBullet[uint64(h.Bullet)] = true
		seenEnemy[uint64(h.Enemy)] = true
		if _, ok := w.ecs.Bullets[h.Bullet]; ok {
			t.Fatalf("destroyed bullet %d still live", h.Bullet)
		}
		if _, ok := w.ecs.Enemies[h.Enemy]; ok {
			t.Fatalf("destroyed enemy %d still live", h.Enemy)
		}
	}
	if w.ecs.Wave.Remaining != len(w.ecs.Enemies) {
		t.Fatalf("remaining %d != live enemies %d", w.ecs.Wave.Remaining, len(w.ecs.Enemies))
	}
}
