package utils

import (
	"math"
	"testing"
	"time"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{7, 0, 10, 7},
		{0, 0, 0, 0},
	}
	for _, tc := range tests {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	nx, ny, l := Normalize(3, 4)
	if l != 5 || math.Abs(nx-0.6) > 1e-9 || math.Abs(ny-0.8) > 1e-9 {
		t.Errorf("Normalize(3,4) = (%v, %v, %v)", nx, ny, l)
	}

	nx, ny, l = Normalize(0, 0)
	if nx != 0 || ny != 0 || l != 0 {
		t.Errorf("Normalize(0,0) = (%v, %v, %v), want zeros", nx, ny, l)
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		b    [4]float64
		want bool
	}{
		{"inside", [4]float64{2, 2, 4, 4}, true},
		{"partial", [4]float64{8, 8, 12, 12}, true},
		{"touching edge", [4]float64{10, 0, 20, 10}, false},
		{"apart", [4]float64{30, 30, 40, 40}, false},
	}
	for _, tc := range tests {
		got := Overlaps(0, 0, 10, 10, tc.b[0], tc.b[1], tc.b[2], tc.b[3])
		if got != tc.want {
			t.Errorf("%s: Overlaps = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPRNGIsReproducible(t *testing.T) {
	a, b := NewPRNGService(7), NewPRNGService(7)
	for i := 0; i < 50; i++ {
		if a.Range(-3, 3) != b.Range(-3, 3) || a.Intn(4) != b.Intn(4) {
			t.Fatal("same seed produced different sequences")
		}
	}
	if NewPRNGService(0).Seed() == 0 {
		t.Error("zero seed was not replaced")
	}
}

func TestPRNGRange(t *testing.T) {
	r := NewPRNGService(1)
	for i := 0; i < 1000; i++ {
		v := r.Range(10, 20)
		if v < 10 || v >= 20 {
			t.Fatalf("Range out of bounds: %v", v)
		}
	}
}

func TestSchedulerFiresWhenDue(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After(time.Second, func() { fired++ })

	s.Advance(999 * time.Millisecond)
	if fired != 0 {
		t.Fatal("fired early")
	}
	s.Advance(time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired %d times, want 1", fired)
	}
	s.Advance(time.Hour)
	if fired != 1 {
		t.Fatalf("fired again: %d", fired)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", s.Pending())
	}
}

func TestSchedulerOrder(t *testing.T) {
	s := NewScheduler()
	var order []int
	s.After(2*time.Second, func() { order = append(order, 2) })
	s.After(time.Second, func() { order = append(order, 1) })
	s.After(time.Second, func() { order = append(order, 11) })

	s.Advance(3 * time.Second)

	want := []int{1, 11, 2}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestTimerStop(t *testing.T) {
	s := NewScheduler()
	fired := false
	timer := s.After(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Fatal("Stop on pending timer returned false")
	}
	if timer.Stop() {
		t.Error("second Stop returned true")
	}
	s.Advance(2 * time.Second)
	if fired {
		t.Error("stopped timer fired")
	}

	done := s.After(0, func() {})
	s.Advance(0)
	if done.Stop() {
		t.Error("Stop after firing returned true")
	}
}
