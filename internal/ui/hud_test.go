package ui

import "testing"

func TestHUDLabels(t *testing.T) {
	h := NewHUD(10, 10)

	wave, enemies := h.Labels()
	if wave != "Wave: 0" || enemies != "Enemies Left: 0" {
		t.Fatalf("initial labels = %q, %q", wave, enemies)
	}

	h.SetWave(3)
	h.SetEnemiesLeft(6)
	wave, enemies = h.Labels()
	if wave != "Wave: 3" {
		t.Errorf("wave label = %q", wave)
	}
	if enemies != "Enemies Left: 6" {
		t.Errorf("enemies label = %q", enemies)
	}
}
