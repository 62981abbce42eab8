package component

// Enemy homes in on the player at a constant speed.
type Enemy struct {
	Speed float64 // Units per tick
	Wave  int     // Wave that spawned it
}
