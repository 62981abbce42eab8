package input

// Sampler exposes the input state the simulation reads once per tick.
type Sampler interface {
	// Held reports whether the movement key for d is currently down.
	Held(d Direction) bool
	// FirePressed reports a one-shot fire trigger for this tick.
	FirePressed() bool
	// PausePressed reports a one-shot pause toggle for this tick.
	PausePressed() bool
}

// None is a Sampler with nothing pressed.
type None struct{}

func (None) Held(Direction) bool { return false }
func (None) FirePressed() bool   { return false }
func (None) PausePressed() bool  { return false }
