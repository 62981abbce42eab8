package component

// WavePhase is the state of the wave director.
type WavePhase int

const (
	InWave WavePhase = iota
	Transitioning
)

func (p WavePhase) String() string {
	switch p {
	case InWave:
		return "InWave"
	case Transitioning:
		return "Transitioning"
	}
	return "Unknown"
}

// Wave tracks wave progression.
type Wave struct {
	Number    int       // Current wave, starts at 1
	Remaining int       // Enemies of the current wave still alive
	Phase     WavePhase // Director state
}
