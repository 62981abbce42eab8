package input

// Frame is the input of a single tick.
type Frame struct {
	Held  []Direction
	Fire  bool
	Pause bool
}

// Script replays a fixed list of frames, one per Advance. Once exhausted it
// keeps reporting the last frame's held keys without triggers.
type Script struct {
	frames []Frame
	pos    int
}

func NewScript(frames ...Frame) *Script {
	return &Script{frames: frames}
}

// Hold returns n frames with the given directions held.
func Hold(n int, dirs ...Direction) []Frame {
	frames := make([]Frame, n)
	for i := range frames {
		frames[i].Held = dirs
	}
	return frames
}

func (s *Script) current() (Frame, bool) {
	if len(s.frames) == 0 {
		return Frame{}, false
	}
	if s.pos >= len(s.frames) {
		return Frame{Held: s.frames[len(s.frames)-1].Held}, false
	}
	return s.frames[s.pos], true
}

// Advance moves to the next frame. The game loop calls it after each tick.
func (s *Script) Advance() {
	if s.pos < len(s.frames) {
		s.pos++
	}
}

func (s *Script) Held(d Direction) bool {
	f, _ := s.current()
	for _, h := range f.Held {
		if h == d {
			return true
		}
	}
	return false
}

func (s *Script) FirePressed() bool {
	f, ok := s.current()
	return ok && f.Fire
}

func (s *Script) PausePressed() bool {
	f, ok := s.current()
	return ok && f.Pause
}
