package utils

import (
	"sort"
	"time"
)

// Scheduler runs deferred actions on the simulation goroutine. Time only
// moves when Advance is called, so a frame tick and a deferred action never
// run concurrently.
type Scheduler struct {
	now     time.Duration
	seq     uint64
	pending []*Timer
}

// Timer is a pending deferred action.
type Timer struct {
	due     time.Duration
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the simulated time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once d of simulated time has passed.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{due: s.now + d, seq: s.seq, fn: fn}
	s.pending = append(s.pending, t)
	return t
}

// Advance moves time forward by dt and runs every due action, earliest
// first. Actions scheduled by a running action fire in the same call if
// they are already due.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt > 0 {
		s.now += dt
	}
	for {
		t := s.popDue()
		if t == nil {
			return
		}
		t.fired = true
		t.fn()
	}
}

func (s *Scheduler) popDue() *Timer {
	live := s.pending[:0]
	for _, t := range s.pending {
		if !t.stopped {
			live = append(live, t)
		}
	}
	s.pending = live
	if len(s.pending) == 0 {
		return nil
	}

	sort.Slice(s.pending, func(i, j int) bool {
		if s.pending[i].due != s.pending[j].due {
			return s.pending[i].due < s.pending[j].due
		}
		return s.pending[i].seq < s.pending[j].seq
	})
	if s.pending[0].due > s.now {
		return nil
	}
	t := s.pending[0]
	s.pending = s.pending[1:]
	return t
}

// Pending returns the number of actions still waiting.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.pending {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Stop cancels the action. It returns false if the action already ran or was
// stopped before.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
