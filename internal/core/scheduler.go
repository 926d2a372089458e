package core

import "time"

// TimerID identifies a one-shot timer. The zero value never names a live timer.
type TimerID uint64

type timer struct {
	id  TimerID
	due time.Duration
	fn  func()
}

// Scheduler is a tick-driven clock with one-shot timers.
// Time only moves when Advance is called, so simulations stay deterministic.
// It is not safe for concurrent use; the owning game loop is the only caller.
type Scheduler struct {
	now    time.Duration
	lastID TimerID
	timers []timer
}

// NewScheduler creates a scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the simulated time elapsed since creation.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once, delay after the current time.
// Negative delays are treated as zero.
func (s *Scheduler) After(delay time.Duration, fn func()) TimerID {
	if delay < 0 {
		delay = 0
	}
	s.lastID++
	s.timers = append(s.timers, timer{id: s.lastID, due: s.now + delay, fn: fn})
	return s.lastID
}

// Cancel stops a pending timer. It reports whether the timer was still pending.
func (s *Scheduler) Cancel(id TimerID) bool {
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}

// Pending returns the number of timers that have not fired yet.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Advance moves time forward by dt and fires every due timer in due order
// (ties broken by scheduling order). Timers created by a callback during this
// call wait for the next Advance. Returns the number of timers fired.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}

	horizon := s.lastID
	fired := 0
	for {
		idx := s.nextDue(horizon)
		if idx < 0 {
			return fired
		}
		t := s.timers[idx]
		s.timers = append(s.timers[:idx], s.timers[idx+1:]...)
		if t.fn != nil {
			t.fn()
		}
		fired++
	}
}

// nextDue returns the index of the earliest due timer with id <= horizon, or -1.
func (s *Scheduler) nextDue(horizon TimerID) int {
	best := -1
	for i, t := range s.timers {
		if t.id > horizon || t.due > s.now {
			continue
		}
		if best < 0 || t.due < s.timers[best].due ||
			(t.due == s.timers[best].due && t.id < s.timers[best].id) {
			best = i
		}
	}
	return best
}

// Reset drops all pending timers and rewinds the clock to zero.
func (s *Scheduler) Reset() {
	s.now = 0
	s.timers = s.timers[:0]
}
