package session

import "time"

// Clock is the time source of the renewal schedule.
type Clock interface {
	Now() time.Time
	// NewTimer returns a timer that fires once after d. A non-positive d
	// fires immediately.
	NewTimer(d time.Duration) Timer
}

// Timer is the subset of *time.Timer the renewal workers need.
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

// SystemClock returns the wall clock.
func SystemClock() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) NewTimer(d time.Duration) Timer {
	return systemTimer{time.NewTimer(d)}
}

type systemTimer struct {
	t *time.Timer
}

func (s systemTimer) C() <-chan time.Time { return s.t.C }
func (s systemTimer) Stop() bool          { return s.t.Stop() }
