package timer

import "time"

// Clock abstracts wall-clock access so the engine can be driven
// deterministically in tests.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time                         { return time.Now() }
func (systemClock) Sleep(d time.Duration)                  { time.Sleep(d) }
func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// SystemClock returns the real wall clock.
func SystemClock() Clock {
	return systemClock{}
}

// Stopwatch measures elapsed time since a session attempt began.
// time.Time carries a monotonic reading, and Elapsed additionally
// clamps at zero, so the value never goes backward.
type Stopwatch struct {
	clock Clock
	start time.Time
}

// NewStopwatch starts measuring from the clock's current instant.
func NewStopwatch(clock Clock) *Stopwatch {
	return &Stopwatch{clock: clock, start: clock.Now()}
}

// Elapsed returns the time since the stopwatch started, never negative.
func (s *Stopwatch) Elapsed() time.Duration {
	d := s.clock.Now().Sub(s.start)
	if d < 0 {
		return 0
	}
	return d
}
