package timer

import "sync/atomic"

// Shutdown is the process-wide stop flag shared by the timer loop and
// the input reader. Once triggered it never resets.
type Shutdown struct {
	flag atomic.Bool
}

// NewShutdown returns an untriggered flag.
func NewShutdown() *Shutdown {
	return &Shutdown{}
}

// Trigger marks the program for shutdown. Safe to call from any
// goroutine, any number of times.
func (s *Shutdown) Trigger() {
	s.flag.Store(true)
}

// Triggered reports whether shutdown has been requested.
func (s *Shutdown) Triggered() bool {
	return s.flag.Load()
}
