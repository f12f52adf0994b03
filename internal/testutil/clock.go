// Package testutil provides deterministic test doubles for the timer
// engine: a fake clock that advances instantly and a notifier that
// records what it was told.
package testutil

import (
	"sync"
	"time"
)

type scheduledCall struct {
	at time.Time
	fn func()
}

// FakeClock satisfies timer.Clock. Sleep and After advance the clock
// immediately instead of blocking, firing any callbacks scheduled to
// come due, so an engine drives itself through simulated time on a
// single goroutine.
type FakeClock struct {
	mu        sync.Mutex
	base      time.Time
	now       time.Time
	scheduled []scheduledCall
}

// NewFakeClock starts a fake clock at a fixed instant.
func NewFakeClock() *FakeClock {
	start := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)
	return &FakeClock{base: start, now: start}
}

// Now returns the current simulated instant.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Sleep advances simulated time by d.
func (c *FakeClock) Sleep(d time.Duration) {
	c.advance(d)
}

// After advances simulated time by d and returns an already-fired
// channel.
func (c *FakeClock) After(d time.Duration) <-chan time.Time {
	c.advance(d)
	ch := make(chan time.Time, 1)
	ch <- c.Now()
	return ch
}

// Elapsed reports how much simulated time has passed since the clock
// was created.
func (c *FakeClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now.Sub(c.base)
}

// ScheduleAfter registers fn to fire once simulated time has advanced
// d past the clock's start. Callbacks run synchronously inside the
// Sleep or After call that crosses their deadline, in deadline order.
func (c *FakeClock) ScheduleAfter(d time.Duration, fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scheduled = append(c.scheduled, scheduledCall{at: c.base.Add(d), fn: fn})
}

func (c *FakeClock) advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	c.mu.Lock()
	target := c.now.Add(d)
	var due []func()
	for {
		idx := -1
		for i, s := range c.scheduled {
			if s.at.After(target) {
				continue
			}
			if idx == -1 || s.at.Before(c.scheduled[idx].at) {
				idx = i
			}
		}
		if idx == -1 {
			break
		}
		due = append(due, c.scheduled[idx].fn)
		c.scheduled = append(c.scheduled[:idx], c.scheduled[idx+1:]...)
	}
	c.now = target
	c.mu.Unlock()

	for _, fn := range due {
		fn()
	}
}
