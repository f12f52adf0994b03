package timer

import (
	"io"
	"testing"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/testutil"
)

func newTestEngine(cfg config.Config, commands chan Command) (*Engine, *Shutdown, *testutil.FakeClock, *testutil.RecordingNotifier) {
	shutdown := NewShutdown()
	notifier := &testutil.RecordingNotifier{}
	clock := testutil.NewFakeClock()
	e := NewEngine(cfg, commands, shutdown, notifier, io.Discard)
	e.SetClock(clock)
	return e, shutdown, clock, notifier
}

func assertEvents(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d events %v, got %d: %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %q, want %q (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestSessionsAlternateFromWork(t *testing.T) {
	cfg := config.Config{WorkDuration: 2 * time.Second, BreakDuration: time.Second}
	commands := make(chan Command, config.CommandBuffer)
	e, shutdown, clock, notifier := newTestEngine(cfg, commands)
	clock.ScheduleAfter(7*time.Second, func() { commands <- CommandQuit })

	e.Run()

	assertEvents(t, notifier.Events(), []string{
		"started Work 1",
		"finished Work",
		"started Break 2",
		"finished Break",
		"started Work 3",
		"finished Work",
		"started Break 4",
		"finished Break",
		"started Work 5",
	})
	if got := e.CompletedSessions(); got != 4 {
		t.Fatalf("CompletedSessions = %d, want 4", got)
	}
	if !shutdown.Triggered() {
		t.Fatalf("expected shutdown flag to be set")
	}
	if clock.Elapsed() > 7*time.Second+config.TickInterval {
		t.Fatalf("quit took longer than one tick: %v", clock.Elapsed())
	}
}

func TestQuitBeforeFirstTick(t *testing.T) {
	cfg := config.Config{WorkDuration: 25 * time.Minute, BreakDuration: 5 * time.Minute}
	commands := make(chan Command, config.CommandBuffer)
	e, shutdown, clock, notifier := newTestEngine(cfg, commands)
	commands <- CommandQuit

	e.Run()

	assertEvents(t, notifier.Events(), []string{"started Work 1"})
	if notifier.Finished() != 0 {
		t.Fatalf("no session should have finished")
	}
	if e.CompletedSessions() != 0 {
		t.Fatalf("session counter moved on quit")
	}
	if !shutdown.Triggered() {
		t.Fatalf("expected shutdown flag to be set")
	}
	if clock.Elapsed() > config.TickInterval {
		t.Fatalf("engine kept ticking after quit: %v", clock.Elapsed())
	}
}

func TestPauseThenQuitEmitsNoFinish(t *testing.T) {
	cfg := config.Config{WorkDuration: 25 * time.Minute, BreakDuration: 5 * time.Minute}
	commands := make(chan Command, config.CommandBuffer)
	e, _, clock, notifier := newTestEngine(cfg, commands)
	commands <- CommandPause
	clock.ScheduleAfter(500*time.Millisecond, func() { commands <- CommandQuit })

	e.Run()

	assertEvents(t, notifier.Events(), []string{"started Work 1"})
	if e.State() != StatePaused {
		t.Fatalf("expected engine to end paused, got %v", e.State())
	}
	if e.CompletedSessions() != 0 {
		t.Fatalf("session counter moved while paused")
	}
	if clock.Elapsed() > time.Second {
		t.Fatalf("paused engine should exit promptly after quit: %v", clock.Elapsed())
	}
}

func TestResumeRestoresPriorState(t *testing.T) {
	cfg := config.Config{WorkDuration: 2 * time.Second, BreakDuration: time.Second}
	commands := make(chan Command, config.CommandBuffer)
	e, _, clock, notifier := newTestEngine(cfg, commands)
	commands <- CommandPause
	clock.ScheduleAfter(300*time.Millisecond, func() { commands <- CommandResume })
	clock.ScheduleAfter(4*time.Second, func() { commands <- CommandQuit })

	e.Run()

	assertEvents(t, notifier.Events(), []string{
		"started Work 1",
		"started Work 1", // resume restarts the attempt from zero
		"finished Work",
		"started Break 2",
		"finished Break",
		"started Work 3",
	})
	if got := e.CompletedSessions(); got != 2 {
		t.Fatalf("CompletedSessions = %d, want 2", got)
	}
}

func TestSkipAdvancesWithoutIncrementingCounter(t *testing.T) {
	cfg := config.Config{WorkDuration: time.Minute, BreakDuration: time.Second}
	commands := make(chan Command, config.CommandBuffer)
	e, _, clock, notifier := newTestEngine(cfg, commands)
	commands <- CommandSkip
	clock.ScheduleAfter(5*time.Second, func() { commands <- CommandQuit })

	e.Run()

	assertEvents(t, notifier.Events(), []string{
		"started Work 1",
		"started Break 1", // skip advanced the state but not the counter
		"finished Break",
		"started Work 2",
	})
	if got := e.CompletedSessions(); got != 1 {
		t.Fatalf("CompletedSessions = %d, want 1", got)
	}
}

func TestSkipWhilePausedAdvances(t *testing.T) {
	cfg := config.Config{WorkDuration: time.Minute, BreakDuration: time.Second}
	commands := make(chan Command, config.CommandBuffer)
	e, _, clock, notifier := newTestEngine(cfg, commands)
	commands <- CommandPause
	clock.ScheduleAfter(300*time.Millisecond, func() { commands <- CommandSkip })
	clock.ScheduleAfter(3*time.Second, func() { commands <- CommandQuit })

	e.Run()

	assertEvents(t, notifier.Events(), []string{
		"started Work 1",
		"started Break 1",
		"finished Break",
		"started Work 2",
	})
	if got := e.CompletedSessions(); got != 1 {
		t.Fatalf("CompletedSessions = %d, want 1", got)
	}
}

func TestChannelCloseActsAsQuit(t *testing.T) {
	cfg := config.Config{WorkDuration: time.Minute, BreakDuration: time.Second}
	commands := make(chan Command, config.CommandBuffer)
	e, shutdown, clock, notifier := newTestEngine(cfg, commands)
	close(commands)

	e.Run()

	assertEvents(t, notifier.Events(), []string{"started Work 1"})
	if !shutdown.Triggered() {
		t.Fatalf("closed channel should trigger shutdown")
	}
	if clock.Elapsed() > config.TickInterval {
		t.Fatalf("engine kept ticking after disconnect: %v", clock.Elapsed())
	}
}

// finishClockNotifier records the simulated instant of each finish.
type finishClockNotifier struct {
	clock      *testutil.FakeClock
	finishedAt []time.Duration
}

func (n *finishClockNotifier) SessionStarted(string, int) {}
func (n *finishClockNotifier) SessionFinished(string) {
	n.finishedAt = append(n.finishedAt, n.clock.Elapsed())
}

func TestNaturalCompletionElapsedBounds(t *testing.T) {
	cfg := config.Config{WorkDuration: 3 * time.Second, BreakDuration: 2 * time.Second}
	commands := make(chan Command, config.CommandBuffer)
	shutdown := NewShutdown()
	clock := testutil.NewFakeClock()
	notifier := &finishClockNotifier{clock: clock}
	e := NewEngine(cfg, commands, shutdown, notifier, io.Discard)
	e.SetClock(clock)
	clock.ScheduleAfter(6*time.Second, func() { commands <- CommandQuit })

	e.Run()

	if len(notifier.finishedAt) < 2 {
		t.Fatalf("expected at least two finished sessions, got %d", len(notifier.finishedAt))
	}
	if got := notifier.finishedAt[0]; got < cfg.WorkDuration || got > cfg.WorkDuration+config.TickInterval {
		t.Fatalf("work session finished at %v, want within [%v, %v]", got, cfg.WorkDuration, cfg.WorkDuration+config.TickInterval)
	}
	breakStart := notifier.finishedAt[0]
	if got := notifier.finishedAt[1] - breakStart; got < cfg.BreakDuration || got > cfg.BreakDuration+config.TickInterval {
		t.Fatalf("break session took %v, want within [%v, %v]", got, cfg.BreakDuration, cfg.BreakDuration+config.TickInterval)
	}
}

func TestResumeWhileRunningIsNoOp(t *testing.T) {
	cfg := config.Config{WorkDuration: 2 * time.Second, BreakDuration: time.Second}
	commands := make(chan Command, config.CommandBuffer)
	e, _, clock, notifier := newTestEngine(cfg, commands)
	commands <- CommandResume
	clock.ScheduleAfter(1500*time.Millisecond, func() { commands <- CommandQuit })

	e.Run()

	assertEvents(t, notifier.Events(), []string{
		"started Work 1",
		"finished Work",
		"started Break 2",
	})
	if e.CompletedSessions() != 1 {
		t.Fatalf("CompletedSessions = %d, want 1", e.CompletedSessions())
	}
}
