package timer

import (
	"fmt"
	"io"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/render"
)

// Notifier announces session boundaries. Implementations must not
// block the timer loop.
type Notifier interface {
	SessionStarted(label string, ordinal int)
	SessionFinished(label string)
}

// Engine runs the countdown loop. It owns the timer state, the session
// counter, and the elapsed-time accounting; commands arrive through a
// channel it polls once per tick. Run executes on its own goroutine and
// exits when the shared shutdown flag is triggered.
type Engine struct {
	cfg      config.Config
	commands <-chan Command
	shutdown *Shutdown
	notifier Notifier
	clock    Clock
	out      io.Writer
	theme    render.Theme
	display  *render.Countdown

	state       State
	resumeState State
	completed   int
}

// NewEngine wires an engine over the given command channel and
// shutdown flag. The engine starts in the Work state.
func NewEngine(cfg config.Config, commands <-chan Command, shutdown *Shutdown, notifier Notifier, out io.Writer) *Engine {
	theme := render.DefaultTheme()
	return &Engine{
		cfg:         cfg,
		commands:    commands,
		shutdown:    shutdown,
		notifier:    notifier,
		clock:       SystemClock(),
		out:         out,
		theme:       theme,
		display:     render.NewCountdown(out, theme),
		state:       StateWork,
		resumeState: StateWork,
	}
}

// SetClock swaps the wall clock. Call before Run.
func (e *Engine) SetClock(clock Clock) {
	e.clock = clock
}

// State returns the current timer state. Not synchronized; read it
// only before Run starts or after Run returns.
func (e *Engine) State() State {
	return e.state
}

// CompletedSessions returns the session counter: the number of Work or
// Break sessions that ran to natural completion.
func (e *Engine) CompletedSessions() int {
	return e.completed
}

// Run drives the state machine until shutdown is triggered.
func (e *Engine) Run() {
	for !e.shutdown.Triggered() {
		if e.state == StatePaused || e.state == StateStopped {
			e.waitWhilePaused()
			continue
		}
		e.runSession()
	}
	fmt.Fprintln(e.out, e.theme.Dim.Render("Timer loop stopped."))
}

func (e *Engine) sessionPlan() (time.Duration, string) {
	if e.state == StateBreak {
		return e.cfg.BreakDuration, StateBreak.String()
	}
	return e.cfg.WorkDuration, StateWork.String()
}

// runSession counts one session attempt down, sampling the command
// channel once per tick. A paused attempt retains no elapsed time; the
// session starts over on resume.
func (e *Engine) runSession() {
	duration, label := e.sessionPlan()
	e.notifier.SessionStarted(label, e.completed+1)

	watch := NewStopwatch(e.clock)
	var elapsed time.Duration
	skipped := false

	for elapsed < duration {
		e.display.Update(duration - elapsed)

		select {
		case cmd, ok := <-e.commands:
			if !ok {
				// Input reader is gone; treat as quit.
				e.shutdown.Trigger()
			} else {
				skipped = e.applyCommand(cmd)
			}
		default:
		}
		if e.state == StatePaused || skipped || e.shutdown.Triggered() {
			break
		}

		e.clock.Sleep(config.TickInterval)
		elapsed = watch.Elapsed()
	}
	e.display.Done()

	if e.state == StatePaused {
		return
	}
	if !e.shutdown.Triggered() && elapsed >= duration {
		e.notifier.SessionFinished(label)
		e.completed++
	}
	if !e.shutdown.Triggered() {
		e.state = nextState(e.state)
	}
}

// applyCommand handles a command received mid-session and reports
// whether the session was skipped.
func (e *Engine) applyCommand(cmd Command) bool {
	switch cmd {
	case CommandPause:
		e.display.Done()
		fmt.Fprintln(e.out, e.theme.Notice.Render("Timer paused. Press 'r' to resume."))
		e.resumeState = e.state
		e.state = StatePaused
	case CommandSkip:
		e.display.Done()
		fmt.Fprintln(e.out, e.theme.Notice.Render("Skipping current session."))
		return true
	case CommandQuit:
		e.shutdown.Trigger()
	case CommandResume:
		// Already running.
	}
	return false
}

// waitWhilePaused blocks on the command channel so Resume and Quit
// wake the loop immediately, re-checking the shutdown flag at least
// every poll interval.
func (e *Engine) waitWhilePaused() {
	// Drain a pending command first so delivery order beats the timeout.
	select {
	case cmd, ok := <-e.commands:
		e.applyPausedCommand(cmd, ok)
		return
	default:
	}
	select {
	case cmd, ok := <-e.commands:
		e.applyPausedCommand(cmd, ok)
	case <-e.clock.After(config.PausedPollInterval):
	}
}

func (e *Engine) applyPausedCommand(cmd Command, ok bool) {
	if !ok {
		e.shutdown.Trigger()
		return
	}
	switch cmd {
	case CommandResume:
		e.state = e.resumeState
		fmt.Fprintln(e.out, e.theme.Notice.Render(fmt.Sprintf("Resuming %s session.", e.state)))
	case CommandSkip:
		fmt.Fprintln(e.out, e.theme.Notice.Render("Skipping current session."))
		e.state = nextState(e.resumeState)
	case CommandQuit:
		e.shutdown.Trigger()
	case CommandPause:
		// Already paused.
	}
}

// nextState advances the Work/Break alternation. Paused and Stopped
// never reach this point.
func nextState(s State) State {
	switch s {
	case StateWork:
		return StateBreak
	case StateBreak:
		return StateWork
	default:
		return s
	}
}
