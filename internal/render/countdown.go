package render

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// Countdown maintains the "Time remaining" display for the session in
// progress. On a terminal it rewrites a single line in place; on a pipe
// it emits one plain line per tick so scripted runs stay readable.
type Countdown struct {
	out       io.Writer
	theme     Theme
	live      bool
	lastWidth int
	active    bool
}

// NewCountdown builds a countdown display writing to out. Live in-place
// updates are used only when out is a terminal.
func NewCountdown(out io.Writer, theme Theme) *Countdown {
	live := false
	if f, ok := out.(*os.File); ok {
		live = term.IsTerminal(int(f.Fd()))
	}
	return &Countdown{out: out, theme: theme, live: live}
}

// NewCountdownWriter builds a countdown display with explicit live-mode
// behavior, for tests and non-file writers.
func NewCountdownWriter(out io.Writer, theme Theme, live bool) *Countdown {
	return &Countdown{out: out, theme: theme, live: live}
}

// Update redraws the remaining time for the current tick.
func (c *Countdown) Update(remaining time.Duration) {
	line := c.theme.Countdown.Render("Time remaining: " + FormatTimeRemaining(remaining))
	if !c.live {
		fmt.Fprintln(c.out, ansi.Strip(line))
		return
	}
	width := ansi.StringWidth(line)
	for width < c.lastWidth {
		line += " "
		width++
	}
	c.lastWidth = ansi.StringWidth(line)
	c.active = true
	fmt.Fprintf(c.out, "\r%s", line)
}

// Done terminates the in-place line, if one is pending, so the next
// write starts on a fresh row.
func (c *Countdown) Done() {
	if c.live && c.active {
		fmt.Fprintln(c.out)
	}
	c.active = false
	c.lastWidth = 0
}
