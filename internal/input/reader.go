// Package input reads line-oriented commands from standard input and
// forwards them to the timer loop over the command channel.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/akyairhashvil/pomo/internal/render"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/akyairhashvil/pomo/internal/util"
)

const usageHint = "Unknown command. Use 'p' to pause, 'r' to resume, 's' to skip, 'q' to quit."

var errCommandDropped = errors.New("command queue full, keystroke dropped")

// Reader is the producing side of the command channel. It owns the
// channel and closes it when it stops, which the timer loop observes
// as a disconnect.
type Reader struct {
	scanner  *bufio.Scanner
	out      io.Writer
	commands chan<- timer.Command
	shutdown *timer.Shutdown
	theme    render.Theme
}

// NewReader builds a reader over an existing scanner so buffered input
// from the startup prompts is not lost.
func NewReader(scanner *bufio.Scanner, out io.Writer, commands chan<- timer.Command, shutdown *timer.Shutdown) *Reader {
	return &Reader{
		scanner:  scanner,
		out:      out,
		commands: commands,
		shutdown: shutdown,
		theme:    render.DefaultTheme(),
	}
}

// Run consumes input until Quit, end-of-stream, or shutdown. End of
// stream counts as Quit.
func (r *Reader) Run() {
	defer close(r.commands)

	for r.scanner.Scan() {
		if r.shutdown.Triggered() {
			return
		}
		cmd, err := timer.ParseCommand(r.scanner.Text())
		if err != nil {
			fmt.Fprintln(r.out, r.theme.Hint.Render(usageHint))
			continue
		}
		r.send(cmd)
		if cmd == timer.CommandQuit {
			r.shutdown.Trigger()
			return
		}
	}

	// EOF or read error on stdin.
	util.LogError("read input", r.scanner.Err())
	r.shutdown.Trigger()
}

// send queues a command without ever blocking the input loop. If the
// timer loop has fallen a full buffer behind, the keystroke is dropped
// and logged rather than treated as fatal.
func (r *Reader) send(cmd timer.Command) {
	select {
	case r.commands <- cmd:
	default:
		util.LogError(fmt.Sprintf("send %s", cmd), errCommandDropped)
	}
}
