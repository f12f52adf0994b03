// Package notify announces session boundaries on the console and with
// a best-effort audible cue. Nothing here may block the timer loop or
// abort the process.
package notify

import (
	"fmt"
	"io"

	"github.com/akyairhashvil/pomo/internal/render"
	"github.com/akyairhashvil/pomo/internal/util"
	"github.com/charmbracelet/lipgloss"
)

const bell = "\a"

// ConsoleNotifier writes human-readable session lines, rings the
// terminal bell, and fires a chime in the background.
type ConsoleNotifier struct {
	out   io.Writer
	theme render.Theme
	chime Chime
}

// NewConsoleNotifier builds a notifier writing to out. A nil chime
// disables the audible cue.
func NewConsoleNotifier(out io.Writer, chime Chime) *ConsoleNotifier {
	return &ConsoleNotifier{out: out, theme: render.DefaultTheme(), chime: chime}
}

// SessionStarted announces a session banner with the control hint.
func (n *ConsoleNotifier) SessionStarted(label string, ordinal int) {
	fmt.Fprintln(n.out)
	fmt.Fprintln(n.out, n.bannerStyle(label).Render(render.FormatSessionBanner(label, ordinal)))
	fmt.Fprint(n.out, bell)
	fmt.Fprintln(n.out, n.theme.Hint.Render("Press 'p' to pause, 'r' to resume, 's' to skip, 'q' to quit."))
	n.playChime()
}

// SessionFinished announces natural completion of a session.
func (n *ConsoleNotifier) SessionFinished(label string) {
	fmt.Fprint(n.out, bell)
	fmt.Fprintln(n.out, n.bannerStyle(label).Render(render.FormatSessionFinished(label)))
	n.playChime()
}

func (n *ConsoleNotifier) bannerStyle(label string) lipgloss.Style {
	if label == "Break" {
		return n.theme.Break
	}
	return n.theme.Banner
}

func (n *ConsoleNotifier) playChime() {
	if n.chime == nil {
		return
	}
	go func() {
		util.LogError("play chime", n.chime.Play())
	}()
}
