// Package timer implements the countdown state machine at the heart of
// the application: the Work/Break alternation, the command-driven
// transitions, and the shared shutdown flag coordinating the timer loop
// with the input reader.
package timer

import (
	"errors"
	"strings"
)

// State is the mode the timer loop is in. Exactly one is active at a
// time, and only the timer loop mutates it.
type State int

const (
	StateWork State = iota
	StateBreak
	StatePaused
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateWork:
		return "Work"
	case StateBreak:
		return "Break"
	case StatePaused:
		return "Paused"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Command is a user instruction delivered from the input reader to the
// timer loop. Each value is consumed at most once.
type Command int

const (
	CommandPause Command = iota
	CommandResume
	CommandSkip
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandPause:
		return "pause"
	case CommandResume:
		return "resume"
	case CommandSkip:
		return "skip"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ErrUnknownCommand reports an input token with no command mapping.
var ErrUnknownCommand = errors.New("unknown command")

// ParseCommand maps a line of input to a Command. Tokens are trimmed
// and case-insensitive: p, r, s, q.
func ParseCommand(token string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "p":
		return CommandPause, nil
	case "r":
		return CommandResume, nil
	case "s":
		return CommandSkip, nil
	case "q":
		return CommandQuit, nil
	default:
		return 0, ErrUnknownCommand
	}
}
