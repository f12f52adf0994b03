package timer

import (
	"errors"
	"testing"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		token string
		want  Command
	}{
		{"p", CommandPause},
		{"r", CommandResume},
		{"s", CommandSkip},
		{"q", CommandQuit},
		{"P", CommandPause},
		{" q ", CommandQuit},
		{"\tS\n", CommandSkip},
	}
	for _, tc := range cases {
		got, err := ParseCommand(tc.token)
		if err != nil {
			t.Fatalf("ParseCommand(%q) failed: %v", tc.token, err)
		}
		if got != tc.want {
			t.Fatalf("ParseCommand(%q) = %v, want %v", tc.token, got, tc.want)
		}
	}
}

func TestParseCommandRejectsUnknownTokens(t *testing.T) {
	for _, token := range []string{"", "pause", "x", "qq", "1"} {
		if _, err := ParseCommand(token); !errors.Is(err, ErrUnknownCommand) {
			t.Fatalf("ParseCommand(%q) err = %v, want ErrUnknownCommand", token, err)
		}
	}
}

func TestStateStrings(t *testing.T) {
	cases := map[State]string{
		StateWork:    "Work",
		StateBreak:   "Break",
		StatePaused:  "Paused",
		StateStopped: "Stopped",
		State(99):    "Unknown",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Fatalf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}

func TestNextStateAlternates(t *testing.T) {
	if nextState(StateWork) != StateBreak {
		t.Fatalf("Work should advance to Break")
	}
	if nextState(StateBreak) != StateWork {
		t.Fatalf("Break should advance to Work")
	}
	if nextState(StatePaused) != StatePaused {
		t.Fatalf("Paused must not advance")
	}
}
