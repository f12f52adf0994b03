package testutil

import (
	"fmt"
	"strings"
	"sync"
)

// RecordingNotifier satisfies timer.Notifier and remembers every
// notification in order.
type RecordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *RecordingNotifier) SessionStarted(label string, ordinal int) {
	n.record(fmt.Sprintf("started %s %d", label, ordinal))
}

func (n *RecordingNotifier) SessionFinished(label string) {
	n.record(fmt.Sprintf("finished %s", label))
}

func (n *RecordingNotifier) record(event string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

// Events returns a copy of the notifications seen so far.
func (n *RecordingNotifier) Events() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.events))
	copy(out, n.events)
	return out
}

// Finished counts finish notifications.
func (n *RecordingNotifier) Finished() int {
	count := 0
	for _, e := range n.Events() {
		if strings.HasPrefix(e, "finished") {
			count++
		}
	}
	return count
}
