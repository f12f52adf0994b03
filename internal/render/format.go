package render

import (
	"fmt"
	"time"
)

// FormatTimeRemaining formats remaining time as MM:SS, floored to whole
// seconds. Negative remainders clamp to 00:00.
func FormatTimeRemaining(remaining time.Duration) string {
	if remaining <= 0 {
		return "00:00"
	}
	total := int(remaining.Seconds())
	mins := total / 60
	secs := total % 60
	return fmt.Sprintf("%02d:%02d", mins, secs)
}

// FormatDuration formats a duration for prompts (e.g., "25m", "1h 30m").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatSessionBanner renders the banner line announcing a session.
func FormatSessionBanner(label string, ordinal int) string {
	return fmt.Sprintf("--- %s Session %d Started ---", label, ordinal)
}

// FormatSessionFinished renders the banner line closing a session.
func FormatSessionFinished(label string) string {
	return fmt.Sprintf("--- %s Session Finished! ---", label)
}
