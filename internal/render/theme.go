// Package render owns the terminal look of the timer: the lipgloss
// theme, duration formatting, and the live countdown line.
package render

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Banner    lipgloss.Style
	Countdown lipgloss.Style
	Notice    lipgloss.Style
	Break     lipgloss.Style
	Hint      lipgloss.Style
	Dim       lipgloss.Style
}

// DefaultTheme mirrors the palette used across the dashboard tooling.
func DefaultTheme() Theme {
	return Theme{
		Banner:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Countdown: lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Notice:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Break:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
