package config

import "time"

// Timer defaults and granularity.
const (
	DefaultWorkDuration  = 25 * time.Minute
	DefaultBreakDuration = 5 * time.Minute
	TickInterval         = time.Second
	PausedPollInterval   = 100 * time.Millisecond
)

// Command delivery.
const (
	// CommandBuffer bounds the command channel. The timer loop drains one
	// command per tick, so rapid keystrokes queue here.
	CommandBuffer = 8
)

// Audible cue settings.
const (
	ChimeSampleRate = 44100
	ChimeFrequency  = 880.0
	ChimeDuration   = 150 * time.Millisecond
	FallbackPlayer  = "paplay"
	FallbackSound   = "/usr/share/sounds/freedesktop/stereo/complete.oga"
)

// Application settings.
const (
	AppName          = "pomo"
	SettingsFileName = "settings.yaml"
)
