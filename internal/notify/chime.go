package notify

import (
	"fmt"
	"os/exec"
	"sync"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/util"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Chime produces one audible cue. Implementations must return quickly;
// playback itself happens in the background.
type Chime interface {
	Play() error
}

// SpeakerChime synthesizes a short sine tone through the system mixer.
type SpeakerChime struct {
	initOnce sync.Once
	initErr  error
}

// NewSpeakerChime returns a chime backed by the beep speaker. The
// mixer is initialized lazily on first play.
func NewSpeakerChime() *SpeakerChime {
	return &SpeakerChime{}
}

func (c *SpeakerChime) Play() error {
	sr := beep.SampleRate(config.ChimeSampleRate)
	c.initOnce.Do(func() {
		c.initErr = speaker.Init(sr, sr.N(config.ChimeDuration))
	})
	if c.initErr != nil {
		return fmt.Errorf("init speaker: %w", c.initErr)
	}
	tone, err := generators.SineTone(sr, config.ChimeFrequency)
	if err != nil {
		return fmt.Errorf("synthesize tone: %w", err)
	}
	speaker.Play(beep.Take(sr.N(config.ChimeDuration), tone))
	return nil
}

// PlayerChime shells out to an OS audio player with a stock sound.
type PlayerChime struct {
	player string
	sound  string
}

// NewPlayerChime returns a chime that spawns the configured player.
func NewPlayerChime() *PlayerChime {
	return &PlayerChime{player: config.FallbackPlayer, sound: config.FallbackSound}
}

func (c *PlayerChime) Play() error {
	cmd := exec.Command(c.player, c.sound)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn %s: %w", c.player, err)
	}
	// Reap the detached player; its exit status is nobody's problem.
	go func() { _ = cmd.Wait() }()
	return nil
}

// FallbackChime tries a primary chime and falls back on failure. The
// primary's error is logged, never escalated.
type FallbackChime struct {
	primary  Chime
	fallback Chime
}

func NewFallbackChime(primary, fallback Chime) *FallbackChime {
	return &FallbackChime{primary: primary, fallback: fallback}
}

func (c *FallbackChime) Play() error {
	err := c.primary.Play()
	if err == nil {
		return nil
	}
	util.LogError("primary chime", err)
	return c.fallback.Play()
}
