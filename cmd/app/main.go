package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/input"
	"github.com/akyairhashvil/pomo/internal/notify"
	"github.com/akyairhashvil/pomo/internal/render"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/akyairhashvil/pomo/internal/util"
)

// Build metadata, injected via -ldflags.
var (
	AppVersion = "dev"
	GitCommit  = "unknown"
	BuildTime  = "unknown"
)

func versionLabel() string {
	label := AppVersion
	if GitCommit != "unknown" || BuildTime != "unknown" {
		label = fmt.Sprintf("%s (%s %s)", AppVersion, GitCommit, BuildTime)
	}
	return label
}

func main() {
	theme := render.DefaultTheme()
	fmt.Println(theme.Banner.Render(fmt.Sprintf("--- Pomodoro Timer %s ---", versionLabel())))

	cfg, err := config.Load(config.AppName)
	util.LogError("load settings", err)

	// One scanner serves both the prompts and the command stream, so a
	// scripted stdin drives the whole run.
	scanner := bufio.NewScanner(os.Stdin)
	cfg = promptDurations(scanner, os.Stdout, cfg)
	util.LogError("save settings", config.Save(config.AppName, cfg))

	commands := make(chan timer.Command, config.CommandBuffer)
	shutdown := timer.NewShutdown()
	chime := notify.NewFallbackChime(notify.NewSpeakerChime(), notify.NewPlayerChime())
	notifier := notify.NewConsoleNotifier(os.Stdout, chime)

	engine := timer.NewEngine(cfg, commands, shutdown, notifier, os.Stdout)
	done := make(chan struct{})
	go func() {
		engine.Run()
		close(done)
	}()

	input.NewReader(scanner, os.Stdout, commands, shutdown).Run()

	<-done
	fmt.Println("Pomodoro timer finished. Goodbye!")
}

// promptDurations asks for the two session lengths. Blank, unparsable,
// or non-positive answers keep the current value.
func promptDurations(scanner *bufio.Scanner, out io.Writer, base config.Config) config.Config {
	cfg := base

	fmt.Fprintf(out, "Enter work duration (minutes, default %s): ", render.FormatDuration(cfg.WorkDuration))
	if scanner.Scan() {
		cfg.WorkDuration = config.ParseMinutes(scanner.Text(), cfg.WorkDuration)
	}

	fmt.Fprintf(out, "Enter break duration (minutes, default %s): ", render.FormatDuration(cfg.BreakDuration))
	if scanner.Scan() {
		cfg.BreakDuration = config.ParseMinutes(scanner.Text(), cfg.BreakDuration)
	}

	return cfg
}
