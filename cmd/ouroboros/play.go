package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ouroboros/internal/core"
	"github.com/vovakirdan/ouroboros/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space          - Start / pause / resume
  Arrows, WASD   - Steer (turns immediately)
  Mouse drag     - Swipe to steer, click to pause
  ?              - Toggle help
  Q/Ctrl+C       - Quit

Examples:
  ouroboros play
  ouroboros play --seed 42
  ouroboros play --log-file ./ouroboros.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Get terminal size; the first WindowSizeMsg corrects it anyway
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: gameCfg.TickInterval(),
		Seed:         flagSeed,
	}

	logger, closeLog, err := openPlayLog(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Debug("starting game", "grid", gameCfg.GridSize, "tick", rc.TickInterval, "seed", rc.Seed)

	if err := tui.Run(rc, gameCfg, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// openPlayLog returns the logger for local play. Stdout belongs to the
// game screen, so without a log file output is discarded.
func openPlayLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "ouroboros",
	})
	return logger, func() { f.Close() }, nil
}
