package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var flagPlayPilot string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Space/Up   - Flap
  Enter      - Start
  P/Esc      - Pause
  R          - Restart
  Ctrl+S     - Screenshot to ~/.flappy/screenshots
  ?          - More help
  Q/Ctrl+C   - Quit

With --pilot the game starts at once and the pilot flaps for you.
Logs are only written when --log-file is given.

Examples:
  flappy play
  flappy play --seed 42
  flappy play --pilot seeker
  flappy play --config ./my-flappy.yaml --fps 30`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayPilot, "pilot", "", "Let a pilot play (see 'flappy pilots')")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, src, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var pilot registry.Pilot
	if flagPlayPilot != "" {
		if pilot, err = registry.Create(flagPlayPilot); err != nil {
			return fmt.Errorf("%w (run 'flappy pilots' to see available pilots)", err)
		}
	}

	// Logs on stderr would corrupt the alternate screen
	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = cfg.Display.TickRate
	rt.Seed = flagSeed

	logger.Info("starting", "config", src, "cols", rt.ScreenW, "rows", rt.ScreenH, "fps", rt.TickRate)

	return tui.Run(tui.Options{
		Config:  cfg,
		Runtime: rt,
		Pilot:   pilot,
		Logger:  logger,
	})
}
