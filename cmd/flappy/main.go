// flappy is a Flappy Bird-style game for the terminal.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy sim               - Run headless sessions with a pilot
//	flappy pilots            - List available pilots
//	flappy config print      - Print the effective configuration
//
// Global flags (each also read from FLAPPY_<NAME>, or a ./.env file):
//
//	--fps <rate>         - Override the tick rate (default from config: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom config YAML
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Append logs to a file
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"

	// Import pilots to register them
	_ "github.com/vovakirdan/tui-flappy/internal/pilots"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flappy is a terminal rendition of Flappy Bird: flap through the gaps
between scrolling pipes for as long as you can.

Available commands:
  play     - Play in the terminal
  sim      - Run headless sessions with an automated pilot
  pilots   - Show all available pilots
  config   - Inspect the configuration

Examples:
  flappy play
  flappy play --pilot seeker
  flappy sim --pilot seeker --runs 10 --seed 42
  flappy config print --config ./my-flappy.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyEnv,
}

// envFlags maps global flags to the environment variables that can set them.
var envFlags = map[string]string{
	"config":    config.EnvConfig,
	"fps":       config.EnvFPS,
	"seed":      config.EnvSeed,
	"log-level": config.EnvLogLevel,
	"log-file":  config.EnvLogFile,
}

// applyEnv loads ./.env and fills every global flag not given on the
// command line from its environment variable.
func applyEnv(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(".env"); err != nil {
		return err
	}

	for name, env := range envFlags {
		if cmd.Flags().Changed(name) {
			continue
		}
		if v, ok := os.LookupEnv(env); ok {
			if err := cmd.Flags().Set(name, v); err != nil {
				return fmt.Errorf("%s: %w", env, err)
			}
		}
	}
	return nil
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(pilotsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game config and applies --fps when it was given.
func loadConfig(cmd *cobra.Command) (config.FlappyConfig, config.Source, error) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return cfg, src, err
	}

	if cmd.Flags().Changed("fps") {
		cfg.Display.TickRate = flagFPS
		if err := cfg.Validate(); err != nil {
			return cfg, src, fmt.Errorf("--fps: %w", err)
		}
	}
	return cfg, src, nil
}

// newLogger builds the command logger. With --log-file logs are appended
// to that file; otherwise they go to fallback, or nowhere if it is nil.
// The returned function closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("--log-level: %w", err)
	}

	w := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}
	if w == nil {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
	return logger, closeFn, nil
}
