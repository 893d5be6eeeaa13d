package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

var (
	flagSimPilot    string
	flagSimRuns     int
	flagSimMaxTicks int
	flagSimWidth    int
	flagSimHeight   int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless sessions with a pilot",
	Long: `Plays sessions without a terminal UI, as fast as possible, on virtual
time. Each run uses the next seed after --seed (skipping 0), so results are repeatable.
The play area matches what 'play' would use on a terminal of
--width x --height cells.

Examples:
  flappy sim
  flappy sim --pilot metronome --runs 20
  flappy sim --seed 42 --max-ticks 3600 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	defaults := core.DefaultConfig()
	simCmd.Flags().StringVar(&flagSimPilot, "pilot", "seeker", "Pilot to fly with (see 'flappy pilots')")
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 5, "Number of sessions")
	simCmd.Flags().IntVar(&flagSimMaxTicks, "max-ticks", sim.DefaultMaxTicks, "Stop a session after this many ticks")
	simCmd.Flags().IntVar(&flagSimWidth, "width", defaults.ScreenW, "Terminal width in cells")
	simCmd.Flags().IntVar(&flagSimHeight, "height", defaults.ScreenH, "Terminal height in cells")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	pilot, err := registry.Create(flagSimPilot)
	if err != nil {
		return fmt.Errorf("%w (run 'flappy pilots' to see available pilots)", err)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	results, err := sim.RunMany(cmd.Context(), sim.Options{
		Config:   cfg,
		Area:     tui.PlayArea(cfg.Display, flagSimWidth, flagSimHeight),
		Seed:     flagSeed,
		Pilot:    pilot,
		MaxTicks: flagSimMaxTicks,
		Logger:   logger,
	}, flagSimRuns)
	if len(results) > 0 {
		printResults(cmd, results)
	}
	return err
}

// printResults writes a results table and a summary line.
func printResults(cmd *cobra.Command, results []sim.Result) {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Seed", Width: 20},
		{Title: "Score", Width: 7},
		{Title: "Ticks", Width: 8},
		{Title: "Time", Width: 10},
		{Title: "Outcome", Width: 10},
	}

	rows := make([]table.Row, len(results))
	for i, r := range results {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Seed),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Ticks),
			r.Elapsed.Round(10 * time.Millisecond).String(),
			r.Outcome(),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	st := sim.Summarize(results)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, t.View())
	fmt.Fprintf(out, "\npilot %s  runs %d  best %d  mean %.1f  mean ticks %.0f\n",
		results[0].Pilot, st.Runs, st.Best, st.Mean, st.MeanTicks)
}
