package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the effective configuration as YAML",
	Long: `Prints the configuration flappy would run with, after the search order
(--config, ~/.flappy/config.yaml, ./configs/flappy.yaml, built-in defaults)
and any --fps override. The output is a valid config file.`,
	Args: cobra.NoArgs,
	RunE: runConfigPrint,
}

func init() {
	configCmd.AddCommand(configPrintCmd)
}

func runConfigPrint(cmd *cobra.Command, _ []string) error {
	cfg, src, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", src)
	_, err = out.Write(data)
	return err
}
