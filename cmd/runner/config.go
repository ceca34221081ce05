package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/thor-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default runner configuration",
	Long: `Print the built-in runner.yaml. Save it to
~/.thor-runner/configs/runner.yaml or ./configs/runner.yaml to override
values, or pass any file with --config.

Examples:
  thor-runner config > ~/.thor-runner/configs/runner.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}
