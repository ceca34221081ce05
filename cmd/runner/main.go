// thor-runner is a side-scrolling Norse runner played in the terminal.
//
// Usage:
//
//	thor-runner play [variant]     - Play a variant (default: thor)
//	thor-runner menu               - Pick a variant interactively
//	thor-runner list               - List available variants
//	thor-runner scores <variant>   - Show the best runs of a variant
//	thor-runner serve              - Start SSH server for remote play
//	thor-runner sim [variant]      - Run headless autopilot sessions
//	thor-runner config             - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.thor-runner/runs.db)
//	--config <path>       - Custom runner config (YAML or TOML)
//	--difficulty <preset> - easy, normal, hard or fixed
//	--mute                - Start with sound effects off
//	--log <path>          - Write a debug log file
//	--plain               - Draw flat boxes instead of glyph sprites
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the runner to register its variants
	"github.com/vovakirdan/thor-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogPath    string
	flagPlain      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "thor-runner",
	Short: "Thor Runner - a Norse side-scroller in your terminal",
	Long: `Thor Runner is a side-scrolling action runner for the terminal.
Thor races across Midgard: jump the draugar, strike them down with
Mjolnir, grab coins, and once the score reaches 500 catch Loki.

Available commands:
  play     - Play a variant directly
  menu     - Interactive variant picker
  list     - Show all variants
  scores   - View the best runs
  serve    - Start SSH server for remote play
  sim      - Run headless autopilot sessions
  config   - Print the default configuration

Examples:
  thor-runner play
  thor-runner play thor_classic --difficulty hard
  thor-runner menu
  thor-runner serve --ssh :2222
  thor-runner sim --runs 20 --seed 7`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		runner.SetConfigPath(flagConfig)
		runner.SetDifficultyPreset(flagDifficulty)
		runner.SetPlainGraphics(flagPlain)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.thor-runner/runs.db", "Path to run history database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom runner config (YAML or TOML)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVar(&flagMute, "mute", false, "Start with sound effects off")
	pf.StringVar(&flagLogPath, "log", "", "Write a debug log to this file")
	pf.BoolVar(&flagPlain, "plain", false, "Draw flat boxes instead of glyph sprites")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
