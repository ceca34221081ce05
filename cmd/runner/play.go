package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/thor-runner/internal/games/runner"
	"github.com/vovakirdan/thor-runner/internal/platform/tui"
	"github.com/vovakirdan/thor-runner/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: thor).

Controls:
  Space/Up/W   - Jump (hold for repeated jumps)
  Z/X          - Strike with Mjolnir
  Enter        - Start
  P            - Pause
  R            - Restart (after the run ends)
  M            - Mute sound effects
  Ctrl+S       - Save a screenshot
  Esc/B        - Leave (when paused or after the run)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower start, gentler ramp
  normal - The default curve
  hard   - Faster start, denser spawns
  fixed  - No speed ramp

Examples:
  thor-runner play
  thor-runner play thor_classic
  thor-runner play --difficulty hard --seed 42
  thor-runner play --config ./my-runner.toml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := runner.IDThor
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'thor-runner list' to see available variants.")
		os.Exit(1)
	}
	checkConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts, closeLog, err := interactiveOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Continue without history if the database is unavailable
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
