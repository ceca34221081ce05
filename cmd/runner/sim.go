package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/thor-runner/internal/core"
	"github.com/vovakirdan/thor-runner/internal/games/runner"
	"github.com/vovakirdan/thor-runner/internal/loop"
	"github.com/vovakirdan/thor-runner/internal/registry"
	"github.com/vovakirdan/thor-runner/internal/storage"
)

var (
	flagSimRuns     int
	flagSimFrames   int
	flagSimSave     bool
	flagSimRealtime bool
	flagSimVerbose  bool
)

var simCmd = &cobra.Command{
	Use:   "sim [variant]",
	Short: "Run headless autopilot sessions",
	Long: `Run sessions without a terminal UI, driven by a reflex autopilot.
Useful to check balance after editing the config: every run is logged
and a summary is printed at the end. Run i uses seed --seed + i.

Examples:
  thor-runner sim
  thor-runner sim --runs 50 --seed 1
  thor-runner sim thor_classic --difficulty hard --save`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 10, "Number of sessions to simulate")
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 60*60*10, "Frame budget per session (0 = unlimited)")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record finished runs in the run history")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace frames at --fps instead of running flat out")
	simCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Log jumps, coins and strikes")
}

// simSummary aggregates finished sessions.
type simSummary struct {
	runs, wins, over int
	best, total      int
}

func (s *simSummary) add(state core.GameState) {
	s.runs++
	s.total += state.Score
	s.best = max(s.best, state.Score)
	switch state.Phase {
	case core.PhaseWon:
		s.wins++
	case core.PhaseGameOver:
		s.over++
	}
}

func (s simSummary) average() float64 {
	if s.runs == 0 {
		return 0
	}
	return float64(s.total) / float64(s.runs)
}

func runSim(_ *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "thor-sim",
	})
	if flagSimVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	gameID := runner.IDThor
	if len(args) > 0 {
		gameID = args[0]
	}
	checkConfig()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var store *storage.Store
	if flagSimSave {
		if store = openStore(); store != nil {
			defer store.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sum simSummary
	for i := range flagSimRuns {
		res, err := simulate(ctx, logger, gameID, seed+int64(i))
		if errors.Is(err, context.Canceled) {
			logger.Warn("interrupted", "completed", sum.runs)
			break
		}
		if err != nil {
			logger.Error("simulation failed", "error", err)
			os.Exit(1)
		}

		logger.Info("run finished",
			"run", i+1,
			"seed", seed+int64(i),
			"outcome", res.State.Phase,
			"score", res.State.Score,
			"frames", res.State.Frames,
			"speed", fmt.Sprintf("%.2f", res.State.Speed),
			"jumps", res.Jumps,
			"coins", res.Coins,
			"kills", res.Kills,
		)
		sum.add(res.State)

		if store != nil && res.State.Phase.Terminal() {
			saveSimRun(logger, store, gameID, res.State)
		}
	}

	fmt.Printf("%d runs: %d won, %d lost, %d out of frames\n",
		sum.runs, sum.wins, sum.over, sum.runs-sum.wins-sum.over)
	fmt.Printf("best %d, average %.1f\n", sum.best, sum.average())
}

// simulate plays one session to its end with the autopilot.
func simulate(ctx context.Context, logger *log.Logger, gameID string, seed int64) (loop.Result, error) {
	g, err := registry.Create(gameID)
	if err != nil {
		return loop.Result{}, err
	}
	rg, ok := g.(*runner.Game)
	if !ok {
		return loop.Result{}, fmt.Errorf("variant %q cannot be flown by the autopilot", gameID)
	}
	rg.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed})

	opts := []loop.Option{
		loop.WithClock(loop.NewFixedClock(flagFPS)),
		loop.WithPilot(loop.NewAutopilot(rg)),
		loop.WithEventHandler(func(e core.Event) {
			switch e.(type) {
			case core.JumpedEvent:
				logger.Debug("jump", "seed", seed)
			case core.CoinCollectedEvent:
				logger.Debug("coin", "seed", seed)
			case core.EnemyDefeatedEvent:
				logger.Debug("strike", "seed", seed)
			}
		}),
	}
	if flagSimRealtime && flagFPS > 0 {
		opts = append(opts, loop.WithPace(time.Second/time.Duration(flagFPS)))
	}

	return loop.NewDriver(rg, opts...).Run(ctx, flagSimFrames)
}

func saveSimRun(logger *log.Logger, store *storage.Store, gameID string, state core.GameState) {
	outcome := storage.OutcomeOver
	if state.Phase == core.PhaseWon {
		outcome = storage.OutcomeWon
	}
	_, err := store.SaveRun(storage.RunEntry{
		GameID:  gameID,
		Score:   state.Score,
		Outcome: outcome,
		Frames:  state.Frames,
		Speed:   state.Speed,
	})
	if err != nil {
		logger.Warn("could not save run", "error", err)
	}
}
