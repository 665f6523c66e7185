package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	flagFrames    int
	flagAutopilot bool
	flagCols      int
	flagRows      int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation without a terminal",
	Long: `Step the game headless for a number of frames and report the outcome.
Without --autopilot the bird flaps once and falls. The database is only
used when --db is given explicitly.

Examples:
  flappy simulate --frames 600
  flappy simulate --frames 36000 --autopilot --seed 7`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to simulate")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Steer through the gaps automatically")
	simulateCmd.Flags().IntVar(&flagCols, "cols", 50, "Virtual terminal width")
	simulateCmd.Flags().IntVar(&flagRows, "rows", 38, "Virtual terminal height")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagFrames < 0 {
		return fmt.Errorf("--frames must not be negative, got %d", flagFrames)
	}

	logger, closeLog, err := stderrLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	opts := []flappy.Option{flappy.WithLogger(logger)}
	if cmd.Flags().Changed("db") {
		if store := openStore(logger); store != nil {
			defer store.Close()
			opts = append(opts, flappy.WithStore(store))
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := flappy.New(cfg, opts...)
	game.Reset(core.RuntimeConfig{
		ScreenW:  flagCols,
		ScreenH:  flagRows,
		TickRate: flagFPS,
		Seed:     seed,
	})

	pilot := flappy.DropPilot()
	if flagAutopilot {
		pilot = flappy.Autopilot()
	}

	start := time.Now()
	sum := flappy.Simulate(game, flagFrames, pilot)

	logger.Info("simulation finished",
		"frames", sum.Frames,
		"seed", seed,
		"phase", sum.Phase,
		"score", sum.Score,
		"max_score", sum.MaxScore,
		"best", sum.Best,
		"sessions_ended", sum.Sessions,
		"obstacles_spawned", sum.Spawned,
		"took", time.Since(start),
	)
	return nil
}
