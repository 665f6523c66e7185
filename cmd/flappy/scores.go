package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagReset bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score",
	Long: `Display the persisted best score.

Only the best score is stored. Sessions of a single run are listed when
'flappy play' exits.

Examples:
  flappy scores
  flappy scores --reset`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the best score")
}

func runScores(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := stderrLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	key := cfg.Storage.BestScoreKey

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	if flagReset {
		if err := store.Delete(key); err != nil {
			return err
		}
		logger.Info("best score cleared", "db", flagDBPath)
		return nil
	}

	best, err := flappy.LoadBestScore(store, key)
	if err != nil {
		logger.Warn("could not read best score", "error", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Best: %d\n", best)
	return nil
}
