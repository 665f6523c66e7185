package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing.

Controls:
  Space/Up/W/Enter - Flap (also starts and restarts)
  Left click       - Flap
  Q/Ctrl+C         - Quit

Examples:
  flappy play
  flappy play --fps 30
  flappy play --config ./my-flappy.yaml --log-file flappy.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// Setup messages go to stderr before the alternate screen takes over.
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	var gameOut io.Writer = io.Discard
	if logFile != nil {
		defer logFile.Close()
		gameOut = logFile
	}
	gameLogger, err := newLogger(gameOut)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := []flappy.Option{flappy.WithLogger(gameLogger)}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
		opts = append(opts, flappy.WithStore(store))
	}

	game := flappy.New(cfg, opts...)
	gameLogger.Info("starting", "cols", width, "rows", height, "fps", flagFPS, "best", game.State().Best)

	sessions, err := tui.Run(game, gameLogger, runtime)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if len(sessions) > 0 {
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderScoreboard("Flappy Bird", game.State().Best, sessions, width))
	}
	return nil
}

var _ tui.Game = (*flappy.Game)(nil)
