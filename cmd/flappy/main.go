// flappy is a Flappy Bird-style game for the terminal.
//
// Usage:
//
//	flappy                      - Play (same as "flappy play")
//	flappy play                 - Play the game
//	flappy scores [-i]          - Show recorded sessions and the best score
//	flappy simulate --frames N  - Run the simulation headless
//	flappy config               - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.flappy/flappy.db)
//	--config <path>     - Use a custom tuning YAML
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file (play only logs there)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Guide the bird through the gaps between the pipes.
Every pipe you pass scores a point; touching a pipe, the ground or the
top of the screen ends the run.

Available commands:
  play      - Play the game (default)
  scores    - View recorded sessions and the best score
  simulate  - Run the simulation without a terminal
  config    - Print the effective configuration

Examples:
  flappy
  flappy play --seed 42
  flappy scores -i
  flappy simulate --frames 3600 --autopilot`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/flappy.db", "Path to the database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the structured logger for the given destination.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	}), nil
}

// openLogFile opens --log-file for appending. It returns a nil file when
// the flag is unset.
func openLogFile() (*os.File, error) {
	if flagLogFile == "" {
		return nil, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// loadConfig loads the tuning using the --config flag and the default
// search order.
func loadConfig(logger *log.Logger) (config.FlappyConfig, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	logger.Debug("config loaded", "path", flagConfig, "best_score_key", cfg.Storage.BestScoreKey)
	return cfg, nil
}

// openStore opens the database. Failures are logged and yield nil so the
// game still runs without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, continuing without persistence", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// stderrLogger is the logger for commands that do not run the TUI. Logs
// are also appended to --log-file when set.
func stderrLogger() (*log.Logger, func(), error) {
	logFile, err := openLogFile()
	if err != nil {
		return nil, nil, err
	}
	var out io.Writer = os.Stderr
	closer := func() {}
	if logFile != nil {
		out = io.MultiWriter(os.Stderr, logFile)
		closer = func() { logFile.Close() }
	}
	logger, err := newLogger(out)
	if err != nil {
		closer()
		return nil, nil, err
	}
	return logger, closer, nil
}
