package flappy

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// GameID is used for CLI output and the score ledger.
const GameID = "flappy"

// Game implements the platform game contract on top of World.
type Game struct {
	cfg     config.FlappyConfig
	runtime core.RuntimeConfig
	world   *World
	store   KeyValueStore
	logger  *log.Logger
	rng     RandSource // Fixed source from WithRand; nil means seed per Reset
	best    int
	tick    int
}

// Option configures a Game.
type Option func(*Game)

// WithStore persists the best score in kv.
func WithStore(kv KeyValueStore) Option {
	return func(g *Game) { g.store = kv }
}

// WithLogger sets the logger used for persistence problems.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithRand replaces the seeded random source, mainly for tests that need
// exact obstacle placement.
func WithRand(r RandSource) Option {
	return func(g *Game) { g.rng = r }
}

// New creates a game and reads the persisted best score once. An
// unavailable or corrupt store leaves the best score at 0.
func New(cfg config.FlappyConfig, opts ...Option) *Game {
	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	best, err := LoadBestScore(g.store, cfg.Storage.BestScoreKey)
	if err != nil {
		g.logger.Warn("could not read best score, starting from 0", "error", err)
	}
	g.best = best

	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset creates a fresh world in the not-started phase, sized for the
// runtime screen. A zero screen size leaves the world unsized until Resize.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.tick = 0

	rng := g.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	if g.world != nil {
		g.best = g.world.Best()
	}
	g.world = NewWorld(g.cfg, rng, g.best)

	if cfg.ScreenW > 0 && cfg.ScreenH > 0 {
		g.Resize(cfg.ScreenW, cfg.ScreenH)
	}
}

// Resize rescales the playfield for a terminal of cols x rows cells.
func (g *Game) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	g.runtime.ScreenW = cols
	g.runtime.ScreenH = rows

	w, h := g.world.resolver.TerminalViewport(cols, rows)
	g.world.Resize(w, h)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionFlap) {
		g.world.Impulse()
	}

	ev := g.world.Step(g.runtime.TickDuration())
	if ev.NewBest {
		g.persistBest()
	}

	return core.StepResult{
		State:        g.State(),
		SessionEnded: ev.SessionEnded,
		NewBest:      ev.NewBest,
	}
}

// persistBest writes the new best score. Failures are logged and otherwise
// ignored; the in-memory best stays authoritative for this run.
func (g *Game) persistBest() {
	best := g.world.Best()
	if err := SaveBestScore(g.store, g.cfg.Storage.BestScoreKey, best); err != nil {
		g.logger.Warn("could not save best score", "best", best, "error", err)
		return
	}
	g.logger.Debug("new best score saved", "best", best)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := g.world.Phase()
	return core.GameState{
		Score:    g.world.Score(),
		Best:     g.world.Best(),
		Started:  phase != PhaseNotStarted,
		GameOver: phase == PhaseEnded,
	}
}

// Snapshot returns a read-only copy of the world for rendering.
func (g *Game) Snapshot() Snapshot {
	return g.world.Snapshot()
}

// Ticks returns the number of ticks since the last Reset.
func (g *Game) Ticks() int {
	return g.tick
}
