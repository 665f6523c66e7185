// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
//
// The simulation lives in World and is driven one frame at a time; Game wires
// it to the platform (input frames, persistence, rendering).
package flappy

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Phase is the session state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseActive
	PhaseEnded
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseActive:
		return "active"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// RandSource supplies uniform values in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// Player is the bird. Y is the centre of the sprite.
type Player struct {
	X, Y     float64
	W, H     float64
	Vel      float64 // Vertical velocity, negative = up
	Rotation float64 // Display tilt in degrees
}

// Bounds returns the sprite rectangle.
func (p Player) Bounds() core.Rect {
	return core.CenteredRect(p.X, p.Y, p.W, p.H)
}

// Obstacle is a pipe pair with a gap between GapTop and GapBottom.
type Obstacle struct {
	X         float64 // Left edge
	GapTop    float64 // Bottom of the upper pipe
	GapBottom float64 // Top of the lower pipe
	Passed    bool    // Whether the player has passed this pipe (for scoring)
}

// TopRect returns the collision rectangle for the upper pipe.
func (o Obstacle) TopRect(m Metrics) core.Rect {
	return core.NewRect(o.X, 0, m.ObstacleWidth, o.GapTop)
}

// BottomRect returns the collision rectangle for the lower pipe, which ends
// at the ground line.
func (o Obstacle) BottomRect(m Metrics) core.Rect {
	return core.NewRect(o.X, o.GapBottom, m.ObstacleWidth, m.GroundY()-o.GapBottom)
}

// Right returns the x-coordinate of the pipe's right edge.
func (o Obstacle) Right(m Metrics) float64 {
	return o.X + m.ObstacleWidth
}

// Particle is a cosmetic trail dot.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int // Remaining frames
	Size   float64
}

// Decoration is a drifting background cloud.
type Decoration struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// StepEvents reports what happened during one World.Step.
type StepEvents struct {
	Scored       int  // Obstacles passed this frame
	Spawned      bool // An obstacle was spawned this frame
	SessionEnded bool
	NewBest      bool
}

// World is the explicit simulation context: every piece of mutable game
// state lives here and is only changed by its methods.
type World struct {
	cfg      config.FlappyConfig
	resolver Resolver
	rng      RandSource

	metrics Metrics
	sized   bool

	phase  Phase
	score  int
	best   int
	player Player

	obstacles   []Obstacle
	particles   []Particle
	decorations []Decoration

	elapsed      time.Duration // Simulated time since the session started
	lastSpawn    time.Duration
	groundOffset float64

	pendingImpulse bool
	culledPassed   int // Passed obstacles already removed by culling
	spawned        int // Obstacles spawned this session
}

// NewWorld creates an unsized world in the not-started phase.
// best is the previously persisted best score.
func NewWorld(cfg config.FlappyConfig, rng RandSource, best int) *World {
	return &World{
		cfg:       cfg,
		resolver:  NewResolver(cfg),
		rng:       rng,
		phase:     PhaseNotStarted,
		best:      max(best, 0),
		obstacles: make([]Obstacle, 0, 8),
	}
}

// Phase returns the current session state.
func (w *World) Phase() Phase { return w.phase }

// Score returns the current session score.
func (w *World) Score() int { return w.score }

// Best returns the best score ever achieved.
func (w *World) Best() int { return w.best }

// Sized reports whether a viewport has been applied.
func (w *World) Sized() bool { return w.sized }

// Metrics returns the current scaled metrics.
func (w *World) Metrics() Metrics { return w.metrics }

// Resize applies a new viewport (in pixels). The session phase is never
// changed. Decorations are reseeded; before the first session the player is
// re-centred, during or after a session the playfield is rescaled so that
// obstacles and the player keep their relative positions.
func (w *World) Resize(viewW, viewH float64) {
	old := w.metrics
	wasSized := w.sized

	w.metrics = w.resolver.Resolve(viewW, viewH)
	w.sized = true

	m := w.metrics
	w.player.X = m.PlayerX
	w.player.W = m.PlayerW
	w.player.H = m.PlayerH

	if w.phase == PhaseNotStarted || !wasSized {
		w.player.Y = m.Height / 2
	} else {
		w.rescale(old, m)
	}

	w.seedDecorations()
}

// rescale maps session entities from the old canvas onto the new one.
func (w *World) rescale(old, m Metrics) {
	rx := m.Width / old.Width
	ry := m.Height / old.Height
	rs := m.Scale / old.Scale

	w.player.Y *= ry
	w.player.Vel *= rs

	for i := range w.obstacles {
		o := &w.obstacles[i]
		o.X *= rx
		o.GapTop *= ry
		o.GapBottom = o.GapTop + m.Gap
	}
	for i := range w.particles {
		p := &w.particles[i]
		p.X *= rx
		p.Y *= ry
		p.VX *= rs
		p.VY *= rs
		p.Size *= rs
	}
	w.groundOffset = math.Mod(w.groundOffset*rs, m.GroundPattern)
}

// resetSession clears every transient entity for a new session.
func (w *World) resetSession() {
	w.player.X = w.metrics.PlayerX
	w.player.W = w.metrics.PlayerW
	w.player.H = w.metrics.PlayerH
	w.player.Y = w.metrics.Height / 2
	w.player.Vel = 0
	w.player.Rotation = 0

	w.obstacles = w.obstacles[:0]
	w.particles = w.particles[:0]
	w.score = 0
	w.elapsed = 0
	w.lastSpawn = 0
	w.culledPassed = 0
	w.spawned = 0
	w.phase = PhaseActive
}

// endSession moves to the ended phase and records a new best score.
func (w *World) endSession(ev *StepEvents) {
	w.phase = PhaseEnded
	ev.SessionEnded = true
	if w.score > w.best {
		w.best = w.score
		ev.NewBest = true
	}
}

// checkInvariants panics on states that can only come from a bug.
func (w *World) checkInvariants() {
	p := w.player
	for _, v := range []float64{p.X, p.Y, p.Vel, p.Rotation} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(fmt.Sprintf("flappy: non-finite player state %+v", p))
		}
	}
	for i := 1; i < len(w.obstacles); i++ {
		if w.obstacles[i].X < w.obstacles[i-1].X {
			panic(fmt.Sprintf("flappy: obstacles out of spawn order at %d", i))
		}
	}
	for _, pt := range w.particles {
		if pt.Life <= 0 {
			panic(fmt.Sprintf("flappy: particle with lifetime %d survived aging", pt.Life))
		}
	}
	passed := w.culledPassed
	for _, o := range w.obstacles {
		if o.Passed {
			passed++
		}
	}
	if passed != w.score || w.score < 0 {
		panic(fmt.Sprintf("flappy: score %d does not match %d passed obstacles", w.score, passed))
	}
}
