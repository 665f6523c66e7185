package flappy

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Step advances the world by one frame covering dt of simulated time.
// It is a no-op unless a session is active and a viewport has been applied.
//
// Order matters: the player moves before collision testing, and scoring
// runs before culling so an obstacle passed on its last visible frame still
// counts.
func (w *World) Step(dt time.Duration) StepEvents {
	var ev StepEvents

	if !w.sized {
		return ev
	}
	if w.pendingImpulse {
		w.pendingImpulse = false
		w.Impulse()
	}
	if w.phase != PhaseActive {
		return ev
	}

	w.integratePlayer()
	w.ageParticles()

	w.elapsed += dt
	ev.Spawned = w.spawnObstacles()

	ev.Scored = w.advanceObstacles()
	w.cullObstacles()

	w.advanceGround()
	w.advanceDecorations()

	if w.collides() {
		w.endSession(&ev)
	}

	w.checkInvariants()
	return ev
}

// integratePlayer applies gravity and derives the display tilt. The tilt is
// computed from the unscaled velocity so it does not depend on the viewport.
func (w *World) integratePlayer() {
	m := w.metrics
	p := &w.player

	p.Vel += m.Gravity
	p.Y += p.Vel

	phys := w.cfg.Physics
	p.Rotation = core.ClampF(p.Vel/m.Scale*phys.RotationFactor, phys.MinRotation, phys.MaxRotation)
}

// advanceGround scrolls the ground pattern at obstacle speed.
func (w *World) advanceGround() {
	m := w.metrics
	if m.GroundPattern <= 0 {
		return
	}
	w.groundOffset = math.Mod(w.groundOffset+m.ObstacleSpeed, m.GroundPattern)
}
