package flappy

// Impulse is the single player command. Before the first session and after
// a session ended it starts a fresh session; in every case it then sets the
// upward velocity and emits a particle burst.
//
// An impulse that arrives before any viewport was applied is held and
// replayed on the first step after sizing, unless a later impulse already
// consumed it.
func (w *World) Impulse() {
	if !w.sized {
		w.pendingImpulse = true
		return
	}
	w.pendingImpulse = false

	if w.phase != PhaseActive {
		w.resetSession()
	}

	w.player.Vel = w.metrics.Impulse
	w.burstParticles()
}
