package flappy

// burstParticles emits the flap trail behind the bird.
func (w *World) burstParticles() {
	m := w.metrics
	pc := w.cfg.Particles

	for i := 0; i < pc.Burst; i++ {
		w.particles = append(w.particles, Particle{
			X:    w.player.X,
			Y:    w.player.Y + w.player.H/2,
			VX:   m.S(-w.rng.Float64()*3 - 1),
			VY:   m.S(w.rng.Float64()*2 - 1),
			Life: pc.Lifetime,
			Size: m.S(pc.MinSize + w.rng.Float64()*(pc.MaxSize-pc.MinSize)),
		})
	}
}

// ageParticles moves every particle and drops the expired ones.
func (w *World) ageParticles() {
	kept := w.particles[:0]
	for _, p := range w.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	w.particles = kept
}
