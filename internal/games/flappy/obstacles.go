package flappy

// spawnObstacles adds one obstacle at the right edge once the spawn interval
// has elapsed since the previous spawn. Reports whether it spawned.
//
// The spawn clock advances by whole intervals so tick overshoot carries into
// the next spawn. A backlog longer than one interval is dropped.
func (w *World) spawnObstacles() bool {
	interval := w.metrics.SpawnInterval
	if w.elapsed-w.lastSpawn < interval {
		return false
	}

	w.obstacles = append(w.obstacles, w.newObstacle())
	w.lastSpawn += interval
	if w.elapsed-w.lastSpawn >= interval {
		w.lastSpawn = w.elapsed
	}
	w.spawned++
	return true
}

// newObstacle places a gap uniformly in [MinGapTop, MaxGapTop]. Very small
// canvases collapse the range to MinGapTop.
func (w *World) newObstacle() Obstacle {
	m := w.metrics

	gapTop := m.MinGapTop
	if span := m.MaxGapTop() - m.MinGapTop; span > 0 {
		gapTop += w.rng.Float64() * span
	}

	// Keep spawn order equal to left-to-right order even right after a
	// resize shrank the canvas.
	x := m.Width
	if n := len(w.obstacles); n > 0 && w.obstacles[n-1].X > x {
		x = w.obstacles[n-1].X
	}

	return Obstacle{
		X:         x,
		GapTop:    gapTop,
		GapBottom: gapTop + m.Gap,
	}
}

// advanceObstacles moves every obstacle left and scores each one the first
// frame its right edge is strictly left of the player's x.
// Returns the number of obstacles passed this frame.
func (w *World) advanceObstacles() int {
	m := w.metrics
	passed := 0

	for i := range w.obstacles {
		o := &w.obstacles[i]
		o.X -= m.ObstacleSpeed

		if !o.Passed && o.Right(m) < w.player.X {
			o.Passed = true
			passed++
		}
	}

	w.score += passed
	return passed
}

// cullObstacles removes obstacles whose right edge has left the screen.
func (w *World) cullObstacles() {
	m := w.metrics

	kept := w.obstacles[:0]
	for _, o := range w.obstacles {
		if o.Right(m) > 0 {
			kept = append(kept, o)
			continue
		}
		if o.Passed {
			w.culledPassed++
		}
	}
	w.obstacles = kept
}
