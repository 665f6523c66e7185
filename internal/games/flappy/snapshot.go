package flappy

import "time"

// Snapshot is a read-only copy of everything the renderer draws. Mutating
// it never affects the world.
type Snapshot struct {
	Phase        Phase
	Sized        bool
	Score        int
	Best         int
	Metrics      Metrics
	Player       Player
	Obstacles    []Obstacle
	Particles    []Particle
	Decorations  []Decoration
	GroundOffset float64
	Elapsed      time.Duration
	Spawned      int
	Lifetime     int // Full particle lifetime, for fading
}

// Snapshot captures the current world state.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Phase:        w.phase,
		Sized:        w.sized,
		Score:        w.score,
		Best:         w.best,
		Metrics:      w.metrics,
		Player:       w.player,
		Obstacles:    append([]Obstacle(nil), w.obstacles...),
		Particles:    append([]Particle(nil), w.particles...),
		Decorations:  append([]Decoration(nil), w.decorations...),
		GroundOffset: w.groundOffset,
		Elapsed:      w.elapsed,
		Spawned:      w.spawned,
		Lifetime:     w.cfg.Particles.Lifetime,
	}
}

// NextObstacle returns the first obstacle that still overlaps or lies ahead
// of the bird. A scored pipe stays "next" until its tail clears the sprite.
func (s Snapshot) NextObstacle() (Obstacle, bool) {
	for _, o := range s.Obstacles {
		if o.Right(s.Metrics) > s.Player.X-s.Player.W/2 {
			return o, true
		}
	}
	return Obstacle{}, false
}
