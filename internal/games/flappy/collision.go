package flappy

// collides reports whether the player hit the ground, the ceiling or a pipe.
// Pipes are tested against a hitbox inset from the sprite on every side.
func (w *World) collides() bool {
	m := w.metrics
	body := w.player.Bounds()

	if body.Bottom() > m.GroundY() || body.Y < 0 {
		return true
	}

	hitbox := body.Inset(m.HitboxInset)
	for _, o := range w.obstacles {
		if hitbox.Intersects(o.TopRect(m)) || hitbox.Intersects(o.BottomRect(m)) {
			return true
		}
	}
	return false
}
