package flappy

// seedDecorations scatters a fresh set of clouds across the sky band.
func (w *World) seedDecorations() {
	m := w.metrics
	dc := w.cfg.Decorations

	w.decorations = w.decorations[:0]
	for i := 0; i < dc.Count; i++ {
		w.decorations = append(w.decorations, Decoration{
			X:     w.rng.Float64() * m.Width,
			Y:     w.cloudY(),
			Size:  m.S(dc.MinSize + w.rng.Float64()*(dc.MaxSize-dc.MinSize)),
			Speed: m.S(dc.MinSpeed + w.rng.Float64()*(dc.MaxSpeed-dc.MinSpeed)),
		})
	}
}

// advanceDecorations drifts clouds left and wraps the ones that left the
// screen back to the right edge at a new height.
func (w *World) advanceDecorations() {
	for i := range w.decorations {
		d := &w.decorations[i]
		d.X -= d.Speed
		if d.X+d.Size < 0 {
			d.X = w.metrics.Width + d.Size
			d.Y = w.cloudY()
		}
	}
}

func (w *World) cloudY() float64 {
	return w.rng.Float64() * w.metrics.Height * w.cfg.Decorations.SkyBand
}
