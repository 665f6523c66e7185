package flappy

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Metrics holds every size and speed for one viewport, already multiplied
// by the scale. Durations and frame counts are not scaled.
type Metrics struct {
	Scale float64

	Width  float64 // Canvas width in pixels
	Height float64 // Canvas height in pixels

	Gravity       float64
	Impulse       float64
	ObstacleSpeed float64
	Gap           float64
	ObstacleWidth float64
	GroundHeight  float64
	GroundPattern float64
	MinGapTop     float64
	BottomMargin  float64

	PlayerX     float64
	PlayerW     float64
	PlayerH     float64
	HitboxInset float64

	SpawnInterval time.Duration
}

// GroundY returns the y coordinate of the ground line.
func (m Metrics) GroundY() float64 {
	return m.Height - m.GroundHeight
}

// MaxGapTop returns the largest gap-top offset a new obstacle may use.
// The gap keeps MinGapTop clearance from the ceiling and the same clearance
// plus BottomMargin from the ground.
func (m Metrics) MaxGapTop() float64 {
	return m.Height - m.Gap - m.MinGapTop - m.GroundHeight - m.BottomMargin
}

// S multiplies a design-resolution distance by the scale.
func (m Metrics) S(v float64) float64 {
	return v * m.Scale
}

// Resolver turns viewport sizes into Metrics.
type Resolver struct {
	cfg config.FlappyConfig
}

// NewResolver creates a resolver for the given tuning.
func NewResolver(cfg config.FlappyConfig) Resolver {
	return Resolver{cfg: cfg}
}

// Scale returns clamp(min(width ratio, height ratio), min, max) for a
// viewport measured in pixels, after removing the configured chrome margins.
func (r Resolver) Scale(viewW, viewH float64) float64 {
	d := r.cfg.Design
	sx := (viewW - d.MarginX) / d.Width
	sy := (viewH - d.MarginY) / d.Height
	return core.ClampF(math.Min(sx, sy), d.MinScale, d.MaxScale)
}

// Resolve computes the metrics for a viewport measured in pixels.
func (r Resolver) Resolve(viewW, viewH float64) Metrics {
	s := r.Scale(viewW, viewH)
	c := r.cfg

	return Metrics{
		Scale:  s,
		Width:  math.Floor(c.Design.Width * s),
		Height: math.Floor(c.Design.Height * s),

		Gravity:       c.Physics.Gravity * s,
		Impulse:       c.Physics.Impulse * s,
		ObstacleSpeed: c.Obstacles.Speed * s,
		Gap:           c.Obstacles.Gap * s,
		ObstacleWidth: c.Obstacles.Width * s,
		GroundHeight:  c.Ground.Height * s,
		GroundPattern: c.Ground.PatternWidth * s,
		MinGapTop:     c.Obstacles.MinGapTop * s,
		BottomMargin:  c.Obstacles.BottomMargin * s,

		PlayerX:     c.Player.X * s,
		PlayerW:     c.Player.Width * s,
		PlayerH:     c.Player.Height * s,
		HitboxInset: c.Player.HitboxInset * s,

		SpawnInterval: time.Duration(c.Obstacles.SpawnIntervalMs) * time.Millisecond,
	}
}

// TerminalViewport converts a terminal size in cells to a viewport in pixels
// using the configured cell size.
func (r Resolver) TerminalViewport(cols, rows int) (float64, float64) {
	return float64(cols) * r.cfg.Design.CellW, float64(rows) * r.cfg.Design.CellH
}
