package flappy

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestResolverScale(t *testing.T) {
	r := NewResolver(config.DefaultFlappyConfig())

	tests := []struct {
		name         string
		viewW, viewH float64
		scale        float64
		canvasW      float64
		canvasH      float64
	}{
		{"design size", 400, 600, 1, 400, 600},
		{"wide viewport limited by height", 1000, 600, 1, 400, 600},
		{"tall viewport limited by width", 300, 900, 0.75, 300, 450},
		{"clamped up", 100, 100, 0.5, 200, 300},
		{"clamped down", 2000, 3000, 1.5, 600, 900},
		{"canvas floored", 225, 1000, 0.5625, 225, 337},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := r.Resolve(tc.viewW, tc.viewH)
			if diff := m.Scale - tc.scale; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Scale = %v, expected %v", m.Scale, tc.scale)
			}
			if m.Width != tc.canvasW || m.Height != tc.canvasH {
				t.Errorf("canvas = %vx%v, expected %vx%v", m.Width, m.Height, tc.canvasW, tc.canvasH)
			}
		})
	}
}

func TestResolverMetrics(t *testing.T) {
	r := NewResolver(config.DefaultFlappyConfig())
	m := r.Resolve(600, 900)

	if m.Scale != 1.5 {
		t.Fatalf("Scale = %v, expected 1.5", m.Scale)
	}

	checks := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"gravity", m.Gravity, 0.75},
		{"impulse", m.Impulse, -13.5},
		{"speed", m.ObstacleSpeed, 4.5},
		{"gap", m.Gap, 240},
		{"obstacle width", m.ObstacleWidth, 105},
		{"ground", m.GroundHeight, 120},
		{"player x", m.PlayerX, 120},
		{"player w", m.PlayerW, 60},
		{"player h", m.PlayerH, 45},
		{"inset", m.HitboxInset, 7.5},
		{"ground y", m.GroundY(), 780},
		{"max gap top", m.MaxGapTop(), 900 - 240 - 120 - 120 - 30},
	}
	for _, c := range checks {
		if c.got != c.expected {
			t.Errorf("%s = %v, expected %v", c.name, c.got, c.expected)
		}
	}

	// Time-based values are not scaled.
	if m.SpawnInterval != 1500*time.Millisecond {
		t.Errorf("SpawnInterval = %v, expected 1.5s", m.SpawnInterval)
	}
}

func TestTerminalViewport(t *testing.T) {
	r := NewResolver(config.DefaultFlappyConfig())
	w, h := r.TerminalViewport(50, 38)
	if w != 400 || h != 608 {
		t.Errorf("TerminalViewport(50, 38) = %vx%v, expected 400x608", w, h)
	}
}
