package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	if got := RenderScreen(s); got != "abc\nde " {
		t.Errorf("RenderScreen() = %q", got)
	}
}

func TestRenderScreenColourRuns(t *testing.T) {
	s := core.NewScreen(8, 1)
	s.DrawTextColor(0, 0, "GAME", core.ColorGameOver)
	s.DrawTextColor(4, 0, "OVER", core.ColorScore)

	out := RenderScreen(s)
	for _, want := range []string{"GAME", "OVER"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected run %q in %q", want, out)
		}
	}
}

func TestEveryPaletteSlotHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorHint; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for colour %d", c)
		}
	}
}
