package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// fakeGame records what the model asks of it.
type fakeGame struct {
	resets  []core.RuntimeConfig
	resizes [][2]int
	inputs  []bool // Whether each step saw a flap
	next    core.StepResult
}

func (g *fakeGame) ID() string { return "fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) { g.resets = append(g.resets, cfg) }

func (g *fakeGame) Resize(cols, rows int) { g.resizes = append(g.resizes, [2]int{cols, rows}) }

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Has(core.ActionFlap))
	res := g.next
	g.next = core.StepResult{State: res.State}
	return res
}

func newTestModel(g *fakeGame) Model {
	return NewModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1})
}

func TestNewModelResetsGame(t *testing.T) {
	g := &fakeGame{}
	newTestModel(g)

	if len(g.resets) != 1 {
		t.Fatalf("expected one Reset, got %d", len(g.resets))
	}
	cfg := g.resets[0]
	if cfg.ScreenW != 40 || cfg.ScreenH != 20-helpRows || cfg.Seed != 1 {
		t.Errorf("Reset config = %+v", cfg)
	}
}

func TestModelFlapReachesNextTick(t *testing.T) {
	g := &fakeGame{}
	var m tea.Model = newTestModel(g)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	m, _ = m.Update(TickMsg{})

	if len(g.inputs) != 2 || !g.inputs[0] || g.inputs[1] {
		t.Errorf("flap should reach exactly the next step, got %v", g.inputs)
	}

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(TickMsg{})
	if !g.inputs[2] {
		t.Error("mouse press should flap")
	}
}

func TestModelResize(t *testing.T) {
	g := &fakeGame{}
	var m tea.Model = newTestModel(g)

	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	if len(g.resizes) != 1 || g.resizes[0] != [2]int{100, 50 - helpRows} {
		t.Errorf("resizes = %v", g.resizes)
	}
	if len(g.resets) != 1 {
		t.Error("resize must not reset the game")
	}
	if !strings.Contains(m.View(), "fake") {
		t.Error("view should contain the rendered game")
	}
}

func TestModelKeepsSessionsInMemory(t *testing.T) {
	g := &fakeGame{}
	var m tea.Model = newTestModel(g)

	for _, score := range []int{4, 0, 9} {
		g.next = core.StepResult{
			State:        core.GameState{Score: score, Best: 9, Started: true, GameOver: true},
			SessionEnded: true,
			NewBest:      score == 9,
		}
		m, _ = m.Update(TickMsg{})
	}
	// Ticks without a session ending add nothing.
	m, _ = m.Update(TickMsg{})

	sessions := m.(Model).Sessions()
	if len(sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %+v", sessions)
	}
	for i, want := range []int{4, 0, 9} {
		if sessions[i].Score != want {
			t.Errorf("session %d score = %d, expected %d", i, sessions[i].Score, want)
		}
		if sessions[i].EndedAt.IsZero() {
			t.Errorf("session %d has no end time", i)
		}
	}
	if sessions[0].NewBest || !sessions[2].NewBest {
		t.Errorf("NewBest flags = %v, %v", sessions[0].NewBest, sessions[2].NewBest)
	}
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	var m tea.Model = newTestModel(g)

	m, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
