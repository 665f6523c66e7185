package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// helpRows is the number of terminal rows kept for the help bar.
const helpRows = 1

// Game is the contract between the platform and a game implementation.
type Game interface {
	ID() string
	Reset(cfg core.RuntimeConfig)
	Resize(cols, rows int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
}

// Session is one finished session of the current process. Sessions are kept
// in memory only; the best score is the single persisted value.
type Session struct {
	Score   int
	NewBest bool
	EndedAt time.Time
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	sessions   []Session
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keys       *KeyMapper
	help       help.Model
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game and resets the
// game for the configured screen. logger may be nil.
func NewModel(game Game, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg.ScreenH = max(cfg.ScreenH-helpRows, 0)
	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
		help:       help.New(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickDuration())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.keys.MapMouse(msg) == core.ActionFlap {
			m.inputFrame.Set(core.ActionFlap)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize rescales the playfield. The session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpRows, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.logger.Debug("resized", "cols", m.config.ScreenW, "rows", m.config.ScreenH)

	return m, nil
}

// handleTick runs one simulation step with the input gathered since the
// previous tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.SessionEnded {
		m.recordSession(result)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickDuration())
}

// recordSession appends a finished session to the in-memory log.
func (m *Model) recordSession(result core.StepResult) {
	score := result.State.Score
	m.logger.Info("session ended", "game", m.game.ID(), "score", score, "best", result.State.Best, "new_best", result.NewBest)

	m.sessions = append(m.sessions, Session{
		Score:   score,
		NewBest: result.NewBest,
		EndedAt: time.Now(),
	})
}

// Sessions returns the sessions finished so far, oldest first.
func (m Model) Sessions() []Session {
	return m.sessions
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program with the given model and returns the
// sessions finished before the user quit.
func Run(game Game, logger *log.Logger, cfg core.RuntimeConfig) ([]Session, error) {
	model := NewModel(game, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse presses flap
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		return m.Sessions(), err
	}
	return nil, err
}
