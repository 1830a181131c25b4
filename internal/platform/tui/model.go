package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/columns/internal/core"
	"github.com/vovakirdan/columns/internal/games/columns"
	"github.com/vovakirdan/columns/internal/games/columns/board"
)

// Model is the Bubble Tea model for a Columns session.
type Model struct {
	game     *columns.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	config   core.RuntimeConfig
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards game events.
func NewModel(game *columns.Game, keys KeyMap, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:   keys,
		help:   h,
		logger: logger,
		config: cfg,
	}
}

// Init starts the game and the gravity timer.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "seed", m.config.Seed, "interval", m.game.GravityInterval())
	return gravityCmd(m.game.GravityInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case GravityMsg:
		return m.handleGravity()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.game.State().Score)
		return m, tea.Quit
	}

	before := m.game.State()
	out := m.game.Handle(action)
	if action == core.ActionPause {
		if after := m.game.State(); after.Paused != before.Paused {
			m.logger.Debug("pause toggled", "paused", after.Paused)
		}
	}
	m.logOutcome(before, out)

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleGravity applies one gravity step and schedules the next one using
// the interval for the level reached afterwards.
func (m Model) handleGravity() (tea.Model, tea.Cmd) {
	before := m.game.State()
	out := m.game.Fall()
	m.logOutcome(before, out)
	return m, gravityCmd(m.game.GravityInterval())
}

// logOutcome reports the notable effects of an engine call.
func (m Model) logOutcome(before core.GameState, out board.Outcome) {
	after := m.game.State()

	if out.Reset {
		m.logger.Info("game restarted", "previous_score", before.Score)
		return
	}
	if out.Cleared > 0 {
		m.logger.Info("lines cleared",
			"count", out.Cleared,
			"gained", after.Score-before.Score,
			"score", after.Score,
		)
	}
	if after.Level > before.Level {
		m.logger.Info("level up", "level", after.Level, "interval", m.game.GravityInterval())
	}
	if out.GameOver {
		m.logger.Info("game over",
			"score", after.Score,
			"level", after.Level,
			"lines", after.Lines,
		)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := helpStyle.Render(m.help.View(m.keys))
	footerH := strings.Count(footer, "\n") + 1
	m.screen.Resize(m.config.ScreenW, max(0, m.config.ScreenH-footerH))

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program for the given game.
func Run(game *columns.Game, keys KeyMap, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, keys, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
