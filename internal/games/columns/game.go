// Package columns wires the board engine to the platform: it maps actions to
// engine calls, owns pause state and the gravity schedule, and renders the
// well and HUD into a core.Screen.
package columns

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/vovakirdan/columns/internal/config"
	"github.com/vovakirdan/columns/internal/core"
	"github.com/vovakirdan/columns/internal/games/columns/board"
)

// Game implements Columns on top of a board.Board.
type Game struct {
	mu sync.Mutex

	timing      config.TimingConfig
	colors      [config.PaletteSize]core.Color
	resetPrompt string

	board  *board.Board
	seed   int64
	paused bool

	// Screen dimensions
	screenW int
	screenH int
}

// New creates a game from a validated configuration. Call Reset before use.
func New(cfg config.ColumnsConfig) (*Game, error) {
	colors, err := cfg.Colors()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	rotateKey := "UP"
	if len(cfg.Keys.Rotate) > 0 {
		rotateKey = strings.ToUpper(cfg.Keys.Rotate[0])
	}

	return &Game{
		timing:      cfg.Timing,
		colors:      colors,
		resetPrompt: fmt.Sprintf("GAME OVER. Press %s to reset", rotateKey),
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "columns"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Columns"
}

// Reset starts a new game with a board seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.seed = cfg.Seed
	g.board = board.New(rand.New(rand.NewSource(cfg.Seed)))
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
}

// Resize records new screen dimensions.
func (g *Game) Resize(w, h int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.screenW = w
	g.screenH = h
}

// Handle applies one player action.
//
// Movement and rotation are ignored while paused, except that rotating a
// finished game always restarts it. Pause cannot be toggled once the game
// is over.
func (g *Game) Handle(action core.Action) board.Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch action {
	case core.ActionPause:
		if !g.board.GameOver() {
			g.paused = !g.paused
		}
		return board.Outcome{}
	case core.ActionRotate:
		if g.board.GameOver() {
			g.paused = false
			return g.board.Rotate()
		}
		if g.paused {
			return board.Outcome{}
		}
		return g.board.Rotate()
	}

	if g.paused {
		return board.Outcome{}
	}

	switch action {
	case core.ActionLeft:
		return g.board.Move(0, -1)
	case core.ActionRight:
		return g.board.Move(0, 1)
	case core.ActionDown:
		return g.board.Move(1, 0)
	default:
		return board.Outcome{}
	}
}

// Fall applies one gravity step. It does nothing while paused.
func (g *Game) Fall() board.Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.paused {
		return board.Outcome{}
	}
	return g.board.Move(1, 0)
}

// GravityInterval returns the delay before the next gravity step at the
// current level.
func (g *Game) GravityInterval() time.Duration {
	return g.timing.Interval(g.Board().Level())
}

// Board returns the underlying engine.
func (g *Game) Board() *board.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board
}

// Paused reports whether gravity and movement are suspended.
func (g *Game) Paused() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.paused
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap := g.board.Snapshot()
	return core.GameState{
		Score:    snap.Score,
		Level:    snap.Level,
		Lines:    snap.Lines,
		GameOver: snap.GameOver,
		Paused:   g.paused,
	}
}
