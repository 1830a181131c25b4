package columns

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/columns/internal/config"
	"github.com/vovakirdan/columns/internal/core"
	"github.com/vovakirdan/columns/internal/games/columns/board"
)

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g, err := New(config.DefaultColumnsConfig())
	require.NoError(t, err)
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})
	return g
}

// fallUntilOver drops pieces straight down until the well overflows.
// Nothing moves sideways, so no row can fill and the game must end.
func fallUntilOver(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if g.State().GameOver {
			return
		}
		g.Fall()
	}
	t.Fatal("game did not end")
}

func TestNewRejectsBadPalette(t *testing.T) {
	cfg := config.DefaultColumnsConfig()
	cfg.Palette = []string{"red"}

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestIdentity(t *testing.T) {
	g := newGame(t, 1)
	assert.Equal(t, "columns", g.ID())
	assert.Equal(t, "Columns", g.Title())
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(t, 12345)
	g2 := newGame(t, 12345)

	script := []core.Action{
		core.ActionLeft, core.ActionRotate, core.ActionDown, core.ActionRight,
		core.ActionRight, core.ActionRotate, core.ActionDown, core.ActionLeft,
	}
	for i := 0; i < 2000; i++ {
		a := script[i%len(script)]
		g1.Handle(a)
		g2.Handle(a)
		if i%3 == 0 {
			g1.Fall()
			g2.Fall()
		}
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}

func TestHandleMapsActions(t *testing.T) {
	g := newGame(t, 7)
	start := g.Board().Piece().Offset

	out := g.Handle(core.ActionLeft)
	assert.True(t, out.Moved)
	assert.Equal(t, start.Col-1, g.Board().Piece().Offset.Col)

	out = g.Handle(core.ActionRight)
	assert.True(t, out.Moved)
	assert.Equal(t, start.Col, g.Board().Piece().Offset.Col)

	out = g.Handle(core.ActionDown)
	assert.True(t, out.Moved)
	assert.Equal(t, start.Row+1, g.Board().Piece().Offset.Row)

	out = g.Fall()
	assert.True(t, out.Moved)
	assert.Equal(t, start.Row+2, g.Board().Piece().Offset.Row)

	assert.Equal(t, board.Outcome{}, g.Handle(core.ActionQuit))
	assert.Equal(t, board.Outcome{}, g.Handle(core.ActionNone))
}

func TestPauseSuspendsMovementAndGravity(t *testing.T) {
	g := newGame(t, 7)
	g.Fall()
	before := g.Snapshot()

	g.Handle(core.ActionPause)
	require.True(t, g.Paused())
	assert.Equal(t, StatePaused, g.Snapshot().State)

	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionDown, core.ActionRotate} {
		assert.Equal(t, board.Outcome{}, g.Handle(a), a.String())
	}
	assert.Equal(t, board.Outcome{}, g.Fall())
	assert.Equal(t, before.Board, g.Snapshot().Board)

	g.Handle(core.ActionPause)
	assert.False(t, g.Paused())
	assert.True(t, g.Fall().Moved)
}

func TestGameOverAndRestart(t *testing.T) {
	g := newGame(t, 99)
	fallUntilOver(t, g)

	// Pause cannot be toggled after the game ends.
	g.Handle(core.ActionPause)
	assert.False(t, g.Paused())
	assert.Equal(t, StateGameOver, g.Snapshot().State)

	// Gravity and movement are no-ops on a finished game.
	before := g.Snapshot()
	assert.Equal(t, board.Outcome{}, g.Fall())
	assert.Equal(t, board.Outcome{}, g.Handle(core.ActionLeft))
	assert.Equal(t, before, g.Snapshot())

	out := g.Handle(core.ActionRotate)
	assert.True(t, out.Reset)

	state := g.State()
	assert.False(t, state.GameOver)
	assert.Zero(t, state.Score)
	assert.Zero(t, state.Level)
	assert.Zero(t, state.Lines)
	assert.Equal(t, board.Grid{}, g.Board().Grid())
}

func TestGravityIntervalFollowsLevel(t *testing.T) {
	g := newGame(t, 3)
	assert.Equal(t, 300*time.Millisecond, g.GravityInterval())

	cfg := config.DefaultColumnsConfig()
	config.ApplyColumnsPreset(&cfg, config.DifficultyEasy)
	easy, err := New(cfg)
	require.NoError(t, err)
	easy.Reset(core.DefaultConfig())
	assert.Equal(t, 450*time.Millisecond, easy.GravityInterval())
}

func TestRenderLayout(t *testing.T) {
	g := newGame(t, 5)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "COLUMNS")
	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, "Level: 0")
	assert.Contains(t, out, "Lines: 0")
	assert.NotContains(t, out, "PAUSED")
	assert.NotContains(t, out, "GAME OVER")

	// The border uses palette entry 0.
	ox := (80 - MinWidth) / 2
	oy := (24 - MinHeight) / 2
	corner := screen.GetCell(ox, oy)
	assert.Equal(t, '┌', corner.Rune)
	assert.Equal(t, core.ColorGray, corner.Color)

	// Only the rows of the new piece that entered the well are drawn.
	visible := 0
	for _, c := range g.Board().Piece().Cells() {
		if c.Row >= 0 {
			visible++
		}
	}
	assert.Equal(t, visible*cellW, strings.Count(out, "█"))
}

func TestRenderShowsActivePiece(t *testing.T) {
	g := newGame(t, 5)
	for i := 0; i < 5; i++ {
		require.True(t, g.Fall().Moved)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Equal(t, 8, strings.Count(screen.String(), "█"), "four cells, two characters each")

	piece := g.Board().Piece()
	colors, err := config.DefaultColumnsConfig().Colors()
	require.NoError(t, err)

	ox := (80 - MinWidth) / 2
	oy := (24 - MinHeight) / 2
	for _, c := range piece.Cells() {
		cell := screen.GetCell(ox+1+c.Col*cellW, oy+1+c.Row)
		assert.Equal(t, '█', cell.Rune)
		assert.Equal(t, colors[piece.Color], cell.Color)
	}
}

func TestRenderPausedAndGameOver(t *testing.T) {
	g := newGame(t, 11)
	screen := core.NewScreen(80, 24)

	g.Handle(core.ActionPause)
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")

	g.Handle(core.ActionPause)
	fallUntilOver(t, g)
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER. Press UP to reset")
	assert.NotContains(t, screen.String(), "PAUSED")
}

func TestRenderResetPromptUsesRotateKey(t *testing.T) {
	cfg := config.DefaultColumnsConfig()
	cfg.Keys.Rotate = []string{"w", "up"}
	g, err := New(cfg)
	require.NoError(t, err)
	g.Reset(core.DefaultConfig())

	fallUntilOver(t, g)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Press W to reset")
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(t, 1)
	g.Resize(40, 10)

	screen := core.NewScreen(40, 10)
	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "Window too small")
	assert.NotContains(t, out, "COLUMNS")
}
