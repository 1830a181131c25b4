package columns

import (
	"fmt"

	"github.com/vovakirdan/columns/internal/core"
	"github.com/vovakirdan/columns/internal/games/columns/board"
)

// Layout: the well is drawn two characters per cell inside a border, with
// the HUD to its right.
const (
	cellW  = 2
	wellW  = board.Width*cellW + 2
	wellH  = board.Height + 2
	hudGap = 2
	hudW   = 30

	// MinWidth and MinHeight are the smallest screen that fits the game.
	MinWidth  = wellW + hudGap + hudW
	MinHeight = wellH
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinWidth || dst.Height() < MinHeight {
		g.renderTooSmall(dst)
		return
	}

	g.mu.Lock()
	snap := g.board.Snapshot()
	paused := g.paused
	g.mu.Unlock()

	ox := (dst.Width() - MinWidth) / 2
	oy := (dst.Height() - MinHeight) / 2
	well := core.NewRect(ox, oy, wellW, wellH)

	g.renderWell(dst, well, snap)
	g.renderHUD(dst, well.Right()+hudGap, oy+1, snap, paused)
}

// renderWell draws the border and every visible cell.
func (g *Game) renderWell(dst *core.Screen, well core.Rect, snap board.Snapshot) {
	dst.DrawBox(well, g.colors[board.Empty])

	inner := well.Inset(1)
	for r := 0; r < board.Height; r++ {
		for c := 0; c < board.Width; c++ {
			x := inner.X + c*cellW
			y := inner.Y + r
			idx := snap.Color(r, c)
			if idx == board.Empty {
				dst.SetCell(x, y, '·', g.colors[board.Empty])
				continue
			}
			dst.SetCell(x, y, '█', g.colors[idx])
			dst.SetCell(x+1, y, '█', g.colors[idx])
		}
	}
}

// renderHUD draws the title, counters and status prompt.
func (g *Game) renderHUD(dst *core.Screen, x, y int, snap board.Snapshot, paused bool) {
	dst.DrawTextColor(x, y, "COLUMNS", core.ColorBrightWhite)
	dst.DrawText(x, y+2, fmt.Sprintf("Score: %d", snap.Score))
	dst.DrawText(x, y+3, fmt.Sprintf("Level: %d", snap.Level))
	dst.DrawText(x, y+4, fmt.Sprintf("Lines: %d", snap.Lines))

	switch {
	case snap.GameOver:
		dst.DrawTextColor(x, y+6, g.resetPrompt, core.ColorRed)
	case paused:
		dst.DrawTextColor(x, y+6, "PAUSED", core.ColorYellow)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	midY := dst.Height() / 2
	dst.DrawTextCentered(midY-1, "Window too small")
	dst.DrawTextCentered(midY, fmt.Sprintf("Need %dx%d", MinWidth, MinHeight))
}
