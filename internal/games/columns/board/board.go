// Package board implements the Columns board engine: the well, the active
// piece, gravity, rotation with wall kicks, line clears, scoring and levels.
//
// The engine is pure computation. A single lock serializes every state
// transition so a gravity timer and keyboard input may call into it from
// different goroutines.
package board

import "sync"

// Board dimensions and palette size.
const (
	Height    = 20
	Width     = 10
	NumColors = 9 // palette entries including the empty color
)

// Empty is the color index of a free cell.
const Empty = 0

// LinesPerLevel is the number of cleared lines needed to advance one level.
const LinesPerLevel = 10

// SpawnOffset is where every new piece enters the well.
var SpawnOffset = Cell{Row: -2, Col: Width / 2}

// ScoreTable maps the number of lines cleared by one lock-in to base points.
var ScoreTable = [...]int{0, 40, 100, 300, 1200}

// Grid is the settled content of the well, indexed [row][col].
type Grid [Height][Width]int

// Source supplies random numbers for piece selection.
// *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Outcome describes the effect of a Move or Rotate call.
// Rejected input is not an error: an Outcome with no flags set is a no-op.
type Outcome struct {
	Moved    bool // piece translated
	Rotated  bool // rotation committed
	Locked   bool // piece became part of the grid
	Cleared  int  // lines removed by the lock-in
	GameOver bool // the call ended the game
	Reset    bool // rotate restarted a finished game
}

// Board is the engine state. Create one with New.
type Board struct {
	mu  sync.RWMutex
	src Source

	grid     Grid
	piece    Piece
	score    int
	level    int
	lines    int
	gameOver bool
}

// New creates a board with an empty grid and spawns the first piece.
func New(src Source) *Board {
	b := &Board{src: src}
	b.reset()
	return b
}

// Reset returns the board to a fresh initial state.
func (b *Board) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reset()
}

func (b *Board) reset() {
	b.grid = Grid{}
	b.score = 0
	b.level = 0
	b.lines = 0
	b.gameOver = false
	b.spawn()
}

// spawn picks a random shape and color and places it at SpawnOffset.
// A piece that collides on arrival ends the game; the grid is left untouched.
func (b *Board) spawn() {
	kind := Kind(b.src.Intn(len(Shapes)))
	color := 1 + b.src.Intn(NumColors-1)

	b.piece = Piece{
		Kind:   kind,
		Shape:  Shapes[kind],
		Color:  color,
		Offset: SpawnOffset,
	}

	if !b.fits(b.piece.Shape, b.piece.Offset) {
		b.gameOver = true
	}
}

// isCellFree reports whether a piece cell may occupy (r, c).
// Rows above the well are always free so pieces can enter from the top.
func (b *Board) isCellFree(r, c int) bool {
	if r >= Height || c < 0 || c >= Width {
		return false
	}
	if r < 0 {
		return true
	}
	return b.grid[r][c] == Empty
}

func (b *Board) fits(s Shape, offset Cell) bool {
	for _, c := range place(s, offset) {
		if !b.isCellFree(c.Row, c.Col) {
			return false
		}
	}
	return true
}

// Move translates the active piece by (dr, dc).
//
// A blocked downward move (1, 0) lands the piece: it locks into the grid, or
// ends the game when part of it is still above the well. Any other blocked
// move leaves the piece where it is.
func (b *Board) Move(dr, dc int) Outcome {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.gameOver {
		return Outcome{}
	}

	target := b.piece.Offset.Add(Cell{Row: dr, Col: dc})
	if b.fits(b.piece.Shape, target) {
		b.piece.Offset = target
		return Outcome{Moved: true}
	}

	if dr != 1 || dc != 0 {
		return Outcome{}
	}

	for _, c := range b.piece.Cells() {
		if c.Row < 0 {
			b.gameOver = true
			return Outcome{GameOver: true}
		}
	}

	cleared := b.lockPiece()
	return Outcome{Locked: true, Cleared: cleared, GameOver: b.gameOver}
}

// lockPiece writes the piece into the grid, clears full rows, updates score
// and level, then spawns the next piece. Returns the number of lines cleared.
func (b *Board) lockPiece() int {
	for _, c := range b.piece.Cells() {
		b.grid[c.Row][c.Col] = b.piece.Color
	}

	cleared := b.clearLines()
	b.lines += cleared
	b.score += ScoreTable[cleared] * (b.level + 1)
	b.level = LevelFor(b.lines)

	b.spawn()
	return cleared
}

// clearLines removes full rows; the rows above fall and empty rows are added
// at the top.
func (b *Board) clearLines() int {
	var next Grid
	write := Height - 1
	for r := Height - 1; r >= 0; r-- {
		if rowFull(b.grid[r]) {
			continue
		}
		next[write] = b.grid[r]
		write--
	}
	b.grid = next
	return write + 1
}

func rowFull(row [Width]int) bool {
	for _, v := range row {
		if v == Empty {
			return false
		}
	}
	return true
}

// LevelFor returns the level reached after clearing the given number of lines.
func LevelFor(lines int) int {
	return lines / LinesPerLevel
}

// Rotate turns the active piece 90 degrees with wall-kick correction.
// When the game is over it restarts the game instead.
func (b *Board) Rotate() Outcome {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.gameOver {
		b.reset()
		return Outcome{Reset: true, GameOver: b.gameOver}
	}

	rotated := b.piece.Shape.Rotate()
	offset := kick(rotated, b.piece.Offset)
	if !b.fits(rotated, offset) {
		return Outcome{}
	}

	b.piece.Shape = rotated
	b.piece.Offset = offset
	return Outcome{Rotated: true}
}

// kick shifts offset so the placed shape stays within the side walls and the
// floor. Rows are only pulled up, never pushed down.
func kick(s Shape, offset Cell) Cell {
	cells := place(s, offset)
	minCol, maxCol, maxRow := cells[0].Col, cells[0].Col, cells[0].Row
	for _, c := range cells[1:] {
		minCol = min(minCol, c.Col)
		maxCol = max(maxCol, c.Col)
		maxRow = max(maxRow, c.Row)
	}

	offset.Col -= min(0, minCol)
	offset.Col += min(0, Width-1-maxCol)
	offset.Row += min(0, Height-1-maxRow)
	return offset
}

// Color returns the palette index shown at (r, c): the active piece's color
// where it covers the cell, otherwise the settled grid value.
// Coordinates outside the well read as Empty.
func (b *Board) Color(r, c int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.piece.Covers(r, c) {
		return b.piece.Color
	}
	if r < 0 || r >= Height || c < 0 || c >= Width {
		return Empty
	}
	return b.grid[r][c]
}

// Score returns the current score.
func (b *Board) Score() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.score
}

// Level returns the current level.
func (b *Board) Level() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.level
}

// Lines returns the total number of lines eliminated.
func (b *Board) Lines() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lines
}

// GameOver reports whether the game has ended.
func (b *Board) GameOver() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.gameOver
}

// Piece returns a copy of the active piece.
func (b *Board) Piece() Piece {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.piece
}

// Grid returns a copy of the settled grid.
func (b *Board) Grid() Grid {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.grid
}
