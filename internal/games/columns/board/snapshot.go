package board

// Snapshot is a consistent copy of the whole engine state, taken under a
// single read lock.
type Snapshot struct {
	Grid     Grid
	Piece    Piece
	Score    int
	Level    int
	Lines    int
	GameOver bool
}

// Snapshot returns the current engine state.
func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return Snapshot{
		Grid:     b.grid,
		Piece:    b.piece,
		Score:    b.score,
		Level:    b.level,
		Lines:    b.lines,
		GameOver: b.gameOver,
	}
}

// Color returns the palette index visible at (r, c) in the snapshot,
// following the same rule as Board.Color.
func (s Snapshot) Color(r, c int) int {
	if s.Piece.Covers(r, c) {
		return s.Piece.Color
	}
	if r < 0 || r >= Height || c < 0 || c >= Width {
		return Empty
	}
	return s.Grid[r][c]
}
