package columns

import "github.com/vovakirdan/columns/internal/games/columns/board"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Seed  int64
	State GameStateType
	Board board.Snapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap := g.board.Snapshot()
	state := StatePlaying
	switch {
	case snap.GameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Seed:  g.seed,
		State: state,
		Board: snap,
	}
}
