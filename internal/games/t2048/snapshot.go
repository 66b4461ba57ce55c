package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateContinuing  GameStateType = "continuing"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Size      int
	Score     int
	BestScore int
	Board     [][]int // Board[y][x], 0 for empty
	MaxTile   int
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.mgr == nil {
		return Snapshot{Tick: g.tick, State: StatePlaying}
	}

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.mgr.Over():
		state = StateGameOver
	case g.mgr.Won() && g.mgr.KeepPlayingEnabled():
		state = StateContinuing
	case g.mgr.Won():
		state = StateWon
	}

	grid := g.mgr.Grid()
	return Snapshot{
		Tick:      g.tick,
		Size:      grid.Size(),
		Score:     g.mgr.Score(),
		BestScore: g.mgr.BestScore(),
		Board:     grid.Rows(),
		MaxTile:   grid.MaxTile(),
		State:     state,
	}
}
