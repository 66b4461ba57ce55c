package core

// RuntimeConfig contains configuration passed to the platform at startup.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // UI ticks per second (default 60), drives animations
	Seed     int64 // RNG seed for deterministic tile spawns
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game as seen by the platform.
type GameState struct {
	Score      int  // Current score
	GameOver   bool // Lost: no moves left
	Won        bool // Win tile reached
	Terminated bool // Moves are ignored until restart or continue
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
	Moved bool // A move changed the board this tick
}
