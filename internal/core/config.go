package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt rendering to screen size; the court itself is a
// fixed logical size independent of the terminal.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a match.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	ScoreLeft  int      // Left player's score
	ScoreRight int      // Right player's score
	GameOver   bool     // Whether the match has ended
	Paused     bool     // Whether the match is paused
	Winner     PlayerID // PlayerNone until GameOver
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
