package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic terrain generation
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the attempt has ended (landed or crashed)
	Paused   bool // Whether the game is paused
}

// FlightSummary describes a finished landing attempt. Emitted exactly once
// per attempt, on the tick the outcome is decided, so the platform can
// persist a flight log entry.
type FlightSummary struct {
	Outcome    string  // "landed" or "crashed"
	Score      int     // Final score for the attempt
	FuelUsed   float64 // Fuel units burned during the attempt
	Duration   float64 // Flight time in seconds
	Difficulty string  // Difficulty preset in effect
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Flight is non-nil only on the tick an attempt ends.
	Flight *FlightSummary
}
