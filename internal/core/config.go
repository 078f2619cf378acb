package core

// RuntimeConfig contains configuration passed to a duel at initialization.
// The simulation uses it for the tick clock and for deterministic replays.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// DeltaTime returns the seconds covered by one tick.
func (c RuntimeConfig) DeltaTime() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the session-level state of a duel.
// Returned to the platform so it can show results and decide on restarts.
type GameState struct {
	Wins     int  // Matches won by the player this session
	Losses   int  // Matches won by the adversary this session
	GameOver bool // Whether the current match has ended
	Paused   bool // Whether the simulation is paused
	Winner   Side // Winner of the finished match, SideNone while playing
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
}
