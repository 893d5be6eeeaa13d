package core

// RuntimeConfig contains the platform settings a game is started with.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Display ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means derive one from the current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is a snapshot of game status for the platform.
type GameState struct {
	Score    int  // Current score
	Running  bool // Whether a session is in progress
	GameOver bool // Whether the last session has ended
	Paused   bool // Whether the platform has paused time
}
