package core

// RuntimeConfig contains per-session settings handed to the play screen.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // UI ticks per second (default 60)
	Seed     int64 // Shuffle seed; 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
