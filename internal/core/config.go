package core

import "time"

// RuntimeConfig contains configuration passed to a game session at startup.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Time between automatic ticks while running
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 300 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
	}
}
