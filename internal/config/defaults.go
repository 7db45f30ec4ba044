package config

import (
	_ "embed"
)

//go:embed defaults/ouroboros.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		GridSize:       15,
		StrictBounds:   false,
		TickIntervalMS: 300,
		SwipeThreshold: 50,
		Colors: Colors{
			Background: "#a1e868",
			Snake:      "#edad62",
			Nibble:     "#f79055",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
