// Package config provides YAML-based game configuration loading for the
// ouroboros snake game.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// Config contains all configuration for a game session.
type Config struct {
	GridSize       int     `yaml:"grid_size"`
	StrictBounds   bool    `yaml:"strict_bounds"`
	TickIntervalMS int     `yaml:"tick_interval_ms"`
	SwipeThreshold float64 `yaml:"swipe_threshold"`
	Colors         Colors  `yaml:"colors"`
}

// Colors defines the three fill colors as hex strings.
type Colors struct {
	Background string `yaml:"background"`
	Snake      string `yaml:"snake"`
	Nibble     string `yaml:"nibble"`
}

// Limits for Validate.
const (
	MinGridSize = 5
	MaxGridSize = 64
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// TickInterval returns the tick interval as a duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMS) * time.Millisecond
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var errs []error

	if c.GridSize < MinGridSize || c.GridSize > MaxGridSize {
		errs = append(errs, fmt.Errorf("grid_size %d out of range [%d, %d]", c.GridSize, MinGridSize, MaxGridSize))
	}
	if c.TickIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("tick_interval_ms must be positive, got %d", c.TickIntervalMS))
	}
	if c.SwipeThreshold <= 0 {
		errs = append(errs, fmt.Errorf("swipe_threshold must be positive, got %v", c.SwipeThreshold))
	}

	colors := []struct{ name, value string }{
		{"background", c.Colors.Background},
		{"snake", c.Colors.Snake},
		{"nibble", c.Colors.Nibble},
	}
	for _, col := range colors {
		if !hexColor.MatchString(col.value) {
			errs = append(errs, fmt.Errorf("colors.%s %q is not a hex color", col.name, col.value))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
