package game

import "github.com/vovakirdan/ouroboros/internal/core"

// Snapshot captures the session state for determinism testing and the HUD.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Length    int
	Head      core.Point
	Direction core.Point
	Nibble    core.Point
	HasNibble bool
	Restarts  int
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	var head core.Point
	if len(s.snake) > 0 {
		head = s.snake[0]
	}

	return Snapshot{
		Tick:      s.ticks,
		Phase:     s.phase,
		Length:    len(s.snake),
		Head:      head,
		Direction: s.direction,
		Nibble:    s.nibble,
		HasNibble: s.hasNibble,
		Restarts:  s.restarts,
	}
}
