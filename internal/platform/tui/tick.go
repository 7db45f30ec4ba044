// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and the tick timer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent when a scheduled tick fires.
// Gen identifies the schedule it belongs to; ticks from a cancelled
// schedule are dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickScheduler turns one-shot tea.Tick commands into a cancellable
// periodic timer. At most one tick of the current generation is in flight.
type tickScheduler struct {
	interval time.Duration
	gen      uint64
	running  bool
	pending  bool // A tick for gen must be scheduled on the next flush
}

func newTickScheduler(interval time.Duration) *tickScheduler {
	return &tickScheduler{interval: interval}
}

// Start cancels any pending tick and schedules a new one a full interval away.
func (s *tickScheduler) Start() {
	s.gen++
	s.running = true
	s.pending = true
}

// Stop cancels the pending tick.
func (s *tickScheduler) Stop() {
	s.gen++
	s.running = false
	s.pending = false
}

// Running reports whether ticks are being scheduled.
func (s *tickScheduler) Running() bool {
	return s.running
}

// Accept reports whether msg belongs to the live schedule. An accepted tick
// is consumed, so the next one is queued for the following flush.
func (s *tickScheduler) Accept(msg TickMsg) bool {
	if !s.running || msg.Gen != s.gen {
		return false
	}
	s.pending = true
	return true
}

// Cmd returns the command for the queued tick, if any.
func (s *tickScheduler) Cmd() tea.Cmd {
	if !s.pending {
		return nil
	}
	s.pending = false

	gen := s.gen
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
