package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ouroboros/internal/core"
)

// Approximate pixel size of a terminal cell, used to express drags in the
// same units as a touch swipe.
const (
	cellPixelsX = 8
	cellPixelsY = 16
)

// gestureTracker turns a press/release pair of mouse events into a swipe.
type gestureTracker struct {
	threshold float64
	active    bool
	startX    int
	startY    int
}

func newGestureTracker(threshold float64) *gestureTracker {
	return &gestureTracker{threshold: threshold}
}

// Handle feeds a mouse event and returns the intent of a finished gesture,
// or IntentNone while a drag is still in progress.
func (g *gestureTracker) Handle(msg tea.MouseMsg) core.Intent {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return core.IntentNone
		}
		g.active = true
		g.startX, g.startY = msg.X, msg.Y
	case tea.MouseActionRelease:
		if !g.active {
			return core.IntentNone
		}
		g.active = false
		dx := float64((msg.X - g.startX) * cellPixelsX)
		dy := float64((msg.Y - g.startY) * cellPixelsY)
		return core.SwipeIntent(dx, dy, g.threshold)
	}
	return core.IntentNone
}

// mouseHost implements game.Host. The mouse stays captured in every phase
// so a click or swipe can resume a paused game; the lock only decides
// whether drags steer the snake or just toggle pause.
type mouseHost struct {
	locked bool
}

// SetScrollLock records the requested lock state.
func (h *mouseHost) SetScrollLock(locked bool) {
	h.locked = locked
}

// Locked reports whether drags currently steer the snake.
func (h *mouseHost) Locked() bool {
	return h.locked
}
