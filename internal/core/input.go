package core

import "math"

// Intent is a semantic player request, abstracted from physical input.
// Keyboard and mouse handlers translate raw events into intents so the game
// never sees a key code.
type Intent int

const (
	IntentNone         Intent = iota
	IntentUp                  // W, Up arrow, swipe up
	IntentDown                // S, Down arrow, swipe down
	IntentLeft                // A, Left arrow, swipe left
	IntentRight               // D, Right arrow, swipe right
	IntentPauseOrStart        // Space, click, short swipe
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentUp:
		return "Up"
	case IntentDown:
		return "Down"
	case IntentLeft:
		return "Left"
	case IntentRight:
		return "Right"
	case IntentPauseOrStart:
		return "PauseOrStart"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the intent asks for a direction change.
func (i Intent) IsDirectional() bool {
	switch i {
	case IntentUp, IntentDown, IntentLeft, IntentRight:
		return true
	}
	return false
}

// DefaultSwipeThreshold is the minimum travel, in pointer units, for a drag
// to count as a directional swipe.
const DefaultSwipeThreshold = 50.0

// SwipeIntent maps a completed drag to an intent. The dominant axis picks
// horizontal or vertical (ties go vertical); the drag must travel strictly
// further than threshold along it, otherwise it collapses to pause/start.
func SwipeIntent(dx, dy, threshold float64) Intent {
	if math.Abs(dx) > math.Abs(dy) {
		switch {
		case dx > threshold:
			return IntentRight
		case dx < -threshold:
			return IntentLeft
		default:
			return IntentPauseOrStart
		}
	}

	switch {
	case dy > threshold:
		return IntentDown
	case dy < -threshold:
		return IntentUp
	default:
		return IntentPauseOrStart
	}
}
