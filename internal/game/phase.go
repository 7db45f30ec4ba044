package game

// Phase is the coarse lifecycle state of a session.
type Phase int

const (
	PhaseIdle         Phase = iota // No snake yet
	PhaseInitializing              // Building a fresh board; never observed between calls
	PhaseRunning                   // Timer active
	PhasePaused                    // Timer stopped, snake retained
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInitializing:
		return "initializing"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// event drives phase transitions.
type event int

const (
	evStart event = iota
	evReady
	evPause
	evResume
	evCollision
)

func (e event) String() string {
	switch e {
	case evStart:
		return "start"
	case evReady:
		return "ready"
	case evPause:
		return "pause"
	case evResume:
		return "resume"
	case evCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// transitions lists every legal phase change. Anything missing is a bug in
// the caller, not a player error.
var transitions = map[Phase]map[event]Phase{
	PhaseIdle: {
		evStart: PhaseInitializing,
	},
	PhaseInitializing: {
		evReady: PhaseRunning,
	},
	PhaseRunning: {
		evStart:     PhaseInitializing,
		evPause:     PhasePaused,
		evCollision: PhaseInitializing,
	},
	PhasePaused: {
		evStart:  PhaseInitializing,
		evResume: PhaseRunning,
	},
}

// next returns the phase reached from p on e.
func next(p Phase, e event) (Phase, bool) {
	to, ok := transitions[p][e]
	return to, ok
}
