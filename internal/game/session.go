// Package game implements the snake state machine: the snake body, its
// direction, the nibble, and the phase transitions between idle, running
// and paused. Every mutation is mirrored onto the renderer in the same call,
// so the drawn frame always matches logical state.
package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/ouroboros/internal/core"
	"github.com/vovakirdan/ouroboros/internal/render"
)

// DefaultGridSize is the board edge length in cells.
const DefaultGridSize = 15

// Unit direction vectors.
var (
	DirRight = core.Point{X: 1, Y: 0}
	DirLeft  = core.Point{X: -1, Y: 0}
	DirDown  = core.Point{X: 0, Y: 1}
	DirUp    = core.Point{X: 0, Y: -1}
)

// Directions lists the four unit vectors in the order a random start
// direction is drawn from.
var Directions = [4]core.Point{DirRight, DirLeft, DirDown, DirUp}

// DirectionName returns "up", "down", "left", "right" or "none".
func DirectionName(d core.Point) string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Ticker is the periodic timer that drives Tick while running.
// Start cancels any pending tick and schedules the next one a full interval
// from now; Stop cancels the pending tick.
type Ticker interface {
	Start()
	Stop()
}

// Host receives presentation side effects the session cannot perform itself.
// A locked host captures pointer input for gestures; an unlocked one lets the
// environment scroll.
type Host interface {
	SetScrollLock(locked bool)
}

// Config controls board geometry and rules.
type Config struct {
	GridSize int
	Seed     int64

	// StrictBounds treats index GridSize as outside the board. By default
	// only coordinates greater than GridSize are out of bounds, which leaves
	// the ring at index GridSize walkable (and off-canvas).
	StrictBounds bool

	// MaxPlacementAttempts bounds the random draws for a nibble before
	// falling back to scanning free cells. Zero picks a default.
	MaxPlacementAttempts int
}

// TickResult describes what a single tick did.
type TickResult struct {
	Ticked   bool // A tick ran at all
	Ate      bool // Head landed on the nibble
	Collided bool // Move was illegal and the board was rebuilt
	Length   int  // Snake length after the tick
}

// Session is one game: the snake, its direction, the nibble and the phase.
type Session struct {
	cfg    Config
	rng    *rand.Rand
	rend   *render.Renderer
	ticker Ticker
	host   Host

	phase     Phase
	snake     []core.Point // Head at index 0
	direction core.Point
	nibble    core.Point
	hasNibble bool

	ticks    uint64
	restarts int
}

// NewSession creates an idle session drawing onto surface and driven by ticker.
func NewSession(cfg Config, surface render.Surface, ticker Ticker) *Session {
	if cfg.GridSize <= 0 {
		cfg.GridSize = DefaultGridSize
	}
	if cfg.MaxPlacementAttempts <= 0 {
		cfg.MaxPlacementAttempts = max(64, 4*cfg.GridSize*cfg.GridSize)
	}

	return &Session{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		rend:   render.New(surface, cfg.GridSize),
		ticker: ticker,
		phase:  PhaseIdle,
	}
}

// SetHost registers the receiver of scroll-lock changes.
func (s *Session) SetHost(h Host) {
	s.host = h
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// GridSize returns the board edge length in cells.
func (s *Session) GridSize() int {
	return s.cfg.GridSize
}

// Snake returns a copy of the body, head first. Nil while idle.
func (s *Session) Snake() []core.Point {
	if s.snake == nil {
		return nil
	}
	out := make([]core.Point, len(s.snake))
	copy(out, s.snake)
	return out
}

// Direction returns the active direction vector.
func (s *Session) Direction() core.Point {
	return s.direction
}

// Nibble returns the nibble position and whether one is on the board.
func (s *Session) Nibble() (core.Point, bool) {
	return s.nibble, s.hasNibble
}

// Restarts returns how many times a collision rebuilt the board.
func (s *Session) Restarts() int {
	return s.restarts
}

// fire moves the session along the transition table.
func (s *Session) fire(e event) {
	to, ok := next(s.phase, e)
	if !ok {
		panic(fmt.Sprintf("game: no transition from %s on %s", s.phase, e))
	}
	s.phase = to

	if s.host == nil {
		return
	}
	switch to {
	case PhaseRunning:
		s.host.SetScrollLock(true)
	case PhasePaused:
		s.host.SetScrollLock(false)
	}
}

// Restart throws away the current board and starts a fresh running game.
// Callable in any phase.
func (s *Session) Restart() {
	s.fire(evStart)
	s.settle()
}

// settle runs initialization until the session leaves PhaseInitializing.
func (s *Session) settle() {
	for s.phase == PhaseInitializing {
		s.initialize()
	}
}

// initialize builds a fresh board, repaints it and starts the timer.
func (s *Session) initialize() {
	middle := s.cfg.GridSize / 2
	center := core.Point{X: middle, Y: middle}

	s.direction = Directions[s.rng.Intn(len(Directions))]
	s.snake = []core.Point{
		center.Add(s.direction),
		center,
		center.Sub(s.direction),
	}
	s.hasNibble = false

	s.rend.FillBackground()
	s.rend.FillCells(s.snake, core.ColorSnake)
	s.placeNibble()

	s.fire(evReady)
	s.ticker.Start()
}

// TogglePause starts a game when idle, otherwise flips between running
// and paused.
func (s *Session) TogglePause() {
	switch s.phase {
	case PhaseIdle:
		s.Restart()
	case PhaseRunning:
		s.ticker.Stop()
		s.fire(evPause)
	case PhasePaused:
		s.fire(evResume)
		s.ticker.Start()
	}
}

// SetDirection changes direction and runs one tick immediately, so the
// next scheduled tick is a full interval away. Ignored unless running.
// Reversing into the neck is not rejected here; the tick's collision check
// handles it.
func (s *Session) SetDirection(d core.Point) TickResult {
	if s.phase != PhaseRunning {
		return TickResult{Length: len(s.snake)}
	}

	s.direction = d
	s.ticker.Stop()
	res := s.Tick()
	s.ticker.Start()
	return res
}

// Apply routes a player intent. While the game is not running every intent
// acts as pause/start.
func (s *Session) Apply(intent core.Intent) TickResult {
	switch {
	case intent == core.IntentNone:
		return TickResult{Length: len(s.snake)}
	case intent == core.IntentPauseOrStart, s.phase != PhaseRunning:
		s.TogglePause()
		return TickResult{Length: len(s.snake)}
	}

	switch intent {
	case core.IntentUp:
		return s.SetDirection(DirUp)
	case core.IntentDown:
		return s.SetDirection(DirDown)
	case core.IntentLeft:
		return s.SetDirection(DirLeft)
	default:
		return s.SetDirection(DirRight)
	}
}

// Tick advances the snake one cell.
func (s *Session) Tick() TickResult {
	if s.phase != PhaseRunning || len(s.snake) == 0 {
		return TickResult{Length: len(s.snake)}
	}
	s.ticks++

	nextHead := s.snake[0].Add(s.direction)
	ate := s.hasNibble && nextHead == s.nibble

	// The tail leaves before the collision check, so moving into the cell it
	// vacates this tick is legal.
	if !ate {
		tail := s.snake[len(s.snake)-1]
		s.snake = s.snake[:len(s.snake)-1]
		s.rend.EraseCell(tail)
	}

	if s.isSnakeAt(nextHead) || s.outOfBounds(nextHead) {
		s.ticker.Stop()
		s.snake = nil
		s.restarts++
		s.fire(evCollision)
		s.settle()
		return TickResult{Ticked: true, Collided: true, Length: len(s.snake)}
	}

	s.snake = append([]core.Point{nextHead}, s.snake...)
	s.rend.FillCell(nextHead, core.ColorSnake)

	// Placement waits until the occupied set for this tick is final.
	if ate {
		s.placeNibble()
	}

	return TickResult{Ticked: true, Ate: ate, Length: len(s.snake)}
}

// outOfBounds checks p against the board edges.
func (s *Session) outOfBounds(p core.Point) bool {
	limit := s.cfg.GridSize
	if s.cfg.StrictBounds {
		limit--
	}
	return p.X < 0 || p.Y < 0 || p.X > limit || p.Y > limit
}

// isSnakeAt checks if the snake occupies the given point.
func (s *Session) isSnakeAt(p core.Point) bool {
	for _, seg := range s.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Repaint redraws the whole board from logical state. Used after the
// surface was resized; it never changes game state.
func (s *Session) Repaint() {
	s.rend.FillBackground()
	s.rend.FillCells(s.snake, core.ColorSnake)
	if s.hasNibble {
		s.rend.FillCell(s.nibble, core.ColorNibble)
	}
}
