package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ouroboros/internal/config"
	"github.com/vovakirdan/ouroboros/internal/core"
	"github.com/vovakirdan/ouroboros/internal/game"
)

// Layout constants
const (
	hudLines    = 1 // Status line above the board
	footerLines = 1 // Help line below the board
	minBoard    = 8 // Smallest board side, in pixels, worth drawing
)

var (
	hudStyle   = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	smallStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Model is the Bubble Tea model running one game session.
type Model struct {
	session *game.Session
	canvas  *core.Canvas
	ticker  *tickScheduler
	host    *mouseHost
	gesture *gestureTracker
	palette Palette
	keys    KeyMap
	help    help.Model
	logger  *log.Logger

	width    int
	height   int
	quitting bool
}

// NewModel creates a model for a fresh, idle session.
// A nil logger discards log output.
func NewModel(rc core.RuntimeConfig, cfg config.Config, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if rc.TickInterval <= 0 {
		rc.TickInterval = cfg.TickInterval()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		canvas:  core.NewCanvas(0, 0),
		ticker:  newTickScheduler(rc.TickInterval),
		host:    &mouseHost{},
		gesture: newGestureTracker(cfg.SwipeThreshold),
		palette: NewPalette(cfg.Colors),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
	}

	m.session = game.NewSession(game.Config{
		GridSize:     cfg.GridSize,
		Seed:         rc.Seed,
		StrictBounds: cfg.StrictBounds,
	}, m.canvas, m.ticker)
	m.session.SetHost(m.host)

	m.resize(rc.ScreenW, rc.ScreenH)
	return m
}

// Init starts nothing: the session waits idle for the first start intent.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.apply(m.gesture.Handle(msg))

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.ticker.Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m.apply(m.keys.Intent(msg))
}

// apply hands an intent to the session.
func (m Model) apply(intent core.Intent) (tea.Model, tea.Cmd) {
	if intent == core.IntentNone {
		return m, nil
	}

	before := m.session.Phase()
	res := m.session.Apply(intent)
	if after := m.session.Phase(); after != before {
		m.logger.Debug("phase changed", "from", before, "to", after, "intent", intent)
	}
	m.logTick(res)

	return m, m.flush()
}

// handleTick runs a scheduled tick if it belongs to the live schedule.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.ticker.Accept(msg) {
		return m, nil
	}

	m.logTick(m.session.Tick())
	return m, m.flush()
}

func (m Model) logTick(res game.TickResult) {
	if res.Collided {
		m.logger.Debug("collision, board rebuilt",
			"restarts", m.session.Restarts(),
			"direction", game.DirectionName(m.session.Direction()),
		)
	}
	if res.Ate {
		m.logger.Debug("nibble eaten", "length", res.Length)
	}
}

// flush returns the command for the session's next tick, if any.
func (m Model) flush() tea.Cmd {
	return m.ticker.Cmd()
}

// resize fits the canvas to the terminal and repaints it from game state.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	side := max(min(width/pixelWidth, height-hudLines-footerLines), 0)
	m.canvas.Resize(side, side)
	m.session.Repaint()
}

// hud returns the status line.
func (m Model) hud() string {
	snap := m.session.Snapshot()

	switch snap.Phase {
	case game.PhaseIdle:
		return hudStyle.Render(" Ouroboros") + hintStyle.Render("  press space to start")
	case game.PhasePaused:
		return hudStyle.Render(fmt.Sprintf(" Ouroboros  Length: %d", snap.Length)) +
			hintStyle.Render("  paused, press space or click to continue")
	}

	line := hudStyle.Render(fmt.Sprintf(" Ouroboros  Length: %d  Heading: %s",
		snap.Length, game.DirectionName(snap.Direction)))
	// The outermost walkable ring lies outside the drawn board.
	if g := m.session.GridSize(); snap.Head.X >= g || snap.Head.Y >= g {
		line += smallStyle.Render("  head past the edge")
	}
	return line
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var board string
	if m.canvas.Width() < minBoard {
		board = smallStyle.Render("Window too small - resize to continue")
	} else {
		board = RenderCanvas(m.canvas, m.palette)
	}
	board = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, board)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.hud(),
		board,
		m.help.View(m.keys),
	)
}

// Session exposes the running game session.
func (m Model) Session() *game.Session {
	return m.session
}

// Run starts the Bubble Tea program with a new model.
func Run(rc core.RuntimeConfig, cfg config.Config, logger *log.Logger) error {
	model := NewModel(rc, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Capture drags for swipe gestures
	)

	_, err := p.Run()
	return err
}
