package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ouroboros/internal/config"
	"github.com/vovakirdan/ouroboros/internal/core"
	"github.com/vovakirdan/ouroboros/internal/game"
	"github.com/vovakirdan/ouroboros/internal/render"
)

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func newTestModel(t *testing.T) Model {
	t.Helper()
	rc := core.RuntimeConfig{
		ScreenW:      80,
		ScreenH:      40,
		TickInterval: 300 * time.Millisecond,
		Seed:         7,
	}
	return NewModel(rc, config.Default(), nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return updated, cmd
}

func TestModelStartsIdle(t *testing.T) {
	m := newTestModel(t)

	if got := m.Session().Phase(); got != game.PhaseIdle {
		t.Fatalf("phase = %v, want idle", got)
	}
	if cmd := m.Init(); cmd != nil {
		t.Error("idle model should not schedule anything on Init")
	}
	if !strings.Contains(m.View(), "press space to start") {
		t.Error("idle view should prompt for start")
	}
}

func TestModelSpaceStartsGame(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, spaceKey)
	if got := m.Session().Phase(); got != game.PhaseRunning {
		t.Fatalf("phase = %v, want running", got)
	}
	if cmd == nil {
		t.Fatal("starting should schedule a tick")
	}
	if got := len(m.Session().Snake()); got != 3 {
		t.Errorf("snake length = %d, want 3", got)
	}
}

func TestModelAnyKeyStartsWhenIdle(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Session().Phase(); got != game.PhaseRunning {
		t.Errorf("phase = %v, want running", got)
	}
}

func TestModelTickAdvances(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, spaceKey)

	before := m.Session().Snapshot()
	m, cmd := update(t, m, TickMsg{Gen: m.ticker.gen})
	after := m.Session().Snapshot()

	if after.Tick != before.Tick+1 {
		t.Errorf("tick count = %d, want %d", after.Tick, before.Tick+1)
	}
	if want := before.Head.Add(before.Direction); after.Head != want {
		t.Errorf("head = %v, want %v", after.Head, want)
	}
	if cmd == nil {
		t.Error("accepted tick should schedule the next one")
	}
}

func TestModelDropsStaleTick(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, spaceKey)
	stale := TickMsg{Gen: m.ticker.gen}

	// A direction change cancels the pending tick and runs one immediately.
	dir := m.Session().Direction()
	turn := tea.KeyMsg{Type: tea.KeyUp}
	if dir == game.DirUp || dir == game.DirDown {
		turn = tea.KeyMsg{Type: tea.KeyLeft}
	}
	m, _ = update(t, m, turn)
	ticks := m.Session().Snapshot().Tick
	if ticks != 1 {
		t.Fatalf("turn should force one tick, got %d", ticks)
	}

	m, cmd := update(t, m, stale)
	if got := m.Session().Snapshot().Tick; got != ticks {
		t.Errorf("stale tick advanced the game: %d ticks", got)
	}
	if cmd != nil {
		t.Error("stale tick should not schedule anything")
	}
}

func TestModelPauseReleasesScrollLock(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, spaceKey)
	if !m.host.Locked() {
		t.Fatal("running game should hold the scroll lock")
	}

	m, _ = update(t, m, spaceKey)
	if got := m.Session().Phase(); got != game.PhasePaused {
		t.Fatalf("phase = %v, want paused", got)
	}
	if m.host.Locked() {
		t.Error("paused game should release the scroll lock")
	}
	if !strings.Contains(m.View(), "paused") {
		t.Error("paused view should say so")
	}

	// Ticks that were in flight are ignored while paused
	before := m.Session().Snapshot()
	m, _ = update(t, m, TickMsg{Gen: m.ticker.gen})
	if after := m.Session().Snapshot(); after != before {
		t.Errorf("paused game changed on tick: %+v -> %+v", before, after)
	}

	m, _ = update(t, m, spaceKey)
	if got := m.Session().Phase(); got != game.PhaseRunning {
		t.Errorf("phase = %v, want running", got)
	}
}

func TestModelClickTogglesPause(t *testing.T) {
	m := newTestModel(t)

	click := func() {
		t.Helper()
		m, _ = update(t, m, press(3, 3))
		m, _ = update(t, m, release(3, 3))
	}

	click()
	if got := m.Session().Phase(); got != game.PhaseRunning {
		t.Fatalf("phase after first click = %v, want running", got)
	}

	click()
	if got := m.Session().Phase(); got != game.PhasePaused {
		t.Fatalf("phase after second click = %v, want paused", got)
	}

	click()
	if got := m.Session().Phase(); got != game.PhaseRunning {
		t.Errorf("phase after third click = %v, want running", got)
	}
}

func TestModelClickResumesAfterKeyboardPause(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, spaceKey)
	m, cmd := update(t, m, spaceKey)
	if got := m.Session().Phase(); got != game.PhasePaused {
		t.Fatalf("phase = %v, want paused", got)
	}
	if cmd != nil {
		t.Error("pausing should not issue any command")
	}

	m, _ = update(t, m, press(10, 10))
	m, _ = update(t, m, release(10, 10))
	if got := m.Session().Phase(); got != game.PhaseRunning {
		t.Errorf("phase = %v, want running", got)
	}
	if !m.host.Locked() {
		t.Error("resumed game should hold the scroll lock")
	}
}

func TestModelHUDMarksHeadPastEdge(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, spaceKey)

	// Turn so the snake heads right without reversing into its neck.
	switch m.Session().Direction() {
	case game.DirLeft, game.DirRight:
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	g := m.Session().GridSize()
	for range 2 * g {
		if m.Session().Snapshot().Head.X == g {
			break
		}
		if strings.Contains(m.hud(), "past the edge") {
			t.Fatalf("cue shown with head at %v", m.Session().Snapshot().Head)
		}
		m, _ = update(t, m, TickMsg{Gen: m.ticker.gen})
	}

	if head := m.Session().Snapshot().Head; head.X != g {
		t.Fatalf("head = %v, want column %d", head, g)
	}
	if !strings.Contains(m.hud(), "head past the edge") {
		t.Error("HUD should mark a head outside the drawn board")
	}
}

func TestModelResizeRepaints(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, spaceKey)
	before := m.Session().Snapshot()

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})
	if cmd != nil {
		t.Error("resize should not schedule anything")
	}
	if after := m.Session().Snapshot(); after != before {
		t.Errorf("resize changed game state: %+v -> %+v", before, after)
	}
	if got, want := m.canvas.Width(), 48; got != want {
		t.Errorf("canvas side = %d, want %d", got, want)
	}

	// Every snake cell is painted at the new size.
	geom := render.NewGeometry(m.Session().GridSize())
	scale := float64(m.canvas.Width()) / core.NormalizedSize
	for _, p := range m.Session().Snake() {
		r := geom.CellRect(p)
		x := int((r.X + r.W/2) * scale)
		y := int((r.Y + r.H/2) * scale)
		if got := m.canvas.Get(x, y); got != core.ColorSnake {
			t.Errorf("cell %v at pixel (%d,%d) = %v, want snake", p, x, y, got)
		}
	}
}

func TestModelTooSmall(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 5})

	if !strings.Contains(m.View(), "too small") {
		t.Error("expected too-small message")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, spaceKey)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
	if m.ticker.Running() {
		t.Error("quitting should stop the timer")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? should expand help")
	}
	if got := m.Session().Phase(); got != game.PhaseIdle {
		t.Errorf("help key changed phase to %v", got)
	}
}
