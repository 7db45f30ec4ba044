package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ouroboros/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapIntent(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Intent
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.IntentPauseOrStart},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.IntentUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.IntentDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.IntentLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.IntentRight},
		{"w", runeKey('w'), core.IntentUp},
		{"W", runeKey('W'), core.IntentUp},
		{"a", runeKey('a'), core.IntentLeft},
		{"s", runeKey('s'), core.IntentDown},
		{"D", runeKey('D'), core.IntentRight},
		{"unbound letter", runeKey('x'), core.IntentNone},
		{"help", runeKey('?'), core.IntentNone},
		{"quit", runeKey('q'), core.IntentNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Intent(tt.msg); got != tt.want {
				t.Errorf("Intent(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}
