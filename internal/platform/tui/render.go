package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ouroboros/internal/config"
	"github.com/vovakirdan/ouroboros/internal/core"
)

// pixelWidth is the number of terminal columns per canvas pixel. Terminal
// cells are roughly twice as tall as wide, so two columns make a square.
const pixelWidth = 2

// Palette maps canvas colors to terminal styles.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds a palette from the configured hex colors.
func NewPalette(c config.Colors) Palette {
	return Palette{
		core.ColorBackground: lipgloss.NewStyle().Background(lipgloss.Color(c.Background)),
		core.ColorSnake:      lipgloss.NewStyle().Background(lipgloss.Color(c.Snake)),
		core.ColorNibble:     lipgloss.NewStyle().Background(lipgloss.Color(c.Nibble)),
	}
}

// RenderCanvas converts a canvas to a styled string for display.
// Groups adjacent pixels with the same color to minimize ANSI escape sequences.
func RenderCanvas(c *core.Canvas, p Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(c.Width()*c.Height()*pixelWidth*2 + c.Height())

	for y := range c.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.Width() {
			start := c.Get(x, y)
			run := 0
			for x < c.Width() && c.Get(x, y) == start {
				run++
				x++
			}
			sb.WriteString(p[start].Render(strings.Repeat(" ", run*pixelWidth)))
		}
	}
	return sb.String()
}
