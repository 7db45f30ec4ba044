package core

// Color is one of the fixed fill colors a Surface knows about.
// The platform layer decides how each color looks on the actual display.
type Color uint8

const (
	ColorBackground Color = iota
	ColorSnake
	ColorNibble
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorBackground:
		return "background"
	case ColorSnake:
		return "snake"
	case ColorNibble:
		return "nibble"
	default:
		return "unknown"
	}
}
