package core

import (
	"math"
	"strings"
)

// NormalizedSize is the extent of the drawing space on both axes.
// All drawing happens in 0..NormalizedSize and is scaled to the pixel grid.
const NormalizedSize = 100.0

// Canvas is a pixel buffer addressed through a 100x100 normalized coordinate
// space. It mirrors a 2D canvas context: pick a fill color, then fill
// rectangles. A pixel is painted when its center lies inside the rectangle.
type Canvas struct {
	width  int
	height int
	fill   Color
	cells  [][]Color
}

// NewCanvas creates a canvas with the given pixel dimensions.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  max(width, 0),
		height: max(height, 0),
	}
	c.allocate()
	return c
}

// allocate creates the underlying pixel storage, filled with background.
func (c *Canvas) allocate() {
	c.cells = make([][]Color, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Color, c.width)
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Resize changes the pixel dimensions. Content is discarded; callers are
// expected to repaint from their own state.
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == c.width && height == c.height {
		return
	}
	c.width = width
	c.height = height
	c.allocate()
}

// SetFillColor selects the color used by subsequent FillRect calls.
func (c *Canvas) SetFillColor(col Color) {
	c.fill = col
}

// FillRect paints the normalized rectangle with the current fill color.
func (c *Canvas) FillRect(x, y, w, h float64) {
	px := c.pixelRect(RectF{X: x, Y: y, W: w, H: h})
	for py := px.Y; py < px.Bottom(); py++ {
		row := c.cells[py]
		for pxX := px.X; pxX < px.Right(); pxX++ {
			row[pxX] = c.fill
		}
	}
}

// pixelRect converts a normalized rectangle to the pixels whose centers it
// contains, clipped to the canvas.
func (c *Canvas) pixelRect(r RectF) Rect {
	sx := float64(c.width) / NormalizedSize
	sy := float64(c.height) / NormalizedSize

	x0 := int(math.Ceil(r.X*sx - 0.5))
	x1 := int(math.Ceil(r.Right()*sx - 0.5))
	y0 := int(math.Ceil(r.Y*sy - 0.5))
	y1 := int(math.Ceil(r.Bottom()*sy - 0.5))

	return NewRect(x0, y0, x1-x0, y1-y0).Intersect(NewRect(0, 0, c.width, c.height))
}

// Get returns the color at the given pixel.
// Out-of-bounds coordinates report the background color.
func (c *Canvas) Get(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return ColorBackground
	}
	return c.cells[y][x]
}

// Equal reports whether two canvases have the same size and pixels.
func (c *Canvas) Equal(other *Canvas) bool {
	if c.width != other.width || c.height != other.height {
		return false
	}
	for y := range c.cells {
		for x := range c.cells[y] {
			if c.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders the canvas as text, one rune per pixel.
// Useful for debugging and golden comparisons in tests.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < c.width; x++ {
			sb.WriteRune(colorRune(c.cells[y][x]))
		}
	}
	return sb.String()
}

func colorRune(col Color) rune {
	switch col {
	case ColorSnake:
		return 'o'
	case ColorNibble:
		return '*'
	default:
		return '.'
	}
}
