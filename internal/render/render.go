// Package render projects grid cells of the game onto a drawing surface.
// It holds no game state: only the surface handle and the geometry derived
// from the grid size.
package render

import "github.com/vovakirdan/ouroboros/internal/core"

// Surface is the canvas-like drawing target.
// Coordinates are in the 100x100 normalized space.
type Surface interface {
	SetFillColor(c core.Color)
	FillRect(x, y, w, h float64)
}

// Geometry holds the cell layout for a square grid.
// The board is split into gridSize*6+1 fragments per axis: every cell is a
// 5-fragment square preceded by a 1-fragment gap, plus one closing gap.
type Geometry struct {
	GridSize int
	Padding  float64
	Square   float64
}

// NewGeometry computes the layout for the given grid size.
func NewGeometry(gridSize int) Geometry {
	padding := core.NormalizedSize / float64(gridSize*6+1)
	return Geometry{
		GridSize: gridSize,
		Padding:  padding,
		Square:   padding * 5,
	}
}

// origin returns the top-left of the cell's slot, before padding.
func (g Geometry) origin(c core.Point) (float64, float64) {
	step := g.Square + g.Padding
	return float64(c.X) * step, float64(c.Y) * step
}

// CellRect returns the normalized rectangle a cell is drawn in.
func (g Geometry) CellRect(c core.Point) core.RectF {
	x, y := g.origin(c)
	return core.RectF{X: x + g.Padding, Y: y + g.Padding, W: g.Square, H: g.Square}
}

// EraseRect returns the rectangle painted when a cell is cleared. It is half
// a padding larger on every side so rounding never leaves a seam.
func (g Geometry) EraseRect(c core.Point) core.RectF {
	x, y := g.origin(c)
	return core.RectF{
		X: x + g.Padding/2,
		Y: y + g.Padding/2,
		W: g.Square + g.Padding,
		H: g.Square + g.Padding,
	}
}

// Renderer draws background, cells and erasures onto a Surface.
type Renderer struct {
	surface Surface
	geom    Geometry
}

// New creates a renderer for a gridSize x gridSize board.
func New(surface Surface, gridSize int) *Renderer {
	return &Renderer{
		surface: surface,
		geom:    NewGeometry(gridSize),
	}
}

// Geometry returns the cell layout in use.
func (r *Renderer) Geometry() Geometry {
	return r.geom
}

// FillBackground paints the whole board in the background color.
func (r *Renderer) FillBackground() {
	r.surface.SetFillColor(core.ColorBackground)
	r.surface.FillRect(0, 0, core.NormalizedSize, core.NormalizedSize)
}

// FillCell paints one cell in the given color.
func (r *Renderer) FillCell(c core.Point, color core.Color) {
	r.fill(r.geom.CellRect(c), color)
}

// EraseCell paints background over a cell and its surrounding padding.
func (r *Renderer) EraseCell(c core.Point) {
	r.fill(r.geom.EraseRect(c), core.ColorBackground)
}

// FillCells paints every cell in the given color.
func (r *Renderer) FillCells(cells []core.Point, color core.Color) {
	for _, c := range cells {
		r.FillCell(c, color)
	}
}

func (r *Renderer) fill(rect core.RectF, color core.Color) {
	r.surface.SetFillColor(color)
	r.surface.FillRect(rect.X, rect.Y, rect.W, rect.H)
}
