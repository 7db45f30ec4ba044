package game

import "github.com/vovakirdan/ouroboros/internal/core"

// placeNibble puts the nibble on a random free cell and draws it.
// Random draws are bounded; when they run out the free cells are scanned
// directly. A board with no free cell is left without a nibble.
func (s *Session) placeNibble() bool {
	g := s.cfg.GridSize

	for range s.cfg.MaxPlacementAttempts {
		p := core.Point{X: s.rng.Intn(g), Y: s.rng.Intn(g)}
		if !s.isSnakeAt(p) {
			s.setNibble(p)
			return true
		}
	}

	free := s.freeCells()
	if len(free) == 0 {
		s.nibble = core.Point{X: -1, Y: -1}
		s.hasNibble = false
		return false
	}

	s.setNibble(free[s.rng.Intn(len(free))])
	return true
}

func (s *Session) setNibble(p core.Point) {
	s.nibble = p
	s.hasNibble = true
	s.rend.FillCell(p, core.ColorNibble)
}

// freeCells collects every in-range cell not covered by the snake.
func (s *Session) freeCells() []core.Point {
	g := s.cfg.GridSize
	occupied := make(map[core.Point]bool, len(s.snake))
	for _, seg := range s.snake {
		occupied[seg] = true
	}

	var free []core.Point
	for y := range g {
		for x := range g {
			p := core.Point{X: x, Y: y}
			if !occupied[p] {
				free = append(free, p)
			}
		}
	}
	return free
}
