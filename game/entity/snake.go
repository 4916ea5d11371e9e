package entity

import (
	"snake-game/game/types"
)

type Color struct {
	R, G, B uint8
}

// Snake is the player controlled actor. Body is ordered tail to head, each
// segment a cell-sized pixel rectangle.
type Snake struct {
	Body      []types.Rect
	Direction types.Direction // facing used by the last Advance
	Step      int             // pixels moved per tick
	Color     Color

	pending types.Direction // applied by the next Advance
	grid    types.Grid
}

func NewSnake(grid types.Grid, color Color) *Snake {
	s := &Snake{
		grid:  grid,
		Color: color,
	}
	s.Reset()
	return s
}

// Reset puts the snake back to a three segment line through the centre of
// the grid, facing right.
func (s *Snake) Reset() {
	center := s.grid.Center()
	s.Body = []types.Rect{
		s.grid.CellRect(types.Point{X: center.X - 1, Y: center.Y}),
		s.grid.CellRect(center),
		s.grid.CellRect(types.Point{X: center.X + 1, Y: center.Y}),
	}
	s.Face(types.Right)
	s.Step = s.grid.CellSize
}

// Face turns the snake at once, skipping every check SetDirection makes
func (s *Snake) Face(dir types.Direction) {
	s.Direction = dir
	s.pending = dir
}

// Pending returns the direction the next Advance will move in
func (s *Snake) Pending() types.Direction {
	return s.pending
}

func (s *Snake) GetHead() types.Rect {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) GetTail() types.Rect {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Segments returns a copy of the body, tail first
func (s *Snake) Segments() []types.Rect {
	body := make([]types.Rect, len(s.Body))
	copy(body, s.Body)
	return body
}

// Cells returns the cell of every segment, tail first
func (s *Snake) Cells() []types.Point {
	cells := make([]types.Point, len(s.Body))
	for i, part := range s.Body {
		cells[i] = s.grid.PixelToCell(part.X, part.Y)
	}
	return cells
}

// IsBounded reports whether the head is fully on the playfield
func (s *Snake) IsBounded() bool {
	return s.grid.Contains(s.GetHead())
}

// SetDirection queues a new facing for the next Advance. Both the reversal
// check and axisChanged compare against the facing of the last Advance, never
// against earlier queued input, so the head cannot fold back onto the neck
// within one tick. Changes are ignored while the head is off the playfield
// during a wraparound.
func (s *Snake) SetDirection(dir types.Direction) (changed, axisChanged bool) {
	if !dir.Valid() || dir == s.Direction.Reverse() || !s.IsBounded() {
		return false, false
	}
	if dir == s.pending {
		return false, false
	}
	axisChanged = dir.Vertical() != s.Direction.Vertical()
	s.pending = dir
	return true, axisChanged
}

// Advance moves the head one step and pulls every other segment into the
// previous position of the segment ahead of it.
//
// A head that has fully left the playfield is first snapped past the
// opposite edge and then moved, so it reappears one tick later rather than
// wrapping on the exact boundary pixel.
func (s *Snake) Advance() {
	s.Direction = s.pending
	old := s.Segments()
	head := &s.Body[len(s.Body)-1]

	switch s.Direction {
	case types.Up:
		if head.Bottom() < 0 {
			head.Y = s.grid.Height
		}
	case types.Down:
		if head.Top() > s.grid.Height {
			head.Y = -s.grid.CellSize
		}
	case types.Left:
		if head.Right() < 0 {
			head.X = s.grid.Width
		}
	case types.Right:
		if head.Left() > s.grid.Width {
			// right edge lands on -CellSize
			head.X = -s.grid.CellSize - head.W
		}
	}
	delta := s.Direction.Delta()
	head.X += delta.X * s.Step
	head.Y += delta.Y * s.Step

	for i := 0; i < len(s.Body)-1; i++ {
		s.Body[i].X, s.Body[i].Y = old[i+1].TopLeft()
	}
}

// Grow adds a segment on top of the current tail. It separates from the
// tail on the next Advance.
func (s *Snake) Grow() {
	tail := s.GetTail()
	s.Body = append([]types.Rect{tail}, s.Body...)
}
