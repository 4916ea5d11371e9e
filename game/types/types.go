package types

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid is returned when the playfield is not a whole number of cells
var ErrInvalidGrid = errors.New("invalid grid")

// Point is a cell coordinate (column, row)
type Point struct {
	X, Y int
}

// Rect is a pixel rectangle anchored at its top-left corner
type Rect struct {
	X, Y int
	W, H int
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// TopLeft returns the pixel position of the rectangle
func (r Rect) TopLeft() (int, int) {
	return r.X, r.Y
}

// Overlaps reports whether the two rectangles share a positive area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Direction is the facing of the snake
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

var directionNames = [...]string{
	Up:    "up",
	Right: "right",
	Down:  "down",
	Left:  "left",
}

var reverseDirection = [...]Direction{
	Up:    Down,
	Right: Left,
	Down:  Up,
	Left:  Right,
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Valid reports whether d is one of the four cardinal directions
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// Reverse returns the opposite direction
func (d Direction) Reverse() Direction {
	return reverseDirection[d]
}

// Vertical reports whether d moves along the y axis
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// Delta converts a Direction into a unit movement vector
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Grid describes the playfield in pixels and the size of a single cell
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// NewGrid validates the playfield dimensions
func NewGrid(width, height, cellSize int) (Grid, error) {
	if cellSize <= 0 {
		return Grid{}, fmt.Errorf("%w: cell size %d must be positive", ErrInvalidGrid, cellSize)
	}
	if width <= 0 || width%cellSize != 0 {
		return Grid{}, fmt.Errorf("%w: width %d is not a positive multiple of cell size %d", ErrInvalidGrid, width, cellSize)
	}
	if height <= 0 || height%cellSize != 0 {
		return Grid{}, fmt.Errorf("%w: height %d is not a positive multiple of cell size %d", ErrInvalidGrid, height, cellSize)
	}
	return Grid{Width: width, Height: height, CellSize: cellSize}, nil
}

// MaxCol is the number of columns
func (g Grid) MaxCol() int { return g.Width / g.CellSize }

// MaxRow is the number of rows
func (g Grid) MaxRow() int { return g.Height / g.CellSize }

// Cells is the total number of cells on the playfield
func (g Grid) Cells() int { return g.MaxCol() * g.MaxRow() }

// Center returns the middle cell of the playfield
func (g Grid) Center() Point {
	return Point{X: g.MaxCol() / 2, Y: g.MaxRow() / 2}
}

// CellToPixel returns the top-left pixel of a cell
func (g Grid) CellToPixel(p Point) (int, int) {
	return p.X * g.CellSize, p.Y * g.CellSize
}

// PixelToCell returns the cell containing the pixel. Pixels left of or above
// the playfield map to negative cells.
func (g Grid) PixelToCell(x, y int) Point {
	return Point{X: floorDiv(x, g.CellSize), Y: floorDiv(y, g.CellSize)}
}

// CellRect returns the pixel rectangle covering a cell
func (g Grid) CellRect(p Point) Rect {
	x, y := g.CellToPixel(p)
	return Rect{X: x, Y: y, W: g.CellSize, H: g.CellSize}
}

// Contains reports whether r lies fully inside [0, Width] x [0, Height]
func (g Grid) Contains(r Rect) bool {
	return r.Left() >= 0 && r.Right() <= g.Width &&
		r.Top() >= 0 && r.Bottom() <= g.Height
}

// Index maps an on-grid cell to a linear index, row-major
func (g Grid) Index(p Point) int {
	return p.Y*g.MaxCol() + p.X
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Outcome is the result of resolving collisions after a move
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeAte
	OutcomeDied
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAte:
		return "ate"
	case OutcomeDied:
		return "died"
	default:
		return "none"
	}
}

// Event is a discrete notification for the presentation layer
type Event int

const (
	EventAxisChanged Event = iota + 1 // direction turned between horizontal and vertical
	EventAte
	EventDied
	EventReset
	EventPaused
	EventResumed
)

func (e Event) String() string {
	switch e {
	case EventAxisChanged:
		return "axis_changed"
	case EventAte:
		return "ate"
	case EventDied:
		return "died"
	case EventReset:
		return "reset"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}
