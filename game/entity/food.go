package entity

import "snake-game/game/types"

// Food is the single collectible on the playfield. It is never destroyed,
// only moved to a new cell.
type Food struct {
	Cell types.Point

	grid types.Grid
}

func NewFood(grid types.Grid) *Food {
	return &Food{grid: grid}
}

// Rect returns the pixel rectangle of the food
func (f *Food) Rect() types.Rect {
	return f.grid.CellRect(f.Cell)
}

// MoveTo places the food on a cell
func (f *Food) MoveTo(cell types.Point) {
	f.Cell = cell
}
