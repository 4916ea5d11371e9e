package manager

import (
	"errors"
	"time"

	"snake-game/game/entity"
	"snake-game/game/types"

	"github.com/kamstrup/intmap"
	"golang.org/x/exp/rand"
)

// ErrNoFreeCell is returned when a capped placement runs out of attempts
var ErrNoFreeCell = errors.New("no free cell for food")

// Occupancy is the set of cells covered by the snake
type Occupancy struct {
	grid  types.Grid
	cells *intmap.Set[int]
}

func NewOccupancy(grid types.Grid, cells []types.Point) Occupancy {
	o := Occupancy{
		grid:  grid,
		cells: intmap.NewSet[int](len(cells)),
	}
	for _, c := range cells {
		// off-grid segments (mid wraparound) can never be sampled
		if c.X < 0 || c.X >= grid.MaxCol() || c.Y < 0 || c.Y >= grid.MaxRow() {
			continue
		}
		o.cells.Add(grid.Index(c))
	}
	return o
}

func (o Occupancy) Has(p types.Point) bool {
	if p.X < 0 || p.X >= o.grid.MaxCol() || p.Y < 0 || p.Y >= o.grid.MaxRow() {
		return false
	}
	return o.cells.Has(o.grid.Index(p))
}

func (o Occupancy) Len() int {
	return o.cells.Len()
}

type FoodManager struct {
	grid         types.Grid
	food         *entity.Food
	rng          *rand.Rand
	maxAttempts  int
	collisionMgr *CollisionManager
}

// NewFoodManager creates the food placer. A zero seed uses the clock; a zero
// maxAttempts samples until a free cell turns up.
func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64, maxAttempts int) *FoodManager {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &FoodManager{
		grid:         grid,
		food:         entity.NewFood(grid),
		rng:          rand.New(rand.NewSource(seed)),
		maxAttempts:  maxAttempts,
		collisionMgr: collisionMgr,
	}
}

func (fm *FoodManager) GetFood() *entity.Food {
	return fm.food
}

// Relocate moves the food to a random cell not covered by the snake.
//
// Cells are drawn from [0, MaxCol-2] x [0, MaxRow-2], keeping the last
// column and row free of food. Without an attempt cap this loops forever
// when the snake covers every one of those cells.
func (fm *FoodManager) Relocate(snake *entity.Snake) error {
	cell, err := fm.GenerateFood(NewOccupancy(fm.grid, snake.Cells()))
	if err != nil {
		return err
	}
	fm.food.MoveTo(cell)
	return nil
}

func (fm *FoodManager) GenerateFood(occupied Occupancy) (types.Point, error) {
	maxX := fm.grid.MaxCol() - 2
	maxY := fm.grid.MaxRow() - 2
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}

	for attempt := 0; fm.maxAttempts == 0 || attempt < fm.maxAttempts; attempt++ {
		food := types.Point{
			X: fm.rng.Intn(maxX + 1),
			Y: fm.rng.Intn(maxY + 1),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, occupied) {
			return food, nil
		}
	}
	return types.Point{}, ErrNoFreeCell
}
