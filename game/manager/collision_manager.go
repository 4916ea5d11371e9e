package manager

import (
	"snake-game/game/entity"
	"snake-game/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Resolve checks the head of the snake against the food and then against
// its own body. Eating is checked first.
func (cm *CollisionManager) Resolve(snake *entity.Snake, food *entity.Food) types.Outcome {
	head := snake.GetHead()

	if cm.IsFoodCollision(head, food) {
		return types.OutcomeAte
	}
	if cm.IsSelfCollision(snake) {
		return types.OutcomeDied
	}
	return types.OutcomeNone
}

// IsFoodCollision checks if a rectangle overlaps the food
func (cm *CollisionManager) IsFoodCollision(rect types.Rect, food *entity.Food) bool {
	return rect.Overlaps(food.Rect())
}

// IsSelfCollision checks the head against every other segment
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	head := snake.GetHead()
	for _, part := range snake.Body[:len(snake.Body)-1] {
		if head.Overlaps(part) {
			return true
		}
	}
	return false
}

// ValidateSpawnPosition checks if a cell can hold food: fully on the
// playfield and not under the snake.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, occupied Occupancy) bool {
	rect := cm.grid.CellRect(pos)
	if rect.Left() < 0 || rect.Left() >= cm.grid.Width || rect.Top() < 0 || rect.Top() >= cm.grid.Height {
		return false
	}
	return !occupied.Has(pos)
}
