package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies what a head moving to pos would hit.
// The tail counts: it has not been vacated yet when the head arrives.
func (cm *CollisionManager) CheckCollision(pos types.Cell, snake *entity.Snake) types.CollisionType {
	if !cm.IsInsideBoard(pos) {
		return types.WallCollision
	}
	if cm.CollidesWithSnake(pos, snake) {
		return types.SelfCollision
	}
	return types.NoCollision
}

func (cm *CollisionManager) IsInsideBoard(pos types.Cell) bool {
	return cm.grid.Contains(pos)
}

func (cm *CollisionManager) CollidesWithSnake(pos types.Cell, snake *entity.Snake) bool {
	return snake != nil && snake.Contains(pos)
}
