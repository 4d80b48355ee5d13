package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// OpenCells lists every board cell not covered by the snake, row-major.
func (fm *FoodManager) OpenCells(snake *entity.Snake) []types.Cell {
	open := make([]types.Cell, 0, fm.grid.Area())
	for row := 0; row < fm.grid.Rows; row++ {
		for col := 0; col < fm.grid.Cols; col++ {
			c := types.Cell{Row: row, Col: col}
			if snake != nil && snake.Contains(c) {
				continue
			}
			open = append(open, c)
		}
	}
	return open
}

// PlaceFood draws one open cell uniformly. ok is false when the snake
// covers the whole board.
func (fm *FoodManager) PlaceFood(snake *entity.Snake) (food types.Cell, ok bool) {
	open := fm.OpenCells(snake)
	if len(open) == 0 {
		return types.Cell{}, false
	}
	return open[fm.rng.Intn(len(open))], true
}
