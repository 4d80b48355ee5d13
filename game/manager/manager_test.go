package manager

import (
	"testing"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

func TestCheckCollision(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Rows: 20, Cols: 20})
	snake := entity.NewStraightSnake(types.Cell{Row: 5, Col: 5}, types.Right, 4)

	tests := []struct {
		name string
		pos  types.Cell
		want types.CollisionType
	}{
		{"open", types.Cell{Row: 5, Col: 6}, types.NoCollision},
		{"top wall", types.Cell{Row: -1, Col: 5}, types.WallCollision},
		{"bottom wall", types.Cell{Row: 20, Col: 5}, types.WallCollision},
		{"left wall", types.Cell{Row: 5, Col: -1}, types.WallCollision},
		{"right wall", types.Cell{Row: 5, Col: 20}, types.WallCollision},
		{"body", types.Cell{Row: 5, Col: 4}, types.SelfCollision},
		{"tail", types.Cell{Row: 5, Col: 2}, types.SelfCollision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cm.CheckCollision(tt.pos, snake); got != tt.want {
				t.Errorf("CheckCollision(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestOpenCellsExcludesSnake(t *testing.T) {
	grid := types.Grid{Rows: 3, Cols: 3}
	fm := NewFoodManager(grid, 1)
	snake := entity.NewStraightSnake(types.Cell{Row: 1, Col: 2}, types.Right, 3)

	open := fm.OpenCells(snake)
	if len(open) != grid.Area()-snake.Len() {
		t.Fatalf("open = %d cells, want %d", len(open), grid.Area()-snake.Len())
	}
	for _, c := range open {
		if snake.Contains(c) {
			t.Errorf("open cell %v is on the snake", c)
		}
	}
}

func TestPlaceFoodIsUniform(t *testing.T) {
	grid := types.Grid{Rows: 1, Cols: 5}
	fm := NewFoodManager(grid, 42)
	snake := entity.NewStraightSnake(types.Cell{Row: 0, Col: 4}, types.Right, 3)

	const trials = 10000
	counts := map[types.Cell]int{}
	for i := 0; i < trials; i++ {
		food, ok := fm.PlaceFood(snake)
		if !ok {
			t.Fatal("no food placed on a board with open cells")
		}
		counts[food]++
	}

	if len(counts) != 2 {
		t.Fatalf("food landed on %d distinct cells, want 2: %v", len(counts), counts)
	}
	for c, n := range counts {
		if snake.Contains(c) {
			t.Errorf("food placed on snake at %v", c)
		}
		if n < trials*45/100 || n > trials*55/100 {
			t.Errorf("cell %v chosen %d/%d times", c, n, trials)
		}
	}
}

func TestPlaceFoodFullBoard(t *testing.T) {
	grid := types.Grid{Rows: 1, Cols: 3}
	fm := NewFoodManager(grid, 7)
	snake := entity.NewStraightSnake(types.Cell{Row: 0, Col: 2}, types.Right, 3)

	if food, ok := fm.PlaceFood(snake); ok {
		t.Errorf("PlaceFood on full board = %v, want none", food)
	}
}

func TestStateManagerTransitions(t *testing.T) {
	sm := NewStateManager()
	if sm.Phase() != types.PhaseIdle || sm.Status() != "Press Start to begin." {
		t.Fatalf("initial = %v %q", sm.Phase(), sm.Status())
	}

	if sm.Pause() || sm.Resume() || sm.TickCountdown() {
		t.Fatal("guarded transition accepted in idle")
	}

	if !sm.BeginCountdown(3) {
		t.Fatal("BeginCountdown refused from idle")
	}
	if sm.BeginCountdown(3) {
		t.Fatal("BeginCountdown accepted twice")
	}

	var got []string
	got = append(got, sm.Status())
	for !sm.TickCountdown() {
		got = append(got, sm.Status())
	}
	got = append(got, sm.Status())

	want := []string{"Starting in 3...", "Starting in 2...", "Starting in 1...", "Good luck!"}
	if len(got) != len(want) {
		t.Fatalf("status sequence = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("status[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if !sm.Pause() || sm.Status() != "Paused." {
		t.Fatalf("pause: %v %q", sm.Phase(), sm.Status())
	}
	if sm.Pause() {
		t.Fatal("pause accepted while paused")
	}
	if !sm.Resume() || sm.Phase() != types.PhaseRunning {
		t.Fatalf("resume: %v", sm.Phase())
	}

	if !sm.End(false, 7) {
		t.Fatal("End refused while running")
	}
	if sm.Status() != "Game over! Final score: 7. Click Retry to play again." {
		t.Errorf("status = %q", sm.Status())
	}
	if sm.End(true, 8) || sm.BeginCountdown(3) || sm.Resume() {
		t.Fatal("game over is not terminal")
	}

	sm.Reset()
	if sm.Phase() != types.PhaseIdle || sm.Won() {
		t.Fatalf("after reset = %v won=%v", sm.Phase(), sm.Won())
	}
}

func TestStateManagerWonStatus(t *testing.T) {
	sm := NewStateManager()
	sm.BeginCountdown(1)
	sm.TickCountdown()
	sm.End(true, 397)
	if !sm.Won() || sm.Status() != "You win! Board filled." {
		t.Errorf("won=%v status=%q", sm.Won(), sm.Status())
	}
}
