package entity

import (
	"testing"

	"gridsnake/game/types"
)

func TestNewStraightSnake(t *testing.T) {
	s := NewStraightSnake(types.Cell{Row: 10, Col: 10}, types.Right, 3)

	want := []types.Cell{{Row: 10, Col: 10}, {Row: 10, Col: 9}, {Row: 10, Col: 8}}
	got := s.Cells()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %v, want %v", i, got[i], want[i])
		}
	}
	if s.GetHead() != want[0] || s.GetTail() != want[2] {
		t.Errorf("head/tail = %v/%v", s.GetHead(), s.GetTail())
	}
}

func TestMoveAndRemoveTail(t *testing.T) {
	s := NewSnake(types.Cell{Row: 0, Col: 2}, types.Cell{Row: 0, Col: 1}, types.Cell{Row: 0, Col: 0})

	s.Move(types.Cell{Row: 0, Col: 3})
	if s.Len() != 4 {
		t.Fatalf("len after move = %d, want 4", s.Len())
	}
	if s.GetHead() != (types.Cell{Row: 0, Col: 3}) {
		t.Errorf("head = %v", s.GetHead())
	}

	s.RemoveTail()
	if s.Len() != 3 {
		t.Fatalf("len after remove = %d, want 3", s.Len())
	}
	if s.GetTail() != (types.Cell{Row: 0, Col: 1}) {
		t.Errorf("tail = %v", s.GetTail())
	}
}

func TestCellsIsACopy(t *testing.T) {
	src := []types.Cell{{Row: 1, Col: 1}, {Row: 1, Col: 0}}
	s := NewSnake(src...)
	src[0] = types.Cell{Row: 9, Col: 9}

	cells := s.Cells()
	cells[1] = types.Cell{Row: 7, Col: 7}

	if s.GetHead() != (types.Cell{Row: 1, Col: 1}) {
		t.Errorf("constructor aliased caller slice")
	}
	if s.GetTail() != (types.Cell{Row: 1, Col: 0}) {
		t.Errorf("Cells aliased body")
	}
}

func TestContainsIncludesTail(t *testing.T) {
	s := NewStraightSnake(types.Cell{Row: 5, Col: 5}, types.Down, 4)
	if !s.Contains(s.GetTail()) {
		t.Error("tail not reported as part of the body")
	}
	if s.Contains(types.Cell{Row: 6, Col: 5}) {
		t.Error("cell in front of the head reported as body")
	}
}
