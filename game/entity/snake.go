package entity

import (
	"gridsnake/game/types"
)

// Snake is an ordered run of cells, head first. The body is owned by the
// snake; accessors hand out copies.
type Snake struct {
	body []types.Cell
}

func NewSnake(cells ...types.Cell) *Snake {
	body := make([]types.Cell, len(cells))
	copy(body, cells)
	return &Snake{body: body}
}

// NewStraightSnake lays out length cells from head towards the opposite of dir.
func NewStraightSnake(head types.Cell, dir types.Direction, length int) *Snake {
	back := dir.Opposite()
	body := make([]types.Cell, 0, length)
	c := head
	for i := 0; i < length; i++ {
		body = append(body, c)
		c = c.Add(back)
	}
	return &Snake{body: body}
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) GetHead() types.Cell {
	return s.body[0]
}

func (s *Snake) GetTail() types.Cell {
	return s.body[len(s.body)-1]
}

// Move prepends newHead. The tail stays until RemoveTail is called.
func (s *Snake) Move(newHead types.Cell) {
	s.body = append(s.body, types.Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.body) > 0 {
		s.body = s.body[:len(s.body)-1]
	}
}

// Contains is a linear scan over every segment, tail included.
func (s *Snake) Contains(c types.Cell) bool {
	for _, part := range s.body {
		if part == c {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body, head first.
func (s *Snake) Cells() []types.Cell {
	out := make([]types.Cell, len(s.body))
	copy(out, s.body)
	return out
}
