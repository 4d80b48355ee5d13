package types

import (
	"fmt"
	"strconv"
)

// Grid represents the board dimensions
type Grid struct {
	Rows int
	Cols int
}

// Contains reports whether c lies on the board.
func (g Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Area is the number of cells on the board.
func (g Grid) Area() int {
	return g.Rows * g.Cols
}

// Game constants
const (
	DefaultRows   = 20
	DefaultCols   = 20
	InitialLength = 3 // Snake length after reset
	CountdownFrom = 3 // Seconds shown before play starts
)

type Cell struct {
	Row, Col int
}

// Add moves the cell one step in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction is a unit vector on the grid
type Direction struct {
	Row, Col int
}

var (
	Up    = Direction{Row: -1, Col: 0}
	Down  = Direction{Row: 1, Col: 0}
	Left  = Direction{Row: 0, Col: -1}
	Right = Direction{Row: 0, Col: 1}
)

func (d Direction) Opposite() Direction {
	return Direction{Row: -d.Row, Col: -d.Col}
}

// IsUnit reports whether d is one of Up, Down, Left or Right.
func (d Direction) IsUnit() bool {
	return (d.Row == 0) != (d.Col == 0) &&
		d.Row >= -1 && d.Row <= 1 && d.Col >= -1 && d.Col <= 1
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("dir(%d,%d)", d.Row, d.Col)
	}
}

type Color struct {
	R, G, B uint8
}

// DefaultSnakeColor is the green the board starts with.
var DefaultSnakeColor = Color{R: 0x2e, G: 0xe5, B: 0x9d}

// ParseColor reads a "#rrggbb" or "rrggbb" hex string.
func ParseColor(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: want rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Shade scales each channel by f, clamping to 255.
func (c Color) Shade(f float64) Color {
	scale := func(v uint8) uint8 {
		x := float64(v) * f
		if x > 255 {
			return 255
		}
		if x < 0 {
			return 0
		}
		return uint8(x)
	}
	return Color{R: scale(c.R), G: scale(c.G), B: scale(c.B)}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (ct CollisionType) String() string {
	switch ct {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Phase is the lifecycle state of a single game session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCountingDown
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCountingDown:
		return "counting-down"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game-over"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}
