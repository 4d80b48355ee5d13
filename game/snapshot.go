package game

import (
	"time"

	"gridsnake/game/types"
)

// Snapshot is everything a renderer needs to paint one frame. It shares no
// memory with the game.
type Snapshot struct {
	Session    string
	Rows       int
	Cols       int
	Snake      []types.Cell // head first
	Food       types.Cell
	HasFood    bool
	Direction  types.Direction
	Phase      types.Phase
	Countdown  int
	Score      int
	Won        bool
	Status     string
	Color      types.Color
	ActiveTime time.Duration
	Interval   time.Duration
}

// Renderer receives a snapshot after every state-affecting operation.
type Renderer interface {
	Render(s Snapshot)
}

// RenderFunc adapts a plain function to Renderer.
type RenderFunc func(s Snapshot)

func (f RenderFunc) Render(s Snapshot) { f(s) }

type nopRenderer struct{}

func (nopRenderer) Render(Snapshot) {}
