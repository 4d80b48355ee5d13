// Package input maps raw key names, on-screen buttons and swipes to game
// operations. Front-ends translate their own events into these calls.
package input

import (
	"gridsnake/game/types"
)

// Controller is the subset of game.Game the router drives.
type Controller interface {
	QueueDirection(d types.Direction)
	Start()
	Pause()
	Reset()
	TogglePause()
}

type Button int

const (
	ButtonStart Button = iota
	ButtonPause
	ButtonRetry
)

func (b Button) String() string {
	switch b {
	case ButtonStart:
		return "Start"
	case ButtonPause:
		return "Pause"
	case ButtonRetry:
		return "Retry"
	default:
		return "Unknown"
	}
}

// MinSwipe is the shortest drag, in pixels, read as a swipe.
const MinSwipe = 24

var keyDirections = map[string]types.Direction{
	"ArrowUp":    types.Up,
	"ArrowDown":  types.Down,
	"ArrowLeft":  types.Left,
	"ArrowRight": types.Right,
	"w":          types.Up,
	"W":          types.Up,
	"s":          types.Down,
	"S":          types.Down,
	"a":          types.Left,
	"A":          types.Left,
	"d":          types.Right,
	"D":          types.Right,
}

type Router struct {
	ctl Controller
}

func NewRouter(ctl Controller) *Router {
	return &Router{ctl: ctl}
}

// Key handles one key press named like a DOM KeyboardEvent.key and reports
// whether the key was bound.
func (r *Router) Key(name string) bool {
	if d, ok := keyDirections[name]; ok {
		r.ctl.QueueDirection(d)
		return true
	}
	switch name {
	case " ", "p", "P":
		r.ctl.TogglePause()
	case "Enter":
		r.ctl.Start()
	case "r", "R":
		r.ctl.Reset()
	default:
		return false
	}
	return true
}

func (r *Router) Button(b Button) {
	switch b {
	case ButtonStart:
		r.ctl.Start()
	case ButtonPause:
		r.ctl.Pause()
	case ButtonRetry:
		r.ctl.Reset()
	}
}

// Swipe queues the direction of the dominant axis of a drag. Screen
// coordinates grow downward, so a positive dy is Down.
func (r *Router) Swipe(dx, dy float32) bool {
	ax, ay := abs(dx), abs(dy)
	if ax < MinSwipe && ay < MinSwipe {
		return false
	}
	switch {
	case ax > ay && dx > 0:
		r.ctl.QueueDirection(types.Right)
	case ax > ay:
		r.ctl.QueueDirection(types.Left)
	case dy > 0:
		r.ctl.QueueDirection(types.Down)
	default:
		r.ctl.QueueDirection(types.Up)
	}
	return true
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
