package ui

import (
	"gridsnake/game/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// keyNames translates raylib key codes into the names the router binds.
var keyNames = map[int32]string{
	rl.KeyUp:    "ArrowUp",
	rl.KeyDown:  "ArrowDown",
	rl.KeyLeft:  "ArrowLeft",
	rl.KeyRight: "ArrowRight",
	rl.KeyW:     "w",
	rl.KeyA:     "a",
	rl.KeyS:     "s",
	rl.KeyD:     "d",
	rl.KeySpace: " ",
	rl.KeyEnter: "Enter",
	rl.KeyP:     "p",
	rl.KeyR:     "r",
}

// Input polls raylib once per frame and forwards what it finds to the
// router. A press on a button is a click; a press elsewhere that is
// released far enough away is a swipe.
type Input struct {
	router   *input.Router
	renderer *Renderer
	onCycle  func()

	dragging bool
	dragFrom rl.Vector2
}

func NewInput(router *input.Router, renderer *Renderer, onCycle func()) *Input {
	return &Input{router: router, renderer: renderer, onCycle: onCycle}
}

func (in *Input) Poll() {
	for key, name := range keyNames {
		if rl.IsKeyPressed(key) {
			in.router.Key(name)
		}
	}
	if rl.IsKeyPressed(rl.KeyC) && in.onCycle != nil {
		in.onCycle()
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		if b, ok := in.renderer.ButtonAt(pos); ok {
			in.router.Button(b)
			return
		}
		in.dragging = true
		in.dragFrom = pos
	}
	if in.dragging && rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		in.dragging = false
		pos := rl.GetMousePosition()
		in.router.Swipe(pos.X-in.dragFrom.X, pos.Y-in.dragFrom.Y)
	}
}
