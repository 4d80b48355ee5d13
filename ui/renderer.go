package ui

import (
	"fmt"
	"strings"

	"gridsnake/game"
	"gridsnake/game/input"
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10
	buttonHeight  = 36
	buttonGap     = 8
)

var buttons = []input.Button{input.ButtonStart, input.ButtonPause, input.ButtonRetry}

// Renderer keeps the last snapshot it was handed and paints it once per
// frame. Render is called by the game; Draw by the frame loop.
type Renderer struct {
	snap game.Snapshot

	cellSize     int32
	screenWidth  int32
	screenHeight int32
	gameWidth    int32
	statsPanel   int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) Render(s game.Snapshot) {
	r.snap = s
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	r.statsPanel = r.screenWidth / 4
	r.gameWidth = r.screenWidth - r.statsPanel
}

func (r *Renderer) layout() {
	rows, cols := int32(r.snap.Rows), int32(r.snap.Cols)
	if rows == 0 || cols == 0 {
		return
	}
	availableWidth := r.gameWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2
	r.cellSize = min(availableWidth/cols, availableHeight/rows)

	r.offsetX = borderPadding + (availableWidth-r.cellSize*cols)/2
	r.offsetY = (r.screenHeight - r.cellSize*rows) / 2
}

func (r *Renderer) Draw() {
	r.UpdateDimensions()
	r.layout()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r.drawBoard()
	r.drawPanel()

	rl.EndDrawing()
}

func (r *Renderer) drawBoard() {
	s := r.snap
	rl.DrawRectangle(
		r.offsetX-1,
		r.offsetY-1,
		r.cellSize*int32(s.Cols)+2,
		r.cellSize*int32(s.Rows)+2,
		rl.DarkGray)

	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Cols; col++ {
			x, y := r.cellOrigin(types.Cell{Row: row, Col: col})
			rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, rl.Gray)
		}
	}

	if s.HasFood {
		x, y := r.cellOrigin(s.Food)
		half := float32(r.cellSize) / 2
		rl.DrawCircle(x+r.cellSize/2, y+r.cellSize/2, half*0.8, rl.Red)
	}

	body := toRaylib(s.Color)
	head := toRaylib(s.Color.Shade(1.3))
	for i := len(s.Snake) - 1; i >= 0; i-- {
		x, y := r.cellOrigin(s.Snake[i])
		c := body
		if i == 0 {
			c = head
		}
		rl.DrawRectangle(x+1, y+1, r.cellSize-2, r.cellSize-2, c)
	}
	if len(s.Snake) > 0 {
		r.drawHeadMarker(s.Snake[0], s.Direction)
	}
}

// drawHeadMarker points a triangle the way the snake last moved.
func (r *Renderer) drawHeadMarker(p types.Cell, d types.Direction) {
	hx, hy := r.cellOrigin(p)
	x, y, size := float32(hx), float32(hy), float32(r.cellSize)
	half := size / 2

	var a, b, c rl.Vector2
	switch d {
	case types.Right:
		a, b, c = rl.Vector2{X: x + size, Y: y + half}, rl.Vector2{X: x + half, Y: y}, rl.Vector2{X: x + half, Y: y + size}
	case types.Left:
		a, b, c = rl.Vector2{X: x, Y: y + half}, rl.Vector2{X: x + half, Y: y + size}, rl.Vector2{X: x + half, Y: y}
	case types.Down:
		a, b, c = rl.Vector2{X: x + half, Y: y + size}, rl.Vector2{X: x + size, Y: y + half}, rl.Vector2{X: x, Y: y + half}
	default:
		a, b, c = rl.Vector2{X: x + half, Y: y}, rl.Vector2{X: x, Y: y + half}, rl.Vector2{X: x + size, Y: y + half}
	}
	rl.DrawTriangle(a, b, c, rl.Yellow)
}

func (r *Renderer) drawPanel() {
	s := r.snap
	panelX := r.gameWidth + 5
	fontSize := min(r.screenHeight/30, r.statsPanel/10)
	lineHeight := fontSize + fontSize/2
	y := int32(borderPadding)

	rl.DrawRectangle(panelX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	rl.DrawText(fmt.Sprintf("Score: %d", s.Score), panelX, y, fontSize+4, rl.White)
	y += lineHeight * 2
	rl.DrawText(fmt.Sprintf("Speed: %dms", s.Interval.Milliseconds()), panelX, y, fontSize, rl.LightGray)
	y += lineHeight
	active := s.ActiveTime
	rl.DrawText(fmt.Sprintf("Time: %02d:%02d", int(active.Minutes()), int(active.Seconds())%60), panelX, y, fontSize, rl.LightGray)
	y += lineHeight * 2

	for _, b := range buttons {
		rect := r.buttonRect(b)
		bg := rl.Gray
		if r.buttonEnabled(b) {
			bg = rl.Color{R: 0x3a, G: 0x3a, B: 0x4a, A: 255}
		}
		rl.DrawRectangleRec(rect, bg)
		rl.DrawRectangleLinesEx(rect, 1, rl.LightGray)
		label := b.String()
		w := rl.MeasureText(label, fontSize)
		rl.DrawText(label, int32(rect.X)+(int32(rect.Width)-w)/2, int32(rect.Y)+(buttonHeight-fontSize)/2, fontSize, rl.White)
	}

	statusY := r.buttonRect(buttons[len(buttons)-1]).Y + buttonHeight + float32(lineHeight)
	r.drawWrapped(s.Status, panelX, int32(statusY), fontSize)
	rl.DrawText("Session "+shortSession(s.Session), panelX, r.screenHeight-fontSize-5, fontSize*3/4, rl.Gray)
}

// drawWrapped breaks text on spaces to fit the panel.
func (r *Renderer) drawWrapped(text string, x, y, fontSize int32) {
	maxWidth := r.statsPanel - 15
	line := ""
	for _, word := range strings.Fields(text) {
		next := word
		if line != "" {
			next = line + " " + word
		}
		if line != "" && rl.MeasureText(next, fontSize) > maxWidth {
			rl.DrawText(line, x, y, fontSize, rl.White)
			y += fontSize + 4
			next = word
		}
		line = next
	}
	if line != "" {
		rl.DrawText(line, x, y, fontSize, rl.White)
	}
}

func (r *Renderer) buttonRect(b input.Button) rl.Rectangle {
	fontSize := min(r.screenHeight/30, r.statsPanel/10)
	top := float32(borderPadding + (fontSize+fontSize/2)*6)
	return rl.Rectangle{
		X:      float32(r.gameWidth + 5),
		Y:      top + float32(int32(b)*(buttonHeight+buttonGap)),
		Width:  float32(r.statsPanel - 15),
		Height: buttonHeight,
	}
}

func (r *Renderer) buttonEnabled(b input.Button) bool {
	switch b {
	case input.ButtonStart:
		return r.snap.Phase == types.PhaseIdle || r.snap.Phase == types.PhasePaused
	case input.ButtonPause:
		return r.snap.Phase == types.PhaseRunning
	default:
		return true
	}
}

// ButtonAt reports the button under a screen point, if any.
func (r *Renderer) ButtonAt(p rl.Vector2) (input.Button, bool) {
	for _, b := range buttons {
		if rl.CheckCollisionPointRec(p, r.buttonRect(b)) {
			return b, true
		}
	}
	return 0, false
}

func (r *Renderer) cellOrigin(p types.Cell) (int32, int32) {
	return r.offsetX + int32(p.Col)*r.cellSize, r.offsetY + int32(p.Row)*r.cellSize
}

func toRaylib(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

func shortSession(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
