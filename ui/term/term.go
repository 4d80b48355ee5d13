// Package term is a terminal front-end drawn with tcell. Each board cell is
// two columns wide so the board looks square in most fonts.
package term

import (
	"context"
	"fmt"
	"time"

	"gridsnake/game"
	"gridsnake/game/input"
	"gridsnake/game/timing"
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
)

const (
	boardX = 1
	boardY = 2
)

var buttons = []input.Button{input.ButtonStart, input.ButtonPause, input.ButtonRetry}

// UI owns the screen. Render only records the snapshot; the frame loop
// paints it, so all drawing happens on one goroutine.
type UI struct {
	screen tcell.Screen
	snap   game.Snapshot
	dirty  bool
}

func New(screen tcell.Screen) *UI {
	return &UI{screen: screen}
}

func (u *UI) Render(s game.Snapshot) {
	u.snap = s
	u.dirty = true
}

// Run drives the game until ctx is cancelled or the player quits. The
// clock is advanced to wall time on every frame and every event.
func (u *UI) Run(ctx context.Context, g *game.Game, clock *timing.LoopClock, fps int) error {
	router := input.NewRouter(g)
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go u.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	start := time.Now()
	u.dirty = true
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			clock.AdvanceTo(time.Since(start))
			if u.handle(ev, router) {
				return nil
			}
		case <-ticker.C:
			clock.AdvanceTo(time.Since(start))
		}
		if u.dirty {
			u.draw()
			u.dirty = false
		}
	}
}

// handle reports whether the player asked to quit.
func (u *UI) handle(ev tcell.Event, router *input.Router) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		u.screen.Sync()
		u.dirty = true
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			if ev.Rune() == 'q' || ev.Rune() == 'Q' {
				return true
			}
		}
		if name := keyName(ev); name != "" && !router.Key(name) {
			glog.V(2).Infof("term: unbound key %q", name)
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return false
		}
		x, y := ev.Position()
		if b, ok := u.buttonAt(x, y); ok {
			router.Button(b)
		}
	}
	return false
}

func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "ArrowUp"
	case tcell.KeyDown:
		return "ArrowDown"
	case tcell.KeyLeft:
		return "ArrowLeft"
	case tcell.KeyRight:
		return "ArrowRight"
	case tcell.KeyEnter:
		return "Enter"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}

func (u *UI) draw() {
	s := u.snap
	scr := u.screen
	scr.Clear()

	header := tcell.StyleDefault.Bold(true)
	drawText(scr, boardX, 0, header, fmt.Sprintf("Score: %d   Speed: %dms", s.Score, s.Interval.Milliseconds()))

	border := tcell.StyleDefault.Foreground(tcell.ColorGray)
	w, h := s.Cols*2, s.Rows
	for x := boardX - 1; x <= boardX+w; x++ {
		scr.SetContent(x, boardY-1, '─', nil, border)
		scr.SetContent(x, boardY+h, '─', nil, border)
	}
	for y := boardY - 1; y <= boardY+h; y++ {
		scr.SetContent(boardX-1, y, '│', nil, border)
		scr.SetContent(boardX+w, y, '│', nil, border)
	}
	scr.SetContent(boardX-1, boardY-1, '┌', nil, border)
	scr.SetContent(boardX+w, boardY-1, '┐', nil, border)
	scr.SetContent(boardX-1, boardY+h, '└', nil, border)
	scr.SetContent(boardX+w, boardY+h, '┘', nil, border)

	if s.HasFood {
		drawCell(scr, s.Food, tcell.StyleDefault.Foreground(tcell.ColorRed), '●', ' ')
	}
	body := tcell.StyleDefault.Background(toTcell(s.Color))
	head := tcell.StyleDefault.Background(toTcell(s.Color.Shade(1.3)))
	for i := len(s.Snake) - 1; i >= 0; i-- {
		style := body
		if i == 0 {
			style = head
		}
		drawCell(scr, s.Snake[i], style, ' ', ' ')
	}

	statusY := boardY + h + 1
	drawText(scr, boardX, statusY, tcell.StyleDefault, s.Status)
	for _, b := range buttons {
		x, y, label := u.buttonPos(b)
		style := tcell.StyleDefault.Reverse(true)
		drawText(scr, x, y, style, label)
	}
	drawText(scr, boardX, statusY+3, border, "arrows/wasd move  space pause  enter start  r retry  q quit")
	scr.Show()
}

func (u *UI) buttonPos(b input.Button) (x, y int, label string) {
	label = "[ " + b.String() + " ]"
	x = boardX
	for _, prev := range buttons {
		if prev == b {
			break
		}
		x += len("[ "+prev.String()+" ]") + 2
	}
	return x, boardY + u.snap.Rows + 2, label
}

func (u *UI) buttonAt(x, y int) (input.Button, bool) {
	for _, b := range buttons {
		bx, by, label := u.buttonPos(b)
		if y == by && x >= bx && x < bx+len(label) {
			return b, true
		}
	}
	return 0, false
}

func drawCell(scr tcell.Screen, p types.Cell, style tcell.Style, left, right rune) {
	x, y := boardX+p.Col*2, boardY+p.Row
	scr.SetContent(x, y, left, nil, style)
	scr.SetContent(x+1, y, right, nil, style)
}

func drawText(scr tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		scr.SetContent(x, y, r, nil, style)
		x++
	}
}

func toTcell(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
