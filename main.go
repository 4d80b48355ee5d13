package main

import (
	"flag"
	"os"
	"time"

	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/game/input"
	"gridsnake/game/timing"
	"gridsnake/game/types"
	"gridsnake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/glog"
)

var palette = []types.Color{
	types.DefaultSnakeColor,
	{R: 0x4f, G: 0x8c, B: 0xff},
	{R: 0xff, G: 0xb0, B: 0x3b},
	{R: 0xe0, G: 0x5a, B: 0xd6},
	{R: 0xf5, G: 0xf5, B: 0xf5},
}

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		glog.Exitf("snake: %v", err)
	}
	defer glog.Flush()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	const panelCells = 8
	width := int32((cfg.Cols + panelCells) * cfg.CellSize)
	height := int32(cfg.Rows * cfg.CellSize)
	rl.InitWindow(width, height, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))

	clock := timing.NewLoopClock()
	renderer := ui.NewRenderer()
	g := game.NewGame(game.Options{
		Grid:     cfg.Grid(),
		Seed:     seed,
		Color:    cfg.Color,
		Clock:    clock,
		Renderer: renderer,
	})
	glog.Infof("snake: %dx%d board, seed %d, session %s", cfg.Rows, cfg.Cols, seed, g.Session())

	colorIdx := 0
	for i, c := range palette {
		if c == cfg.Color {
			colorIdx = i
		}
	}
	in := ui.NewInput(input.NewRouter(g), renderer, func() {
		colorIdx = (colorIdx + 1) % len(palette)
		g.SetColor(palette[colorIdx])
	})

	start := time.Now()
	for !rl.WindowShouldClose() {
		in.Poll()
		clock.AdvanceTo(time.Since(start))
		renderer.Draw()
	}
	glog.Infof("snake: window closed, final score %d", g.Score())
}
