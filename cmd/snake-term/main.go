// Command snake-term plays snake in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/game/timing"
	"gridsnake/ui/term"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
)

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		glog.Exitf("snake-term: %v", err)
	}
	defer glog.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		glog.Errorf("snake-term: %v", err)
		glog.Flush()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer s.Fini()
	s.EnableMouse()
	s.HideCursor()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	clock := timing.NewLoopClock()
	ui := term.New(s)
	g := game.NewGame(game.Options{
		Grid:     cfg.Grid(),
		Seed:     seed,
		Color:    cfg.Color,
		Clock:    clock,
		Renderer: ui,
	})
	glog.Infof("snake-term: %dx%d board, seed %d, session %s", cfg.Rows, cfg.Cols, seed, g.Session())

	err = ui.Run(ctx, g, clock, cfg.FPS)
	glog.Infof("snake-term: exiting, final score %d", g.Score())
	return err
}
