package config

import (
	"errors"
	"flag"
	"io"
	"testing"

	"gridsnake/game/types"
)

func newFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load(newFlags(), nil)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		Rows:     types.DefaultRows,
		Cols:     types.DefaultCols,
		CellSize: DefaultCellSize,
		Color:    types.DefaultSnakeColor,
		FPS:      DefaultFPS,
	}
	if c != want {
		t.Errorf("Load() = %+v, want %+v", c, want)
	}
}

func TestLoadPrecedence(t *testing.T) {
	t.Setenv(EnvRows, "12")
	t.Setenv(EnvCols, "16")
	t.Setenv(EnvSeed, "7")
	t.Setenv(EnvColor, "#ff0000")

	c, err := Load(newFlags(), []string{"-cols", "30"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Rows != 12 {
		t.Errorf("Rows = %d, want env value 12", c.Rows)
	}
	if c.Cols != 30 {
		t.Errorf("Cols = %d, want flag value 30", c.Cols)
	}
	if c.Seed != 7 {
		t.Errorf("Seed = %d, want 7", c.Seed)
	}
	if c.Color != (types.Color{R: 255}) {
		t.Errorf("Color = %v", c.Color)
	}
	if c.CellSize != DefaultCellSize {
		t.Errorf("CellSize = %d, want default", c.CellSize)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad env int", map[string]string{EnvRows: "many"}, nil},
		{"bad color", nil, []string{"-color", "green"}},
		{"zero fps", nil, []string{"-fps", "0"}},
		{"unknown flag", nil, []string{"-speed", "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(newFlags(), tt.args); err == nil {
				t.Error("Load succeeded")
			}
		})
	}
}

func TestValidateBoardSize(t *testing.T) {
	tests := []struct {
		rows, cols int
		ok         bool
	}{
		{20, 20, true},
		{1, 4, true},
		{1, 3, false},
		{0, 20, false},
	}
	for _, tt := range tests {
		c := Config{Rows: tt.rows, Cols: tt.cols, CellSize: 1, FPS: 1}
		err := c.Validate()
		if (err == nil) != tt.ok {
			t.Errorf("Validate(%dx%d) = %v", tt.rows, tt.cols, err)
		}
		if err != nil && tt.rows > 0 && !errors.Is(err, ErrBoardTooSmall) {
			t.Errorf("Validate(%dx%d) = %v, want ErrBoardTooSmall", tt.rows, tt.cols, err)
		}
	}
}
