// Package config resolves front-end settings from flags, the environment
// and an optional .env file, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gridsnake/game/types"

	"github.com/joho/godotenv"
)

const (
	EnvRows     = "SNAKE_ROWS"
	EnvCols     = "SNAKE_COLS"
	EnvCellSize = "SNAKE_CELL_SIZE"
	EnvSeed     = "SNAKE_SEED"
	EnvColor    = "SNAKE_COLOR"
	EnvFPS      = "SNAKE_FPS"

	DefaultCellSize = 24
	DefaultFPS      = 60
)

type Config struct {
	Rows     int
	Cols     int
	CellSize int
	// Seed 0 means seed from the wall clock.
	Seed  uint64
	Color types.Color
	FPS   int
}

func (c Config) Grid() types.Grid {
	return types.Grid{Rows: c.Rows, Cols: c.Cols}
}

// Load registers the settings on flags, parses args and validates the result.
// Values from the environment, including a .env file in the working
// directory, become the flag defaults.
func Load(flags *flag.FlagSet, args []string) (Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return Config{}, err
	}

	var (
		c     Config
		color string
		err   error
	)
	if c.Rows, err = envInt(EnvRows, types.DefaultRows); err != nil {
		return Config{}, err
	}
	if c.Cols, err = envInt(EnvCols, types.DefaultCols); err != nil {
		return Config{}, err
	}
	if c.CellSize, err = envInt(EnvCellSize, DefaultCellSize); err != nil {
		return Config{}, err
	}
	if c.FPS, err = envInt(EnvFPS, DefaultFPS); err != nil {
		return Config{}, err
	}
	if c.Seed, err = envUint(EnvSeed, 0); err != nil {
		return Config{}, err
	}
	color = os.Getenv(EnvColor)
	if color == "" {
		color = types.DefaultSnakeColor.Hex()
	}

	flags.IntVar(&c.Rows, "rows", c.Rows, "board rows")
	flags.IntVar(&c.Cols, "cols", c.Cols, "board columns")
	flags.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	flags.Uint64Var(&c.Seed, "seed", c.Seed, "food placement seed (0 = random)")
	flags.StringVar(&color, "color", color, "snake color as #rrggbb")
	flags.IntVar(&c.FPS, "fps", c.FPS, "frames per second")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if c.Color, err = types.ParseColor(color); err != nil {
		return Config{}, fmt.Errorf("config: color: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

var ErrBoardTooSmall = errors.New("board too small for the initial snake")

// Validate checks that the starting snake fits left of the board center.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols/2 < types.InitialLength-1 {
		return fmt.Errorf("config: %dx%d: %w", c.Rows, c.Cols, ErrBoardTooSmall)
	}
	if c.CellSize < 1 {
		return fmt.Errorf("config: cell size %d must be positive", c.CellSize)
	}
	if c.FPS < 1 {
		return fmt.Errorf("config: fps %d must be positive", c.FPS)
	}
	return nil
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("config: loading %s: %w", path, err)
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func envUint(key string, def uint64) (uint64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}
