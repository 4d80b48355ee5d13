package types

import "testing"

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		d, want Direction
	}{
		{Up, Down},
		{Down, Up},
		{Left, Right},
		{Right, Left},
	}
	for _, tt := range tests {
		if got := tt.d.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestDirectionIsUnit(t *testing.T) {
	tests := []struct {
		d    Direction
		want bool
	}{
		{Up, true},
		{Right, true},
		{Direction{}, false},
		{Direction{Row: 1, Col: 1}, false},
		{Direction{Row: 2, Col: 0}, false},
	}
	for _, tt := range tests {
		if got := tt.d.IsUnit(); got != tt.want {
			t.Errorf("%v.IsUnit() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Rows: 20, Cols: 20}
	tests := []struct {
		c    Cell
		want bool
	}{
		{Cell{0, 0}, true},
		{Cell{19, 19}, true},
		{Cell{-1, 0}, false},
		{Cell{20, 0}, false},
		{Cell{0, -1}, false},
		{Cell{0, 20}, false},
	}
	for _, tt := range tests {
		if got := g.Contains(tt.c); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#2ee59d")
	if err != nil {
		t.Fatal(err)
	}
	if c != DefaultSnakeColor {
		t.Errorf("got %v, want %v", c, DefaultSnakeColor)
	}
	if c.Hex() != "#2ee59d" {
		t.Errorf("Hex() = %s", c.Hex())
	}

	for _, bad := range []string{"", "#fff", "zzzzzz", "#1234567"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) succeeded", bad)
		}
	}
}

func TestShadeClamps(t *testing.T) {
	c := Color{R: 200, G: 100, B: 0}.Shade(1.5)
	if c != (Color{R: 255, G: 150, B: 0}) {
		t.Errorf("Shade = %v", c)
	}
}
