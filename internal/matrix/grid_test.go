package matrix

import (
	"errors"
	"testing"
)

func TestGridAddRemoveFlags(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}

	c := C(2, 1)
	if err := g.AddFlags(Snake|OnBeat, c); err != nil {
		t.Fatalf("AddFlags failed: %v", err)
	}
	if err := g.AddFlags(SinFood, c); err != nil {
		t.Fatalf("AddFlags failed: %v", err)
	}

	s, _ := g.Get(c)
	if s != Snake|OnBeat|SinFood {
		t.Errorf("Get() = %v, expected snake|on_beat|sin", s)
	}

	if err := g.RemoveFlags(OnBeat, c); err != nil {
		t.Fatalf("RemoveFlags failed: %v", err)
	}
	s, _ = g.Get(c)
	if s != Snake|SinFood {
		t.Errorf("Get() = %v, expected snake|sin", s)
	}

	// Neighbours untouched
	for _, n := range []Coord{C(1, 1), C(3, 1), C(2, 0), C(2, 2)} {
		if s, _ := g.Get(n); s != None {
			t.Errorf("Get(%v) = %v, expected none", n, s)
		}
	}
}

func TestGridQueries(t *testing.T) {
	g, _ := NewGrid(2, 2)
	g.AddFlags(TriangleFood|OnBeat, C(0, 0))
	g.AddFlags(Snake, C(1, 1))

	tests := []struct {
		name     string
		query    func(Coord) (bool, error)
		c        Coord
		expected bool
	}{
		{"triangle is food", g.IsFood, C(0, 0), true},
		{"triangle", g.IsTriangleFood, C(0, 0), true},
		{"not sin", g.IsSinFood, C(0, 0), false},
		{"not square", g.IsSquareFood, C(0, 0), false},
		{"on beat", g.IsOnBeat, C(0, 0), true},
		{"not snake", g.IsSnake, C(0, 0), false},
		{"snake", g.IsSnake, C(1, 1), true},
		{"snake is not food", g.IsFood, C(1, 1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.query(tc.c)
			if err != nil {
				t.Fatalf("query failed: %v", err)
			}
			if got != tc.expected {
				t.Errorf("query(%v) = %v, expected %v", tc.c, got, tc.expected)
			}
		})
	}
}

func TestGridBounds(t *testing.T) {
	g, _ := NewGrid(3, 2)

	if !g.Contains(C(2, 1)) {
		t.Error("Contains(2, 1) should be true")
	}
	for _, c := range []Coord{C(3, 0), C(0, 2), C(-1, 0), C(0, -1)} {
		if g.Contains(c) {
			t.Errorf("Contains(%v) should be false", c)
		}
		if err := g.AddFlags(Snake, c); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("AddFlags(%v) error = %v, expected ErrOutOfBounds", c, err)
		}
		if err := g.RemoveFlags(Snake, c); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("RemoveFlags(%v) error = %v, expected ErrOutOfBounds", c, err)
		}
	}
}

func TestFlagsString(t *testing.T) {
	tests := []struct {
		flags    Flags
		expected string
	}{
		{None, "none"},
		{Snake, "snake"},
		{OnBeat | SquareFood, "on_beat|square"},
		{Snake | OnBeat | SinFood, "snake|on_beat|sin"},
	}

	for _, tc := range tests {
		if got := tc.flags.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestFlagsFood(t *testing.T) {
	s := Snake | OnBeat | TriangleFood
	if s.Food() != TriangleFood {
		t.Errorf("Food() = %v, expected triangle", s.Food())
	}
	if s.FoodCount() != 1 {
		t.Errorf("FoodCount() = %d, expected 1", s.FoodCount())
	}
	if !s.Has(Snake | OnBeat) {
		t.Error("Has(snake|on_beat) should be true")
	}
	if s.Has(Snake | SinFood) {
		t.Error("Has(snake|sin) should be false")
	}
	if (SinFood | SquareFood).FoodCount() != 2 {
		t.Error("FoodCount() should count every food flag")
	}
}
