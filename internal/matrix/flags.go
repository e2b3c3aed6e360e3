package matrix

import "strings"

// Flags is the set of independent properties carried by one grid cell.
// Non-food flags may coexist with any food flag.
type Flags uint8

// Cell flags.
const (
	Snake Flags = 1 << iota
	OnBeat
	SinFood
	TriangleFood
	SquareFood
)

// None is the empty flag set.
const None Flags = 0

// FoodMask selects the three food flags.
const FoodMask = SinFood | TriangleFood | SquareFood

// Has reports whether every flag in f is set.
func (s Flags) Has(f Flags) bool {
	return s&f == f
}

// Any reports whether at least one flag in f is set.
func (s Flags) Any(f Flags) bool {
	return s&f != 0
}

// Food returns the food flags of s.
func (s Flags) Food() Flags {
	return s & FoodMask
}

// FoodCount returns how many food flags are set. The food cycle keeps this
// at most one, but the grid itself does not enforce it.
func (s Flags) FoodCount() int {
	n := 0
	for _, f := range [...]Flags{SinFood, TriangleFood, SquareFood} {
		if s&f != 0 {
			n++
		}
	}
	return n
}

var flagNames = [...]struct {
	flag Flags
	name string
}{
	{Snake, "snake"},
	{OnBeat, "on_beat"},
	{SinFood, "sin"},
	{TriangleFood, "triangle"},
	{SquareFood, "square"},
}

// String returns the flag names joined by '|', or "none".
func (s Flags) String() string {
	if s == None {
		return "none"
	}
	parts := make([]string, 0, len(flagNames))
	for _, fn := range flagNames {
		if s&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}
