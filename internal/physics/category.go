// Package physics describes the boundary between the game core and the host
// physics engine: collision categories, body handles and contact events.
// The engine owns integration and collision detection; the core only reacts
// to contacts it reports.
package physics

import "strings"

// Category is a collision category bitmask. Each concrete category is a
// distinct power of two so categories can be OR-ed into contact masks.
type Category uint32

const (
	CategoryBall   Category = 1 << 0
	CategoryWall   Category = 1 << 1
	CategoryBlock  Category = 1 << 2 // Defined for brick levels; no contact rule uses it
	CategoryPaddle Category = 1 << 3
	CategoryBorder Category = 1 << 4
)

// CategoryNone is the empty mask.
const CategoryNone Category = 0

// BallContactMask lists the categories a ball reports contacts with.
const BallContactMask = CategoryWall | CategoryPaddle

var categoryNames = []struct {
	c    Category
	name string
}{
	{CategoryBall, "Ball"},
	{CategoryWall, "Wall"},
	{CategoryBlock, "Block"},
	{CategoryPaddle, "Paddle"},
	{CategoryBorder, "Border"},
}

// Categories returns every concrete category in ascending bit order.
func Categories() []Category {
	out := make([]Category, len(categoryNames))
	for i, cn := range categoryNames {
		out[i] = cn.c
	}
	return out
}

// Has reports whether every bit of o is set in c.
func (c Category) Has(o Category) bool {
	return o != 0 && c&o == o
}

// Overlaps reports whether c and o share at least one bit.
func (c Category) Overlaps(o Category) bool {
	return c&o != 0
}

// String returns the category name, or a "|"-joined list for masks.
func (c Category) String() string {
	if c == CategoryNone {
		return "None"
	}
	var parts []string
	rest := c
	for _, cn := range categoryNames {
		if c&cn.c != 0 {
			parts = append(parts, cn.name)
			rest &^= cn.c
		}
	}
	if rest != 0 {
		parts = append(parts, "Unknown")
	}
	return strings.Join(parts, "|")
}
