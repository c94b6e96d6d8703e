// Package core provides fundamental types and utilities shared by the game
// core and its hosts. It has no external dependencies so game logic stays
// pure and testable.
package core

// Vec is a point or displacement in arena coordinates.
// Arena coordinates are y-up: Y grows towards the top of the arena.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
type Rect struct {
	X, Y float64 // Bottom-left corner
	W, H float64 // Width and height
}

// NewRect creates a rectangle from its bottom-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround creates a rectangle of the given size centered on c.
func RectAround(c Vec, size Vec) Rect {
	return Rect{X: c.X - size.X/2, Y: c.Y - size.Y/2, W: size.X, H: size.Y}
}

// MaxX returns the x-coordinate of the right edge.
func (r Rect) MaxX() float64 {
	return r.X + r.W
}

// MaxY returns the y-coordinate of the top edge.
func (r Rect) MaxY() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside the rectangle.
// The bottom and left edges are inclusive, the top and right edges exclusive.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.MaxX() || other.X >= r.MaxX() {
		return false
	}
	if r.Y >= other.MaxY() || other.Y >= r.MaxY() {
		return false
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
// When min > max the lower bound wins.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}
