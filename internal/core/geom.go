// Package core provides fundamental types and utilities for the lander.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units. World units map 1:1 to screen cells,
// with Y growing downwards.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Mul returns the element-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rotate returns v rotated counter-clockwise (as seen on screen) by rad radians.
// Because Y grows downwards, a visual counter-clockwise turn is a clockwise
// turn in the usual math convention.
func (v Vec2) Rotate(rad float64) Vec2 {
	sin, cos := math.Sincos(rad)
	return Vec2{
		X: v.X*cos + v.Y*sin,
		Y: -v.X*sin + v.Y*cos,
	}
}

// Rect represents an axis-aligned bounding box in whole cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box converts the rectangle to a world-space box.
func (r Rect) Box() Box {
	return Box{Min: V(float64(r.X), float64(r.Y)), Max: V(float64(r.Right()), float64(r.Bottom()))}
}

// Box is an axis-aligned bounding box in world units.
type Box struct {
	Min, Max Vec2
}

// BoxAt returns a box of size w×h centered on c.
func BoxAt(c Vec2, w, h float64) Box {
	return Box{
		Min: V(c.X-w/2, c.Y-h/2),
		Max: V(c.X+w/2, c.Y+h/2),
	}
}

// Translate returns the box moved by d.
func (b Box) Translate(d Vec2) Box {
	return Box{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Center returns the center point of the box.
func (b Box) Center() Vec2 {
	return V((b.Min.X+b.Max.X)/2, (b.Min.Y+b.Max.Y)/2)
}

// Intersects returns true if this box overlaps with another.
// Touching edges do not count as overlap.
func (b Box) Intersects(o Box) bool {
	if b.Min.X >= o.Max.X || o.Min.X >= b.Max.X {
		return false
	}
	if b.Min.Y >= o.Max.Y || o.Min.Y >= b.Max.Y {
		return false
	}
	return true
}

// Inside returns true if b lies completely within o.
func (b Box) Inside(o Box) bool {
	return b.Min.X >= o.Min.X && b.Max.X <= o.Max.X && b.Min.Y >= o.Min.Y && b.Max.Y <= o.Max.Y
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
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ApproxEqual reports whether a and b differ by at most eps.
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
