// Package geometry holds the plain value types shared by the diagram model
// and the commands that move and resize it.
package geometry

import "fmt"

// Point is an absolute canvas position.
type Point struct {
	X float64
	Y float64
}

// Delta is a translation vector in the same coordinate space as Point.
type Delta struct {
	X float64
	Y float64
}

// IsZero reports whether the delta moves nothing.
func (d Delta) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

// Negate returns the inverse translation.
func (d Delta) Negate() Delta {
	return Delta{X: -d.X, Y: -d.Y}
}

// Translate returns p moved by d.
func (p Point) Translate(d Delta) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the delta that moves q onto p.
func (p Point) Sub(q Point) Delta {
	return Delta{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Bounds is an axis-aligned box given by its top-left corner and extent.
type Bounds struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Translate returns b moved by d. Extent is unchanged.
func (b Bounds) Translate(d Delta) Bounds {
	b.X += d.X
	b.Y += d.Y
	return b
}

// Center returns the middle of the box.
func (b Bounds) Center() Point {
	return Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Right is the x coordinate of the right edge.
func (b Bounds) Right() float64 { return b.X + b.Width }

// Bottom is the y coordinate of the bottom edge.
func (b Bounds) Bottom() float64 { return b.Y + b.Height }

// Contains reports whether p lies inside b, edges included.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.X && p.X <= b.Right() && p.Y >= b.Y && p.Y <= b.Bottom()
}

func (b Bounds) String() string {
	return fmt.Sprintf("{x:%g y:%g w:%g h:%g}", b.X, b.Y, b.Width, b.Height)
}
