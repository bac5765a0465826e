// Package geom holds the 2D vector and rectangle helpers shared by the
// simulation.
package geom

import "math"

// Vec2 is a point or a displacement in screen space. Y grows downward.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the middle of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside r. Edges count as inside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Grow returns r expanded by d on every side.
func (r Rect) Grow(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// CircleIntersectsRect reports whether the circle at c with radius rad
// overlaps r, touching included.
func CircleIntersectsRect(c Vec2, rad float64, r Rect) bool {
	nearest := Vec2{
		X: Clamp(c.X, r.X, r.Right()),
		Y: Clamp(c.Y, r.Y, r.Bottom()),
	}
	return c.Sub(nearest).Len() <= rad
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp moves from a toward b by the fraction t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
