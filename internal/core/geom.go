// Package core provides fundamental types and utilities for the starfighter
// simulation. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Vec is a 2-D vector in logical coordinates.
type Vec struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Len returns the vector magnitude.
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// ClampLen limits the vector to at most max length, preserving direction.
func (v Vec) ClampLen(max float64) Vec {
	mag := v.Len()
	if mag > max {
		s := max / mag
		return Vec{v.X * s, v.Y * s}
	}
	return v
}

// Heading returns a unit vector pointing along the given angle.
func Heading(angle float64) Vec {
	return Vec{math.Cos(angle), math.Sin(angle)}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// CirclesCollide reports whether two circles overlap: their center distance
// is less than the sum of radii.
func CirclesCollide(a Vec, ar float64, b Vec, br float64) bool {
	return Distance(a, b) < ar+br
}

// AngleTo returns the angle of the vector from a to b.
func AngleTo(a, b Vec) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// NormalizeAngle wraps an angle into [-π, π).
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// WrapPosition wraps a point toroidally so it stays within [0, w) × [0, h).
// An entity leaving one edge of the logical space reappears at the opposite edge.
func WrapPosition(p Vec, w, h float64) Vec {
	if p.X < 0 {
		p.X += w
	} else if p.X > w {
		p.X -= w
	}
	if p.Y < 0 {
		p.Y += h
	} else if p.Y > h {
		p.Y -= h
	}
	return p
}

// Rect represents an axis-aligned box in screen cells, used for HUD layout.
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
