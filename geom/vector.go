package geom

import "math"

// Vector is a simple 2D vector type with helper methods.
type Vector struct {
	X, Y float64
}

// Basic vector operations.
func (v Vector) Add(u Vector) Vector {
	return Vector{v.X + u.X, v.Y + u.Y}
}

func (v Vector) Sub(u Vector) Vector {
	return Vector{v.X - u.X, v.Y - u.Y}
}

func (v Vector) Mul(s float64) Vector {
	return Vector{v.X * s, v.Y * s}
}

func (v Vector) Dot(u Vector) float64 {
	return v.X*u.X + v.Y*u.Y
}

func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// LenSq skips the square root; used for degenerate-segment checks.
func (v Vector) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector, or the zero vector for zero input.
func (v Vector) Normalize() Vector {
	l := v.Len()
	if l == 0 {
		return Vector{0, 0}
	}
	return Vector{v.X / l, v.Y / l}
}

// Perp returns a perpendicular vector (rotated 90° counterclockwise).
func (v Vector) Perp() Vector {
	return Vector{-v.Y, v.X}
}

// Neg flips both components.
func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y}
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vector) float64 {
	return a.Sub(b).Len()
}

// Polar returns center + radius·(cos θ, sin θ).
func Polar(center Vector, radius, theta float64) Vector {
	return Vector{
		X: center.X + radius*math.Cos(theta),
		Y: center.Y + radius*math.Sin(theta),
	}
}

// Clamp bounds val to [lo, hi].
func Clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
