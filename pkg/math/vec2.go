// Package math provides vector, matrix, quaternion and Euler types for 3D transforms.
package math

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// AddScalar adds s to every component.
func (v Vec2) AddScalar(s float32) Vec2 {
	return Vec2{v.X + s, v.Y + s}
}

// AddScaled returns v + other*s.
func (v Vec2) AddScaled(other Vec2, s float32) Vec2 {
	return Vec2{v.X + other.X*s, v.Y + other.Y*s}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// SubScalar subtracts s from every component.
func (v Vec2) SubScalar(s float32) Vec2 {
	return Vec2{v.X - s, v.Y - s}
}

// Mul returns the component-wise product.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div returns the component-wise quotient.
func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{v.X / other.X, v.Y / other.Y}
}

// DivScalar returns v / s.
func (v Vec2) DivScalar(s float32) Vec2 {
	return v.Scale(1 / s)
}

// Min returns the component-wise minimum.
func (v Vec2) Min(other Vec2) Vec2 {
	return Vec2{min(v.X, other.X), min(v.Y, other.Y)}
}

// Max returns the component-wise maximum.
func (v Vec2) Max(other Vec2) Vec2 {
	return Vec2{max(v.X, other.X), max(v.Y, other.Y)}
}

// Clamp clamps each component between lo and hi. lo must not exceed hi.
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{Clamp(v.X, lo.X, hi.X), Clamp(v.Y, lo.Y, hi.Y)}
}

// ClampScalar clamps each component between lo and hi.
func (v Vec2) ClampScalar(lo, hi float32) Vec2 {
	return Vec2{Clamp(v.X, lo, hi), Clamp(v.Y, lo, hi)}
}

// ClampLength keeps the direction and clamps the length to [lo, hi].
func (v Vec2) ClampLength(lo, hi float32) Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(Clamp(l, lo, hi) / l)
}

// Floor rounds each component down.
func (v Vec2) Floor() Vec2 {
	return Vec2{float32(math.Floor(float64(v.X))), float32(math.Floor(float64(v.Y)))}
}

// Ceil rounds each component up.
func (v Vec2) Ceil() Vec2 {
	return Vec2{float32(math.Ceil(float64(v.X))), float32(math.Ceil(float64(v.Y)))}
}

// Round rounds each component to the nearest integer.
func (v Vec2) Round() Vec2 {
	return Vec2{float32(math.Round(float64(v.X))), float32(math.Round(float64(v.Y)))}
}

// RoundToZero truncates each component toward zero.
func (v Vec2) RoundToZero() Vec2 {
	return Vec2{float32(math.Trunc(float64(v.X))), float32(math.Trunc(float64(v.Y)))}
}

// Negate returns -v.
func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// LengthSq returns the squared magnitude.
func (v Vec2) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// LengthManhattan returns |x| + |y|.
func (v Vec2) LengthManhattan() float32 {
	return absf(v.X) + absf(v.Y)
}

// Normalize returns a unit vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// SetLength returns a vector with v's direction and the given length.
func (v Vec2) SetLength(length float32) Vec2 {
	return v.Normalize().Scale(length)
}

// Angle returns the angle of the vector in radians relative to the +X axis, in [0, 2π).
func (v Vec2) Angle() float32 {
	a := atan2f(v.Y, v.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// DistanceSq returns the squared distance to another point.
func (v Vec2) DistanceSq(other Vec2) float32 {
	return v.Sub(other).LengthSq()
}

// DistanceManhattan returns the Manhattan distance to another point.
func (v Vec2) DistanceManhattan(other Vec2) float32 {
	return v.Sub(other).LengthManhattan()
}

// Lerp interpolates from v toward other by alpha.
func (v Vec2) Lerp(other Vec2, alpha float32) Vec2 {
	return Vec2{v.X + (other.X-v.X)*alpha, v.Y + (other.Y-v.Y)*alpha}
}

// RotateAround rotates v around center by angle radians.
func (v Vec2) RotateAround(center Vec2, angle float32) Vec2 {
	c := cosf(angle)
	s := sinf(angle)
	x := v.X - center.X
	y := v.Y - center.Y
	return Vec2{x*c - y*s + center.X, x*s + y*c + center.Y}
}

// Component returns the component at index 0 (X) or 1 (Y).
// Any other index is a programming error and panics.
func (v Vec2) Component(index int) float32 {
	switch index {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(fmt.Sprintf("math: Vec2 component index %d out of range", index))
}

// SetComponent sets the component at index 0 (X) or 1 (Y).
func (v *Vec2) SetComponent(index int, value float32) {
	switch index {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		panic(fmt.Sprintf("math: Vec2 component index %d out of range", index))
	}
}

// Equals reports exact component equality.
func (v Vec2) Equals(other Vec2) bool {
	return v == other
}

// Vec2FromArray reads two floats starting at offset.
func Vec2FromArray(array []float32, offset int) Vec2 {
	return Vec2{array[offset], array[offset+1]}
}

// ToArray writes the components into array starting at offset.
func (v Vec2) ToArray(array []float32, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
}
