package math

import (
	"fmt"
	"math"
)

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Vec3One returns (1, 1, 1).
func Vec3One() Vec3 {
	return Vec3{1, 1, 1}
}

// Vec3Up returns the world up direction (0, 1, 0).
func Vec3Up() Vec3 {
	return Vec3{0, 1, 0}
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddScalar adds s to every component.
func (v Vec3) AddScalar(s float32) Vec3 {
	return Vec3{v.X + s, v.Y + s, v.Z + s}
}

// AddScaled returns v + other*s.
func (v Vec3) AddScaled(other Vec3, s float32) Vec3 {
	return Vec3{v.X + other.X*s, v.Y + other.Y*s, v.Z + other.Z*s}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// SubScalar subtracts s from every component.
func (v Vec3) SubScalar(s float32) Vec3 {
	return Vec3{v.X - s, v.Y - s, v.Z - s}
}

// Mul returns the component-wise product.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Div returns the component-wise quotient.
func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// DivScalar returns v / s.
func (v Vec3) DivScalar(s float32) Vec3 {
	return v.Scale(1 / s)
}

// Min returns the component-wise minimum.
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z)}
}

// Max returns the component-wise maximum.
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z)}
}

// Clamp clamps each component between lo and hi.
func (v Vec3) Clamp(lo, hi Vec3) Vec3 {
	return Vec3{Clamp(v.X, lo.X, hi.X), Clamp(v.Y, lo.Y, hi.Y), Clamp(v.Z, lo.Z, hi.Z)}
}

// ClampScalar clamps each component between lo and hi.
func (v Vec3) ClampScalar(lo, hi float32) Vec3 {
	return Vec3{Clamp(v.X, lo, hi), Clamp(v.Y, lo, hi), Clamp(v.Z, lo, hi)}
}

// ClampLength keeps the direction and clamps the length to [lo, hi].
func (v Vec3) ClampLength(lo, hi float32) Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(Clamp(l, lo, hi) / l)
}

// Floor rounds each component down.
func (v Vec3) Floor() Vec3 {
	return Vec3{
		float32(math.Floor(float64(v.X))),
		float32(math.Floor(float64(v.Y))),
		float32(math.Floor(float64(v.Z))),
	}
}

// Ceil rounds each component up.
func (v Vec3) Ceil() Vec3 {
	return Vec3{
		float32(math.Ceil(float64(v.X))),
		float32(math.Ceil(float64(v.Y))),
		float32(math.Ceil(float64(v.Z))),
	}
}

// Round rounds each component to the nearest integer.
func (v Vec3) Round() Vec3 {
	return Vec3{
		float32(math.Round(float64(v.X))),
		float32(math.Round(float64(v.Y))),
		float32(math.Round(float64(v.Z))),
	}
}

// RoundToZero truncates each component toward zero.
func (v Vec3) RoundToZero() Vec3 {
	return Vec3{
		float32(math.Trunc(float64(v.X))),
		float32(math.Trunc(float64(v.Y))),
		float32(math.Trunc(float64(v.Z))),
	}
}

// Negate returns -v.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// LengthSq returns the squared magnitude.
func (v Vec3) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// LengthManhattan returns |x| + |y| + |z|.
func (v Vec3) LengthManhattan() float32 {
	return absf(v.X) + absf(v.Y) + absf(v.Z)
}

// Normalize returns a unit vector. The zero vector stays zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// SetLength returns a vector with v's direction and the given length.
func (v Vec3) SetLength(length float32) Vec3 {
	return v.Normalize().Scale(length)
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// DistanceSq returns the squared distance to another point.
func (v Vec3) DistanceSq(other Vec3) float32 {
	return v.Sub(other).LengthSq()
}

// DistanceManhattan returns the Manhattan distance to another point.
func (v Vec3) DistanceManhattan(other Vec3) float32 {
	return v.Sub(other).LengthManhattan()
}

// Lerp interpolates from v toward other by alpha.
func (v Vec3) Lerp(other Vec3, alpha float32) Vec3 {
	return Vec3{
		v.X + (other.X-v.X)*alpha,
		v.Y + (other.Y-v.Y)*alpha,
		v.Z + (other.Z-v.Z)*alpha,
	}
}

// ProjectOnVector projects v onto the line spanned by other.
func (v Vec3) ProjectOnVector(other Vec3) Vec3 {
	denom := other.LengthSq()
	if denom == 0 {
		return Vec3{}
	}
	return other.Scale(other.Dot(v) / denom)
}

// ProjectOnPlane projects v onto the plane with the given unit normal.
func (v Vec3) ProjectOnPlane(planeNormal Vec3) Vec3 {
	return v.Sub(v.ProjectOnVector(planeNormal))
}

// Reflect reflects v off the plane orthogonal to the unit normal.
func (v Vec3) Reflect(normal Vec3) Vec3 {
	return v.Sub(normal.Scale(2 * v.Dot(normal)))
}

// AngleTo returns the angle between v and other in radians.
func (v Vec3) AngleTo(other Vec3) float32 {
	denom := sqrtf(v.LengthSq() * other.LengthSq())
	if denom == 0 {
		return math.Pi / 2
	}
	return acosf(Clamp(v.Dot(other)/denom, -1, 1))
}

// ApplyEuler rotates v by the rotation described by e.
func (v Vec3) ApplyEuler(e Euler) Vec3 {
	return v.ApplyQuat(QuatFromEuler(e))
}

// ApplyAxisAngle rotates v by angle radians about the unit axis.
func (v Vec3) ApplyAxisAngle(axis Vec3, angle float32) Vec3 {
	return v.ApplyQuat(QuatFromAxisAngle(axis, angle))
}

// ApplyMat3 multiplies v by m.
func (v Vec3) ApplyMat3(m Mat3) Vec3 {
	return Vec3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// ApplyMat4 transforms v as a point (w=1) with perspective divide.
func (v Vec3) ApplyMat4(m Mat4) Vec3 {
	w := 1 / (m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15])
	return Vec3{
		(m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]) * w,
		(m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]) * w,
		(m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]) * w,
	}
}

// ApplyQuat rotates v by q.
func (v Vec3) ApplyQuat(q Quat) Vec3 {
	// t = 2 * cross(q.xyz, v); v' = v + w*t + cross(q.xyz, t)
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// TransformDirection applies the upper 3x3 of m and normalizes the result.
func (v Vec3) TransformDirection(m Mat4) Vec3 {
	return Vec3{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z,
	}.Normalize()
}

// Component returns X, Y or Z for index 0, 1 or 2.
// Any other index is a programming error and panics.
func (v Vec3) Component(index int) float32 {
	switch index {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("math: Vec3 component index %d out of range", index))
}

// SetComponent sets X, Y or Z for index 0, 1 or 2.
func (v *Vec3) SetComponent(index int, value float32) {
	switch index {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		panic(fmt.Sprintf("math: Vec3 component index %d out of range", index))
	}
}

// Equals reports exact component equality.
func (v Vec3) Equals(other Vec3) bool {
	return v == other
}

// Compare reports whether every component differs by at most tolerance.
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	return absf(v.X-other.X) <= tolerance &&
		absf(v.Y-other.Y) <= tolerance &&
		absf(v.Z-other.Z) <= tolerance
}

// XZ returns the XZ components as Vec2.
func (v Vec3) XZ() Vec2 {
	return Vec2{v.X, v.Z}
}

// Vec3FromSpherical converts spherical coordinates to a Cartesian vector.
func Vec3FromSpherical(s Spherical) Vec3 {
	sinPhiRadius := sinf(s.Phi) * s.Radius
	return Vec3{
		sinPhiRadius * sinf(s.Theta),
		cosf(s.Phi) * s.Radius,
		sinPhiRadius * cosf(s.Theta),
	}
}

// Vec3FromMatrixPosition returns the translation column of m.
func Vec3FromMatrixPosition(m Mat4) Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

// Vec3FromMatrixColumn returns column index (0-3) of m.
func Vec3FromMatrixColumn(m Mat4, index int) Vec3 {
	return Vec3FromArray(m[:], index*4)
}

// Vec3FromMatrixScale returns the lengths of the three basis columns of m.
func Vec3FromMatrixScale(m Mat4) Vec3 {
	return Vec3{
		Vec3FromMatrixColumn(m, 0).Length(),
		Vec3FromMatrixColumn(m, 1).Length(),
		Vec3FromMatrixColumn(m, 2).Length(),
	}
}

// Vec3FromArray reads three floats starting at offset.
func Vec3FromArray(array []float32, offset int) Vec3 {
	return Vec3{array[offset], array[offset+1], array[offset+2]}
}

// ToArray writes the components into array starting at offset.
func (v Vec3) ToArray(array []float32, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
	array[offset+2] = v.Z
}
