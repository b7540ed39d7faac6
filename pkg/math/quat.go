package math

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	halfAngle := angle / 2
	s := sinf(halfAngle)
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: cosf(halfAngle),
	}
}

// QuatFromEuler converts Euler angles to a quaternion, honoring e.Order.
func QuatFromEuler(e Euler) Quat {
	c1, s1 := cosf(e.X/2), sinf(e.X/2)
	c2, s2 := cosf(e.Y/2), sinf(e.Y/2)
	c3, s3 := cosf(e.Z/2), sinf(e.Z/2)

	var q Quat
	switch e.Order {
	case OrderXYZ:
		q.X = s1*c2*c3 + c1*s2*s3
		q.Y = c1*s2*c3 - s1*c2*s3
		q.Z = c1*c2*s3 + s1*s2*c3
		q.W = c1*c2*c3 - s1*s2*s3
	case OrderYXZ:
		q.X = s1*c2*c3 + c1*s2*s3
		q.Y = c1*s2*c3 - s1*c2*s3
		q.Z = c1*c2*s3 - s1*s2*c3
		q.W = c1*c2*c3 + s1*s2*s3
	case OrderZXY:
		q.X = s1*c2*c3 - c1*s2*s3
		q.Y = c1*s2*c3 + s1*c2*s3
		q.Z = c1*c2*s3 + s1*s2*c3
		q.W = c1*c2*c3 - s1*s2*s3
	case OrderZYX:
		q.X = s1*c2*c3 - c1*s2*s3
		q.Y = c1*s2*c3 + s1*c2*s3
		q.Z = c1*c2*s3 - s1*s2*c3
		q.W = c1*c2*c3 + s1*s2*s3
	case OrderYZX:
		q.X = s1*c2*c3 + c1*s2*s3
		q.Y = c1*s2*c3 + s1*c2*s3
		q.Z = c1*c2*s3 - s1*s2*c3
		q.W = c1*c2*c3 - s1*s2*s3
	case OrderXZY:
		q.X = s1*c2*c3 - c1*s2*s3
		q.Y = c1*s2*c3 - s1*c2*s3
		q.Z = c1*c2*s3 + s1*s2*c3
		q.W = c1*c2*c3 + s1*s2*s3
	default:
		return QuatIdentity()
	}
	return q
}

// QuatFromRotationMatrix extracts the rotation from the upper 3x3 of m,
// which must be a pure (unscaled) rotation.
func QuatFromRotationMatrix(m Mat4) Quat {
	m11, m12, m13 := m[0], m[4], m[8]
	m21, m22, m23 := m[1], m[5], m[9]
	m31, m32, m33 := m[2], m[6], m[10]

	trace := m11 + m22 + m33

	switch {
	case trace > 0:
		s := 0.5 / sqrtf(trace+1)
		return Quat{
			X: (m32 - m23) * s,
			Y: (m13 - m31) * s,
			Z: (m21 - m12) * s,
			W: 0.25 / s,
		}
	case m11 > m22 && m11 > m33:
		s := 2 * sqrtf(1+m11-m22-m33)
		return Quat{
			X: 0.25 * s,
			Y: (m12 + m21) / s,
			Z: (m13 + m31) / s,
			W: (m32 - m23) / s,
		}
	case m22 > m33:
		s := 2 * sqrtf(1+m22-m11-m33)
		return Quat{
			X: (m12 + m21) / s,
			Y: 0.25 * s,
			Z: (m23 + m32) / s,
			W: (m13 - m31) / s,
		}
	default:
		s := 2 * sqrtf(1+m33-m11-m22)
		return Quat{
			X: (m13 + m31) / s,
			Y: (m23 + m32) / s,
			Z: 0.25 * s,
			W: (m21 - m12) / s,
		}
	}
}

// QuatFromUnitVectors returns the rotation taking unit vector from onto
// unit vector to. Opposite vectors rotate half a turn about an arbitrary
// perpendicular axis.
func QuatFromUnitVectors(from, to Vec3) Quat {
	r := from.Dot(to) + 1

	var q Quat
	if r < 0.000001 {
		r = 0
		if absf(from.X) > absf(from.Z) {
			q = Quat{X: -from.Y, Y: from.X, Z: 0, W: r}
		} else {
			q = Quat{X: 0, Y: -from.Z, Z: from.Y, W: r}
		}
	} else {
		c := from.Cross(to)
		q = Quat{X: c.X, Y: c.Y, Z: c.Z, W: r}
	}
	return q.Normalize()
}

// LengthSq returns the squared magnitude.
func (q Quat) LengthSq() float32 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Length returns the magnitude.
func (q Quat) Length() float32 {
	return sqrtf(q.LengthSq())
}

// Normalize returns a normalized quaternion. A zero quaternion becomes the
// identity; non-finite components propagate.
func (q Quat) Normalize() Quat {
	length := q.Length()
	if length == 0 {
		return QuatIdentity()
	}
	invLen := 1.0 / length
	return Quat{
		X: q.X * invLen,
		Y: q.Y * invLen,
		Z: q.Z * invLen,
		W: q.W * invLen,
	}
}

// Conjugate negates the vector part.
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inverse returns the normalized conjugate.
func (q Quat) Inverse() Quat {
	return q.Conjugate().Normalize()
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Slerp performs spherical linear interpolation between two quaternions.
// t should be in range [0, 1]; t == 0 and t == 1 return the endpoints exactly.
func (q Quat) Slerp(other Quat, t float32) Quat {
	if t == 0 {
		return q
	}
	if t == 1 {
		return other
	}

	// cos of the half angle between the rotations
	cosHalfTheta := q.Dot(other)

	// take the shorter arc
	if cosHalfTheta < 0 {
		other = Quat{X: -other.X, Y: -other.Y, Z: -other.Z, W: -other.W}
		cosHalfTheta = -cosHalfTheta
	}

	if cosHalfTheta >= 1 {
		return q
	}

	sinHalfTheta := sqrtf(1 - cosHalfTheta*cosHalfTheta)

	if absf(sinHalfTheta) < 0.001 {
		return Quat{
			X: 0.5 * (q.X + other.X),
			Y: 0.5 * (q.Y + other.Y),
			Z: 0.5 * (q.Z + other.Z),
			W: 0.5 * (q.W + other.W),
		}
	}

	halfTheta := atan2f(sinHalfTheta, cosHalfTheta)
	ratioA := sinf((1-t)*halfTheta) / sinHalfTheta
	ratioB := sinf(t*halfTheta) / sinHalfTheta

	return Quat{
		X: q.X*ratioA + other.X*ratioB,
		Y: q.Y*ratioA + other.Y*ratioB,
		Z: q.Z*ratioA + other.Z*ratioB,
		W: q.W*ratioA + other.W*ratioB,
	}
}

// SlerpFlat interpolates between the quaternions stored at src0[off0:] and
// src1[off1:] and writes x, y, z, w to dst[dstOff:].
func SlerpFlat(dst []float32, dstOff int, src0 []float32, off0 int, src1 []float32, off1 int, t float32) {
	x0, y0, z0, w0 := src0[off0], src0[off0+1], src0[off0+2], src0[off0+3]
	x1, y1, z1, w1 := src1[off1], src1[off1+1], src1[off1+2], src1[off1+3]

	if w0 != w1 || x0 != x1 || y0 != y1 || z0 != z1 {
		s := 1 - t
		cos := x0*x1 + y0*y1 + z0*z1 + w0*w1
		dir := float32(1)
		if cos < 0 {
			dir = -1
		}
		sqrSin := 1 - cos*cos

		// skip the sine ratios when the angle is too small
		if sqrSin > epsilon32 {
			sin := sqrtf(sqrSin)
			l := atan2f(sin, cos*dir)
			s = sinf(s*l) / sin
			t = sinf(t*l) / sin
		}

		tDir := t * dir
		x0 = x0*s + x1*tDir
		y0 = y0*s + y1*tDir
		z0 = z0*s + z1*tDir
		w0 = w0*s + w1*tDir

		// normalize in case we just did a lerp
		if s == 1-t {
			f := 1 / sqrtf(x0*x0+y0*y0+z0*z0+w0*w0)
			x0 *= f
			y0 *= f
			z0 *= f
			w0 *= f
		}
	}

	dst[dstOff] = x0
	dst[dstOff+1] = y0
	dst[dstOff+2] = z0
	dst[dstOff+3] = w0
}

// ToMat4 converts the quaternion to a 4x4 rotation matrix.
func (q Quat) ToMat4() Mat4 {
	return MakeRotationFromQuat(q.Normalize())
}

// Lerp performs linear interpolation between two quaternions.
// Use Slerp for rotation interpolation; this is for simple blending.
func (q Quat) Lerp(other Quat, t float32) Quat {
	return Quat{
		X: q.X + t*(other.X-q.X),
		Y: q.Y + t*(other.Y-q.Y),
		Z: q.Z + t*(other.Z-q.Z),
		W: q.W + t*(other.W-q.W),
	}.Normalize()
}

// Mul multiplies two quaternions (combines rotations). The result applies
// other first, then q.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.X*other.W + q.W*other.X + q.Y*other.Z - q.Z*other.Y,
		Y: q.Y*other.W + q.W*other.Y + q.Z*other.X - q.X*other.Z,
		Z: q.Z*other.W + q.W*other.Z + q.X*other.Y - q.Y*other.X,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Premul returns other * q.
func (q Quat) Premul(other Quat) Quat {
	return other.Mul(q)
}

// AngleTo returns the angle in radians between two unit quaternions.
func (q Quat) AngleTo(other Quat) float32 {
	return 2 * acosf(absf(Clamp(q.Dot(other), -1, 1)))
}

// IsFinite reports whether no component is NaN or infinite.
func (q Quat) IsFinite() bool {
	return isFinite(q.X) && isFinite(q.Y) && isFinite(q.Z) && isFinite(q.W)
}

// Equals reports exact component equality.
func (q Quat) Equals(other Quat) bool {
	return q == other
}

// Compare reports whether q and other are within tolerance component-wise.
func (q Quat) Compare(other Quat, tolerance float32) bool {
	return absf(q.X-other.X) <= tolerance &&
		absf(q.Y-other.Y) <= tolerance &&
		absf(q.Z-other.Z) <= tolerance &&
		absf(q.W-other.W) <= tolerance
}

// SameRotation reports whether q and other describe the same rotation
// within tolerance, treating q and -q as equal.
func (q Quat) SameRotation(other Quat, tolerance float32) bool {
	neg := Quat{X: -other.X, Y: -other.Y, Z: -other.Z, W: -other.W}
	return q.Compare(other, tolerance) || q.Compare(neg, tolerance)
}

// QuatFromArray reads x, y, z, w starting at offset.
func QuatFromArray(array []float32, offset int) Quat {
	return Quat{X: array[offset], Y: array[offset+1], Z: array[offset+2], W: array[offset+3]}
}

// ToArray writes x, y, z, w into array starting at offset.
func (q Quat) ToArray(array []float32, offset int) {
	array[offset] = q.X
	array[offset+1] = q.Y
	array[offset+2] = q.Z
	array[offset+3] = q.W
}
