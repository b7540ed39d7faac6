package math

import (
	"math"

	"go.uber.org/zap"
)

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// NewMat4 builds a matrix from values given in row-major reading order.
func NewMat4(
	n11, n12, n13, n14,
	n21, n22, n23, n24,
	n31, n32, n33, n34,
	n41, n42, n43, n44 float32,
) Mat4 {
	return Mat4{
		n11, n21, n31, n41,
		n12, n22, n32, n42,
		n13, n23, n33, n43,
		n14, n24, n34, n44,
	}
}

// Perspective returns a perspective projection matrix.
// fovY is in radians, aspect is width/height.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := float32(1.0 / math.Tan(float64(fovY)/2.0))
	nf := 1.0 / (near - far)

	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

// Frustum returns a perspective projection for an off-center view volume.
func Frustum(left, right, bottom, top, near, far float32) Mat4 {
	x := 2 * near / (right - left)
	y := 2 * near / (top - bottom)
	a := (right + left) / (right - left)
	b := (top + bottom) / (top - bottom)
	c := -(far + near) / (far - near)
	d := -2 * far * near / (far - near)

	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		a, b, c, -1,
		0, 0, d, 0,
	}
}

// Ortho returns an orthographic projection matrix.
// left, right, bottom, top define the view frustum boundaries.
// near and far define the depth range.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	rl := 1.0 / (right - left)
	tb := 1.0 / (top - bottom)
	fn := 1.0 / (far - near)

	return Mat4{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(right + left) * rl, -(top + bottom) * tb, -(far + near) * fn, 1,
	}
}

// LookAt returns a view matrix looking from eye to center with up direction.
func LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

// LookAtRotation returns a pure rotation whose +Z axis points from target
// toward eye. Degenerate inputs (eye == target, or up parallel to the view
// direction) are nudged so the result is always a valid rotation.
func LookAtRotation(eye, target, up Vec3) Mat4 {
	z := eye.Sub(target)
	if z.LengthSq() == 0 {
		// eye and target are in the same position
		z.Z = 1
	}
	z = z.Normalize()
	x := up.Cross(z)

	if x.LengthSq() == 0 {
		// up and z are parallel
		if absf(up.Z) == 1 {
			z.X += 0.0001
		} else {
			z.Z += 0.0001
		}
		z = z.Normalize()
		x = up.Cross(z)
	}

	x = x.Normalize()
	y := z.Cross(x)

	return MakeBasis(x, y, z)
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scale returns a scale matrix.
func Scale(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotateX returns a rotation matrix around the X axis.
// angle is in radians.
func RotateX(angle float32) Mat4 {
	c := cosf(angle)
	s := sinf(angle)

	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a rotation matrix around the Y axis.
// angle is in radians.
func RotateY(angle float32) Mat4 {
	c := cosf(angle)
	s := sinf(angle)

	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a rotation matrix around the Z axis.
// angle is in radians.
func RotateZ(angle float32) Mat4 {
	c := cosf(angle)
	s := sinf(angle)

	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotateAxis creates a rotation matrix around an arbitrary axis.
// axis should be normalized, angle is in radians.
func RotateAxis(axis Vec3, angle float32) Mat4 {
	c := cosf(angle)
	s := sinf(angle)
	t := 1 - c

	x, y, z := axis.X, axis.Y, axis.Z

	return Mat4{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

// MakeBasis returns a matrix whose first three columns are x, y and z.
func MakeBasis(x, y, z Vec3) Mat4 {
	return Mat4{
		x.X, x.Y, x.Z, 0,
		y.X, y.Y, y.Z, 0,
		z.X, z.Y, z.Z, 0,
		0, 0, 0, 1,
	}
}

// ExtractBasis returns the first three columns of m.
func (m Mat4) ExtractBasis() (x, y, z Vec3) {
	return Vec3FromMatrixColumn(m, 0), Vec3FromMatrixColumn(m, 1), Vec3FromMatrixColumn(m, 2)
}

// ExtractRotation returns the rotation part of m with scale removed.
// Translation is dropped.
func (m Mat4) ExtractRotation() Mat4 {
	s := Vec3FromMatrixScale(m)
	x, y, z := m.ExtractBasis()
	return MakeBasis(x.Scale(1/s.X), y.Scale(1/s.Y), z.Scale(1/s.Z))
}

// MakeRotationFromQuat returns the rotation matrix for q. q is expected to
// be a unit quaternion.
func MakeRotationFromQuat(q Quat) Mat4 {
	return Compose(Vec3{}, q, Vec3One())
}

// MakeRotationFromEuler returns the rotation matrix for e, honoring its order.
func MakeRotationFromEuler(e Euler) Mat4 {
	a, b := cosf(e.X), sinf(e.X)
	c, d := cosf(e.Y), sinf(e.Y)
	ee, f := cosf(e.Z), sinf(e.Z)

	m := Identity()
	switch e.Order {
	case OrderXYZ:
		ae, af, be, bf := a*ee, a*f, b*ee, b*f
		m[0], m[4], m[8] = c*ee, -c*f, d
		m[1], m[5], m[9] = af+be*d, ae-bf*d, -b*c
		m[2], m[6], m[10] = bf-ae*d, be+af*d, a*c
	case OrderYXZ:
		ce, cf, de, df := c*ee, c*f, d*ee, d*f
		m[0], m[4], m[8] = ce+df*b, de*b-cf, a*d
		m[1], m[5], m[9] = a*f, a*ee, -b
		m[2], m[6], m[10] = cf*b-de, df+ce*b, a*c
	case OrderZXY:
		ce, cf, de, df := c*ee, c*f, d*ee, d*f
		m[0], m[4], m[8] = ce-df*b, -a*f, de+cf*b
		m[1], m[5], m[9] = cf+de*b, a*ee, df-ce*b
		m[2], m[6], m[10] = -a*d, b, a*c
	case OrderZYX:
		ae, af, be, bf := a*ee, a*f, b*ee, b*f
		m[0], m[4], m[8] = c*ee, be*d-af, ae*d+bf
		m[1], m[5], m[9] = c*f, bf*d+ae, af*d-be
		m[2], m[6], m[10] = -d, b*c, a*c
	case OrderYZX:
		ac, ad, bc, bd := a*c, a*d, b*c, b*d
		m[0], m[4], m[8] = c*ee, bd-ac*f, bc*f+ad
		m[1], m[5], m[9] = f, a*ee, -b*ee
		m[2], m[6], m[10] = -d*ee, ad*f+bc, ac-bd*f
	case OrderXZY:
		ac, ad, bc, bd := a*c, a*d, b*c, b*d
		m[0], m[4], m[8] = c*ee, -f, d*ee
		m[1], m[5], m[9] = ac*f+bd, a*ee, ad*f-bc
		m[2], m[6], m[10] = bc*f-ad, b*ee, bd*f+ac
	}
	return m
}

// Compose builds the matrix T * R * S from a position, a unit quaternion and a scale.
func Compose(position Vec3, q Quat, scale Vec3) Mat4 {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z
	xx, xy, xz := q.X*x2, q.X*y2, q.X*z2
	yy, yz, zz := q.Y*y2, q.Y*z2, q.Z*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2
	sx, sy, sz := scale.X, scale.Y, scale.Z

	return Mat4{
		(1 - (yy + zz)) * sx, (xy + wz) * sx, (xz - wy) * sx, 0,
		(xy - wz) * sy, (1 - (xx + zz)) * sy, (yz + wx) * sy, 0,
		(xz + wy) * sz, (yz - wx) * sz, (1 - (xx + yy)) * sz, 0,
		position.X, position.Y, position.Z, 1,
	}
}

// Decompose splits m into position, rotation and scale. m is assumed to be
// an affine transform without shear.
//
// A reflection cannot be told apart from a rotation, so a negative
// determinant is reported as a negative X scale; an even number of negative
// scales decomposes to all-positive scales with a compensating rotation.
// A zero scale axis yields non-finite components; use DecomposeChecked to
// detect that case.
func (m Mat4) Decompose() (position Vec3, rotation Quat, scale Vec3) {
	sx := Vec3{m[0], m[1], m[2]}.Length()
	sy := Vec3{m[4], m[5], m[6]}.Length()
	sz := Vec3{m[8], m[9], m[10]}.Length()

	if m.Determinant() < 0 {
		sx = -sx
	}

	position = Vec3{m[12], m[13], m[14]}

	r := m
	invSX, invSY, invSZ := 1/sx, 1/sy, 1/sz
	r[0] *= invSX
	r[1] *= invSX
	r[2] *= invSX
	r[4] *= invSY
	r[5] *= invSY
	r[6] *= invSY
	r[8] *= invSZ
	r[9] *= invSZ
	r[10] *= invSZ

	rotation = QuatFromRotationMatrix(r)
	scale = Vec3{sx, sy, sz}
	return position, rotation, scale
}

// DecomposeChecked is Decompose with a domain check: it returns
// ErrDegenerateScale instead of non-finite components.
func (m Mat4) DecomposeChecked() (Vec3, Quat, Vec3, error) {
	p, q, s := m.Decompose()
	if s.X == 0 || s.Y == 0 || s.Z == 0 || !q.IsFinite() || !m.IsFinite() {
		return Vec3{}, QuatIdentity(), Vec3One(), ErrDegenerateScale
	}
	return p, q, s, nil
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col*4+row] =
				m[0*4+row]*other[col*4+0] +
					m[1*4+row]*other[col*4+1] +
					m[2*4+row]*other[col*4+2] +
					m[3*4+row]*other[col*4+3]
		}
	}
	return result
}

// Premul returns other * m.
func (m Mat4) Premul(other Mat4) Mat4 {
	return other.Mul(m)
}

// MulScalar multiplies every element by s.
func (m Mat4) MulScalar(s float32) Mat4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// TransformPoint transforms a 3D point by this matrix (assumes w=1).
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	x := m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12]
	y := m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13]
	z := m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14]
	w := m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]
	if w != 0 && w != 1 {
		return Vec3{x / w, y / w, z / w}
	}
	return Vec3{x, y, z}
}

// TransformDirection transforms a direction vector (ignores translation).
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	return Vec3{
		m[0]*d.X + m[4]*d.Y + m[8]*d.Z,
		m[1]*d.X + m[5]*d.Y + m[9]*d.Z,
		m[2]*d.X + m[6]*d.Y + m[10]*d.Z,
	}
}

// Mat4FromMat3 embeds a 3x3 matrix into the upper-left of an identity Mat4.
func Mat4FromMat3(m3 Mat3) Mat4 {
	return Mat4{
		m3[0], m3[1], m3[2], 0,
		m3[3], m3[4], m3[5], 0,
		m3[6], m3[7], m3[8], 0,
		0, 0, 0, 1,
	}
}

// Ptr returns a pointer to the first element, for handing the matrix to
// graphics APIs that take a column-major float array.
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}

// Vec4 is a 4-component vector.
type Vec4 [4]float32

// MulVec4 multiplies the matrix by a Vec4.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}

// Determinant returns the determinant of the matrix.
func (m Mat4) Determinant() float32 {
	n11, n12, n13, n14 := m[0], m[4], m[8], m[12]
	n21, n22, n23, n24 := m[1], m[5], m[9], m[13]
	n31, n32, n33, n34 := m[2], m[6], m[10], m[14]
	n41, n42, n43, n44 := m[3], m[7], m[11], m[15]

	return n41*(n14*n23*n32-n13*n24*n32-n14*n22*n33+n12*n24*n33+n13*n22*n34-n12*n23*n34) +
		n42*(n11*n23*n34-n11*n24*n33+n14*n21*n33-n13*n21*n34+n13*n24*n31-n14*n23*n31) +
		n43*(n11*n24*n32-n11*n22*n34-n14*n21*n32+n12*n21*n34+n14*n22*n31-n12*n24*n31) +
		n44*(-n13*n22*n31-n11*n23*n32+n11*n22*n33+n13*n21*n32-n12*n21*n33+n12*n23*n31)
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	m[1], m[4] = m[4], m[1]
	m[2], m[8] = m[8], m[2]
	m[6], m[9] = m[9], m[6]
	m[3], m[12] = m[12], m[3]
	m[7], m[13] = m[13], m[7]
	m[11], m[14] = m[14], m[11]
	return m
}

// GetInverse returns the inverse of the matrix. When the determinant is
// exactly zero the result is the identity; strict mode also returns
// ErrSingularMatrix, permissive mode logs a warning and returns nil.
func (m Mat4) GetInverse(strict bool) (Mat4, error) {
	// Calculate cofactors
	c00 := m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] + m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	c01 := -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] - m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	c02 := m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] + m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	c03 := -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] - m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]

	c10 := -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] - m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	c11 := m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] + m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	c12 := -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] - m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	c13 := m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] + m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]

	c20 := m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] + m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	c21 := -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] - m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	c22 := m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] + m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	c23 := -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] - m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]

	c30 := -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] - m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]
	c31 := m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] + m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]
	c32 := -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] - m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]
	c33 := m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] + m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]

	det := m[0]*c00 + m[4]*c01 + m[8]*c02 + m[12]*c03

	if det == 0 {
		if strict {
			return Identity(), ErrSingularMatrix
		}
		log.Warn("Mat4.GetInverse: can't invert matrix, determinant is 0", zap.Float32s("elements", m[:]))
		return Identity(), nil
	}

	invDet := 1.0 / det

	return Mat4{
		c00 * invDet, c01 * invDet, c02 * invDet, c03 * invDet,
		c10 * invDet, c11 * invDet, c12 * invDet, c13 * invDet,
		c20 * invDet, c21 * invDet, c22 * invDet, c23 * invDet,
		c30 * invDet, c31 * invDet, c32 * invDet, c33 * invDet,
	}, nil
}

// Inverse returns the inverse of the matrix.
// Returns identity if the matrix is singular.
func (m Mat4) Inverse() Mat4 {
	inv, _ := m.GetInverse(false)
	return inv
}

// Position returns the translation column.
func (m Mat4) Position() Vec3 {
	return Vec3FromMatrixPosition(m)
}

// WithPosition returns a copy of m with its translation replaced by p.
func (m Mat4) WithPosition(p Vec3) Mat4 {
	m[12], m[13], m[14] = p.X, p.Y, p.Z
	return m
}

// ScaledBy scales the three basis columns of m by v.
func (m Mat4) ScaledBy(v Vec3) Mat4 {
	for i := 0; i < 4; i++ {
		m[i] *= v.X
		m[4+i] *= v.Y
		m[8+i] *= v.Z
	}
	return m
}

// MaxScaleOnAxis returns the largest basis column length.
func (m Mat4) MaxScaleOnAxis() float32 {
	x := m[0]*m[0] + m[1]*m[1] + m[2]*m[2]
	y := m[4]*m[4] + m[5]*m[5] + m[6]*m[6]
	z := m[8]*m[8] + m[9]*m[9] + m[10]*m[10]
	return sqrtf(max(x, y, z))
}

// IsFinite reports whether no element is NaN or infinite.
func (m Mat4) IsFinite() bool {
	for _, e := range m {
		if !isFinite(e) {
			return false
		}
	}
	return true
}

// Equals reports exact element equality.
func (m Mat4) Equals(other Mat4) bool {
	return m == other
}

// Compare reports whether every element differs by at most tolerance.
func (m Mat4) Compare(other Mat4, tolerance float32) bool {
	for i := range m {
		if absf(m[i]-other[i]) > tolerance {
			return false
		}
	}
	return true
}

// Mat4FromArray reads sixteen column-major floats starting at offset.
func Mat4FromArray(array []float32, offset int) Mat4 {
	var m Mat4
	copy(m[:], array[offset:offset+16])
	return m
}

// ToArray writes the column-major elements into array starting at offset.
func (m Mat4) ToArray(array []float32, offset int) {
	copy(array[offset:offset+16], m[:])
}
