package math

import "go.uber.org/zap"

// Mat3 is a 3x3 matrix in column-major order.
// Layout: [m0 m3 m6]
//
//	[m1 m4 m7]
//	[m2 m5 m8]
type Mat3 [9]float32

// Mat3Identity returns an identity matrix.
func Mat3Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// NewMat3 builds a matrix from values given in row-major reading order.
func NewMat3(n11, n12, n13, n21, n22, n23, n31, n32, n33 float32) Mat3 {
	return Mat3{
		n11, n21, n31,
		n12, n22, n32,
		n13, n23, n33,
	}
}

// Mat3FromMat4 returns the upper-left 3x3 of m.
func Mat3FromMat4(m Mat4) Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Mul returns m * other.
func (m Mat3) Mul(other Mat3) Mat3 {
	var result Mat3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			result[col*3+row] =
				m[0*3+row]*other[col*3+0] +
					m[1*3+row]*other[col*3+1] +
					m[2*3+row]*other[col*3+2]
		}
	}
	return result
}

// MulScalar multiplies every element by s.
func (m Mat3) MulScalar(s float32) Mat3 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Determinant returns the determinant.
func (m Mat3) Determinant() float32 {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]
	return a*e*i - a*f*h - b*d*i + b*f*g + c*d*h - c*e*g
}

// GetInverse returns the inverse of m. When the determinant is exactly zero
// the result is the identity; strict mode also returns ErrSingularMatrix,
// permissive mode logs a warning and returns a nil error.
func (m Mat3) GetInverse(strict bool) (Mat3, error) {
	n11, n21, n31 := m[0], m[1], m[2]
	n12, n22, n32 := m[3], m[4], m[5]
	n13, n23, n33 := m[6], m[7], m[8]

	t11 := n33*n22 - n32*n23
	t12 := n32*n13 - n33*n12
	t13 := n23*n12 - n22*n13

	det := n11*t11 + n21*t12 + n31*t13
	if det == 0 {
		if strict {
			return Mat3Identity(), ErrSingularMatrix
		}
		log.Warn("Mat3.GetInverse: can't invert matrix, determinant is 0", zap.Float32s("elements", m[:]))
		return Mat3Identity(), nil
	}

	detInv := 1 / det
	return Mat3{
		t11 * detInv,
		(n31*n23 - n33*n21) * detInv,
		(n32*n21 - n31*n22) * detInv,

		t12 * detInv,
		(n33*n11 - n31*n13) * detInv,
		(n31*n12 - n32*n11) * detInv,

		t13 * detInv,
		(n21*n13 - n23*n11) * detInv,
		(n22*n11 - n21*n12) * detInv,
	}, nil
}

// Inverse returns the inverse, or identity if the matrix is singular.
func (m Mat3) Inverse() Mat3 {
	inv, _ := m.GetInverse(false)
	return inv
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	m[1], m[3] = m[3], m[1]
	m[2], m[6] = m[6], m[2]
	m[5], m[7] = m[7], m[5]
	return m
}

// NormalMatrix returns the inverse-transpose of the upper 3x3 of m, used to
// transform surface normals under non-uniform scale.
func NormalMatrix(m Mat4) Mat3 {
	return Mat3FromMat4(m).Inverse().Transpose()
}

// ApplyToVec3Array transforms count floats of packed xyz triples in array,
// starting at offset. A count of 0 means the rest of the array.
func (m Mat3) ApplyToVec3Array(array []float32, offset, count int) {
	if count == 0 {
		count = len(array) - offset
	}
	for i := 0; i+2 < count; i += 3 {
		v := Vec3FromArray(array, offset+i).ApplyMat3(m)
		v.ToArray(array, offset+i)
	}
}

// TransposeIntoArray writes the transposed elements into r.
func (m Mat3) TransposeIntoArray(r []float32) {
	t := m.Transpose()
	copy(r[:9], t[:])
}

// Mat3FromArray reads nine column-major floats starting at offset.
func Mat3FromArray(array []float32, offset int) Mat3 {
	var m Mat3
	copy(m[:], array[offset:offset+9])
	return m
}

// ToArray writes the column-major elements into array starting at offset.
func (m Mat3) ToArray(array []float32, offset int) {
	copy(array[offset:offset+9], m[:])
}

// Equals reports exact element equality.
func (m Mat3) Equals(other Mat3) bool {
	return m == other
}
