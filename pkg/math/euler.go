package math

import (
	"fmt"
	"strings"
)

// EulerOrder selects the axis order in which Euler rotations are composed.
// The numeric value is the order code used in flat arrays.
type EulerOrder uint8

// Rotation orders. XYZ means the matrix is Rx * Ry * Rz.
const (
	OrderXYZ EulerOrder = iota
	OrderYZX
	OrderZXY
	OrderXZY
	OrderYXZ
	OrderZYX
)

// DefaultEulerOrder is the order used when none is given.
const DefaultEulerOrder = OrderXYZ

// gimbalThreshold bounds |sin| of the middle angle; above it the first and
// third axes are treated as aligned.
const gimbalThreshold = 0.99999

var eulerOrderNames = [...]string{"XYZ", "YZX", "ZXY", "XZY", "YXZ", "ZYX"}

// String returns the order name, e.g. "XYZ".
func (o EulerOrder) String() string {
	if int(o) < len(eulerOrderNames) {
		return eulerOrderNames[o]
	}
	return fmt.Sprintf("EulerOrder(%d)", uint8(o))
}

// Valid reports whether o is one of the six orders.
func (o EulerOrder) Valid() bool {
	return int(o) < len(eulerOrderNames)
}

// MarshalText implements encoding.TextMarshaler.
func (o EulerOrder) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: code %d", ErrInvalidEulerOrder, uint8(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *EulerOrder) UnmarshalText(text []byte) error {
	parsed, err := ParseEulerOrder(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// ParseEulerOrder parses an order name, ignoring case and surrounding space.
func ParseEulerOrder(s string) (EulerOrder, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range eulerOrderNames {
		if n == name {
			return EulerOrder(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidEulerOrder, s)
}

// EulerOrderFromCode validates an order code read from external data.
func EulerOrderFromCode(code int) (EulerOrder, error) {
	if code < 0 || code >= len(eulerOrderNames) {
		return 0, fmt.Errorf("%w: code %d", ErrInvalidEulerOrder, code)
	}
	return EulerOrder(code), nil
}

// Euler is a rotation as three angles in radians applied in Order.
type Euler struct {
	X, Y, Z float32
	Order   EulerOrder
}

// NewEuler returns an Euler with the given angles and order.
func NewEuler(x, y, z float32, order EulerOrder) Euler {
	return Euler{X: x, Y: y, Z: z, Order: order}
}

// EulerFromRotationMatrix extracts angles in the given order from the upper
// 3x3 of m, which must be a pure (unscaled) rotation. Near gimbal lock the
// third angle is set to zero and the remaining two absorb the rotation.
func EulerFromRotationMatrix(m Mat4, order EulerOrder) Euler {
	m11, m12, m13 := m[0], m[4], m[8]
	m21, m22, m23 := m[1], m[5], m[9]
	m31, m32, m33 := m[2], m[6], m[10]

	e := Euler{Order: order}

	switch order {
	case OrderXYZ:
		e.Y = asinf(Clamp(m13, -1, 1))
		if absf(m13) < gimbalThreshold {
			e.X = atan2f(-m23, m33)
			e.Z = atan2f(-m12, m11)
		} else {
			e.X = atan2f(m32, m22)
		}
	case OrderYXZ:
		e.X = asinf(-Clamp(m23, -1, 1))
		if absf(m23) < gimbalThreshold {
			e.Y = atan2f(m13, m33)
			e.Z = atan2f(m21, m22)
		} else {
			e.Y = atan2f(-m31, m11)
		}
	case OrderZXY:
		e.X = asinf(Clamp(m32, -1, 1))
		if absf(m32) < gimbalThreshold {
			e.Y = atan2f(-m31, m33)
			e.Z = atan2f(-m12, m22)
		} else {
			e.Z = atan2f(m21, m11)
		}
	case OrderZYX:
		e.Y = asinf(-Clamp(m31, -1, 1))
		if absf(m31) < gimbalThreshold {
			e.X = atan2f(m32, m33)
			e.Z = atan2f(m21, m11)
		} else {
			e.Z = atan2f(-m12, m22)
		}
	case OrderYZX:
		e.Z = asinf(Clamp(m21, -1, 1))
		if absf(m21) < gimbalThreshold {
			e.X = atan2f(-m23, m22)
			e.Y = atan2f(-m31, m11)
		} else {
			e.Y = atan2f(m13, m33)
		}
	case OrderXZY:
		e.Z = asinf(-Clamp(m12, -1, 1))
		if absf(m12) < gimbalThreshold {
			e.X = atan2f(m32, m22)
			e.Y = atan2f(m13, m11)
		} else {
			e.X = atan2f(-m23, m33)
		}
	}

	return e
}

// EulerFromQuat converts a unit quaternion to angles in the given order.
func EulerFromQuat(q Quat, order EulerOrder) Euler {
	return EulerFromRotationMatrix(MakeRotationFromQuat(q), order)
}

// Reorder returns the same rotation expressed in another order. Angle
// information is lost when the new order hits gimbal lock.
func (e Euler) Reorder(order EulerOrder) Euler {
	return EulerFromQuat(QuatFromEuler(e), order)
}

// ToQuat converts the angles to a quaternion.
func (e Euler) ToQuat() Quat {
	return QuatFromEuler(e)
}

// ToVec3 returns the three angles as a vector.
func (e Euler) ToVec3() Vec3 {
	return Vec3{e.X, e.Y, e.Z}
}

// EulerFromVec3 builds an Euler from the components of v.
func EulerFromVec3(v Vec3, order EulerOrder) Euler {
	return Euler{X: v.X, Y: v.Y, Z: v.Z, Order: order}
}

// Equals reports exact equality of angles and order.
func (e Euler) Equals(other Euler) bool {
	return e == other
}

// Compare reports whether the orders match and each angle is within tolerance.
func (e Euler) Compare(other Euler, tolerance float32) bool {
	return e.Order == other.Order && e.ToVec3().Compare(other.ToVec3(), tolerance)
}

// String formats the angles in degrees with the order name.
func (e Euler) String() string {
	return fmt.Sprintf("Euler(%.3f°, %.3f°, %.3f°, %s)",
		RadToDeg(e.X), RadToDeg(e.Y), RadToDeg(e.Z), e.Order)
}

// EulerFromArray reads three angles starting at offset and uses order.
func EulerFromArray(array []float32, offset int, order EulerOrder) Euler {
	return Euler{X: array[offset], Y: array[offset+1], Z: array[offset+2], Order: order}
}

// EulerFromArrayWithOrder reads three angles and an order code from four
// consecutive slots. The code must be an integral value in 0..5.
func EulerFromArrayWithOrder(array []float32, offset int) (Euler, error) {
	code := array[offset+3]
	if code != float32(int(code)) {
		return Euler{}, fmt.Errorf("%w: non-integral code %v", ErrInvalidEulerOrder, code)
	}
	order, err := EulerOrderFromCode(int(code))
	if err != nil {
		return Euler{}, err
	}
	return EulerFromArray(array, offset, order), nil
}

// ToArray writes the three angles into array starting at offset.
func (e Euler) ToArray(array []float32, offset int) {
	array[offset] = e.X
	array[offset+1] = e.Y
	array[offset+2] = e.Z
}

// ToArrayWithOrder writes the three angles followed by the order code.
func (e Euler) ToArrayWithOrder(array []float32, offset int) {
	e.ToArray(array, offset)
	array[offset+3] = float32(e.Order)
}
