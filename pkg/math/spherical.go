package math

import "math"

// Spherical holds spherical coordinates. Phi is the polar angle from +Y and
// Theta the azimuth around Y, measured from +Z toward +X.
type Spherical struct {
	Radius float32
	Phi    float32
	Theta  float32
}

// NewSpherical returns the unit sphere point at the north pole.
func NewSpherical() Spherical {
	return Spherical{Radius: 1}
}

// SphericalFromVec3 converts a Cartesian vector. The zero vector yields
// zero radius and zero angles.
func SphericalFromVec3(v Vec3) Spherical {
	s := Spherical{Radius: v.Length()}
	if s.Radius == 0 {
		return s
	}
	s.Theta = atan2f(v.X, v.Z)
	s.Phi = acosf(Clamp(v.Y/s.Radius, -1, 1))
	return s
}

// MakeSafe keeps Phi strictly inside (0, π) so the poles never produce a
// degenerate look direction.
func (s Spherical) MakeSafe() Spherical {
	const eps = 0.000001
	s.Phi = max(eps, min(math.Pi-eps, s.Phi))
	return s
}

// ToVec3 converts back to a Cartesian vector.
func (s Spherical) ToVec3() Vec3 {
	return Vec3FromSpherical(s)
}
