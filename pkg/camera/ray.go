package camera

import (
	gomath "math"

	"github.com/Faultbox/spatial/pkg/math"
)

// Box3 is an axis-aligned bounding box.
type Box3 struct {
	Min math.Vec3
	Max math.Vec3
}

// NewBox3 creates a box spanning two corners given in any order.
func NewBox3(a, b math.Vec3) Box3 {
	return Box3{Min: a.Min(b), Max: a.Max(b)}
}

// Center returns the center point of the box.
func (b Box3) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent of the box on each axis.
func (b Box3) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Radius returns the distance from center to corner (half-diagonal).
func (b Box3) Radius() float32 {
	return b.Size().Length() / 2
}

// ContainsPoint reports whether p lies inside or on the box.
func (b Box3) ContainsPoint(p math.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ExpandByPoint returns the smallest box holding b and p.
func (b Box3) ExpandByPoint(p math.Vec3) Box3 {
	return Box3{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Corners returns the eight corners of the box.
func (b Box3) Corners() [8]math.Vec3 {
	var out [8]math.Vec3
	for i := range out {
		out[i] = b.Min
		if i&1 != 0 {
			out[i].X = b.Max.X
		}
		if i&2 != 0 {
			out[i].Y = b.Max.Y
		}
		if i&4 != 0 {
			out[i].Z = b.Max.Z
		}
	}
	return out
}

// ApplyMat4 returns the axis-aligned box around the transformed corners.
func (b Box3) ApplyMat4(m math.Mat4) Box3 {
	corners := b.Corners()
	p := corners[0].ApplyMat4(m)
	out := Box3{Min: p, Max: p}
	for _, c := range corners[1:] {
		out = out.ExpandByPoint(c.ApplyMat4(m))
	}
	return out
}

// Ray is a half-line with a normalized direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.AddScaled(r.Direction, t)
}

// ScreenToNDC converts pixel coordinates (origin top-left) to normalized
// device coordinates.
func ScreenToNDC(screenX, screenY, viewportW, viewportH float32) (x, y float32) {
	return 2*screenX/viewportW - 1, 1 - 2*screenY/viewportH
}

// RayFromNDC returns the world-space ray through the given normalized device
// coordinates, starting on the near plane.
func (c *Camera) RayFromNDC(x, y float32) Ray {
	near := c.Unproject(math.Vec3{X: x, Y: y, Z: -1})
	far := c.Unproject(math.Vec3{X: x, Y: y, Z: 1})
	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

// IntersectPlane intersects the ray with the plane normal·p + constant = 0
// and returns the distance along the ray. Rays parallel to the plane or
// hitting it behind the origin report false.
func (r Ray) IntersectPlane(normal math.Vec3, constant float32) (t float32, ok bool) {
	denom := normal.Dot(r.Direction)
	if gomath.Abs(float64(denom)) < 0.001 {
		return 0, false
	}
	t = -(r.Origin.Dot(normal) + constant) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectBox tests the ray against an axis-aligned box and returns the
// entry distance, or the exit distance if the ray starts inside.
func (r Ray) IntersectBox(box Box3) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		o, d := r.Origin.Component(axis), r.Direction.Component(axis)
		lo, hi := box.Min.Component(axis), box.Max.Component(axis)
		if d == 0 {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}
		t1, t2 := (lo-o)/d, (hi-o)/d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
