package camera

import (
	"github.com/Faultbox/spatial/pkg/math"
	"github.com/Faultbox/spatial/pkg/scene"
)

// FitOrthographic places a detached camera node on the side of bounds given
// by dir, updates the view matrix, and returns an orthographic projection
// that encloses the whole box. The caller stores the projection.
// dir points from the box toward the camera and must be non-zero.
func (c *Camera) FitOrthographic(node *scene.Object3D, dir math.Vec3, bounds Box3) math.Mat4 {
	center := bounds.Center()
	radius := bounds.Radius()
	distance := radius * 2
	dir = dir.Normalize()

	node.Position = center.AddScaled(dir, distance)

	// Avoid an up vector parallel to the view direction
	up := math.Vec3{Y: 1}
	if dir.Y > 0.99 || dir.Y < -0.99 {
		up = math.Vec3{Z: 1}
	}
	node.Quaternion = math.QuatFromRotationMatrix(math.LookAtRotation(node.Position, center, up))
	node.UpdateMatrixWorld(false)
	c.UpdateMatrixWorldInverse(node)

	// Padding avoids clipping at the edges
	padding := radius * 0.1
	halfSize := radius + padding
	return math.Ortho(-halfSize, halfSize, -halfSize, halfSize, 0.1, distance+radius+padding)
}
