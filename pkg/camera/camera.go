// Package camera provides the camera matrices consumed by a renderer and
// controllers that drive a camera node.
package camera

import (
	"fmt"

	"github.com/Faultbox/spatial/pkg/math"
	"github.com/Faultbox/spatial/pkg/scene"
)

// Camera holds the view and projection matrices a renderer reads. The
// projection is supplied by the caller; Camera never computes it.
type Camera struct {
	MatrixWorldInverse math.Mat4
	ProjectionMatrix   math.Mat4
}

// NewCamera returns a camera with identity matrices.
func NewCamera() *Camera {
	return &Camera{
		MatrixWorldInverse: math.Identity(),
		ProjectionMatrix:   math.Identity(),
	}
}

// UpdateMatrixWorldInverse sets the view matrix from the camera node's
// current MatrixWorld.
func (c *Camera) UpdateMatrixWorldInverse(node *scene.Object3D) {
	c.MatrixWorldInverse = node.MatrixWorld.Inverse()
}

// UpdateMatrixWorldInverseStrict is UpdateMatrixWorldInverse that refuses a
// singular world matrix instead of falling back to identity. The view matrix
// is left unchanged on error.
func (c *Camera) UpdateMatrixWorldInverseStrict(node *scene.Object3D) error {
	inv, err := node.MatrixWorld.GetInverse(true)
	if err != nil {
		return fmt.Errorf("camera %q: %w", node.Name, err)
	}
	c.MatrixWorldInverse = inv
	return nil
}

// UpdateModelView fills obj's ModelViewMatrix and NormalMatrix for this view.
func (c *Camera) UpdateModelView(obj *scene.Object3D) {
	obj.ModelViewMatrix = c.MatrixWorldInverse.Mul(obj.MatrixWorld)
	obj.NormalMatrix = math.NormalMatrix(obj.ModelViewMatrix)
}

// ViewProjection returns ProjectionMatrix * MatrixWorldInverse.
func (c *Camera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix.Mul(c.MatrixWorldInverse)
}

// Project maps a world-space point to normalized device coordinates.
func (c *Camera) Project(v math.Vec3) math.Vec3 {
	return v.ApplyMat4(c.MatrixWorldInverse).ApplyMat4(c.ProjectionMatrix)
}

// Unproject maps normalized device coordinates back to world space.
func (c *Camera) Unproject(v math.Vec3) math.Vec3 {
	return v.ApplyMat4(c.ProjectionMatrix.Inverse()).ApplyMat4(c.MatrixWorldInverse.Inverse())
}

// LookAt turns a camera node so it looks down its local -Z axis at target.
// Cameras face the opposite way of ordinary nodes, which point +Z at the
// target.
func LookAt(node *scene.Object3D, target math.Vec3) {
	node.Quaternion = math.QuatFromRotationMatrix(math.LookAtRotation(node.Position, target, node.Up))
}
