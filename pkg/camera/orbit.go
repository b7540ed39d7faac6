package camera

import (
	gomath "math"

	"github.com/Faultbox/spatial/pkg/math"
	"github.com/Faultbox/spatial/pkg/scene"
)

// OrbitCamera orbits a camera node around a target point.
type OrbitCamera struct {
	Node *scene.Object3D

	// Point to orbit around
	Target math.Vec3

	// Offset of the camera from Target. Phi is measured from +Y, so a
	// smaller Phi looks down more steeply.
	Spherical math.Spherical

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPolar    float32
	MaxPolar    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates an orbit controller for node with default settings.
func NewOrbitCamera(node *scene.Object3D) *OrbitCamera {
	return &OrbitCamera{
		Node: node,
		Spherical: math.Spherical{
			Radius: 200.0,
			Phi:    gomath.Pi/2 - 0.5,
			Theta:  0.0,
		},
		MinDistance:     50.0,
		MaxDistance:     5000.0,
		MinPolar:        0.07,
		MaxPolar:        gomath.Pi/2 - 0.1,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	return c.Target.Add(math.Vec3FromSpherical(c.Spherical.MakeSafe()))
}

// Update moves the node to Position, points it at Target and refreshes its
// world matrix.
func (c *OrbitCamera) Update() {
	c.Node.Position = c.Position()
	LookAt(c.Node, c.Target)
	c.Node.UpdateMatrixWorld(false)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target, c.Node.Up)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Spherical.Theta -= deltaX * c.DragSensitivity
	c.Spherical.Phi -= deltaY * c.DragSensitivity
	c.Spherical.Phi = math.Clamp(c.Spherical.Phi, c.MinPolar, c.MaxPolar)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	r := c.Spherical.Radius - delta*c.Spherical.Radius*c.ZoomSensitivity
	c.Spherical.Radius = math.Clamp(r, c.MinDistance, c.MaxDistance)
}

// HandleMovement pans the target on the ground plane relative to the
// current view direction.
func (c *OrbitCamera) HandleMovement(forward, right, up float32) {
	// Speed scales with distance for consistent feel
	speed := c.Spherical.Radius * 0.01

	// Forward points away from the camera, right is perpendicular to it
	dir := math.Vec3{X: -float32(gomath.Sin(float64(c.Spherical.Theta))), Z: -float32(gomath.Cos(float64(c.Spherical.Theta)))}
	rightDir := math.Vec3{X: float32(gomath.Cos(float64(c.Spherical.Theta))), Z: -float32(gomath.Sin(float64(c.Spherical.Theta)))}

	c.Target = c.Target.
		AddScaled(dir, forward*speed).
		AddScaled(rightDir, right*speed).
		AddScaled(math.Vec3{Y: 1}, up*speed)
}

// FitToBounds adjusts camera to view the given bounding box.
func (c *OrbitCamera) FitToBounds(box Box3) {
	c.Target = box.Center()

	size := box.Size()
	maxSize := max(size.X, size.Y, size.Z)

	c.Spherical.Radius = math.Clamp(maxSize*1.5, c.MinDistance, c.MaxDistance)
	c.Spherical.Phi = gomath.Pi/2 - 0.6 // Look down at ~35 degrees
	c.Spherical.Theta = 0.0
}
