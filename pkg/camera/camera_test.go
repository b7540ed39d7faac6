package camera

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/spatial/pkg/math"
	"github.com/Faultbox/spatial/pkg/scene"
)

func TestNewCamera(t *testing.T) {
	c := NewCamera()
	if c.MatrixWorldInverse != math.Identity() || c.ProjectionMatrix != math.Identity() {
		t.Error("new camera should hold identity matrices")
	}
}

func TestCameraViewMatchesLookAt(t *testing.T) {
	node := scene.NewObject3D(scene.DefaultConfig())
	node.Position = math.Vec3{X: 3, Y: 4, Z: 10}
	target := math.Vec3{X: -1, Y: 0, Z: 2}
	LookAt(node, target)
	node.UpdateMatrixWorld(false)

	c := NewCamera()
	c.UpdateMatrixWorldInverse(node)

	want := math.LookAt(node.Position, target, node.Up)
	if !c.MatrixWorldInverse.Compare(want, 1e-4) {
		t.Errorf("view matrix = %v, want %v", c.MatrixWorldInverse, want)
	}
}

func TestCameraStrictInverse(t *testing.T) {
	node := scene.NewObject3D(scene.DefaultConfig())
	node.Name = "flat"
	node.Scale = math.Vec3{X: 1, Y: 0, Z: 1}
	node.UpdateMatrixWorld(false)

	c := NewCamera()
	c.MatrixWorldInverse = math.Translate(1, 2, 3)
	err := c.UpdateMatrixWorldInverseStrict(node)
	if !errors.Is(err, math.ErrSingularMatrix) {
		t.Fatalf("err = %v, want ErrSingularMatrix", err)
	}
	if c.MatrixWorldInverse != math.Translate(1, 2, 3) {
		t.Error("view matrix should be untouched on error")
	}

	// Permissive path falls back to identity
	c.UpdateMatrixWorldInverse(node)
	if c.MatrixWorldInverse != math.Identity() {
		t.Errorf("permissive inverse = %v, want identity", c.MatrixWorldInverse)
	}

	node.Scale = math.Vec3One()
	node.UpdateMatrixWorld(false)
	if err := c.UpdateMatrixWorldInverseStrict(node); err != nil {
		t.Errorf("invertible node: %v", err)
	}
}

func TestCameraProjectUnproject(t *testing.T) {
	node := scene.NewObject3D(scene.DefaultConfig())
	node.Position = math.Vec3{Z: 10}
	LookAt(node, math.Vec3{})
	node.UpdateMatrixWorld(false)

	c := NewCamera()
	c.ProjectionMatrix = math.Perspective(gomath.Pi/3, 1.5, 0.1, 100)
	c.UpdateMatrixWorldInverse(node)

	p := c.Project(math.Vec3{})
	if gomath.Abs(float64(p.X)) > 1e-6 || gomath.Abs(float64(p.Y)) > 1e-6 {
		t.Errorf("target should project to the screen centre, got %v", p)
	}
	if p.Z <= -1 || p.Z >= 1 {
		t.Errorf("target depth outside the clip range: %v", p.Z)
	}

	world := math.Vec3{X: 1, Y: -2, Z: 0.5}
	if back := c.Unproject(c.Project(world)); !back.Compare(world, 1e-3) {
		t.Errorf("Unproject(Project(%v)) = %v", world, back)
	}

	vp := c.ViewProjection()
	if got := world.ApplyMat4(vp); !got.Compare(c.Project(world), 1e-5) {
		t.Errorf("ViewProjection disagrees with Project: %v", got)
	}
}

func TestUpdateModelView(t *testing.T) {
	camNode := scene.NewObject3D(scene.DefaultConfig())
	camNode.Position = math.Vec3{Z: 10}
	camNode.UpdateMatrixWorld(false)

	obj := scene.NewObject3D(scene.DefaultConfig())
	obj.Position = math.Vec3{X: 1}
	obj.Scale = math.Vec3{X: 1, Y: 2, Z: 1}
	obj.UpdateMatrixWorld(false)

	c := NewCamera()
	c.UpdateMatrixWorldInverse(camNode)
	c.UpdateModelView(obj)

	if got := obj.ModelViewMatrix.Position(); got != (math.Vec3{X: 1, Z: -10}) {
		t.Errorf("model-view position = %v, want (1, 0, -10)", got)
	}
	// Normal matrix undoes the non-uniform scale
	n := math.Vec3{Y: 1}.ApplyMat3(obj.NormalMatrix)
	if !n.Compare(math.Vec3{Y: 0.5}, 1e-6) {
		t.Errorf("normal = %v, want (0, 0.5, 0)", n)
	}
}

func TestOrbitCamera(t *testing.T) {
	node := scene.NewObject3D(scene.DefaultConfig())
	oc := NewOrbitCamera(node)
	oc.Target = math.Vec3{X: 5, Y: 1}
	oc.Update()

	if d := node.Position.Distance(oc.Target); gomath.Abs(float64(d-oc.Spherical.Radius)) > 1e-3 {
		t.Errorf("distance to target = %v, want %v", d, oc.Spherical.Radius)
	}

	c := NewCamera()
	c.UpdateMatrixWorldInverse(node)
	if !c.MatrixWorldInverse.Compare(oc.ViewMatrix(), 1e-3) {
		t.Errorf("node view %v != ViewMatrix %v", c.MatrixWorldInverse, oc.ViewMatrix())
	}

	// The target sits straight ahead on the camera's -Z axis
	local := c.MatrixWorldInverse.TransformPoint(oc.Target)
	if gomath.Abs(float64(local.X)) > 1e-3 || gomath.Abs(float64(local.Y)) > 1e-3 || local.Z >= 0 {
		t.Errorf("target in view space = %v", local)
	}
}

func TestOrbitCameraConstraints(t *testing.T) {
	oc := NewOrbitCamera(scene.NewObject3D(scene.DefaultConfig()))

	oc.HandleDrag(0, 1e6)
	if oc.Spherical.Phi != oc.MinPolar {
		t.Errorf("phi = %v, want MinPolar %v", oc.Spherical.Phi, oc.MinPolar)
	}
	oc.HandleDrag(0, -1e6)
	if oc.Spherical.Phi != oc.MaxPolar {
		t.Errorf("phi = %v, want MaxPolar %v", oc.Spherical.Phi, oc.MaxPolar)
	}

	oc.HandleZoom(100)
	if oc.Spherical.Radius != oc.MinDistance {
		t.Errorf("radius = %v, want MinDistance", oc.Spherical.Radius)
	}
	oc.HandleZoom(-1e6)
	if oc.Spherical.Radius != oc.MaxDistance {
		t.Errorf("radius = %v, want MaxDistance", oc.Spherical.Radius)
	}

	oc.FitToBounds(NewBox3(math.Vec3{X: 100, Y: 20, Z: 50}, math.Vec3{X: -100, Y: 0, Z: -50}))
	if oc.Target != (math.Vec3{X: 0, Y: 10, Z: 0}) || oc.Spherical.Radius != 300 {
		t.Errorf("FitToBounds: target %v radius %v", oc.Target, oc.Spherical.Radius)
	}
}

func TestOrbitCameraMovement(t *testing.T) {
	oc := NewOrbitCamera(scene.NewObject3D(scene.DefaultConfig()))
	oc.Spherical.Radius = 100
	start := oc.Target

	// Theta 0 puts the camera on +Z, so moving forward goes toward -Z
	oc.HandleMovement(1, 0, 0)
	if got := oc.Target.Sub(start); !got.Compare(math.Vec3{Z: -1}, 1e-6) {
		t.Errorf("forward moved by %v", got)
	}
	oc.HandleMovement(0, 1, 2)
	if got := oc.Target.Sub(start); !got.Compare(math.Vec3{X: 1, Y: 2, Z: -1}, 1e-6) {
		t.Errorf("right/up moved to %v", got)
	}
}
