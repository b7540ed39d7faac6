package scenefile

import (
	"errors"
	"fmt"

	"github.com/Faultbox/spatial/internal/config"
	"github.com/Faultbox/spatial/pkg/camera"
	"github.com/Faultbox/spatial/pkg/math"
	"github.com/Faultbox/spatial/pkg/scene"
)

// RootName is the name given to the root node created by Build.
const RootName = "scene"

// ErrInvalidLayer is returned for layer channels outside 0..63.
var ErrInvalidLayer = errors.New("scenefile: layer channel out of range")

// Build creates a root node holding the document's node tree. World
// matrices are not updated; call UpdateMatrixWorld on the result.
func Build(doc *Document, cfg scene.Config) (*scene.Object3D, error) {
	root := scene.NewObject3D(cfg)
	root.Name = RootName
	for i := range doc.Nodes {
		n, err := buildNode(&doc.Nodes[i], cfg)
		if err != nil {
			return nil, err
		}
		if err := root.Add(n); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func buildNode(spec *NodeSpec, cfg scene.Config) (*scene.Object3D, error) {
	n := scene.NewObject3D(cfg)
	n.Name = spec.Name
	n.Position = vec3(spec.Position)

	order := cfg.EulerOrder
	if spec.Order != "" {
		o, err := math.ParseEulerOrder(spec.Order)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", spec.Name, err)
		}
		order = o
	}

	if q := spec.Quaternion; q != nil {
		n.EulerOrder = order
		n.Quaternion = math.Quat{X: q[0], Y: q[1], Z: q[2], W: q[3]}.Normalize()
	} else {
		r := spec.Rotation
		n.SetRotation(math.NewEuler(math.DegToRad(r[0]), math.DegToRad(r[1]), math.DegToRad(r[2]), order))
	}

	if spec.Scale != nil {
		n.Scale = vec3(*spec.Scale)
	}
	if spec.LookAt != nil {
		n.LookAt(vec3(*spec.LookAt))
	}
	if spec.Visible != nil {
		n.Visible = *spec.Visible
	}
	if spec.MatrixAutoUpdate != nil {
		n.MatrixAutoUpdate = *spec.MatrixAutoUpdate
	}
	if spec.Layers != nil {
		n.Layers.DisableAll()
		for _, ch := range *spec.Layers {
			if ch >= scene.LayerCount {
				return nil, fmt.Errorf("node %q: %w: %d", spec.Name, ErrInvalidLayer, ch)
			}
			n.Layers.Enable(ch)
		}
	}
	// A node with auto-update off keeps the matrix it was described with.
	if !n.MatrixAutoUpdate {
		n.UpdateMatrix()
	}

	for i := range spec.Children {
		child, err := buildNode(&spec.Children[i], cfg)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", spec.Name, err)
		}
		if err := n.Add(child); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// BuildCamera creates the camera node and camera described by spec, using
// defaults for unset projection fields. The camera node is not part of any
// tree. With strict set a singular camera transform is an error.
func BuildCamera(spec *CameraSpec, cfg scene.Config, defaults config.CameraConfig, strict bool) (*scene.Object3D, *camera.Camera, error) {
	node := scene.NewObject3D(cfg)
	node.Name = "camera"
	node.Position = vec3(spec.Position)
	if spec.Target != nil {
		camera.LookAt(node, vec3(*spec.Target))
	}
	node.UpdateMatrixWorld(false)

	proj := defaults
	if spec.FOV != 0 {
		proj.FOV = spec.FOV
	}
	if spec.Aspect != 0 {
		proj.Aspect = spec.Aspect
	}
	if spec.Near != 0 {
		proj.Near = spec.Near
	}
	if spec.Far != 0 {
		proj.Far = spec.Far
	}

	cam := camera.NewCamera()
	cam.ProjectionMatrix = proj.Projection()
	if strict {
		if err := cam.UpdateMatrixWorldInverseStrict(node); err != nil {
			return nil, nil, err
		}
	} else {
		cam.UpdateMatrixWorldInverse(node)
	}
	return node, cam, nil
}

// Export converts the children of root back into a document. Rotations are
// written in degrees in each node's own Euler order; defaults are omitted.
func Export(root *scene.Object3D) *Document {
	doc := &Document{}
	for _, child := range root.Children() {
		doc.Nodes = append(doc.Nodes, exportNode(child))
	}
	return doc
}

func exportNode(n *scene.Object3D) NodeSpec {
	r := n.Rotation()
	spec := NodeSpec{
		Name:     n.Name,
		Position: array3(n.Position),
		Rotation: [3]float32{math.RadToDeg(r.X), math.RadToDeg(r.Y), math.RadToDeg(r.Z)},
		Order:    n.EulerOrder.String(),
	}
	if n.Scale != math.Vec3One() {
		s := array3(n.Scale)
		spec.Scale = &s
	}
	if !n.Visible {
		v := false
		spec.Visible = &v
	}
	if n.Layers != scene.NewLayers() {
		ch := n.Layers.Channels()
		spec.Layers = &ch
	}
	if !n.MatrixAutoUpdate {
		v := false
		spec.MatrixAutoUpdate = &v
	}
	for _, child := range n.Children() {
		spec.Children = append(spec.Children, exportNode(child))
	}
	return spec
}

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

func array3(v math.Vec3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
