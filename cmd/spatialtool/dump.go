package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"

	"github.com/Faultbox/spatial/pkg/math"
	"github.com/Faultbox/spatial/pkg/scene"
)

var spewConfig *spew.ConfigState

func init() {
	spewConfig = spew.NewDefaultConfig()
	spewConfig.DisableCapacities = true
	spewConfig.DisablePointerAddresses = true
}

// nodeState is the flattened view of a node that dump prints.
type nodeState struct {
	Name        string
	ID          uuid.UUID
	Parent      string
	Children    []string
	Position    math.Vec3
	Rotation    math.Euler
	Quaternion  math.Quat
	Scale       math.Vec3
	Matrix      math.Mat4
	MatrixWorld math.Mat4
	Visible     bool
	Layers      []uint
	AutoUpdate  bool
}

func snapshot(n *scene.Object3D) nodeState {
	s := nodeState{
		Name:        n.Name,
		ID:          n.ID(),
		Position:    n.Position,
		Rotation:    n.Rotation(),
		Quaternion:  n.Quaternion,
		Scale:       n.Scale,
		Matrix:      n.Matrix,
		MatrixWorld: n.MatrixWorld,
		Visible:     n.Visible,
		Layers:      n.Layers.Channels(),
		AutoUpdate:  n.MatrixAutoUpdate,
	}
	if p := n.Parent(); p != nil {
		s.Parent = p.Name
	}
	for _, c := range n.Children() {
		s.Children = append(s.Children, c.Name)
	}
	return s
}

func (a *app) cmdDump(args []string) {
	if len(args) < 1 {
		usage("dump <scene> [name]")
	}
	_, root := a.load(args[0])

	node := root
	if len(args) > 1 {
		if node = root.FindByName(args[1]); node == nil {
			fatal("dump", fmt.Errorf("no node named %q", args[1]))
		}
	}
	fmt.Println(spewConfig.Sdump(snapshot(node)))
}
