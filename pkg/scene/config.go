// Package scene provides the Object3D scene graph: nodes with a local
// transform, owned children and a world transform derived from their
// ancestors.
package scene

import (
	"errors"

	"github.com/Faultbox/spatial/pkg/math"
)

// Scene graph errors.
var (
	ErrSelfParent = errors.New("scene: object cannot be its own child")
	ErrCycle      = errors.New("scene: object is an ancestor of the new parent")
	ErrNilObject  = errors.New("scene: nil object")
)

// Config holds the defaults applied to newly constructed objects.
type Config struct {
	// Up is the initial Up vector, used by LookAt.
	Up math.Vec3
	// MatrixAutoUpdate is the initial MatrixAutoUpdate flag.
	MatrixAutoUpdate bool
	// EulerOrder is the order used by Rotation and SetRotation.
	EulerOrder math.EulerOrder
}

// DefaultConfig returns +Y up, auto-updating matrices and XYZ order.
func DefaultConfig() Config {
	return Config{
		Up:               math.Vec3Up(),
		MatrixAutoUpdate: true,
		EulerOrder:       math.DefaultEulerOrder,
	}
}
