package scene

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/Faultbox/spatial/pkg/math"
)

// Object3D is a scene graph node. It owns its children; the parent link is
// a back-reference only. Local transform lives in Position, Quaternion and
// Scale; Matrix and MatrixWorld cache the composed local and world matrices.
//
// Object3D is not safe for concurrent mutation.
type Object3D struct {
	id   uuid.UUID
	Name string

	Position   math.Vec3
	Quaternion math.Quat
	Scale      math.Vec3
	Up         math.Vec3

	// EulerOrder is the order Rotation reports angles in.
	EulerOrder math.EulerOrder

	Matrix          math.Mat4
	MatrixWorld     math.Mat4
	ModelViewMatrix math.Mat4
	NormalMatrix    math.Mat3

	// MatrixAutoUpdate recomposes Matrix from the local transform on every
	// world update. Turn it off to drive Matrix directly.
	MatrixAutoUpdate       bool
	MatrixWorldNeedsUpdate bool

	Visible       bool
	CastShadow    bool
	ReceiveShadow bool
	FrustumCulled bool
	RenderOrder   int
	Layers        Layers

	parent   *Object3D
	children []*Object3D
}

// NewObject3D creates a detached node with an identity transform and a
// fresh random ID.
func NewObject3D(cfg Config) *Object3D {
	return &Object3D{
		id:               uuid.New(),
		Quaternion:       math.QuatIdentity(),
		Scale:            math.Vec3One(),
		Up:               cfg.Up,
		EulerOrder:       cfg.EulerOrder,
		Matrix:           math.Identity(),
		MatrixWorld:      math.Identity(),
		ModelViewMatrix:  math.Identity(),
		NormalMatrix:     math.Mat3Identity(),
		MatrixAutoUpdate: cfg.MatrixAutoUpdate,
		Visible:          true,
		FrustumCulled:    true,
		Layers:           NewLayers(),
	}
}

// ID returns the node's unique identifier.
func (o *Object3D) ID() uuid.UUID {
	return o.id
}

// Parent returns the owning node, or nil for a root.
func (o *Object3D) Parent() *Object3D {
	return o.parent
}

// Children returns a copy of the ordered child list.
func (o *Object3D) Children() []*Object3D {
	return slices.Clone(o.children)
}

// Rotation returns the local rotation as Euler angles in o.EulerOrder.
func (o *Object3D) Rotation() math.Euler {
	return math.EulerFromQuat(o.Quaternion, o.EulerOrder)
}

// SetRotation sets the local rotation from Euler angles and adopts their order.
func (o *Object3D) SetRotation(e math.Euler) {
	o.Quaternion = math.QuatFromEuler(e)
	o.EulerOrder = e.Order
}

// ApplyMatrix4 premultiplies the local matrix by m and decomposes the result
// back into Position, Quaternion and Scale.
func (o *Object3D) ApplyMatrix4(m math.Mat4) {
	if o.MatrixAutoUpdate {
		o.UpdateMatrix()
	}
	o.Matrix = m.Mul(o.Matrix)
	o.Position, o.Quaternion, o.Scale = o.Matrix.Decompose()
}

// ApplyQuaternion rotates the node by q in its parent's space.
func (o *Object3D) ApplyQuaternion(q math.Quat) {
	o.Quaternion = q.Mul(o.Quaternion)
}

// SetRotationFromAxisAngle sets the rotation to angle radians about a unit axis.
func (o *Object3D) SetRotationFromAxisAngle(axis math.Vec3, angle float32) {
	o.Quaternion = math.QuatFromAxisAngle(axis, angle)
}

// SetRotationFromEuler sets the rotation from Euler angles without changing EulerOrder.
func (o *Object3D) SetRotationFromEuler(e math.Euler) {
	o.Quaternion = math.QuatFromEuler(e)
}

// SetRotationFromMatrix sets the rotation from the upper 3x3 of a pure rotation matrix.
func (o *Object3D) SetRotationFromMatrix(m math.Mat4) {
	o.Quaternion = math.QuatFromRotationMatrix(m)
}

// SetRotationFromQuaternion copies q into the rotation.
func (o *Object3D) SetRotationFromQuaternion(q math.Quat) {
	o.Quaternion = q
}

// RotateOnAxis rotates the node about an axis in local space.
func (o *Object3D) RotateOnAxis(axis math.Vec3, angle float32) {
	o.Quaternion = o.Quaternion.Mul(math.QuatFromAxisAngle(axis, angle))
}

// RotateOnWorldAxis rotates the node about an axis in world space. It
// assumes no rotated parent.
func (o *Object3D) RotateOnWorldAxis(axis math.Vec3, angle float32) {
	o.Quaternion = math.QuatFromAxisAngle(axis, angle).Mul(o.Quaternion)
}

// RotateX rotates about the local X axis.
func (o *Object3D) RotateX(angle float32) {
	o.RotateOnAxis(math.Vec3{X: 1}, angle)
}

// RotateY rotates about the local Y axis.
func (o *Object3D) RotateY(angle float32) {
	o.RotateOnAxis(math.Vec3{Y: 1}, angle)
}

// RotateZ rotates about the local Z axis.
func (o *Object3D) RotateZ(angle float32) {
	o.RotateOnAxis(math.Vec3{Z: 1}, angle)
}

// TranslateOnAxis moves the node distance units along a local unit axis.
func (o *Object3D) TranslateOnAxis(axis math.Vec3, distance float32) {
	o.Position = o.Position.AddScaled(axis.ApplyQuat(o.Quaternion), distance)
}

// TranslateX moves along the local X axis.
func (o *Object3D) TranslateX(distance float32) {
	o.TranslateOnAxis(math.Vec3{X: 1}, distance)
}

// TranslateY moves along the local Y axis.
func (o *Object3D) TranslateY(distance float32) {
	o.TranslateOnAxis(math.Vec3{Y: 1}, distance)
}

// TranslateZ moves along the local Z axis.
func (o *Object3D) TranslateZ(distance float32) {
	o.TranslateOnAxis(math.Vec3{Z: 1}, distance)
}

// LocalToWorld converts a point from local to world space using the cached
// MatrixWorld.
func (o *Object3D) LocalToWorld(v math.Vec3) math.Vec3 {
	return v.ApplyMat4(o.MatrixWorld)
}

// WorldToLocal converts a point from world to local space using the cached
// MatrixWorld. A singular world matrix maps through the identity.
func (o *Object3D) WorldToLocal(v math.Vec3) math.Vec3 {
	return v.ApplyMat4(o.MatrixWorld.Inverse())
}

// LookAt rotates the node so its local +Z axis points at target, keeping
// Up as the reference up direction. target is in the same space as
// Position. Only Quaternion changes.
func (o *Object3D) LookAt(target math.Vec3) {
	o.Quaternion = math.QuatFromRotationMatrix(math.LookAtRotation(target, o.Position, o.Up))
}

// LookAtWorld is LookAt for a world-space target. It refreshes the world
// matrices of the node and its ancestors and compensates for the parent's
// world rotation.
func (o *Object3D) LookAtWorld(target math.Vec3) {
	o.UpdateWorldMatrix(true, false)
	position := o.MatrixWorld.Position()

	q := math.QuatFromRotationMatrix(math.LookAtRotation(target, position, o.Up))
	if o.parent != nil {
		parentRot := math.QuatFromRotationMatrix(o.parent.MatrixWorld.ExtractRotation())
		q = parentRot.Inverse().Mul(q)
	}
	o.Quaternion = q
}

// Add appends children to o. A child that already has a parent is detached
// from it first. Adding o to itself or to one of its descendants fails and
// leaves the tree unchanged from that child on.
func (o *Object3D) Add(children ...*Object3D) error {
	for _, child := range children {
		if child == nil {
			return ErrNilObject
		}
		if child == o {
			return fmt.Errorf("add %q: %w", child.Name, ErrSelfParent)
		}
		if child.IsAncestorOf(o) {
			return fmt.Errorf("add %q to %q: %w", child.Name, o.Name, ErrCycle)
		}
		child.RemoveFromParent()
		child.parent = o
		o.children = append(o.children, child)
	}
	return nil
}

// Remove detaches the given direct children. Nodes that are not children
// of o are ignored.
func (o *Object3D) Remove(children ...*Object3D) {
	for _, child := range children {
		if child == nil || child.parent != o {
			continue
		}
		if i := slices.Index(o.children, child); i >= 0 {
			o.children = slices.Delete(o.children, i, i+1)
		}
		child.parent = nil
	}
}

// RemoveFromParent detaches o from its parent, if any.
func (o *Object3D) RemoveFromParent() {
	if o.parent != nil {
		o.parent.Remove(o)
	}
}

// Clear detaches every child.
func (o *Object3D) Clear() {
	for _, child := range o.children {
		child.parent = nil
	}
	o.children = nil
}

// Attach adds child to o while keeping its world transform unchanged.
func (o *Object3D) Attach(child *Object3D) error {
	if child == nil {
		return ErrNilObject
	}
	if child == o {
		return fmt.Errorf("attach %q: %w", child.Name, ErrSelfParent)
	}
	if child.IsAncestorOf(o) {
		return fmt.Errorf("attach %q to %q: %w", child.Name, o.Name, ErrCycle)
	}

	o.UpdateWorldMatrix(true, false)
	m := o.MatrixWorld.Inverse()
	if child.parent != nil {
		child.parent.UpdateWorldMatrix(true, false)
		m = m.Mul(child.parent.MatrixWorld)
	}
	child.ApplyMatrix4(m)

	if err := o.Add(child); err != nil {
		return err
	}
	child.UpdateWorldMatrix(false, true)
	return nil
}

// IsAncestorOf reports whether o appears on the parent chain of other.
func (o *Object3D) IsAncestorOf(other *Object3D) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == o {
			return true
		}
	}
	return false
}

// Root returns the topmost ancestor, or o itself when it has no parent.
func (o *Object3D) Root() *Object3D {
	r := o
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// UpdateMatrix recomposes Matrix from Position, Quaternion and Scale and
// marks the world matrix stale.
func (o *Object3D) UpdateMatrix() {
	o.Matrix = math.Compose(o.Position, o.Quaternion, o.Scale)
	o.MatrixWorldNeedsUpdate = true
}

// UpdateMatrixWorld refreshes MatrixWorld for o and its whole subtree in
// depth-first pre-order. A node whose world matrix changes forces the
// update of all its descendants.
func (o *Object3D) UpdateMatrixWorld(force bool) {
	if o.MatrixAutoUpdate {
		o.UpdateMatrix()
	}

	if o.MatrixWorldNeedsUpdate || force {
		o.computeWorld()
		force = true
	}

	for _, child := range o.children {
		child.UpdateMatrixWorld(force)
	}
}

// UpdateWorldMatrix refreshes MatrixWorld for o, optionally after its
// ancestors (root first) and optionally followed by its descendants.
func (o *Object3D) UpdateWorldMatrix(updateParents, updateChildren bool) {
	if updateParents && o.parent != nil {
		o.parent.UpdateWorldMatrix(true, false)
	}

	if o.MatrixAutoUpdate {
		o.UpdateMatrix()
	}
	o.computeWorld()

	if updateChildren {
		for _, child := range o.children {
			child.UpdateWorldMatrix(false, true)
		}
	}
}

func (o *Object3D) computeWorld() {
	if o.parent == nil {
		o.MatrixWorld = o.Matrix
	} else {
		o.MatrixWorld = o.parent.MatrixWorld.Mul(o.Matrix)
	}
	o.MatrixWorldNeedsUpdate = false
}

// WorldPosition returns the node's position in world space. It refreshes
// the world matrices of the node and its ancestors.
func (o *Object3D) WorldPosition() math.Vec3 {
	o.UpdateWorldMatrix(true, false)
	return o.MatrixWorld.Position()
}

// WorldQuaternion returns the node's rotation in world space.
func (o *Object3D) WorldQuaternion() math.Quat {
	o.UpdateWorldMatrix(true, false)
	_, q, _ := o.MatrixWorld.Decompose()
	return q
}

// WorldScale returns the node's scale in world space.
func (o *Object3D) WorldScale() math.Vec3 {
	o.UpdateWorldMatrix(true, false)
	_, _, s := o.MatrixWorld.Decompose()
	return s
}

// WorldDirection returns the world-space direction of the local +Z axis.
func (o *Object3D) WorldDirection() math.Vec3 {
	o.UpdateWorldMatrix(true, false)
	return math.Vec3{X: o.MatrixWorld[8], Y: o.MatrixWorld[9], Z: o.MatrixWorld[10]}.Normalize()
}

// Clone returns a copy of o with a new ID and no parent. With recursive set
// the subtree is cloned too.
func (o *Object3D) Clone(recursive bool) *Object3D {
	c := *o
	c.id = uuid.New()
	c.parent = nil
	c.children = nil
	if recursive {
		for _, child := range o.children {
			cc := child.Clone(true)
			cc.parent = &c
			c.children = append(c.children, cc)
		}
	}
	return &c
}

// String returns a short description with name and ID.
func (o *Object3D) String() string {
	name := o.Name
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("Object3D(%s %s)", name, o.id)
}
