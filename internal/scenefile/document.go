// Package scenefile reads and writes scene description files and turns them
// into live scene graphs. YAML (.yaml, .yml) and TOML (.toml) are supported.
package scenefile

// Document is the on-disk form of a scene.
type Document struct {
	Camera *CameraSpec `yaml:"camera,omitempty" toml:"camera,omitempty"`
	Nodes  []NodeSpec  `yaml:"nodes" toml:"nodes"`
}

// CameraSpec places a perspective camera. Zero projection fields fall back
// to the application's camera defaults.
type CameraSpec struct {
	Position [3]float32  `yaml:"position" toml:"position"`
	Target   *[3]float32 `yaml:"target,omitempty" toml:"target,omitempty"`
	FOV      float32     `yaml:"fov,omitempty" toml:"fov,omitempty"` // degrees
	Aspect   float32     `yaml:"aspect,omitempty" toml:"aspect,omitempty"`
	Near     float32     `yaml:"near,omitempty" toml:"near,omitempty"`
	Far      float32     `yaml:"far,omitempty" toml:"far,omitempty"`
}

// NodeSpec describes one node and its subtree.
//
// Rotation is in degrees and applied in Order, or the scene's default order
// when Order is empty. Quaternion (x, y, z, w) overrides Rotation, and
// LookAt overrides both. A nil Layers keeps the default channel 0; an empty
// list disables every channel.
type NodeSpec struct {
	Name             string      `yaml:"name" toml:"name"`
	Position         [3]float32  `yaml:"position" toml:"position"`
	Rotation         [3]float32  `yaml:"rotation" toml:"rotation"`
	Order            string      `yaml:"order,omitempty" toml:"order,omitempty"`
	Quaternion       *[4]float32 `yaml:"quaternion,omitempty" toml:"quaternion,omitempty"`
	Scale            *[3]float32 `yaml:"scale,omitempty" toml:"scale,omitempty"`
	LookAt           *[3]float32 `yaml:"look_at,omitempty" toml:"look_at,omitempty"`
	Visible          *bool       `yaml:"visible,omitempty" toml:"visible,omitempty"`
	Layers           *[]uint     `yaml:"layers,omitempty" toml:"layers,omitempty"`
	MatrixAutoUpdate *bool       `yaml:"matrix_auto_update,omitempty" toml:"matrix_auto_update,omitempty"`
	Children         []NodeSpec  `yaml:"children,omitempty" toml:"children,omitempty"`
}
