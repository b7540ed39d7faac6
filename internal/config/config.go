// Package config handles application configuration.
package config

import (
	"fmt"

	"github.com/Faultbox/spatial/pkg/math"
	"github.com/Faultbox/spatial/pkg/scene"
)

// Config holds all configuration.
type Config struct {
	Scene   SceneConfig   `yaml:"scene"`
	Camera  CameraConfig  `yaml:"camera"`
	Logging LoggingConfig `yaml:"logging"`
}

// SceneConfig holds the defaults applied to scene nodes.
type SceneConfig struct {
	Up               [3]float32 `yaml:"up"`
	MatrixAutoUpdate bool       `yaml:"matrix_auto_update"`
	EulerOrder       string     `yaml:"euler_order"`
	// StrictInverse turns singular matrix inversions into errors instead
	// of an identity fallback.
	StrictInverse bool `yaml:"strict_inverse"`
}

// CameraConfig holds the perspective projection parameters.
type CameraConfig struct {
	FOV    float32 `yaml:"fov"` // vertical, degrees
	Aspect float32 `yaml:"aspect"`
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"` // debug, info, warn, error
	LogFile string `yaml:"log_file"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Scene: SceneConfig{
			Up:               [3]float32{0, 1, 0},
			MatrixAutoUpdate: true,
			EulerOrder:       math.DefaultEulerOrder.String(),
			StrictInverse:    false,
		},
		Camera: CameraConfig{
			FOV:    50,
			Aspect: 16.0 / 9.0,
			Near:   0.1,
			Far:    2000,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// SceneConfig converts the scene section into node defaults.
func (c *Config) SceneConfig() (scene.Config, error) {
	order, err := math.ParseEulerOrder(c.Scene.EulerOrder)
	if err != nil {
		return scene.Config{}, fmt.Errorf("scene.euler_order: %w", err)
	}
	return scene.Config{
		Up:               math.Vec3{X: c.Scene.Up[0], Y: c.Scene.Up[1], Z: c.Scene.Up[2]},
		MatrixAutoUpdate: c.Scene.MatrixAutoUpdate,
		EulerOrder:       order,
	}, nil
}

// Projection returns the perspective matrix described by the camera settings.
func (c CameraConfig) Projection() math.Mat4 {
	return math.Perspective(math.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}
