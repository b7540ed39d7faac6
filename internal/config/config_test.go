package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/Faultbox/spatial/pkg/math"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test scene defaults
	if cfg.Scene.Up != [3]float32{0, 1, 0} {
		t.Errorf("expected up (0, 1, 0), got %v", cfg.Scene.Up)
	}
	if !cfg.Scene.MatrixAutoUpdate {
		t.Error("expected matrix_auto_update to be true by default")
	}
	if cfg.Scene.EulerOrder != "XYZ" {
		t.Errorf("expected euler order XYZ, got %s", cfg.Scene.EulerOrder)
	}
	if cfg.Scene.StrictInverse {
		t.Error("expected strict_inverse to be false by default")
	}

	// Test camera defaults
	if cfg.Camera.FOV != 50 {
		t.Errorf("expected fov 50, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.Near != 0.1 || cfg.Camera.Far != 2000 {
		t.Errorf("expected near/far 0.1/2000, got %f/%f", cfg.Camera.Near, cfg.Camera.Far)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestSceneConfig(t *testing.T) {
	cfg := Default()
	cfg.Scene.Up = [3]float32{0, 0, 1}
	cfg.Scene.MatrixAutoUpdate = false
	cfg.Scene.EulerOrder = "zyx"

	sc, err := cfg.SceneConfig()
	if err != nil {
		t.Fatalf("SceneConfig: %v", err)
	}
	if sc.Up != (math.Vec3{Z: 1}) {
		t.Errorf("expected up (0, 0, 1), got %v", sc.Up)
	}
	if sc.MatrixAutoUpdate {
		t.Error("expected MatrixAutoUpdate false")
	}
	if sc.EulerOrder != math.OrderZYX {
		t.Errorf("expected ZYX, got %v", sc.EulerOrder)
	}

	cfg.Scene.EulerOrder = "XXY"
	if _, err := cfg.SceneConfig(); !errors.Is(err, math.ErrInvalidEulerOrder) {
		t.Errorf("expected ErrInvalidEulerOrder, got %v", err)
	}
}

func TestProjection(t *testing.T) {
	cfg := Default()
	got := cfg.Camera.Projection()
	want := math.Perspective(math.DegToRad(50), 16.0/9.0, 0.1, 2000)
	if got != want {
		t.Errorf("projection = %v, want %v", got, want)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "spatial.yaml")

	yamlContent := `
scene:
  up: [0, 0, 1]
  matrix_auto_update: false
  euler_order: "YXZ"
  strict_inverse: true

camera:
  fov: 75
  aspect: 1.5
  near: 0.5
  far: 500

logging:
  level: "debug"
  log_file: "spatial.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Scene.Up != [3]float32{0, 0, 1} {
		t.Errorf("expected up (0, 0, 1), got %v", cfg.Scene.Up)
	}
	if cfg.Scene.MatrixAutoUpdate {
		t.Error("expected matrix_auto_update to be false")
	}
	if cfg.Scene.EulerOrder != "YXZ" {
		t.Errorf("expected euler order YXZ, got %s", cfg.Scene.EulerOrder)
	}
	if !cfg.Scene.StrictInverse {
		t.Error("expected strict_inverse to be true")
	}

	if cfg.Camera.FOV != 75 {
		t.Errorf("expected fov 75, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.Aspect != 1.5 {
		t.Errorf("expected aspect 1.5, got %f", cfg.Camera.Aspect)
	}
	if cfg.Camera.Near != 0.5 || cfg.Camera.Far != 500 {
		t.Errorf("expected near/far 0.5/500, got %f/%f", cfg.Camera.Near, cfg.Camera.Far)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "spatial.log" {
		t.Errorf("expected log file 'spatial.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "spatial.yaml")

	if err := os.WriteFile(configPath, []byte("camera:\n  fov: 90\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Missing keys keep their defaults
	if cfg.Camera.FOV != 90 {
		t.Errorf("expected fov 90, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.Far != 2000 {
		t.Errorf("expected default far 2000, got %f", cfg.Camera.Far)
	}
	if cfg.Scene.EulerOrder != "XYZ" {
		t.Errorf("expected default euler order, got %s", cfg.Scene.EulerOrder)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
camera:
  fov: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/spatial.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Point the user config dir somewhere empty
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create spatial.yaml in current directory
	configPath := filepath.Join(tmpDir, "spatial.yaml")
	if err := os.WriteFile(configPath, []byte("camera:\n  fov: 60\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find spatial.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "order flag",
			setup: func() {
				*flagOrder = "ZXY"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.EulerOrder != "ZXY" {
					t.Errorf("expected euler order ZXY, got %s", cfg.Scene.EulerOrder)
				}
			},
			teardown: func() {
				*flagOrder = ""
			},
		},
		{
			name: "strict flag",
			setup: func() {
				*flagStrict = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Scene.StrictInverse {
					t.Error("expected strict_inverse to be enabled with strict flag")
				}
			},
			teardown: func() {
				*flagStrict = false
			},
		},
		{
			name: "log file flag",
			setup: func() {
				*flagLogFile = "/tmp/spatial.log"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.LogFile != "/tmp/spatial.log" {
					t.Errorf("expected log file /tmp/spatial.log, got %s", cfg.Logging.LogFile)
				}
			},
			teardown: func() {
				*flagLogFile = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "spatial.yaml")

	yamlContent := `
scene:
  euler_order: "YZX"
  strict_inverse: false
camera:
  fov: 30
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagOrder = "ZYX"
	defer func() {
		*flagConfig = ""
		*flagOrder = ""
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Order should be from flag (ZYX), not file (YZX)
	if cfg.Scene.EulerOrder != "ZYX" {
		t.Errorf("expected euler order ZYX from flag, got %s", cfg.Scene.EulerOrder)
	}

	// FOV should be from file (30) since no flag override
	if cfg.Camera.FOV != 30 {
		t.Errorf("expected fov 30 from file, got %f", cfg.Camera.FOV)
	}
}

func TestLoadInvalidOrder(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "spatial.yaml")
	if err := os.WriteFile(configPath, []byte("scene:\n  euler_order: \"ABC\"\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, math.ErrInvalidEulerOrder) {
		t.Errorf("expected ErrInvalidEulerOrder, got %v", err)
	}
}

func TestSave(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("config dir override is XDG only")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Logging.Level = "debug"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, filepath.Join(ConfigDir(), "spatial.yaml")); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("reloaded level = %q, want debug", loaded.Logging.Level)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "spatial.yaml")

	cfg := Default()
	cfg.Scene.EulerOrder = "XZY"
	cfg.Camera.FOV = 65
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("reloaded config = %+v, want %+v", *loaded, *cfg)
	}
}
