package render

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the renderer's tunables as an explicit structured
// literal (spec.md §9 "configuration as structured literals"): window,
// camera speed, FOV bounds, colors, and help text. The camera's initial
// yaw/pitch, its distance factor and the near clip plane are literals in
// camera.go, not Config fields.
type Config struct {
	WindowWidth  int     `toml:"window_width"`
	WindowHeight int     `toml:"window_height"`
	WindowTitle  string  `toml:"window_title"`
	VSync        bool    `toml:"vsync"`

	OrbitSpeed   float32 `toml:"orbit_speed"`
	ZoomSpeed    float32 `toml:"zoom_speed"`
	DefaultFOV   float32 `toml:"default_fov"`
	MinFOV       float32 `toml:"min_fov"`
	MaxFOV       float32 `toml:"max_fov"`
	MinDistance  float32 `toml:"min_distance"`
	MaxDistance  float32 `toml:"max_distance"`
	MinPitch     float32 `toml:"min_pitch"`
	MaxPitch     float32 `toml:"max_pitch"`

	BackgroundColor [4]float32 `toml:"background_color"`
	CubeColor       [3]float32 `toml:"cube_color"`

	HelpText string `toml:"help_text"`
}

// DefaultConfig mirrors the teacher's previously-hardcoded constants
// (DefaultFOV, MinFOV/MaxFOV, MaxPitch/MinPitch in
// Leterax-go-voxels/pkg/render/constants.go), now expressed as data.
func DefaultConfig() Config {
	return Config{
		WindowWidth:  1024,
		WindowHeight: 768,
		WindowTitle:  "carve - voxel viewer",
		VSync:        true,

		OrbitSpeed:  0.25,
		ZoomSpeed:   1.0,
		DefaultFOV:  45.0,
		MinFOV:      1.0,
		MaxFOV:      45.0,
		MinDistance: 1.0,
		MaxDistance: 1000.0,
		MinPitch:    -89.0,
		MaxPitch:    89.0,

		BackgroundColor: [4]float32{0.08, 0.08, 0.1, 1.0},
		CubeColor:       [3]float32{0.7, 0.7, 0.75},

		HelpText: "drag: orbit  scroll: zoom  r: reset  h: help  esc: quit",
	}
}

// LoadConfig reads render.toml at path, falling back to DefaultConfig
// untouched if the file does not exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("render: reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("render: parsing config: %w", err)
	}
	return cfg, nil
}
