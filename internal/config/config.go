package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	SkinPath  string `json:"skin"`
	SkinDir   string `json:"skin_dir"`
	CapePath  string `json:"cape"`
	OutputDir string `json:"output_dir"`

	// Model settings
	Variant string `json:"variant"` // steve | alex

	// Render settings
	RenderSize  int  `json:"render_size"`
	Supersample int  `json:"supersample"`
	Frames      int  `json:"frames"` // turntable frames per skin
	Workers     int  `json:"workers"`
	Lit         bool `json:"lit"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	SkinPath  string
	SkinDir   string
	CapePath  string
	OutputDir string
	Variant   string
	Size      int
	Frames    int
	Workers   int
	Lit       bool
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.SkinPath != "" {
		c.SkinPath = flags.SkinPath
	}
	if flags.SkinDir != "" {
		c.SkinDir = flags.SkinDir
	}
	if flags.CapePath != "" {
		c.CapePath = flags.CapePath
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Variant != "" {
		c.Variant = flags.Variant
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Lit {
		c.Lit = true
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
