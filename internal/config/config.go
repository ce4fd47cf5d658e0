// Package config loads render settings from a TOML file, mirroring
// cogentcore-core's use of github.com/pelletier/go-toml/v2 for structured
// configuration. Programmatic construction of a RenderConfig literal
// remains the primary path — file loading is additive.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// RenderConfig holds the renderer-construction parameters spec.md leaves
// to the caller: image size, sampling, worker topology, and the RNG seed.
// Default supplies a MaxDepth like every other field, and a file loaded
// with Load keeps it unless the file sets max_depth; a zero MaxDepth is
// invalid and Validate reports it.
type RenderConfig struct {
	Width           int    `toml:"width"`
	Height          int    `toml:"height"`
	SamplesPerPixel int    `toml:"samples_per_pixel"`
	MaxDepth        int    `toml:"max_depth"`
	Workers         int    `toml:"workers"`
	TileSize        int    `toml:"tile_size"`
	Seed            uint64 `toml:"seed"`
}

// Default returns a reasonable RenderConfig for interactive preview
// renders. Callers building a final render should override SamplesPerPixel
// and MaxDepth explicitly.
func Default() RenderConfig {
	return RenderConfig{
		Width:           800,
		Height:          600,
		SamplesPerPixel: 64,
		MaxDepth:        16,
		Workers:         0, // 0 means "use runtime.NumCPU()"
		TileSize:        32,
		Seed:            1,
	}
}

// Load reads a TOML file at path and overlays it onto Default(), so a
// config file only needs to specify the fields it wants to change.
func Load(path string) (RenderConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return RenderConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return RenderConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the invariants the renderer depends on.
func (c RenderConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("config: width and height must be positive, got %dx%d", c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("config: samples_per_pixel must be positive, got %d", c.SamplesPerPixel)
	case c.MaxDepth <= 0:
		return fmt.Errorf("config: max_depth must be positive, got %d", c.MaxDepth)
	case c.TileSize <= 0:
		return fmt.Errorf("config: tile_size must be positive, got %d", c.TileSize)
	}
	return nil
}
