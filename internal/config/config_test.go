package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadOverlaysOntoDefault(t *testing.T) {
	path := t.TempDir() + "/render.toml"
	require.NoError(t, os.WriteFile(path, []byte("width = 1920\nheight = 1080\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1920, cfg.Width)
	assert.Equal(t, 1080, cfg.Height)
	assert.Equal(t, Default().SamplesPerPixel, cfg.SamplesPerPixel) // untouched field keeps its default
	assert.Equal(t, Default().MaxDepth, cfg.MaxDepth)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/render.toml")
	assert.Error(t, err)
}

func TestLoadInvalidTOML(t *testing.T) {
	path := t.TempDir() + "/bad.toml"
	require.NoError(t, os.WriteFile(path, []byte("width = ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateRejectsNonPositiveFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *RenderConfig)
	}{
		{"width", func(c *RenderConfig) { c.Width = 0 }},
		{"height", func(c *RenderConfig) { c.Height = -1 }},
		{"samples", func(c *RenderConfig) { c.SamplesPerPixel = 0 }},
		{"maxdepth", func(c *RenderConfig) { c.MaxDepth = 0 }},
		{"tilesize", func(c *RenderConfig) { c.TileSize = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
