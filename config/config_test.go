package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.True(cfg.ShaderCacheEnabled)
	assert.True(cfg.DrawCallBatching)
	assert.False(cfg.AdaptiveResolution)
	assert.Equal(float32(1.0), cfg.ResolutionScale)
}

func TestClamp(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		in, want float32
	}{
		{0, 1.0},
		{0.1, 0.25},
		{0.5, 0.5},
		{2.0, 1.0},
	}
	for _, c := range cases {
		cfg := Config{ResolutionScale: c.in}.Clamp()
		assert.Equal(c.want, cfg.ResolutionScale)
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.NoError(err)
	assert.Equal(Default(), cfg)
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "prismgl.toml")
	require.NoError(os.WriteFile(path, []byte(`
ResolutionScale = 0.5
VulkanBackend = true
`), 0644))

	cfg, err := Load(path)
	require.NoError(err)
	assert.Equal(float32(0.5), cfg.ResolutionScale)
	assert.True(cfg.VulkanBackend)
	// Untouched fields keep their defaults.
	assert.True(cfg.ShaderCacheEnabled)
	assert.True(cfg.AsyncTextureLoading)
}
