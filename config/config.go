// Package config loads and validates the six knobs the hosted application
// can hand to prismgl at Init time, either programmatically or from a TOML
// file shipped next to the binary.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the tunable surface named in the spec's configuration setter.
type Config struct {
	ShaderCacheEnabled  bool
	DrawCallBatching    bool
	AdaptiveResolution  bool
	AsyncTextureLoading bool
	VulkanBackend       bool
	ResolutionScale     float32
}

const (
	minResolutionScale = 0.25
	maxResolutionScale = 1.0
)

// Default returns the configuration prismgl.Init falls back to when no
// TOML file is present and the host has not called Configure yet.
func Default() Config {
	return Config{
		ShaderCacheEnabled:  true,
		DrawCallBatching:    true,
		AdaptiveResolution:  false,
		AsyncTextureLoading: true,
		VulkanBackend:       false,
		ResolutionScale:     1.0,
	}
}

// Clamp forces ResolutionScale into the [0.25, 1.0] range the state shadow
// requires, per the spec's StateShadow invariant.
func (c Config) Clamp() Config {
	switch {
	case c.ResolutionScale == 0:
		c.ResolutionScale = maxResolutionScale
	case c.ResolutionScale < minResolutionScale:
		c.ResolutionScale = minResolutionScale
	case c.ResolutionScale > maxResolutionScale:
		c.ResolutionScale = maxResolutionScale
	}
	return c
}

// Load decodes a TOML document at path into a Config seeded with Default,
// so a file that only overrides one field leaves the rest at their
// defaults. A missing file is not an error: the caller gets Default back.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg.Clamp(), nil
}
