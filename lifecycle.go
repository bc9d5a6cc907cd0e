package prismgl

import (
	"prismgl/batch"
	"prismgl/config"
	"prismgl/driver"
	"prismgl/immediate"
	"prismgl/resolver"
	"prismgl/shadercache"
	"prismgl/shadow"
)

// Init opens the native ES driver, loads (or falls back to default)
// configuration from configPath, initializes the on-disk shader cache
// under cacheDir, and populates the procedure-address override table.
// It corresponds to the spec's "init(cacheDirectory) -> success flag",
// extended per SPEC_FULL.md 6.4 with an optional TOML config path; pass
// an empty configPath to use config.Default() unconditionally.
//
// Init is idempotent: calling it again while already initialized is a
// no-op that returns true.
func Init(cacheDir, configPath string) bool {
	state.mu.Lock()
	defer state.mu.Unlock()

	if state.initialized {
		return true
	}

	cfg := config.Default()
	// A Configure call made before Init always leaves a non-zero config
	// (Clamp never yields a zero ResolutionScale); honor it over Default.
	if state.cfg != (config.Config{}) {
		cfg = state.cfg
	}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			Log.Warn("prismgl: failed to load config, using defaults", "path", configPath, "err", err)
		} else {
			cfg = loaded
		}
	}
	state.cfg = cfg

	d, err := driver.Open()
	if err != nil {
		Log.Warn("prismgl: failed to open native driver", "err", err)
		return false
	}
	state.driver = d

	state.resolver = resolver.New(state.driver)
	state.cache = shadercache.New()
	if cfg.ShaderCacheEnabled {
		if err := state.cache.Init(cacheDir); err != nil {
			Log.Warn("prismgl: shader cache init failed, proceeding without caching", "dir", cacheDir, "err", err)
		}
	}
	state.immediate = immediate.New()
	state.batch = batch.New(cfg.DrawCallBatching)
	state.shadow = shadow.New()
	state.shadow.SetResolutionScale(cfg.ResolutionScale)

	registerOverrides(state.resolver)

	state.initialized = true
	return true
}

// Shutdown releases the shader-cache index and the immediate-mode engine's
// GPU buffers and closes the native driver's dlopen'd libraries. Per the
// spec, it "flushes nothing destructive": GL programs the cache knows
// about are left for the context teardown to release.
func Shutdown() {
	state.mu.Lock()
	defer state.mu.Unlock()

	if !state.initialized {
		return
	}
	if state.cache != nil {
		state.cache.Shutdown()
	}
	if state.immediate != nil {
		state.immediate.Destroy()
	}
	if state.driver != nil {
		if err := state.driver.Close(); err != nil {
			Log.Warn("prismgl: error closing native driver", "err", err)
		}
	}
	state.initialized = false
}

// GetProcAddress is the sole means by which a hosted application obtains a
// GL entry point, running the resolver's five-step lookup order. It
// returns 0 before Init has been called.
func GetProcAddress(name string) uintptr {
	state.mu.Lock()
	r := state.resolver
	state.mu.Unlock()

	if r == nil {
		Log.Warn("prismgl: GetProcAddress called before Init", "name", name)
		return 0
	}
	return r.GetProcAddress(name)
}

// Configure updates the six runtime knobs named in the spec's
// configuration setter. It may be called before or after Init; settings
// that affect already-constructed components (draw-call batching, the
// resolution scale) are applied immediately, the rest take effect the
// next time a component consults config.Config.
func Configure(shaderCacheEnabled, drawCallBatching, adaptiveResolution, asyncTextureLoading, vulkanBackend bool, resolutionScale float32) {
	state.mu.Lock()
	defer state.mu.Unlock()

	state.cfg = config.Config{
		ShaderCacheEnabled:  shaderCacheEnabled,
		DrawCallBatching:    drawCallBatching,
		AdaptiveResolution:  adaptiveResolution,
		AsyncTextureLoading: asyncTextureLoading,
		VulkanBackend:       vulkanBackend,
		ResolutionScale:     resolutionScale,
	}.Clamp()

	if state.batch != nil {
		state.batch.SetEnabled(state.cfg.DrawCallBatching)
	}
	if state.shadow != nil {
		state.shadow.SetResolutionScale(state.cfg.ResolutionScale)
	}
}
