// Package prismgl is the desktop-OpenGL-to-ES translation layer's public
// FFI surface: Init/Shutdown/GetProcAddress/Configure, described by role
// only in the spec's External Interfaces section. Everything it does is
// composed from the subpackages beside it (resolver, driver, immediate,
// batch, shadow, shadercache, config). Package shader is not imported
// here: no override passes shader source through the translator. This
// file and its
// siblings (lifecycle.go, overrides.go, log.go) exist only to wire those
// leaf components together the way a host actually calls them.
package prismgl

import (
	"sync"

	"prismgl/batch"
	"prismgl/config"
	"prismgl/driver"
	"prismgl/immediate"
	"prismgl/resolver"
	"prismgl/shadercache"
	"prismgl/shadow"
)

// runtime bundles every process-wide singleton the emulation packages
// need, mirroring the spec's Ownership Summary: one instance each, created
// at Init, torn down at Shutdown.
type runtime struct {
	mu sync.Mutex

	initialized bool

	cfg config.Config

	driver    driver.NativeDriver
	resolver  *resolver.Resolver
	cache     *shadercache.Cache
	immediate *immediate.Engine
	batch     *batch.Queue
	shadow    *shadow.State
}

// state is the single process-wide runtime instance. The spec's Purpose &
// Scope section names this layer as single-context, single-threaded per
// context, which is exactly the assumption a package-level singleton
// encodes: an implementation that needed multi-context support would
// thread a *runtime through every call instead (see the spec's Design
// Notes, "Single-context assumption").
var state = &runtime{}
