// Package resolver implements the procedure-address lookup the rest of the
// emulation layer is built around: given a desktop GL entry point name, find
// the uintptr a hosted application should call, whether that is one of our
// own emulation trampolines or the real ES driver's implementation.
package resolver

import (
	"sync"

	"prismgl/driver"
	"prismgl/logx"
)

// Resolver implements the five-step GetProcAddress order: a static override
// table, the platform's eglGetProcAddress equivalent, direct symbol lookup
// against the primary ES driver library then the secondary library, a
// suffix retry pass over both,
// and finally nil with a logged warning.
type Resolver struct {
	driver driver.NativeDriver

	mu        sync.RWMutex
	overrides map[string]uintptr
}

// New builds a Resolver against a NativeDriver. The override table starts
// empty; callers register emulation entry points with RegisterOverride
// before the first GetProcAddress call reaches them.
func New(d driver.NativeDriver) *Resolver {
	return &Resolver{
		driver:    d,
		overrides: make(map[string]uintptr),
	}
}

// RegisterOverride installs a static override: any GetProcAddress lookup of
// name returns ptr without ever consulting the native driver. The root
// prismgl package calls this once per emulated entry point (immediate
// mode, the batch queue, the state shadow) during Init.
func (r *Resolver) RegisterOverride(name string, ptr uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overrides[name] = ptr
}

// GetProcAddress runs the full five-step resolution order for name.
func (r *Resolver) GetProcAddress(name string) uintptr {
	if ptr, ok := r.lookupOverride(name); ok {
		return ptr
	}
	if ptr := r.driver.ProcAddress(name); ptr != 0 {
		return ptr
	}
	if ptr := r.driver.Symbol(name); ptr != 0 {
		return ptr
	}
	if ptr := r.suffixRetry(name); ptr != 0 {
		return ptr
	}
	logx.Log.Warn("unresolved GL symbol", "name", name)
	return 0
}

func (r *Resolver) lookupOverride(name string) (uintptr, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ptr, ok := r.overrides[name]
	return ptr, ok
}

// suffixRetry implements step 4: desktop extension names are frequently the
// core entry point plus a vendor suffix (or vice versa on an ES driver that
// still exposes the extension form). We try appending each known suffix,
// and, if name already ends with one, stripping it, trying both the
// eglGetProcAddress path and the direct symbol path for each candidate.
func (r *Resolver) suffixRetry(name string) uintptr {
	for _, candidate := range suffixCandidates(name) {
		if ptr := r.driver.ProcAddress(candidate); ptr != 0 {
			return ptr
		}
		if ptr := r.driver.Symbol(candidate); ptr != 0 {
			return ptr
		}
	}
	return 0
}
