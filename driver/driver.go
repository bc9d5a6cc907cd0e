// Package driver mediates steps 2 and 3 of the procedure-address resolver's
// lookup order: consulting the platform's eglGetProcAddress equivalent, then
// falling back to direct symbol lookup in the loaded ES driver library and
// a secondary library (on linux: libGLESv2, which serves ES 2.0 through
// 3.2, then the optional ES1 common-profile libGLESv1_CM).
package driver

// NativeDriver is the narrow interface the resolver depends on. Production
// code gets one from Open; tests substitute a fake that serves a handful of
// synthetic symbols without touching a real display or GL library.
type NativeDriver interface {
	// ProcAddress mirrors eglGetProcAddress: it may return 0 for core
	// functions on some drivers even when they exist, which is why step 3
	// exists as a fallback.
	ProcAddress(name string) uintptr

	// Symbol performs a direct symbol lookup against the ES driver
	// library. The implementation Open returns tries the primary handle
	// then the secondary one within this single call, so the caller never
	// retries against the secondary library itself.
	Symbol(name string) uintptr

	// RendererString is whatever GL_RENDERER the real driver reports, used
	// to build the "PrismGL (<driverRenderer>)" string. Empty if unknown.
	RendererString() string

	// Close releases the dlopen'd libraries. Safe to call once at shutdown.
	Close() error
}
