package prismgl

import "prismgl/core"

// SetSurfaceProvider registers the host's window-system collaborator as a
// fallback source of framebuffer dimensions for glGetTexImage's readback
// emulation (see core.SurfaceProvider), used only until the hosted
// application's first glViewport call. It is optional: a host that never
// calls it just gets the "viewport not yet observed" warning until its
// first glViewport.
func SetSurfaceProvider(sp core.SurfaceProvider) {
	state.mu.Lock()
	defer state.mu.Unlock()
	if state.shadow != nil {
		state.shadow.SetSurfaceProvider(sp)
	}
}
