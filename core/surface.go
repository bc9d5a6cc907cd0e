package core

// SurfaceProvider is the window-system/context-creation collaborator this
// layer depends on but does not implement (see the Purpose & Scope
// discussion of out-of-scope components). A host embeds prismgl by handing
// it a context that is already current on the calling thread; prismgl never
// creates, resizes, or destroys a surface itself.
//
// cmd/demo implements this with go-gl/glfw, the same window library the
// original render-engine teacher used for its own demos.
type SurfaceProvider interface {
	// FramebufferSize returns the current drawable size in pixels. The
	// state shadow uses it only as a fallback when glViewport has not
	// yet been observed.
	FramebufferSize() (width, height int)

	// MakeCurrent binds the GL/ES context to the calling OS thread. A host
	// must call it before touching any pointer obtained from GetProcAddress.
	MakeCurrent() error
}
