package core

// Color is a normalized RGBA color, shared by the immediate-mode engine's
// sticky color state and anything else that needs to pass a color by value.
type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// Viewport mirrors the four integers glViewport records. The state shadow
// keeps the last one it observed so glGetTexImage can infer a width/height
// for its framebuffer-readback emulation (see shadow.State.GetTexImage).
type Viewport struct {
	X, Y, Width, Height int32
}
