// Command demo is a minimal hosted-application stand-in: it opens a
// window, brings up a GL context the same way the teacher engine's own
// core.Window does, then drives prismgl exactly the way a real game
// would — one glGetProcAddress call per entry point it needs, then
// straight calls through the returned pointers every frame. It is not
// part of the core and is not a conformance harness; it exists so a
// reader can see the FFI contract in §6 actually run.
package main

import (
	"log"
	"os"
	"path/filepath"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"prismgl"
	"prismgl/core"
)

func init() {
	runtime.LockOSThread()
}

// glfwSurface adapts a *glfw.Window to core.SurfaceProvider, the one
// window-system collaborator this layer names but does not implement.
type glfwSurface struct {
	window *glfw.Window
}

func (s glfwSurface) FramebufferSize() (int, int) {
	return s.window.GetFramebufferSize()
}

func (s glfwSurface) MakeCurrent() error {
	s.window.MakeContextCurrent()
	return nil
}

var _ core.SurfaceProvider = glfwSurface{}

// bytePtrToString reads a NUL-terminated C string starting at p.
func bytePtrToString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(uintptr(unsafe.Pointer(p)) + uintptr(n))) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// procTable is every entry point this demo drives, all obtained through
// prismgl.GetProcAddress rather than linked against directly — the same
// contract the spec's inbound FFI describes.
type procTable struct {
	begin     func(mode uint32)
	end       func()
	vertex3f  func(x, y, z float32)
	color4f   func(r, g, b, a float32)
	getString func(name uint32) uintptr
}

func bindProcTable() procTable {
	var t procTable
	purego.RegisterFunc(&t.begin, prismgl.GetProcAddress("glBegin"))
	purego.RegisterFunc(&t.end, prismgl.GetProcAddress("glEnd"))
	purego.RegisterFunc(&t.vertex3f, prismgl.GetProcAddress("glVertex3f"))
	purego.RegisterFunc(&t.color4f, prismgl.GetProcAddress("glColor4f"))
	purego.RegisterFunc(&t.getString, prismgl.GetProcAddress("glGetString"))
	return t
}

func main() {
	if err := glfw.Init(); err != nil {
		log.Fatalf("demo: glfw init: %v", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextCreationAPI, glfw.EGLContextAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)

	window, err := glfw.CreateWindow(1280, 720, "prismgl demo", nil, nil)
	if err != nil {
		log.Fatalf("demo: create window: %v", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		log.Fatalf("demo: gl init: %v", err)
	}

	cacheDir := filepath.Join(os.TempDir(), "prismgl-demo-cache")
	if !prismgl.Init(cacheDir, "") {
		log.Fatalf("demo: prismgl init failed")
	}
	defer prismgl.Shutdown()
	prismgl.SetSurfaceProvider(glfwSurface{window})

	proc := bindProcTable()
	versionPtr := proc.getString(0x1F02) // GL_VERSION
	log.Printf("demo: driver reports %s", bytePtrToString((*byte)(unsafe.Pointer(versionPtr))))

	for !window.ShouldClose() {
		gl.ClearColor(0.05, 0.05, 0.08, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		proc.begin(0x0004) // GL_TRIANGLES
		proc.color4f(1, 0, 0, 1)
		proc.vertex3f(-0.5, -0.5, 0)
		proc.color4f(0, 1, 0, 1)
		proc.vertex3f(0.5, -0.5, 0)
		proc.color4f(0, 0, 1, 1)
		proc.vertex3f(0, 0.5, 0)
		proc.end()

		window.SwapBuffers()
		glfw.PollEvents()
	}
}
