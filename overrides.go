package prismgl

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"prismgl/core"
	"prismgl/glenum"
	"prismgl/resolver"
	"prismgl/shadow"
)

// register mints a C-ABI trampoline for fn via purego.NewCallback and
// installs it as the static override for name. Trampolines are minted
// once here, at Init, never per-call — see SPEC_FULL.md's note on the
// native driver boundary.
func register(r *resolver.Resolver, name string, fn interface{}) {
	r.RegisterOverride(name, purego.NewCallback(fn))
}

// registerOverrides populates every entry point resolver.FloorOverrides
// promises, binding the immediate-mode engine, batch queue, and state
// shadow singletons in state to the desktop GL prototypes a hosted
// application expects.
func registerOverrides(r *resolver.Resolver) {
	registerImmediateMode(r)
	registerFixedFunctionNoOps(r)
	registerStateShadow(r)
	registerQueryObjects(r)
	registerDrawBatching(r)
}

// --- immediate mode -------------------------------------------------

func registerImmediateMode(r *resolver.Resolver) {
	e := state.immediate

	register(r, "glBegin", func(mode uint32) { e.Begin(mode) })
	register(r, "glEnd", func() {
		if err := e.End(); err != nil {
			Log.Warn("prismgl: glEnd", "err", err)
		}
		if e.Overflowed() {
			Log.Warn("prismgl: immediate-mode span exceeded 65536 vertices; excess vertices dropped")
		}
	})

	// glVertex2* writes z=0, per the spec's immediate-mode edge cases.
	register(r, "glVertex2f", func(x, y float32) { e.Vertex3f(x, y, 0) })
	register(r, "glVertex3f", func(x, y, z float32) { e.Vertex3f(x, y, z) })
	register(r, "glVertex4f", func(x, y, z, w float32) { e.Vertex3f(x, y, z) })
	register(r, "glVertex2fv", func(v *float32) {
		s := unsafe.Slice(v, 2)
		e.Vertex3f(s[0], s[1], 0)
	})
	register(r, "glVertex3fv", func(v *float32) {
		s := unsafe.Slice(v, 3)
		e.Vertex3f(s[0], s[1], s[2])
	})
	register(r, "glVertex4fv", func(v *float32) {
		s := unsafe.Slice(v, 4)
		e.Vertex3f(s[0], s[1], s[2])
	})
	// Double-precision variants downcast to float32 on emission.
	register(r, "glVertex3d", func(x, y, z float64) {
		e.Vertex3f(float32(x), float32(y), float32(z))
	})
	register(r, "glVertex3dv", func(v *float64) {
		s := unsafe.Slice(v, 3)
		e.Vertex3f(float32(s[0]), float32(s[1]), float32(s[2]))
	})

	register(r, "glColor3f", func(rr, g, b float32) { e.Color4f(rr, g, b, 1) })
	register(r, "glColor4f", func(rr, g, b, a float32) { e.Color4f(rr, g, b, a) })
	register(r, "glColor3fv", func(v *float32) {
		s := unsafe.Slice(v, 3)
		e.Color4f(s[0], s[1], s[2], 1)
	})
	register(r, "glColor4fv", func(v *float32) {
		s := unsafe.Slice(v, 4)
		e.Color4f(s[0], s[1], s[2], s[3])
	})
	// ub colors divide by 255, per the spec's immediate-mode edge cases.
	register(r, "glColor3ub", func(rr, g, b uint8) {
		e.Color4f(ubToFloat(rr), ubToFloat(g), ubToFloat(b), 1)
	})
	register(r, "glColor4ub", func(rr, g, b, a uint8) {
		e.Color4f(ubToFloat(rr), ubToFloat(g), ubToFloat(b), ubToFloat(a))
	})
	register(r, "glColor4ubv", func(v *uint8) {
		s := unsafe.Slice(v, 4)
		e.Color4f(ubToFloat(s[0]), ubToFloat(s[1]), ubToFloat(s[2]), ubToFloat(s[3]))
	})
	register(r, "glColor4d", func(rr, g, b, a float64) {
		e.Color4f(float32(rr), float32(g), float32(b), float32(a))
	})
	register(r, "glColor4dv", func(v *float64) {
		s := unsafe.Slice(v, 4)
		e.Color4f(float32(s[0]), float32(s[1]), float32(s[2]), float32(s[3]))
	})

	register(r, "glTexCoord2f", func(s, t float32) { e.TexCoord2f(s, t) })
	register(r, "glTexCoord2fv", func(v *float32) {
		s := unsafe.Slice(v, 2)
		e.TexCoord2f(s[0], s[1])
	})

	register(r, "glNormal3f", func(x, y, z float32) { e.Normal3f(x, y, z) })
	register(r, "glNormal3fv", func(v *float32) {
		s := unsafe.Slice(v, 3)
		e.Normal3f(s[0], s[1], s[2])
	})
	register(r, "glNormal3d", func(x, y, z float64) {
		e.Normal3f(float32(x), float32(y), float32(z))
	})
}

// ubToFloat converts an unsigned byte color channel to the normalized
// [0,1] float range sticky color state is stored in.
func ubToFloat(v uint8) float32 {
	return float32(v) / 255.0
}

// --- fixed-function pipeline no-ops ----------------------------------

// registerFixedFunctionNoOps wires the compatibility-profile matrix stack,
// client-state, and attribute-stack entry points to no-ops: the spec
// stubs the whole fixed-function pipeline out, on the assumption that a
// caller reaching this layer drives its vertex data through buffers, not
// glPushMatrix/glEnableClientState.
func registerFixedFunctionNoOps(r *resolver.Resolver) {
	register(r, "glMatrixMode", func(mode uint32) {})
	register(r, "glLoadIdentity", func() {})
	register(r, "glLoadMatrixf", func(m *float32) {})
	register(r, "glMultMatrixf", func(m *float32) {})
	register(r, "glPushMatrix", func() {})
	register(r, "glPopMatrix", func() {})
	register(r, "glTranslatef", func(x, y, z float32) {})
	register(r, "glRotatef", func(angle, x, y, z float32) {})
	register(r, "glScalef", func(x, y, z float32) {})
	register(r, "glFrustum", func(l, rr, b, t, n, f float64) {})
	register(r, "glOrtho", func(l, rr, b, t, n, f float64) {})
	register(r, "glEnableClientState", func(cap uint32) {})
	register(r, "glDisableClientState", func(cap uint32) {})
	register(r, "glPushAttrib", func(mask uint32) {})
	register(r, "glPopAttrib", func() {})
	register(r, "glPushClientAttrib", func(mask uint32) {})
	register(r, "glPopClientAttrib", func() {})
	register(r, "glLineWidth", func(width float32) {})
	register(r, "glPointSize", func(size float32) {})
	register(r, "glLogicOp", func(opcode uint32) {})
	register(r, "glClampColor", func(target, clamp uint32) {})
	register(r, "glShadeModel", func(mode uint32) {})
	register(r, "glAlphaFunc", func(fn uint32, ref float32) {})
}

// --- state shadow -----------------------------------------------------

func registerStateShadow(r *resolver.Resolver) {
	s := state.shadow

	register(r, "glViewport", func(x, y, width, height int32) {
		s.SetViewport(core.Viewport{X: x, Y: y, Width: width, Height: height})
		gl.Viewport(x, y, width, height)
	})
	register(r, "glPolygonMode", func(face, mode uint32) { s.PolygonMode(mode) })
	register(r, "glProvokingVertex", func(convention uint32) { s.ProvokingVertex(convention) })
	// ARB_clip_control postdates the GL 4.1 core profile this layer's real
	// GL calls are bound against; ES drivers that expose EXT_clip_control
	// would need a direct extension-proc lookup to forward this, which is
	// out of scope here, so glClipControl is shadow-only.
	register(r, "glClipControl", func(origin, depth uint32) {
		s.ClipControl(origin, depth)
	})

	register(r, "glEnable", func(cap uint32) {
		if !s.Enable(cap) {
			gl.Enable(cap)
		}
	})
	register(r, "glDisable", func(cap uint32) {
		if !s.Disable(cap) {
			gl.Disable(cap)
		}
	})

	register(r, "glGetIntegerv", func(pname uint32, params *int32) {
		switch pname {
		case glenum.MaxClipDistances:
			*params = 8
		case glenum.PolygonModeToken:
			*params = int32(s.PolygonModeValue())
		case glenum.ProvokingVertex:
			*params = int32(s.ProvokingVertexValue())
		default:
			gl.GetIntegerv(pname, params)
		}
	})
	register(r, "glGetFloatv", func(pname uint32, params *float32) {
		gl.GetFloatv(pname, params)
	})
	register(r, "glGetBooleanv", func(pname uint32, params *bool) {
		gl.GetBooleanv(pname, params)
	})

	register(r, "glGetString", func(name uint32) uintptr {
		if answer, ok := shadow.GetString(name, driverRendererString()); ok {
			return cStringPtr(answer)
		}
		return uintptr(unsafe.Pointer(gl.GetString(name)))
	})
	register(r, "glGetStringi", func(name, index uint32) uintptr {
		if answer, ok := shadow.GetStringi(name, index); ok {
			return cStringPtr(answer)
		}
		return uintptr(unsafe.Pointer(gl.GetStringi(name, index)))
	})

	register(r, "glTexImage1D", func(target uint32, level, internalformat int32, width, border int32, format, pixelType uint32, pixels unsafe.Pointer) {
		gl.TexImage2D(target, level, internalformat, width, 1, border, format, pixelType, pixels)
	})
	register(r, "glGetTexImage", func(target uint32, level int32, format, pixelType uint32, pixels unsafe.Pointer) {
		s.GetTexImage(target, level, format, pixelType, pixels)
	})

	register(r, "glDrawBuffer", func(buf uint32) {
		remapped := s.DrawBuffer(buf)
		gl.DrawBuffers(1, &remapped)
	})
	register(r, "glReadBuffer", func(buf uint32) {
		gl.ReadBuffer(s.ReadBuffer(buf))
	})
}

// stringPtrCache pins the byte buffers backing glGetString/glGetStringi
// answers so the returned C string pointer stays valid for the process
// lifetime, the same way a real driver's static string tables would. The
// cache holds the []byte itself, not just its address: a uintptr is opaque
// to the garbage collector, so a map keyed or valued by uintptr alone does
// not keep the backing array alive once cStringPtr returns.
var (
	stringPtrCacheMu sync.Mutex
	stringPtrCache   = map[string][]byte{}
)

// cStringPtr returns a stable pointer to a NUL-terminated copy of s,
// allocating it once per distinct string and reusing it thereafter.
func cStringPtr(s string) uintptr {
	stringPtrCacheMu.Lock()
	defer stringPtrCacheMu.Unlock()

	buf, ok := stringPtrCache[s]
	if !ok {
		buf = make([]byte, len(s)+1)
		copy(buf, s)
		stringPtrCache[s] = buf
	}
	return uintptr(unsafe.Pointer(&buf[0]))
}

// driverRendererString returns whatever GL_RENDERER the native driver
// reported at Open time, or "" if unknown; shadow.GetString uses it to
// build the "PrismGL (<driverRenderer>)" answer.
func driverRendererString() string {
	if state.driver == nil {
		return ""
	}
	return state.driver.RendererString()
}

// --- query objects ------------------------------------------------------

func registerQueryObjects(r *resolver.Resolver) {
	register(r, "glGenQueries", func(n int32, ids *uint32) { gl.GenQueries(n, ids) })
	register(r, "glDeleteQueries", func(n int32, ids *uint32) { gl.DeleteQueries(n, ids) })

	register(r, "glBeginQuery", func(target, id uint32) {
		gl.BeginQuery(shadow.RemapQueryTarget(target), id)
	})
	register(r, "glEndQuery", func(target uint32) {
		gl.EndQuery(shadow.RemapQueryTarget(target))
	})

	register(r, "glGetQueryObjectuiv", func(id, pname uint32, params *uint32) {
		if pname == glenum.QueryResultNoWait {
			*params = uint32(shadow.GetQueryObjectNoWait(id))
			return
		}
		gl.GetQueryObjectuiv(id, pname, params)
	})
	register(r, "glGetQueryObjectui64v", func(id, pname uint32, params *uint64) {
		if pname == glenum.QueryResultNoWait {
			*params = shadow.GetQueryObjectNoWait(id)
			return
		}
		gl.GetQueryObjectui64v(id, pname, params)
	})
	register(r, "glQueryCounter", func(id, target uint32) {
		if target == glenum.Timestamp {
			shadow.QueryCounterTimestamp(id)
			return
		}
		gl.QueryCounter(id, target)
	})
}

// --- draw-call batching -------------------------------------------------

func registerDrawBatching(r *resolver.Resolver) {
	register(r, "glDrawArrays", func(mode uint32, first, count int32) {
		state.batch.Push(mode, first, count)
	})
}
