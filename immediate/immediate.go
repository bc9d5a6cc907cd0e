// Package immediate emulates the legacy glBegin/glVertex*/glEnd drawing
// model, which ES has never supported, by buffering every vertex emitted
// between a Begin and the matching End into a VAO/VBO (and, for primitive
// modes ES has no direct equivalent for, a synthesized index buffer) and
// issuing a single DrawArrays or DrawElements call from End.
//
// The upload and draw mechanics mirror the teacher engine's GPUMesh upload
// path (lazy VAO/VBO/IBO creation, attribute offsets taken with
// unsafe.Offsetof, one BufferData per End); the difference is that this
// package's "mesh" is whatever the host accumulated since the last Begin,
// not a persistent scene asset.
package immediate

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"prismgl/core"
	"prismgl/glenum"
	math "prismgl/math"
)

// maxVertices bounds a single Begin/End span; Vertex calls beyond this are
// dropped (and logged by the caller) rather than growing the buffer
// unboundedly, mirroring the spec's immediate-mode engine cap.
const maxVertices = 65536

// Vertex is one emitted glVertex* call, carrying whatever sticky
// color/texcoord/normal state was current at the time.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	TexCoord math.Vec2
	Color    core.Color
}

// Engine tracks one Begin/End span and owns the GPU buffers it uploads to.
// It is not safe for concurrent use: like the fixed-function pipeline it
// emulates, it is only ever driven from the single thread that owns the GL
// context.
type Engine struct {
	recording bool
	mode      uint32
	vertices  []Vertex

	stickyColor    core.Color
	stickyTexCoord math.Vec2
	stickyNormal   math.Vec3

	vao, vbo, ibo uint32
	buffersReady  bool
}

// New returns an Engine with its sticky state at the fixed-function
// pipeline's documented defaults: opaque white, no texture coordinate, and
// a normal pointing along +Z.
func New() *Engine {
	return &Engine{
		stickyColor:  core.ColorWhite,
		stickyNormal: math.Vec3{X: 0, Y: 0, Z: 1},
	}
}

// Begin starts recording vertices for mode (one of GL_POINTS, GL_LINES,
// GL_LINE_STRIP, GL_LINE_LOOP, GL_TRIANGLES, GL_TRIANGLE_STRIP,
// GL_TRIANGLE_FAN, GL_QUADS, GL_QUAD_STRIP, or GL_POLYGON). A Begin issued
// while already recording is a no-op: the fixed-function pipeline treats
// nested Begin as an invalid-operation error, and so do we, by simply
// ignoring it.
func (e *Engine) Begin(mode uint32) {
	if e.recording {
		return
	}
	e.recording = true
	e.mode = mode
	e.vertices = e.vertices[:0]
}

// Color4f updates the sticky color state subsequent vertices will carry.
func (e *Engine) Color4f(r, g, b, a float32) {
	e.stickyColor = core.Color{R: r, G: g, B: b, A: a}
}

// TexCoord2f updates the sticky texture coordinate state.
func (e *Engine) TexCoord2f(s, t float32) {
	e.stickyTexCoord = math.Vec2{X: s, Y: t}
}

// Normal3f updates the sticky normal state.
func (e *Engine) Normal3f(x, y, z float32) {
	e.stickyNormal = math.Vec3{X: x, Y: y, Z: z}
}

// Vertex3f appends one vertex carrying the current sticky state. Once
// maxVertices has been reached, further vertices in the same span are
// silently dropped.
func (e *Engine) Vertex3f(x, y, z float32) {
	if !e.recording || len(e.vertices) >= maxVertices {
		return
	}
	e.vertices = append(e.vertices, Vertex{
		Position: math.Vec3{X: x, Y: y, Z: z},
		Normal:   e.stickyNormal,
		TexCoord: e.stickyTexCoord,
		Color:    e.stickyColor,
	})
}

// Overflowed reports whether the current span has reached maxVertices, the
// point past which further vertices are dropped; the root package logs this
// once per span via logx. A span of exactly maxVertices vertices also
// reports true, although nothing was dropped from it.
func (e *Engine) Overflowed() bool {
	return len(e.vertices) >= maxVertices
}

// End closes the current span, uploads the accumulated vertices, and
// issues the draw call that realizes them. It returns an error only for
// programmer misuse (End without a matching Begin); GL-level failures are
// not possible here since no shader compilation or linking happens in this
// package.
func (e *Engine) End() error {
	if !e.recording {
		return fmt.Errorf("immediate: End called without a matching Begin")
	}
	e.recording = false
	if len(e.vertices) == 0 {
		return nil
	}

	e.ensureBuffers()
	e.upload()

	switch e.mode {
	case glenum.Quads:
		e.drawQuads()
	case glenum.QuadStrip:
		gl.BindVertexArray(e.vao)
		gl.DrawArrays(gl.TRIANGLE_STRIP, 0, int32(len(e.vertices)))
		gl.BindVertexArray(0)
	case glenum.Polygon:
		gl.BindVertexArray(e.vao)
		gl.DrawArrays(gl.TRIANGLE_FAN, 0, int32(len(e.vertices)))
		gl.BindVertexArray(0)
	default:
		gl.BindVertexArray(e.vao)
		gl.DrawArrays(e.mode, 0, int32(len(e.vertices)))
		gl.BindVertexArray(0)
	}

	gl.DisableVertexAttribArray(attribPosition)
	gl.DisableVertexAttribArray(attribColor)
	gl.DisableVertexAttribArray(attribTexCoord)
	gl.DisableVertexAttribArray(attribNormal)
	gl.BindVertexArray(0)
	return nil
}

// synthesizeQuadIndices builds the 0,1,2,0,2,3 triangle fan per quad that
// GL_QUADS needs once ES has no direct primitive for it. A trailing partial
// quad (vertexCount not a multiple of 4) is dropped, matching desktop GL's
// own behavior of ignoring incomplete quads. Indices are uint16, matching
// the maxVertices cap and the GL_UNSIGNED_SHORT draw this layer issues.
func synthesizeQuadIndices(vertexCount int) []uint16 {
	quadCount := vertexCount / 4
	indices := make([]uint16, 0, quadCount*6)
	for q := 0; q < quadCount; q++ {
		base := uint16(q * 4)
		indices = append(indices,
			base+0, base+1, base+2,
			base+0, base+2, base+3,
		)
	}
	return indices
}

// drawQuads synthesizes two triangles per quad since ES dropped GL_QUADS
// entirely, and draws the result with DrawElements against the index
// buffer.
func (e *Engine) drawQuads() {
	indices := synthesizeQuadIndices(len(e.vertices))

	gl.BindVertexArray(e.vao)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, e.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, gl.Ptr(indices), gl.DYNAMIC_DRAW)
	gl.DrawElements(gl.TRIANGLES, int32(len(indices)), gl.UNSIGNED_SHORT, nil)
	gl.BindVertexArray(0)
}

func (e *Engine) ensureBuffers() {
	if e.buffersReady {
		return
	}
	gl.GenVertexArrays(1, &e.vao)
	gl.GenBuffers(1, &e.vbo)
	gl.GenBuffers(1, &e.ibo)
	e.buffersReady = true
}

// Fixed attribute locations the immediate-mode vertex layout is bound to:
// position=0, color=1, texCoord=2, normal=3.
const (
	attribPosition = 0
	attribColor    = 1
	attribTexCoord = 2
	attribNormal   = 3
)

func (e *Engine) upload() {
	stride := int32(unsafe.Sizeof(Vertex{}))
	var v Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	normOff := int(unsafe.Offsetof(v.Normal))
	uvOff := int(unsafe.Offsetof(v.TexCoord))
	colorOff := int(unsafe.Offsetof(v.Color))

	gl.BindVertexArray(e.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, e.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(e.vertices)*int(stride), gl.Ptr(e.vertices), gl.DYNAMIC_DRAW)

	gl.EnableVertexAttribArray(attribPosition)
	gl.VertexAttribPointer(attribPosition, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))
	gl.EnableVertexAttribArray(attribColor)
	gl.VertexAttribPointer(attribColor, 4, gl.FLOAT, false, stride, gl.PtrOffset(colorOff))
	gl.EnableVertexAttribArray(attribTexCoord)
	gl.VertexAttribPointer(attribTexCoord, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))
	gl.EnableVertexAttribArray(attribNormal)
	gl.VertexAttribPointer(attribNormal, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))
	gl.BindVertexArray(0)
}

// Destroy releases the GPU buffers. Safe to call on an Engine that never
// recorded a span.
func (e *Engine) Destroy() {
	if !e.buffersReady {
		return
	}
	gl.DeleteVertexArrays(1, &e.vao)
	gl.DeleteBuffers(1, &e.vbo)
	gl.DeleteBuffers(1, &e.ibo)
	e.buffersReady = false
}
