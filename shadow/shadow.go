// Package shadow tracks the process-global state the ES driver has no
// concept of — polygon mode, provoking-vertex convention, clip-control
// origin/depth mode, the desktop-only enable toggles — and intercepts the
// entry points that read or write it, the way the teacher renderer tracks
// its own program/uniform state instead of re-querying the driver for
// values it already set.
package shadow

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"prismgl/core"
	"prismgl/glenum"
	"prismgl/logx"
)

// fpsHistoryDepth is the ring buffer size for recent frame timings.
const fpsHistoryDepth = 60

// State is the process-global shadow. One instance is created by the root
// package at Init and handed to every override that needs it.
type State struct {
	polygonMode     uint32
	provokingVertex uint32
	clipOrigin      uint32
	clipDepthMode   uint32
	depthClamp      bool

	resolutionScale float32

	fpsSamples [fpsHistoryDepth]float32
	fpsCount   int
	fpsCursor  int

	viewport core.Viewport
	surface  core.SurfaceProvider

	boundDrawBuffer uint32
	boundReadBuffer uint32
}

// New returns a State initialized to the fixed-function pipeline's
// documented defaults.
func New() *State {
	return &State{
		polygonMode:     glenum.Fill,
		provokingVertex: glenum.LastVertexConvention,
		clipOrigin:      glenum.LowerLeft,
		clipDepthMode:   glenum.NegativeOneToOne,
		resolutionScale: 1.0,
		boundDrawBuffer: gl.BACK,
		boundReadBuffer: gl.BACK,
	}
}

// desktopOnlyToggles are the Enable/Disable tokens whose ES-driver meaning
// diverges from desktop GL and must never reach the driver unmodified.
var desktopOnlyToggles = map[uint32]bool{
	glenum.DepthClamp:             true,
	glenum.TextureCubeMapSeamless: true,
	glenum.ProgramPointSize:       true,
	glenum.PointSprite:            true,
	glenum.ClipDistance0:          true,
	glenum.ClipDistance1:          true,
	glenum.ClipDistance2:          true,
	glenum.ClipDistance3:          true,
	glenum.Texture1D:              true,
}

// Enable intercepts glEnable. It reports whether it fully handled cap
// (true) or the caller should forward cap to the real driver (false).
func (s *State) Enable(cap uint32) (handled bool) {
	return s.setToggle(cap, true)
}

// Disable intercepts glDisable with the same handled/forward contract as
// Enable.
func (s *State) Disable(cap uint32) (handled bool) {
	return s.setToggle(cap, false)
}

func (s *State) setToggle(cap uint32, enabled bool) (handled bool) {
	if !desktopOnlyToggles[cap] {
		return false
	}
	if cap == glenum.DepthClamp {
		s.depthClamp = enabled
	}
	return true
}

// DepthClampEnabled reports the shadowed DEPTH_CLAMP flag; clamping itself
// is never actually performed, so this is informational only.
func (s *State) DepthClampEnabled() bool {
	return s.depthClamp
}

// PolygonMode intercepts glPolygonMode: it only ever records into the
// shadow, never reaches the driver. GL_LINE is accepted but logs a
// warning since ES line rasterization does not match desktop wide-line
// behavior.
func (s *State) PolygonMode(mode uint32) {
	if mode == glenum.Line {
		logx.Log.Warn("glPolygonMode(GL_LINE) has no ES equivalent; recorded but not rasterized", "mode", mode)
	}
	s.polygonMode = mode
}

// PolygonModeValue returns the shadowed polygon mode for glGetIntegerv's
// GL_POLYGON_MODE query.
func (s *State) PolygonModeValue() uint32 {
	return s.polygonMode
}

// ProvokingVertex intercepts glProvokingVertex. FIRST_VERTEX_CONVENTION
// logs a warning (ES 3.2 has no first-vertex provoking mode on most
// drivers) but is still recorded and accepted.
func (s *State) ProvokingVertex(convention uint32) {
	if convention == glenum.FirstVertexConvention {
		logx.Log.Warn("glProvokingVertex(FIRST_VERTEX_CONVENTION) requested; ES driver support is inconsistent", "convention", convention)
	}
	s.provokingVertex = convention
}

// ProvokingVertexValue returns the shadowed convention for
// glGetIntegerv's GL_PROVOKING_VERTEX query.
func (s *State) ProvokingVertexValue() uint32 {
	return s.provokingVertex
}

// ClipControl records the clip-control origin and depth mode.
func (s *State) ClipControl(origin, depth uint32) {
	s.clipOrigin = origin
	s.clipDepthMode = depth
}

// SetViewport records the viewport dimensions glGetTexImage's
// framebuffer-readback emulation infers width/height from.
func (s *State) SetViewport(v core.Viewport) {
	s.viewport = v
}

// SetSurfaceProvider registers the host's window-system collaborator as a
// fallback source of width/height for glGetTexImage's readback emulation,
// used only until the first glViewport call is observed.
func (s *State) SetSurfaceProvider(sp core.SurfaceProvider) {
	s.surface = sp
}

// viewportOrFallback returns the last-observed viewport, or, if none has
// been observed yet, the surface provider's current framebuffer size.
func (s *State) viewportOrFallback() (width, height int32) {
	if s.viewport.Width > 0 && s.viewport.Height > 0 {
		return s.viewport.Width, s.viewport.Height
	}
	if s.surface != nil {
		w, h := s.surface.FramebufferSize()
		return int32(w), int32(h)
	}
	return 0, 0
}

// SetResolutionScale clamps and records the adaptive-resolution scale.
func (s *State) SetResolutionScale(scale float32) {
	switch {
	case scale < 0.25:
		scale = 0.25
	case scale > 1.0:
		scale = 1.0
	}
	s.resolutionScale = scale
}

// ResolutionScale returns the current adaptive-resolution scale.
func (s *State) ResolutionScale() float32 {
	return s.resolutionScale
}

// RecordFrameTime pushes one frame's duration (in seconds) into the
// 60-sample ring buffer backing the FPS history.
func (s *State) RecordFrameTime(seconds float32) {
	if seconds <= 0 {
		return
	}
	s.fpsSamples[s.fpsCursor] = 1.0 / seconds
	s.fpsCursor = (s.fpsCursor + 1) % fpsHistoryDepth
	if s.fpsCount < fpsHistoryDepth {
		s.fpsCount++
	}
}

// AverageFPS returns the mean of the recorded FPS samples, or 0 if none
// have been recorded yet.
func (s *State) AverageFPS() float32 {
	if s.fpsCount == 0 {
		return 0
	}
	var sum float32
	for i := 0; i < s.fpsCount; i++ {
		sum += s.fpsSamples[i]
	}
	return sum / float32(s.fpsCount)
}
