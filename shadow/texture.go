package shadow

import (
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"prismgl/glenum"
	"prismgl/logx"
)

// drawBufferRemap maps the desktop single-buffer selectors ES's default
// framebuffer doesn't distinguish (there is no separate front buffer on
// most ES-capable displays) onto GL_BACK.
var drawBufferRemap = map[uint32]uint32{
	glenum.Front:     gl.BACK,
	glenum.FrontLeft: gl.BACK,
	glenum.BackLeft:  gl.BACK,
}

// RemapDrawReadBuffer applies the FRONT|FRONT_LEFT|BACK_LEFT -> BACK
// remap glDrawBuffer/glReadBuffer both need; buffers not in the table pass
// through unchanged.
func RemapDrawReadBuffer(buf uint32) uint32 {
	if mapped, ok := drawBufferRemap[buf]; ok {
		return mapped
	}
	return buf
}

// DrawBuffer records and remaps a glDrawBuffer(buf) call. It returns the
// value the caller should actually forward to gl.DrawBuffers.
func (s *State) DrawBuffer(buf uint32) uint32 {
	remapped := RemapDrawReadBuffer(buf)
	s.boundDrawBuffer = remapped
	return remapped
}

// ReadBuffer records and remaps a glReadBuffer(buf) call.
func (s *State) ReadBuffer(buf uint32) uint32 {
	remapped := RemapDrawReadBuffer(buf)
	s.boundReadBuffer = remapped
	return remapped
}

// textureBindingQuery maps a glGetTexImage target to the glGetIntegerv
// query that reports the texture currently bound there.
var textureBindingQuery = map[uint32]uint32{
	gl.TEXTURE_2D:                  gl.TEXTURE_BINDING_2D,
	gl.TEXTURE_CUBE_MAP_POSITIVE_X: gl.TEXTURE_BINDING_CUBE_MAP,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_X: gl.TEXTURE_BINDING_CUBE_MAP,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Y: gl.TEXTURE_BINDING_CUBE_MAP,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_Y: gl.TEXTURE_BINDING_CUBE_MAP,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Z: gl.TEXTURE_BINDING_CUBE_MAP,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_Z: gl.TEXTURE_BINDING_CUBE_MAP,
}

// GetTexImage emulates glGetTexImage, which ES 3.2 dropped entirely: it
// attaches the texture currently bound to target (a 2D texture or one
// cubemap face) at level to a scratch framebuffer's COLOR_ATTACHMENT0 and
// reads it back with glReadPixels, then restores whatever framebuffer was
// previously bound.
//
// Width and height are inferred from the shadow's last-observed viewport
// rather than the texture's actual mip-level dimensions, a known fidelity
// gap documented in the spec's Design Notes: a caller reading back a
// texture larger or smaller than the current viewport gets a wrong-sized
// (or partial) result. Querying GL_TEXTURE_WIDTH/HEIGHT via
// glGetTexLevelParameteriv would close this gap but is not implemented
// here, matching the reference behavior this layer preserves.
func (s *State) GetTexImage(target uint32, level int32, format, pixelType uint32, pixels unsafe.Pointer) {
	bindingQuery, ok := textureBindingQuery[target]
	if !ok {
		logx.Log.Warn("glGetTexImage: unsupported target", "target", target)
		return
	}

	var boundTexture int32
	gl.GetIntegerv(bindingQuery, &boundTexture)
	if boundTexture == 0 {
		return
	}

	var prevFBO int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)

	var fbo uint32
	gl.GenFramebuffers(1, &fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, target, uint32(boundTexture), level)

	width, height := s.viewportOrFallback()
	if width <= 0 || height <= 0 {
		logx.Log.Warn("glGetTexImage: viewport not yet observed, cannot infer readback dimensions", "target", target)
	} else {
		logx.Log.Warn("glGetTexImage: dimensions inferred from viewport, not the texture's actual level size", "target", target, "level", level, "width", width, "height", height)
		gl.ReadPixels(0, 0, width, height, format, pixelType, pixels)
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))
	gl.DeleteFramebuffers(1, &fbo)
}
