package shadow

import "strings"

// extensions is the fixed, whitespace-separated advertisement returned by
// GetString(GL_EXTENSIONS): every ARB/EXT feature this layer emulates,
// whether or not the real driver happens to expose the desktop-named
// extension itself.
var extensions = []string{
	"GL_ARB_vertex_buffer_object",
	"GL_ARB_vertex_array_object",
	"GL_ARB_framebuffer_object",
	"GL_ARB_uniform_buffer_object",
	"GL_ARB_explicit_attrib_location",
	"GL_ARB_instanced_arrays",
	"GL_ARB_map_buffer_range",
	"GL_ARB_timer_query",
	"GL_ARB_occlusion_query",
	"GL_EXT_texture_filter_anisotropic",
	"GL_ARB_depth_clamp",
	"GL_ARB_seamless_cube_map",
	"GL_ARB_clip_control",
	"GL_ARB_texture_swizzle",
	"GL_EXT_texture_gather",
	"GL_EXT_tessellation_shader",
	"GL_EXT_geometry_shader",
	"GL_EXT_shader_texture_lod",
	"GL_EXT_gpu_shader5",
	"GL_EXT_texture_cube_map_array",
	"GL_EXT_conservative_depth",
}

// ExtensionsString is the flattened GL_EXTENSIONS answer.
var ExtensionsString = strings.Join(extensions, " ")

const (
	version       = "4.6.0 PrismGL"
	shadingLang   = "4.60 PrismGL"
	vendor        = "PrismGL"
	rendererStub  = "PrismGL"
)

// GetString synthesizes the answer this layer gives for name, one of
// GL_VERSION, GL_SHADING_LANGUAGE_VERSION, GL_VENDOR, GL_RENDERER, or
// GL_EXTENSIONS. driverRenderer is whatever the native driver reported for
// its own GL_RENDERER (possibly empty). The bool return is false for any
// name this layer does not synthesize, meaning the caller should forward
// the query to the real driver.
func GetString(name uint32, driverRenderer string) (string, bool) {
	switch name {
	case glVersion:
		return version, true
	case glShadingLanguageVersion:
		return shadingLang, true
	case glVendor:
		return vendor, true
	case glRenderer:
		if driverRenderer == "" {
			return rendererStub, true
		}
		return rendererStub + " (" + driverRenderer + ")", true
	case glExtensions:
		return ExtensionsString, true
	default:
		return "", false
	}
}

// GetStringi always answers the empty string for GL_EXTENSIONS, per the
// indexed-string query convention: callers that want the full extension
// advertisement should use GetString(GL_EXTENSIONS) instead.
func GetStringi(name uint32, index uint32) (string, bool) {
	if name == glExtensions {
		return "", true
	}
	return "", false
}

// The desktop GL token values glGetString/glGetStringi are keyed on. These
// are stable core-GL enums shared verbatim with ES.
const (
	glVendor                 = 0x1F00
	glRenderer                = 0x1F01
	glVersion                 = 0x1F02
	glExtensions              = 0x1F03
	glShadingLanguageVersion  = 0x8B8C
)
