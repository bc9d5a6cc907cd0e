package shader

// extensionRewrite is either a direct ES-equivalent pragma name, or, when
// esEquivalent is empty, a note explaining why the feature needs no pragma
// at all under GLSL ES 3.20 (either it is always available, or ES has no
// substitute and the pragma is simply dropped).
type extensionRewrite struct {
	esEquivalent string
	note         string
}

// extensionTable is reproduced from the desktop ARB/EXT pragmas this layer
// is known to see in the wild. Anything not listed here is left untouched,
// per the spec: unknown extensions pass through as-is rather than being
// guessed at.
var extensionTable = map[string]extensionRewrite{
	"GL_ARB_texture_gather":            {esEquivalent: "GL_EXT_texture_gather"},
	"GL_ARB_tessellation_shader":       {esEquivalent: "GL_EXT_tessellation_shader"},
	"GL_ARB_geometry_shader4":          {esEquivalent: "GL_EXT_geometry_shader"},
	"GL_ARB_shader_texture_lod":        {esEquivalent: "GL_EXT_shader_texture_lod"},
	"GL_ARB_gpu_shader5":               {esEquivalent: "GL_EXT_gpu_shader5"},
	"GL_ARB_texture_cube_map_array":    {esEquivalent: "GL_EXT_texture_cube_map_array"},
	"GL_ARB_conservative_depth":        {esEquivalent: "GL_EXT_conservative_depth"},
	"GL_ARB_explicit_attrib_location":  {note: "explicit attribute locations are always available in GLSL ES 3.20"},
	"GL_ARB_separate_shader_objects":   {note: "separable programs are native in GLSL ES 3.10+"},
	"GL_ARB_shading_language_420pack":  {note: "implicit binding/layout qualifiers are native in GLSL ES 3.20"},
	"GL_ARB_shader_storage_buffer_object": {note: "buffer blocks are native in GLSL ES 3.10+"},
	"GL_ARB_compute_shader":            {note: "compute shaders are native in GLSL ES 3.10+"},
	"GL_ARB_texture_multisample":       {note: "sampler2DMS is native in GLSL ES 3.10+"},
	"GL_ARB_shader_bit_encoding":       {note: "floatBitsToInt/intBitsToFloat are always available in GLSL ES 3.00+"},
	"GL_ARB_shader_draw_parameters":    {note: "no GLSL ES equivalent; gl_DrawID is unavailable"},
	"GL_ARB_explicit_uniform_location": {note: "emulated"},
	"GL_ARB_uniform_buffer_object":     {note: "native in ES 3.x"},
	"GL_ARB_enhanced_layouts":          {note: "partially emulated"},
	"GL_ARB_shader_image_load_store":   {note: "native in ES 3.1+"},
	"GL_ARB_draw_instanced":            {note: "native in ES 3.0+"},
	"GL_ARB_depth_clamp":               {note: "emulated"},
	"GL_ARB_clip_control":              {note: "emulated"},
	"GL_ARB_seamless_cube_map":         {note: "always on in ES"},
}
