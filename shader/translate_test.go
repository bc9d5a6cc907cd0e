package shader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateEmptySourceFails(t *testing.T) {
	r := Translate("", Fragment)
	assert.False(t, r.Success)
	assert.NotEmpty(t, r.Error)
}

func TestTranslateOversizeSourceFails(t *testing.T) {
	huge := strings.Repeat("a", maxSourceBytes+1)
	r := Translate(huge, Fragment)
	assert.False(t, r.Success)
}

func TestTranslateAlreadyESIsIdentity(t *testing.T) {
	src := "#version 320 es\nvoid main() {}\n"
	r := Translate(src, Fragment)
	require.True(t, r.Success)
	assert.Equal(t, src, r.Source)
	assert.Equal(t, 320, r.OriginalVersion)
	assert.Equal(t, 320, r.TargetVersion)
}

func TestTranslateRewritesVersionDirective(t *testing.T) {
	src := "#version 330 core\nvoid main() {}\n"
	r := Translate(src, Vertex)
	require.True(t, r.Success)
	assert.Equal(t, 330, r.OriginalVersion)
	assert.True(t, strings.HasPrefix(r.Source, "#version 320 es\n"))
}

func TestTranslateInsertsVersionWhenMissing(t *testing.T) {
	src := "void main() {}\n"
	r := Translate(src, Fragment)
	require.True(t, r.Success)
	assert.Equal(t, 110, r.OriginalVersion)
	assert.True(t, strings.HasPrefix(r.Source, "#version 320 es\n"))
}

func TestTranslateInsertsPrecisionPrelude(t *testing.T) {
	r := Translate("#version 150\nvoid main() {}\n", Fragment)
	require.True(t, r.Success)
	assert.Contains(t, r.Source, "precision highp float;")
	assert.Contains(t, r.Source, "precision highp sampler2D;")
}

func TestTranslateVertexPreludeOmitsSamplers(t *testing.T) {
	r := Translate("#version 150\nvoid main() {}\n", Vertex)
	require.True(t, r.Success)
	assert.Contains(t, r.Source, "precision highp float;")
	assert.NotContains(t, r.Source, "precision highp sampler2D;")
}

func TestTranslateRewritesKnownExtension(t *testing.T) {
	src := "#version 330\n#extension GL_ARB_texture_gather : enable\nvoid main() {}\n"
	r := Translate(src, Fragment)
	require.True(t, r.Success)
	assert.Contains(t, r.Source, "#extension GL_EXT_texture_gather : enable")
}

func TestTranslateDropsNoOpExtension(t *testing.T) {
	src := "#version 330\n#extension GL_ARB_compute_shader : require\nvoid main() {}\n"
	r := Translate(src, Fragment)
	require.True(t, r.Success)
	assert.NotContains(t, r.Source, "#extension GL_ARB_compute_shader")
	assert.Contains(t, r.Source, "GL_ARB_compute_shader removed")
}

func TestTranslateLeavesUnknownExtensionAlone(t *testing.T) {
	src := "#version 330\n#extension GL_FOO_made_up : enable\nvoid main() {}\n"
	r := Translate(src, Fragment)
	require.True(t, r.Success)
	assert.Contains(t, r.Source, "#extension GL_FOO_made_up : enable")
}

func TestTranslateRewritesSampler1D(t *testing.T) {
	src := "#version 150\nuniform sampler1D tex;\nvoid main() {}\n"
	r := Translate(src, Fragment)
	require.True(t, r.Success)
	assert.Contains(t, r.Source, "uniform sampler2D tex;")
}

func TestTranslateRewritesLegacyBuiltins(t *testing.T) {
	src := "#version 120\nvarying vec2 uv;\nuniform sampler2D tex;\nvoid main() { gl_FragColor = texture2D(tex, uv); }\n"
	r := Translate(src, Fragment)
	require.True(t, r.Success)
	assert.Contains(t, r.Source, "texture(tex, uv)")
	assert.Contains(t, r.Source, "in vec2 uv;")
	assert.Contains(t, r.Source, "out vec4 prismgl_FragColor;")
	assert.Contains(t, r.Source, "prismgl_FragColor = texture(tex, uv);")
	assert.NotRegexp(t, `\bgl_FragColor\b`, r.Source)
}

func TestTranslateVertexLegacyAttributeRewrite(t *testing.T) {
	src := "#version 110\nattribute vec3 position;\nvarying vec2 uv;\nvoid main() { gl_Position = vec4(position, 1.0); }\n"
	r := Translate(src, Vertex)
	require.True(t, r.Success)
	assert.Contains(t, r.Source, "in vec3 position;")
	assert.Contains(t, r.Source, "out vec2 uv;")
}

func TestTranslateDoesNotRewriteIOForModernShaders(t *testing.T) {
	src := "#version 330\nin vec2 uv;\nout vec4 color;\nvoid main() { color = vec4(1.0); }\n"
	r := Translate(src, Fragment)
	require.True(t, r.Success)
	assert.Contains(t, r.Source, "in vec2 uv;")
	assert.Contains(t, r.Source, "out vec4 color;")
}

func TestTranslateRewritesDoublePrecisionTypes(t *testing.T) {
	src := "#version 400\nuniform dmat4 m;\nuniform dvec3 v;\nvoid main() {}\n"
	r := Translate(src, Vertex)
	require.True(t, r.Success)
	assert.Contains(t, r.Source, "uniform mat4 m;")
	assert.Contains(t, r.Source, "uniform vec3 v;")
}

func TestTranslateRewritesRectangularDoubleMatrix(t *testing.T) {
	src := "#version 400\nuniform dmat3x4 m;\nvoid main() {}\n"
	r := Translate(src, Vertex)
	require.True(t, r.Success)
	assert.Contains(t, r.Source, "uniform mat3x4 m;")
}
