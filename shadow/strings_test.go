package shadow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetStringVersion(t *testing.T) {
	got, ok := GetString(glVersion, "Mali-G710")
	assert.True(t, ok)
	assert.Equal(t, "4.6.0 PrismGL", got)
}

func TestGetStringShadingLanguageVersion(t *testing.T) {
	got, ok := GetString(glShadingLanguageVersion, "")
	assert.True(t, ok)
	assert.Equal(t, "4.60 PrismGL", got)
}

func TestGetStringVendor(t *testing.T) {
	got, ok := GetString(glVendor, "")
	assert.True(t, ok)
	assert.Equal(t, "PrismGL", got)
}

func TestGetStringRendererWithDriver(t *testing.T) {
	got, ok := GetString(glRenderer, "Adreno 740")
	assert.True(t, ok)
	assert.Equal(t, "PrismGL (Adreno 740)", got)
}

func TestGetStringRendererWithoutDriver(t *testing.T) {
	got, ok := GetString(glRenderer, "")
	assert.True(t, ok)
	assert.Equal(t, "PrismGL", got)
}

func TestGetStringExtensions(t *testing.T) {
	got, ok := GetString(glExtensions, "")
	assert.True(t, ok)
	assert.Contains(t, got, "GL_ARB_vertex_buffer_object")
	assert.Contains(t, got, "GL_ARB_clip_control")
}

func TestGetStringUnknownIsNotHandled(t *testing.T) {
	_, ok := GetString(0xDEAD, "")
	assert.False(t, ok)
}

func TestGetStringiExtensionsIsAlwaysEmpty(t *testing.T) {
	got, ok := GetStringi(glExtensions, 0)
	assert.True(t, ok)
	assert.Equal(t, "", got)
}

func TestGetStringiUnknownIsNotHandled(t *testing.T) {
	_, ok := GetStringi(0xDEAD, 0)
	assert.False(t, ok)
}
