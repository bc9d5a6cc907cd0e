package immediate

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizeQuadIndicesSingleQuad(t *testing.T) {
	indices := synthesizeQuadIndices(4)
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3}, indices)
}

func TestSynthesizeQuadIndicesTwoQuads(t *testing.T) {
	indices := synthesizeQuadIndices(8)
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}, indices)
}

func TestSynthesizeQuadIndicesDropsPartialQuad(t *testing.T) {
	indices := synthesizeQuadIndices(6)
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3}, indices)
}

func TestSynthesizeQuadIndicesEmpty(t *testing.T) {
	assert.Empty(t, synthesizeQuadIndices(0))
}

// drawQuads issues GL_UNSIGNED_SHORT against this slice's element type, so
// a widened index type would silently corrupt every quad draw call.
func TestSynthesizeQuadIndicesWidthIsUint16(t *testing.T) {
	indices := synthesizeQuadIndices(4)
	assert.Equal(t, reflect.Uint16, reflect.TypeOf(indices).Elem().Kind())
}

func TestBeginIgnoresNestedBegin(t *testing.T) {
	e := New()
	e.Begin(0x0004) // GL_TRIANGLES
	e.Vertex3f(1, 2, 3)
	e.Begin(0x0000) // GL_POINTS, should be ignored: already recording
	e.Vertex3f(4, 5, 6)

	assert.Len(t, e.vertices, 2)
}

func TestEndWithoutBeginReturnsError(t *testing.T) {
	e := New()
	err := e.End()
	assert.Error(t, err)
}

func TestVertex3fIgnoredOutsideSpan(t *testing.T) {
	e := New()
	e.Vertex3f(1, 2, 3)
	assert.Empty(t, e.vertices)
}

func TestVertex3fCapturesStickyState(t *testing.T) {
	e := New()
	e.Begin(0x0004)
	e.Color4f(1, 0, 0, 1)
	e.TexCoord2f(0.5, 0.5)
	e.Normal3f(0, 1, 0)
	e.Vertex3f(1, 2, 3)

	require := assert.New(t)
	v := e.vertices[0]
	require.Equal(float32(1), v.Position.X)
	require.Equal(float32(1), v.Color.R)
	require.Equal(float32(0.5), v.TexCoord.X)
	require.Equal(float32(1), v.Normal.Y)
}

func TestVertex3fCapDropsExcess(t *testing.T) {
	e := New()
	e.Begin(0x0000)
	for i := 0; i < maxVertices+10; i++ {
		e.Vertex3f(float32(i), 0, 0)
	}
	assert.Len(t, e.vertices, maxVertices)
	assert.True(t, e.Overflowed())
}

func TestStickyStateCarriesAcrossSpans(t *testing.T) {
	e := New()
	e.Color4f(0, 1, 0, 1)
	e.Begin(0x0004)
	e.Vertex3f(0, 0, 0)
	assert.Equal(t, float32(1), e.vertices[0].Color.G)
}
