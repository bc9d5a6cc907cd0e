package shadow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"prismgl/glenum"
)

func TestRemapDrawReadBufferMapsFrontVariants(t *testing.T) {
	assert.Equal(t, uint32(glenum.Back), RemapDrawReadBuffer(glenum.Front))     // GL_BACK
	assert.Equal(t, uint32(glenum.Back), RemapDrawReadBuffer(glenum.FrontLeft)) // GL_BACK
	assert.Equal(t, uint32(glenum.Back), RemapDrawReadBuffer(glenum.BackLeft))  // GL_BACK
}

func TestRemapDrawReadBufferPassesThroughOther(t *testing.T) {
	assert.Equal(t, uint32(0x8CE0), RemapDrawReadBuffer(0x8CE0)) // GL_COLOR_ATTACHMENT0
}

func TestDrawBufferRecordsRemappedValue(t *testing.T) {
	s := New()
	got := s.DrawBuffer(glenum.Front)
	assert.Equal(t, uint32(glenum.Back), got)
	assert.Equal(t, uint32(glenum.Back), s.boundDrawBuffer)
}

func TestReadBufferRecordsRemappedValue(t *testing.T) {
	s := New()
	got := s.ReadBuffer(glenum.FrontLeft)
	assert.Equal(t, uint32(glenum.Back), got)
	assert.Equal(t, uint32(glenum.Back), s.boundReadBuffer)
}
