package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	assert.Equal(t, NewVec3(5, 7, 9), v1.Add(v2))
	assert.Equal(t, NewVec3(3, 3, 3), v2.Sub(v1))
	assert.Equal(t, NewVec3(2, 4, 6), v1.Mul(2))
	assert.Equal(t, float32(32), v1.Dot(v2)) // 1*4 + 2*5 + 3*6

	// Right x Up = Front in this right-handed system.
	assert.Equal(t, Vec3Front, Vec3Right.Cross(Vec3Up))
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 0)
	normalized := v.Normalize()

	assert.Equal(t, NewVec3(1, 0, 0), normalized)
	assert.InDelta(t, float32(1), normalized.Length(), 0.0001)
}

func TestVec2Operations(t *testing.T) {
	v1 := NewVec2(1, 2)
	v2 := NewVec2(3, 4)

	assert.Equal(t, NewVec2(4, 6), v1.Add(v2))
	assert.Equal(t, NewVec2(2, 2), v2.Sub(v1))
	assert.Equal(t, float32(11), v1.Dot(v2))
}

func BenchmarkVec3Add(b *testing.B) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	for i := 0; i < b.N; i++ {
		_ = v1.Add(v2)
	}
}
