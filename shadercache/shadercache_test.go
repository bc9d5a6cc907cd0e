package shadercache

import (
	"hash/fnv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashMatchesCanonicalFNV1a(t *testing.T) {
	// FNV-1a of the byte sequence 0x41, 0xFF, 0x42, per the spec's
	// testable property 11.
	h := fnv.New64a()
	h.Write([]byte{0x41, 0xFF, 0x42})
	assert.Equal(t, h.Sum64(), Hash("A", "B"))
}

func TestHashDistinguishesSplitPoint(t *testing.T) {
	assert.NotEqual(t, Hash("AB", ""), Hash("A", "B"))
}

func TestHashIsDeterministic(t *testing.T) {
	assert.Equal(t, Hash("vs source", "fs source"), Hash("vs source", "fs source"))
}

func TestPathForMatchesSpecExample(t *testing.T) {
	got := PathFor("/data/app/cache", 0x0123456789ABCDEF)
	assert.Equal(t, "/data/app/cache/shaders/0123456789abcdef.pglbin", got)
}

func TestFormatHashZeroPads(t *testing.T) {
	assert.Equal(t, "0000000000000001", formatHash(1))
}

func TestInitCreatesShaderSubdir(t *testing.T) {
	dir := t.TempDir()
	c := New()
	require.NoError(t, c.Init(dir))

	info, err := os.Stat(filepath.Join(dir, "shaders"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, 0, c.Len())
}

func TestInitRegistersExistingCacheFiles(t *testing.T) {
	dir := t.TempDir()
	shaderDir := filepath.Join(dir, "shaders")
	require.NoError(t, os.MkdirAll(shaderDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(shaderDir, "00000000deadbeef.pglbin"), []byte{0, 0, 0, 0}, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(shaderDir, "not-a-cache-file.txt"), []byte("ignore me"), 0o644))

	c := New()
	require.NoError(t, c.Init(dir))

	assert.Equal(t, 1, c.Len())
	assert.True(t, c.Has(0xdeadbeef))
}

func TestShutdownEmptiesIndexWithoutTouchingDisk(t *testing.T) {
	dir := t.TempDir()
	shaderDir := filepath.Join(dir, "shaders")
	require.NoError(t, os.MkdirAll(shaderDir, 0o755))
	path := filepath.Join(shaderDir, "0000000000000001.pglbin")
	require.NoError(t, os.WriteFile(path, []byte{1, 0, 0, 0}, 0o644))

	c := New()
	require.NoError(t, c.Init(dir))
	require.Equal(t, 1, c.Len())

	c.Shutdown()
	assert.Equal(t, 0, c.Len())

	_, err := os.Stat(path)
	assert.NoError(t, err, "shutdown must not delete on-disk cache files")
}
