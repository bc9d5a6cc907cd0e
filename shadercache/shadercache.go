// Package shadercache persists linked GL program binaries to disk, keyed
// by an FNV-1a hash of their shader sources, so that a process restart can
// skip shader compilation and linking entirely for anything it has already
// seen. It mirrors the on-disk format and eviction behavior of the
// reference prismgl_shader_cache.c almost verbatim, translated into the
// same owns-a-mutex-around-disk-IO style the rest of this layer uses for
// anything shared across threads (the rest of this layer assumes a single
// GL context-owner thread; this cache's index is deliberately exempt).
package shadercache

import (
	"encoding/binary"
	"hash/fnv"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"prismgl/logx"
)

// maxEntries bounds the in-memory index, per the spec's ShaderCacheEntry
// cap. Once reached, Put becomes a silent no-op rather than evicting to
// make room: a cache that evicts live entries to cache new ones would
// thrash under a working set slightly larger than its cap.
const maxEntries = 2048

// fileExt is the on-disk suffix for one cached program binary.
const fileExt = ".pglbin"

// subdir is the fixed subdirectory name under the cache root every cache
// file lives in.
const subdir = "shaders"

// separator is the single byte folded between the vertex and fragment
// source when hashing a pair, distinguishing ("AB", "") from ("A", "B").
const separator byte = 0xFF

// Hash computes the 64-bit FNV-1a digest of vertexSource, one separator
// byte, then fragmentSource, using the standard library's hash/fnv rather
// than a hand-rolled fold: the spec's invariant is the canonical FNV-1a
// offset basis and prime, which hash/fnv already implements bit-for-bit.
// It is the sole key space the cache indexes on; two programs with
// byte-identical sources always collide, which is the intended behavior
// (a recompile would have produced the same binary anyway).
func Hash(vertexSource, fragmentSource string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(vertexSource))
	h.Write([]byte{separator})
	h.Write([]byte(fragmentSource))
	return h.Sum64()
}

// entry mirrors the spec's ShaderCacheEntry: at most one per hash, program
// is 0 until materialized from disk.
type entry struct {
	program uint32
	path    string
	loaded  bool
}

// Cache owns the on-disk shader directory and its in-memory index. All
// public methods take mu for their full disk-IO duration, so cache
// introspection (Len, Has) is safe to call from a background thread even
// while the GL thread is in the middle of a Get or Put — the GL calls
// themselves are never made concurrently because Get/Put are only ever
// invoked from the context-owner thread by contract.
type Cache struct {
	mu      sync.Mutex
	dir     string
	entries map[uint64]*entry
}

// New returns a Cache that has not yet scanned any directory; call Init
// before the first Get/Put.
func New() *Cache {
	return &Cache{entries: make(map[uint64]*entry)}
}

// Init creates <cacheDir>/shaders if missing and registers one unloaded
// entry per existing *.pglbin file found there, up to maxEntries. It is
// safe to call once per process; calling it again rescans and merges.
func (c *Cache) Init(cacheDir string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	dir := filepath.Join(cacheDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logx.Log.Warn("shadercache: could not create cache directory, caching disabled", "dir", dir, "err", err)
		return err
	}
	c.dir = dir

	files, err := os.ReadDir(dir)
	if err != nil {
		logx.Log.Warn("shadercache: could not scan cache directory", "dir", dir, "err", err)
		return nil
	}
	for _, f := range files {
		if len(c.entries) >= maxEntries {
			break
		}
		name := f.Name()
		if filepath.Ext(name) != fileExt {
			continue
		}
		hashHex := name[:len(name)-len(fileExt)]
		hash, err := strconv.ParseUint(hashHex, 16, 64)
		if err != nil {
			continue
		}
		if _, exists := c.entries[hash]; exists {
			continue
		}
		c.entries[hash] = &entry{path: filepath.Join(dir, name)}
	}
	logx.Log.Info("shadercache: initialized", "entries", len(c.entries), "dir", dir)
	return nil
}

// Shutdown empties the in-memory index. GL program handles are owned by
// the context, not the cache, so nothing is deleted here; the caller's
// context teardown (or process exit) releases them.
func (c *Cache) Shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint64]*entry)
}

// pathFor builds the on-disk path for hash without requiring an entry to
// already exist, matching S4 in the spec's testable properties
// (<cacheDir>/shaders/<16-hex-hash>.pglbin).
func (c *Cache) pathFor(hash uint64) string {
	return filepath.Join(c.dir, formatHash(hash)+fileExt)
}

// PathFor is the exported, lock-free form of pathFor for callers (and
// tests) that only need to know where a given hash would live on disk.
func PathFor(cacheDir string, hash uint64) string {
	return filepath.Join(cacheDir, subdir, formatHash(hash)+fileExt)
}

func formatHash(hash uint64) string {
	const hexDigits = "0123456789abcdef"
	b := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		b[i] = hexDigits[hash&0xF]
		hash >>= 4
	}
	return string(b)
}

// Get returns the linked program for hash if it is already materialized
// in memory, or if it can be loaded from disk and successfully relinked
// via glProgramBinary. A cache miss, a missing file, or a driver-rejected
// binary (the likeliest cause: a driver update invalidated the stored
// binary format) all return 0; the caller falls back to normal
// compilation and should Put the result back in.
func (c *Cache) Get(hash uint64) uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[hash]
	if !ok {
		return 0
	}
	if e.loaded {
		return e.program
	}

	data, err := os.ReadFile(e.path)
	if err != nil {
		logx.Log.Warn("shadercache: cache file missing, evicting", "path", e.path, "err", err)
		delete(c.entries, hash)
		return 0
	}
	if len(data) <= 4 {
		logx.Log.Warn("shadercache: cache file truncated, evicting", "path", e.path)
		c.evictLocked(hash, e)
		return 0
	}

	format := binary.LittleEndian.Uint32(data[:4])
	payload := data[4:]

	program := gl.CreateProgram()
	gl.ProgramBinary(program, format, gl.Ptr(&payload[0]), int32(len(payload)))

	var linkStatus int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &linkStatus)
	if linkStatus != gl.TRUE {
		logx.Log.Warn("shadercache: cached binary rejected by driver, evicting", "path", e.path)
		gl.DeleteProgram(program)
		c.evictLocked(hash, e)
		return 0
	}

	e.program = program
	e.loaded = true
	return program
}

// evictLocked removes hash from the in-memory index and deletes its file
// on disk. Callers must already hold mu.
func (c *Cache) evictLocked(hash uint64, e *entry) {
	_ = os.Remove(e.path)
	delete(c.entries, hash)
}

// Put stores program's binary representation under hash if it is not
// already cached and the index has room. If the driver has no
// program-binary support (GL_PROGRAM_BINARY_LENGTH comes back 0 or
// negative), Put returns silently without writing anything, per the
// spec's "if program-binary is absent, put must return silently" clause.
func (c *Cache) Put(hash uint64, program uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[hash]; exists {
		return
	}
	if len(c.entries) >= maxEntries {
		logx.Log.Warn("shadercache: index full, not caching", "hash", hash)
		return
	}

	var length int32
	gl.GetProgramiv(program, gl.PROGRAM_BINARY_LENGTH, &length)
	if length <= 0 {
		return
	}

	payload := make([]byte, length)
	var actualLength int32
	var format uint32
	gl.GetProgramBinary(program, length, &actualLength, &format, gl.Ptr(&payload[0]))
	payload = payload[:actualLength]

	path := c.pathFor(hash)
	buf := make([]byte, 4+len(payload))
	binary.LittleEndian.PutUint32(buf[:4], format)
	copy(buf[4:], payload)

	if err := os.WriteFile(path, buf, 0o644); err != nil {
		logx.Log.Warn("shadercache: failed to write cache file, proceeding without caching", "path", path, "err", err)
		return
	}

	c.entries[hash] = &entry{program: program, path: path, loaded: true}
}

// Len reports how many entries the in-memory index currently holds,
// loaded or not. Exposed for tests and for cache introspection from a
// background thread.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Has reports whether hash has an index entry, without touching disk or
// the GL driver.
func (c *Cache) Has(hash uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[hash]
	return ok
}
