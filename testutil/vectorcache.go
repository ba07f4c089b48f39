package testutil

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// VectorCache is a process-wide cache of generated test vectors keyed
// by (dimension, seed), so a table-driven test file and the
// benchmarks that exercise the same shapes don't pay to regenerate
// identical vectors. Keys are folded to a uint64 with xxhash, the
// same "hash the byte key, use the digest as the map key" approach
// core.hashBytesXXH128 uses for bucket placement, simplified here to
// a single 64-bit digest. Entries are stored under the digest alone,
// so two (dimension, seed) keys whose digests collide share one entry:
// the later caller gets the vector generated for the earlier key.
type VectorCache struct {
	mu      sync.Mutex
	entries map[uint64][]float64
}

// globalVectorCache is the process-wide instance tests and benchmarks
// share.
var globalVectorCache = NewVectorCache()

// NewVectorCache returns an empty cache. Most callers want
// globalVectorCache via CachedVector; NewVectorCache exists for tests
// that want isolation from other tests' vectors.
func NewVectorCache() *VectorCache {
	return &VectorCache{entries: make(map[uint64][]float64)}
}

func vectorCacheKey(dimension int, seed int64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(dimension))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(seed))
	return xxhash.Sum64(buf[:])
}

// Get returns the cached vector for (dimension, seed), building it
// with gen if absent. The returned slice is shared — callers must not
// mutate it.
func (c *VectorCache) Get(dimension int, seed int64, gen func() []float64) []float64 {
	key := vectorCacheKey(dimension, seed)
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.entries[key]; ok {
		return v
	}
	v := gen()
	c.entries[key] = v
	return v
}

// CachedVector returns a (possibly freshly generated, possibly
// reused) vector of n pseudo-random values in [-1, 1) seeded
// deterministically from seed, via the process-wide cache.
func CachedVector(n int, seed int64) []float64 {
	return globalVectorCache.Get(n, seed, func() []float64 {
		return NewGeneratorFromInt64(seed).Vector(n)
	})
}
