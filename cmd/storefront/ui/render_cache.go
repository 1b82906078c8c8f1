package ui

import (
	"hash/fnv"
	"math"
	"sync"
)

// RenderCache memoises rendered page fragments by a hash of their inputs.
// When full, the least recently stored entry is evicted.
type RenderCache struct {
	mu      sync.Mutex
	entries map[uint64]*cacheEntry
	order   []uint64
	maxSize int
}

type cacheEntry struct {
	content string
	hits    int
}

// NewRenderCache creates a cache holding at most maxSize entries.
func NewRenderCache(maxSize int) *RenderCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &RenderCache{
		entries: make(map[uint64]*cacheEntry),
		maxSize: maxSize,
	}
}

// DefaultRenderCache is shared by pages that don't bring their own.
var DefaultRenderCache = NewRenderCache(64)

// ComputeKey hashes key inputs with FNV-1a. Only string, int, float64 and
// bool contribute; other types are skipped.
func ComputeKey(inputs ...interface{}) uint64 {
	h := fnv.New64a()
	var b [8]byte

	putUint := func(u uint64) {
		for i := range b {
			b[i] = byte(u >> (8 * i))
		}
		h.Write(b[:])
	}

	for _, input := range inputs {
		switch v := input.(type) {
		case string:
			putUint(uint64(len(v)))
			h.Write([]byte(v))
		case int:
			putUint(uint64(v))
		case float64:
			putUint(math.Float64bits(v))
		case bool:
			if v {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}

	return h.Sum64()
}

// Get retrieves cached content if available.
func (rc *RenderCache) Get(key uint64) (string, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if e, ok := rc.entries[key]; ok {
		e.hits++
		return e.content, true
	}
	return "", false
}

// Set stores rendered content, evicting the oldest entry when full.
func (rc *RenderCache) Set(key uint64, content string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if e, ok := rc.entries[key]; ok {
		e.content = content
		return
	}
	for len(rc.order) >= rc.maxSize {
		oldest := rc.order[0]
		rc.order = rc.order[1:]
		delete(rc.entries, oldest)
	}
	rc.entries[key] = &cacheEntry{content: content, hits: 1}
	rc.order = append(rc.order, key)
}

// Len returns the number of cached entries.
func (rc *RenderCache) Len() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.entries)
}

// Clear empties the cache.
func (rc *RenderCache) Clear() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.entries = make(map[uint64]*cacheEntry)
	rc.order = nil
}

// GetOrCompute retrieves from cache or computes if missing. Failed
// computations are not cached.
func (rc *RenderCache) GetOrCompute(key uint64, compute func() (string, error)) (string, error) {
	if content, ok := rc.Get(key); ok {
		return content, nil
	}

	content, err := compute()
	if err != nil {
		return "", err
	}
	rc.Set(key, content)
	return content, nil
}

// CachedRender wraps a render function with caching and remembers the last
// result so an unchanged frame skips hashing the cache.
type CachedRender struct {
	cache      *RenderCache
	lastKey    uint64
	lastResult string
	valid      bool
}

// NewCachedRender creates a new cached render wrapper.
func NewCachedRender(cache *RenderCache) *CachedRender {
	if cache == nil {
		cache = DefaultRenderCache
	}
	return &CachedRender{cache: cache}
}

// Render executes renderFunc unless keyInputs were seen before.
func (cr *CachedRender) Render(keyInputs []interface{}, renderFunc func() (string, error)) (string, error) {
	key := ComputeKey(keyInputs...)

	if cr.valid && key == cr.lastKey {
		return cr.lastResult, nil
	}

	result, err := cr.cache.GetOrCompute(key, renderFunc)
	if err != nil {
		return "", err
	}
	cr.lastKey = key
	cr.lastResult = result
	cr.valid = true
	return result, nil
}

// Invalidate forgets the last result.
func (cr *CachedRender) Invalidate() {
	cr.lastKey = 0
	cr.lastResult = ""
	cr.valid = false
}
