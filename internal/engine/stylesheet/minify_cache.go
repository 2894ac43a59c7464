package stylesheet

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// MinifyCache memoizes minifier output by stylesheet path and content.
type MinifyCache struct {
	mu      sync.Mutex
	entries map[uint64]string
}

// NewMinifyCache creates an empty MinifyCache.
func NewMinifyCache() *MinifyCache {
	return &MinifyCache{entries: make(map[uint64]string)}
}

func cacheKey(path, css string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(path)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(css)
	return d.Sum64()
}

// Get returns the cached output for css loaded from path.
func (c *MinifyCache) Get(path, css string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out, ok := c.entries[cacheKey(path, css)]
	return out, ok
}

// Put stores the minified output for css loaded from path.
func (c *MinifyCache) Put(path, css, minified string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(path, css)] = minified
}

// Len returns the number of cached entries.
func (c *MinifyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
