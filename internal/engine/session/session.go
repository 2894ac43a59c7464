// Package session holds the state shared by all hooks of one build session.
package session

import (
	"sync"

	"go.trai.ch/sheet/internal/core/domain"
)

// Session owns the per-build state of the stylesheet pipeline.
// A new Session is created for every build or watch context; nothing is shared between sessions.
type Session struct {
	Options domain.Options
	Modules *Registry
	Sources *SourceCache
	Stats   *domain.MinifyStats
}

// New creates a Session for the given options.
func New(opts domain.Options) *Session {
	return &Session{
		Options: opts,
		Modules: NewRegistry(),
		Sources: NewSourceCache(),
		Stats:   &domain.MinifyStats{},
	}
}

// Summary returns the minification report for the session.
// It reports false in development mode, where no statistics are collected.
func (s *Session) Summary() (string, bool) {
	if s.Options.IsDevelopment() {
		return "", false
	}
	return s.Stats.Summary(), true
}

// Registry maps virtual module identifiers to the real stylesheet paths they stand for.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]string)}
}

// Register records realPath for id. The first registration of an id wins.
func (r *Registry) Register(id, realPath string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.modules[id]; ok {
		return
	}
	r.modules[id] = realPath
}

// Lookup returns the real path registered for id.
func (r *Registry) Lookup(id string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.modules[id]
	return p, ok
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.modules)
}

// SourceCache keeps the last rewritten text of each source file.
type SourceCache struct {
	mu      sync.RWMutex
	sources map[string]string
}

// NewSourceCache creates an empty SourceCache.
func NewSourceCache() *SourceCache {
	return &SourceCache{sources: make(map[string]string)}
}

// Put stores the rewritten text of path.
func (c *SourceCache) Put(path, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sources[path] = text
}

// Get returns the rewritten text of path.
func (c *SourceCache) Get(path string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	text, ok := c.sources[path]
	return text, ok
}

// Forget drops the entry for path.
func (c *SourceCache) Forget(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sources, path)
}
