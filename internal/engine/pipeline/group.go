package pipeline

import "sync"

// Group collects the pipelines started by a plugin so their sessions can be
// ended by the caller. esbuild runs dispose callbacks on a separate goroutine
// after Build returns, which is too late for a short lived process.
type Group struct {
	mu        sync.Mutex
	pipelines []*Pipeline
}

// Add records p. It has the signature of the plugin's session callback.
func (g *Group) Add(p *Pipeline) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pipelines = append(g.pipelines, p)
}

// End ends every recorded session, in the order they started.
func (g *Group) End() {
	g.mu.Lock()
	pipelines := g.pipelines
	g.pipelines = nil
	g.mu.Unlock()

	for _, p := range pipelines {
		p.End()
	}
}
