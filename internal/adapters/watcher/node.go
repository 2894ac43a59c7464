package watcher

import (
	"context"
	"time"

	"github.com/grindlemire/graft"
	"go.trai.ch/sheet/internal/core/ports"
)

// DefaultDebounceWindow is the default time window for debouncing file events.
const DefaultDebounceWindow = 100 * time.Millisecond

// Factory creates watchers. Watch mode needs the output directory before the
// watcher exists, so the graph provides a factory instead of a watcher.
type Factory func(logger ports.Logger, ignore ...string) (ports.Watcher, error)

// NewFactory returns the fsnotify backed Factory.
func NewFactory() Factory {
	return func(logger ports.Logger, ignore ...string) (ports.Watcher, error) {
		return NewWatcher(logger, ignore...)
	}
}

// NodeID is the unique identifier for the watcher factory Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[Factory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Factory, error) {
			return NewFactory(), nil
		},
	})
}
