package esbuild

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sheet/internal/core/ports"
)

// MinifierNodeID is the unique identifier for the CSS minifier Graft node.
const MinifierNodeID graft.ID = "adapter.esbuild.minifier"

func init() {
	graft.Register(graft.Node[ports.Minifier]{
		ID:        MinifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Minifier, error) {
			return NewMinifier(), nil
		},
	})
}
