package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sheet/internal/core/ports"
)

const (
	// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
	TracerNodeID graft.ID = "adapter.telemetry"
	// RecorderNodeID is the unique identifier for the span Recorder Graft node.
	RecorderNodeID graft.ID = "adapter.telemetry.recorder"
)

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			return NewOTelTracer("sheet"), nil
		},
	})

	graft.Register(graft.Node[*Recorder]{
		ID:        RecorderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Recorder, error) {
			return NewRecorder(), nil
		},
	})
}
