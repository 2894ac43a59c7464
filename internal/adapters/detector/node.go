package detector

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the detector Graft node.
const NodeID graft.ID = "adapter.detector"

func init() {
	graft.Register(graft.Node[*Node]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Node, error) {
			return NewNode(), nil
		},
	})
}

// Node is the graft node for dependency injection.
// The detector has no dependencies.
type Node struct{}

// NewNode creates a new Node.
func NewNode() *Node {
	return &Node{}
}

// Detect returns the log format for the --log-format flag value.
func (*Node) Detect(userFlag string) LogFormat {
	if userFlag == "pretty" || userFlag == "json" {
		return ResolveFormat(FormatAuto, userFlag)
	}
	return DetectEnvironment()
}
