package ports

import (
	"context"
	"iter"
)

// Change is what happened to a watched path.
type Change uint8

const (
	// ChangeCreated reports a new file or directory.
	ChangeCreated Change = iota
	// ChangeModified reports new contents.
	ChangeModified
	// ChangeRemoved reports a path that is gone, including the old name of a rename.
	ChangeRemoved
)

func (c Change) String() string {
	switch c {
	case ChangeCreated:
		return "created"
	case ChangeModified:
		return "modified"
	case ChangeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// WatchEvent is a change below the watched project root.
type WatchEvent struct {
	Path   string
	Change Change
}

// Watcher reports the changes that should trigger a rebuild.
type Watcher interface {
	// Start watches root and every directory below it that is not ignored.
	Start(ctx context.Context, root string) error
	Stop() error
	// Events yields changes until the watcher stops.
	Events() iter.Seq[WatchEvent]
}
