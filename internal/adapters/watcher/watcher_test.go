package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sheet/internal/adapters/watcher"
	"go.trai.ch/sheet/internal/core/ports"
)

func TestWatcher_Ignored(t *testing.T) {
	w, err := watcher.NewWatcher(nil, "/project/dist")
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	assert.True(t, w.Ignored("/project/dist"))
	assert.True(t, w.Ignored("/project/dist/main.js"))
	assert.False(t, w.Ignored("/project/distribution/a.ts"))
	assert.False(t, w.Ignored("/project/src/a.ts"))
}

func TestWatcher_ReportsWrites(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dist"), 0o750))

	w, err := watcher.NewFactory()(nil, filepath.Join(root, "dist"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		_ = w.Stop()
	})
	require.NoError(t, w.Start(ctx, root))

	target := filepath.Join(root, "src", "a.css")
	require.NoError(t, os.WriteFile(filepath.Join(root, "dist", "main.js"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(target, []byte("a{}"), 0o600))

	got := make(chan ports.WatchEvent, 1)
	go func() {
		for ev := range w.Events() {
			if ev.Path == target {
				got <- ev
				return
			}
			assert.NotContains(t, ev.Path, filepath.Join(root, "dist"))
		}
	}()

	select {
	case ev := <-got:
		assert.Equal(t, target, ev.Path)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watch event")
	}
}

func TestChange_String(t *testing.T) {
	assert.Equal(t, "created", ports.ChangeCreated.String())
	assert.Equal(t, "modified", ports.ChangeModified.String())
	assert.Equal(t, "removed", ports.ChangeRemoved.String())
	assert.Equal(t, "unknown", ports.Change(9).String())
}
