package session_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sheet/internal/core/domain"
	"go.trai.ch/sheet/internal/engine/session"
)

func TestRegistry_FirstWriteWins(t *testing.T) {
	r := session.NewRegistry()
	r.Register("/src/a.stylesheet", "/src/a.css")
	r.Register("/src/a.stylesheet", "/other/a.css")

	p, ok := r.Lookup("/src/a.stylesheet")
	require.True(t, ok)
	assert.Equal(t, "/src/a.css", p)
	assert.Equal(t, 1, r.Len())

	_, ok = r.Lookup("/src/b.stylesheet")
	assert.False(t, ok)
}

func TestRegistry_Concurrent(t *testing.T) {
	r := session.NewRegistry()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("/src/%d.stylesheet", i%10)
			r.Register(id, fmt.Sprintf("/src/%d.css", i%10))
			_, _ = r.Lookup(id)
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, r.Len())
}

func TestSourceCache_PutGetForget(t *testing.T) {
	c := session.NewSourceCache()

	_, ok := c.Get("/src/a.ts")
	assert.False(t, ok)

	c.Put("/src/a.ts", "one")
	c.Put("/src/a.ts", "two")
	text, ok := c.Get("/src/a.ts")
	require.True(t, ok)
	assert.Equal(t, "two", text)

	c.Forget("/src/a.ts")
	_, ok = c.Get("/src/a.ts")
	assert.False(t, ok)
}

func TestSession_Isolation(t *testing.T) {
	a := session.New(domain.DefaultOptions())
	b := session.New(domain.DefaultOptions())

	a.Modules.Register("/src/a.stylesheet", "/src/a.css")
	a.Sources.Put("/src/a.ts", "text")
	a.Stats.Add(10, 5)

	assert.Equal(t, 0, b.Modules.Len())
	_, ok := b.Sources.Get("/src/a.ts")
	assert.False(t, ok)
	assert.Equal(t, int64(0), b.Stats.Before())
}

func TestSession_Summary(t *testing.T) {
	s := session.New(domain.DefaultOptions())
	s.Stats.Add(20, 12)

	msg, ok := s.Summary()
	require.True(t, ok)
	assert.Equal(t, "minified css sheets by 8 bytes (before: 20, after: 12)", msg)

	opts := domain.DefaultOptions()
	opts.Mode = domain.ModeDevelopment
	_, ok = session.New(opts).Summary()
	assert.False(t, ok)
}
