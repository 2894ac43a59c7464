package esbuild_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sheet/internal/adapters/esbuild"
)

func TestMinifier_Minify(t *testing.T) {
	m := esbuild.NewMinifier()

	out, err := m.Minify(context.Background(), ".a {\n  display: block;\n}\n\n/* gone */\n", "/src/a.css")
	require.NoError(t, err)
	assert.Equal(t, ".a{display:block}", out)
}

func TestMinifier_Empty(t *testing.T) {
	m := esbuild.NewMinifier()

	out, err := m.Minify(context.Background(), "", "/src/empty.css")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMinifier_Cancelled(t *testing.T) {
	m := esbuild.NewMinifier()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Minify(ctx, ".a{}", "/src/a.css")
	require.ErrorIs(t, err, context.Canceled)
}
