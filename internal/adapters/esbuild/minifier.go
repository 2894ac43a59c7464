package esbuild

import (
	"context"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/sheet/internal/core/domain"
	"go.trai.ch/sheet/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Minifier = (*Minifier)(nil)

// Minifier minifies stylesheets with esbuild's CSS minifier.
type Minifier struct{}

// NewMinifier creates a Minifier.
func NewMinifier() *Minifier {
	return &Minifier{}
}

// Minify returns the minified form of css.
func (*Minifier) Minify(ctx context.Context, css, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	result := api.Transform(css, api.TransformOptions{
		Loader:           api.LoaderCSS,
		MinifyWhitespace: true,
		MinifySyntax:     true,
		Sourcefile:       path,
		LogLevel:         api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		return "", zerr.With(zerr.With(domain.ErrMinifyFailed, "path", path), "reason", result.Errors[0].Text)
	}
	return strings.TrimSuffix(string(result.Code), "\n"), nil
}
