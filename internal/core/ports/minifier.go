package ports

import "context"

// Minifier minifies stylesheet text.
//
//go:generate mockgen -source=minifier.go -destination=mocks/mock_minifier.go -package=mocks
type Minifier interface {
	// Minify returns the minified form of css. The path is used for diagnostics only.
	Minify(ctx context.Context, css, path string) (string, error)
}
