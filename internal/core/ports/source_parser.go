package ports

import (
	"context"

	"go.trai.ch/sheet/internal/core/domain"
)

// SourceParser parses source files into the outline used for auto importing stylesheets.
//
//go:generate mockgen -source=source_parser.go -destination=mocks/mock_source_parser.go -package=mocks
type SourceParser interface {
	// Parse parses src, using path to select the grammar.
	Parse(ctx context.Context, src []byte, path string) (*domain.Outline, error)
}
