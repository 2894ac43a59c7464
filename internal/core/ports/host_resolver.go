package ports

import "context"

// HostResolver delegates module resolution to the host build tool.
//
//go:generate mockgen -source=host_resolver.go -destination=mocks/mock_host_resolver.go -package=mocks
type HostResolver interface {
	// Resolve returns the absolute path the host resolves specifier to when imported from importer.
	// It reports false when the host cannot resolve the specifier.
	Resolve(ctx context.Context, specifier, importer string) (string, bool)
}
