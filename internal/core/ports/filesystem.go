// Package ports defines the core interfaces for the application.
package ports

// FileSystem abstracts the file reads the pipeline performs.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// Exists reports whether a regular file exists at path.
	Exists(path string) bool
}
