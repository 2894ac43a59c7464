// Package fs provides file system adapters for the stylesheet pipeline.
package fs

import (
	iofs "io/fs"
	"os"
	"path"
	"strings"

	"go.trai.ch/sheet/internal/core/ports"
)

var (
	_ ports.FileSystem = (*OSFS)(nil)
	_ ports.FileSystem = (*FSAdapter)(nil)
)

// OSFS reads from the operating system's file system.
type OSFS struct{}

// NewOSFS creates an OSFS.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// ReadFile reads the file at path.
func (*OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path) //nolint:gosec // paths come from the bundler
}

// Exists reports whether a regular file exists at path.
func (*OSFS) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// FSAdapter serves absolute slash paths from an fs.FS such as fstest.MapFS.
// The leading slash is dropped before the lookup.
type FSAdapter struct {
	fsys iofs.FS
}

// NewFSAdapter wraps fsys.
func NewFSAdapter(fsys iofs.FS) *FSAdapter {
	return &FSAdapter{fsys: fsys}
}

func (a *FSAdapter) name(p string) string {
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	if p == "" {
		return "."
	}
	return p
}

// ReadFile reads the file at p.
func (a *FSAdapter) ReadFile(p string) ([]byte, error) {
	return iofs.ReadFile(a.fsys, a.name(p))
}

// Exists reports whether a regular file exists at p.
func (a *FSAdapter) Exists(p string) bool {
	info, err := iofs.Stat(a.fsys, a.name(p))
	return err == nil && info.Mode().IsRegular()
}
