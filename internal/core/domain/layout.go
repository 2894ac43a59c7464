// Package domain contains the core types shared by the stylesheet pipeline.
package domain

import (
	"path/filepath"
	"strings"
)

const (
	// PluginName is the name the esbuild plugin registers under.
	PluginName = "import-css-sheet"

	// Namespace marks virtual stylesheet modules as not backed by the file system.
	Namespace = "import-css-sheet"

	// SheetExt is the extension of stylesheet files.
	SheetExt = ".css"

	// MarkerExt replaces SheetExt in virtual module identifiers.
	MarkerExt = ".stylesheet"

	// ImportSuffix is appended to the base name of a file to form the auto import identifier.
	ImportSuffix = "_styles"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "sheet.yaml"

	// DefaultOutdir is used when neither the config file nor the flags name an output directory.
	DefaultOutdir = "dist"
)

var sourceExts = map[string]bool{
	".ts":   true,
	".mts":  true,
	".tsx":  true,
	".mtsx": true,
	".js":   true,
	".mjs":  true,
	".jsx":  true,
	".mjsx": true,
}

// IsSourceExt reports whether ext (including the dot) is a supported source file extension.
func IsSourceExt(ext string) bool {
	return sourceExts[ext]
}

// SourceFilter is an esbuild filter matching every supported source extension.
const SourceFilter = `\.(ts|mts|tsx|mtsx|js|mjs|jsx|mjsx)$`

// SheetFilter is an esbuild filter matching stylesheet specifiers.
const SheetFilter = `\.css$`

// StripQuery removes a trailing "?query" from a module path.
func StripQuery(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}

// SiblingSheetPath returns the stylesheet sharing the base name of the given source file.
func SiblingSheetPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + SheetExt
}

// VirtualID derives the synthetic module identifier of a resolved stylesheet path.
func VirtualID(realPath string) string {
	return strings.TrimSuffix(realPath, SheetExt) + MarkerExt
}
