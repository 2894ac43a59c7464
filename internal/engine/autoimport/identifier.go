// Package autoimport injects the sibling stylesheet of a source file into classes
// extending a configured base class.
package autoimport

import (
	"path/filepath"
	"strings"

	"go.trai.ch/sheet/internal/core/domain"
)

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Identifier returns the import binding name used for the sibling stylesheet of path.
// Characters that are not valid in an identifier are replaced with underscores.
func Identifier(path string) string {
	var b strings.Builder
	for _, r := range baseName(path) {
		if r == '_' || r == '$' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	ident := b.String()
	if ident == "" || ('0' <= ident[0] && ident[0] <= '9') {
		ident = "_" + ident
	}
	return ident + domain.ImportSuffix
}

// Specifier returns the relative module specifier of the sibling stylesheet of path.
func Specifier(path string) string {
	return "./" + baseName(path) + domain.SheetExt
}

// ImportStatement renders the import declaration binding ident to specifier.
func ImportStatement(ident, specifier string) string {
	return `import ` + ident + ` from "` + specifier + `" with { type: "css" };`
}
