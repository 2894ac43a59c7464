package autoimport

import (
	"context"
	"path/filepath"

	"go.trai.ch/sheet/internal/core/domain"
	"go.trai.ch/sheet/internal/core/ports"
)

// Match is a class that extends a configured base class.
type Match struct {
	Class   *domain.Class
	Base    string
	Binding domain.Binding
}

// ScanResult is the outcome of scanning one source file.
type ScanResult struct {
	// Applicable is false when auto importing does not apply to the file at all.
	Applicable bool
	Outline    *domain.Outline
	Matches    []Match
}

// Matcher finds classes extending configured base classes.
type Matcher struct {
	autoImport *domain.AutoImport
	fs         ports.FileSystem
	parser     ports.SourceParser
}

// NewMatcher creates a Matcher. A nil autoImport disables matching.
func NewMatcher(autoImport *domain.AutoImport, fs ports.FileSystem, parser ports.SourceParser) *Matcher {
	return &Matcher{autoImport: autoImport, fs: fs, parser: parser}
}

// Applies reports whether auto importing is configured, path is a supported source file,
// and path has a sibling stylesheet.
func (m *Matcher) Applies(path string) bool {
	if !m.autoImport.Enabled() {
		return false
	}
	if !domain.IsSourceExt(filepath.Ext(path)) {
		return false
	}
	return m.fs.Exists(domain.SiblingSheetPath(path))
}

// Scan parses source and reports every class extending a configured base class.
// Classes nested inside a matched class are not reported.
func (m *Matcher) Scan(ctx context.Context, source []byte, path string) (*ScanResult, error) {
	if !m.Applies(path) {
		return &ScanResult{}, nil
	}

	outline, err := m.parser.Parse(ctx, source, path)
	if err != nil {
		return nil, err
	}

	res := &ScanResult{Applicable: true, Outline: outline}
	m.collect(outline.Classes, &res.Matches)
	return res, nil
}

func (m *Matcher) collect(classes []domain.Class, out *[]Match) {
	for i := range classes {
		c := &classes[i]
		if match, ok := m.match(c); ok {
			*out = append(*out, match)
			continue
		}
		m.collect(c.Nested, out)
	}
}

func (m *Matcher) match(c *domain.Class) (Match, bool) {
	for _, base := range c.Heritage {
		if b, ok := m.autoImport.Lookup(base); ok {
			return Match{Class: c, Base: base, Binding: b}, true
		}
	}
	return Match{}, false
}
