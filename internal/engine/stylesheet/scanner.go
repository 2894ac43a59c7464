package stylesheet

import (
	"regexp"
	"sync"
)

const attributePattern = `['"]\s*(?:with|assert)\s*\{\s*type\s*:\s*['"]css['"]`

var patterns sync.Map

type specifierPatterns struct {
	any     *regexp.Regexp
	binding *regexp.Regexp
}

func patternsFor(specifier string) *specifierPatterns {
	if p, ok := patterns.Load(specifier); ok {
		return p.(*specifierPatterns)
	}
	quoted := `['"]` + regexp.QuoteMeta(specifier) + attributePattern
	p := &specifierPatterns{
		any:     regexp.MustCompile(quoted),
		binding: regexp.MustCompile(`import\s+([A-Za-z_$][\w$]*)\s+from\s*` + quoted),
	}
	actual, _ := patterns.LoadOrStore(specifier, p)
	return actual.(*specifierPatterns)
}

// HasSheetImport reports whether source imports specifier with a css type attribute.
// The check is textual, so matching text inside strings or comments also counts.
func HasSheetImport(specifier, source string) bool {
	return patternsFor(specifier).any.MatchString(source)
}

// SheetImportBinding returns the default import identifier bound to specifier
// by an import declaration with a css type attribute.
func SheetImportBinding(specifier, source string) (string, bool) {
	m := patternsFor(specifier).binding.FindStringSubmatch(source)
	if m == nil {
		return "", false
	}
	return m[1], true
}
