package autoimport

import (
	"sort"
	"strings"

	"go.trai.ch/sheet/internal/core/domain"
	"go.trai.ch/sheet/internal/engine/stylesheet"
	"go.trai.ch/zerr"
)

type edit struct {
	pos  int
	text string
}

// Rewrite injects the sibling stylesheet of path into every matched class.
// Edits are insertions that keep every original line at its line number.
// It reports false when the source already imports the sheet and every matched class references it.
func Rewrite(source string, outline *domain.Outline, matches []Match, path string) (string, bool, error) {
	if len(matches) == 0 {
		return source, false, nil
	}

	specifier := Specifier(path)
	ident, imported := stylesheet.SheetImportBinding(specifier, source)
	if !imported {
		ident = Identifier(path)
	}

	var edits []edit
	if !imported {
		stmt := ImportStatement(ident, specifier) + " "
		if at := outline.ImportOffset; at > 0 && source[at-1] != '\n' {
			// A hashbang runs to the end of its line.
			if strings.HasPrefix(source, "#!") && !strings.Contains(source[:at], "\n") {
				stmt = "\n" + stmt
			} else {
				stmt = " " + stmt
			}
		}
		edits = append(edits, edit{pos: outline.ImportOffset, text: stmt})
	}

	classes := 0
	for _, m := range matches {
		ce := classEdits(source, m, ident)
		classes += len(ce)
		edits = append(edits, ce...)
	}
	if imported && classes == 0 {
		return source, false, nil
	}

	out := apply(source, edits)
	if out == "" {
		return "", false, zerr.With(domain.ErrRewriteProducedNoOutput, "path", path)
	}
	return out, true, nil
}

func classEdits(source string, m Match, ident string) []edit {
	member, ok := m.Class.StaticMember(m.Binding.StyleProperty)
	if !ok {
		return []edit{{
			pos:  m.Class.BodyOpen,
			text: " static " + m.Binding.StyleProperty + " = [" + ident + "];",
		}}
	}

	init := member.Initializer
	if init == nil {
		return []edit{{pos: member.Span.End, text: " = [" + ident + "]"}}
	}

	appendSheet := m.Binding.IsAppend()

	if init.Kind == domain.InitializerArray {
		for _, el := range init.Elements {
			if strings.TrimSpace(el.Text([]byte(source))) == ident {
				return nil
			}
		}
		switch {
		case len(init.Elements) == 0:
			return []edit{{pos: init.Open, text: ident}}
		case appendSheet:
			return []edit{{pos: init.Elements[len(init.Elements)-1].End, text: ", " + ident}}
		default:
			return []edit{{pos: init.Elements[0].Start, text: ident + ", "}}
		}
	}

	if strings.TrimSpace(init.Span.Text([]byte(source))) == ident {
		return nil
	}
	if appendSheet {
		return []edit{
			{pos: init.Span.Start, text: "["},
			{pos: init.Span.End, text: ", " + ident + "]"},
		}
	}
	return []edit{
		{pos: init.Span.Start, text: "[" + ident + ", "},
		{pos: init.Span.End, text: "]"},
	}
}

// apply inserts edits back to front so earlier offsets stay valid.
// Edits at the same offset keep their relative order in the output.
func apply(source string, edits []edit) string {
	order := make([]int, len(edits))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ea, eb := edits[order[a]], edits[order[b]]
		if ea.pos != eb.pos {
			return ea.pos > eb.pos
		}
		return order[a] > order[b]
	})

	out := source
	for _, i := range order {
		e := edits[i]
		out = out[:e.pos] + e.text + out[e.pos:]
	}
	return out
}
