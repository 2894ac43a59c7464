// Package treesitter implements ports.SourceParser with tree-sitter grammars.
package treesitter

import (
	"context"
	"path/filepath"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
	"go.trai.ch/sheet/internal/core/domain"
	"go.trai.ch/sheet/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceParser = (*Parser)(nil)

// Parser builds class outlines from TypeScript, TSX and JavaScript sources.
// A tree-sitter parser is created per call, so Parser is safe for concurrent use.
type Parser struct{}

// NewParser creates a Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Language returns the grammar used for path.
func Language(path string) *sitter.Language {
	switch filepath.Ext(path) {
	case ".ts", ".mts":
		return typescript.GetLanguage()
	case ".tsx", ".mtsx":
		return tsx.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}

// Parse parses src and returns its outline.
func (p *Parser) Parse(ctx context.Context, src []byte, path string) (*domain.Outline, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(Language(path))

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrParseFailed.Error()), "path", path)
	}
	defer tree.Close()

	root := tree.RootNode()
	outline := &domain.Outline{ImportOffset: importOffset(root, src)}
	collectClasses(root, src, &outline.Classes)
	return outline, nil
}

// importOffset is where an injected import goes: after a hashbang and the
// directive prologue ("use client", "use strict"), at the start of the next
// line when the last of them ends its line.
func importOffset(root *sitter.Node, src []byte) int {
	at := 0
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}
		if !(i == 0 && child.Type() == "hash_bang_line") && !isDirective(child) {
			break
		}
		at = int(child.EndByte())
	}
	if at == 0 {
		return 0
	}

	rest := at
	for rest < len(src) && (src[rest] == ' ' || src[rest] == '\t') {
		rest++
	}
	if rest < len(src) && src[rest] == '\r' {
		rest++
	}
	if rest < len(src) && src[rest] == '\n' {
		return rest + 1
	}
	return at
}

// isDirective reports whether n is a statement made of a single string literal.
func isDirective(n *sitter.Node) bool {
	return n.Type() == "expression_statement" &&
		n.NamedChildCount() == 1 &&
		n.NamedChild(0).Type() == "string"
}

func isClass(n, parent *sitter.Node) bool {
	switch n.Type() {
	case "class_declaration", "abstract_class_declaration":
		return true
	case "class":
		return parent.Type() == "export_statement"
	default:
		return false
	}
}

func collectClasses(n *sitter.Node, src []byte, out *[]domain.Class) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if !isClass(child, n) {
			collectClasses(child, src, out)
			continue
		}
		class := buildClass(child, src)
		collectClasses(child, src, &class.Nested)
		*out = append(*out, class)
	}
}

func buildClass(n *sitter.Node, src []byte) domain.Class {
	class := domain.Class{Span: span(n)}
	if name := n.ChildByFieldName("name"); name != nil {
		class.Name = name.Content(src)
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() == "class_heritage" {
			class.Heritage = heritage(child, src)
		}
	}

	if body := n.ChildByFieldName("body"); body != nil {
		class.BodyOpen = int(body.StartByte()) + 1
		class.Members = members(body, src)
	}
	return class
}

// heritage returns the extended expressions of a class_heritage node.
// TypeScript wraps them in an extends_clause; JavaScript does not.
func heritage(n *sitter.Node, src []byte) []string {
	var names []string
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "extends_clause":
			for j := 0; j < int(child.NamedChildCount()); j++ {
				expr := child.NamedChild(j)
				if expr.Type() == "type_arguments" || expr.Type() == "comment" {
					continue
				}
				names = append(names, expr.Content(src))
			}
		case "implements_clause", "comment":
		default:
			names = append(names, child.Content(src))
		}
	}
	return names
}

func members(body *sitter.Node, src []byte) []domain.Member {
	var out []domain.Member
	for i := 0; i < int(body.NamedChildCount()); i++ {
		n := body.NamedChild(i)
		if n.Type() != "public_field_definition" && n.Type() != "field_definition" {
			continue
		}

		name := n.ChildByFieldName("name")
		if name == nil {
			name = n.ChildByFieldName("property")
		}
		if name == nil || name.Type() != "property_identifier" {
			continue
		}

		m := domain.Member{
			Name:   name.Content(src),
			Static: hasStatic(n),
			Span:   span(n),
		}
		if value := n.ChildByFieldName("value"); value != nil {
			m.Initializer = initializer(value)
		}
		out = append(out, m)
	}
	return out
}

func hasStatic(n *sitter.Node) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == "static" {
			return true
		}
	}
	return false
}

func initializer(value *sitter.Node) *domain.Initializer {
	if value.Type() != "array" {
		return &domain.Initializer{Kind: domain.InitializerExpression, Span: span(value)}
	}
	init := &domain.Initializer{
		Kind: domain.InitializerArray,
		Span: span(value),
		Open: int(value.StartByte()) + 1,
	}
	for i := 0; i < int(value.NamedChildCount()); i++ {
		el := value.NamedChild(i)
		if el.Type() == "comment" {
			continue
		}
		init.Elements = append(init.Elements, span(el))
	}
	return init
}

func span(n *sitter.Node) domain.Span {
	return domain.Span{Start: int(n.StartByte()), End: int(n.EndByte())}
}
