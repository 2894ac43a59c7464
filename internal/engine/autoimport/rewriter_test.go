package autoimport_test

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sheet/internal/core/domain"
	"go.trai.ch/sheet/internal/engine/autoimport"
	"go.trai.ch/sheet/internal/engine/stylesheet"
)

const fooPath = "/src/foo.ts"

var stylesBinding = domain.Binding{BaseClass: "Base", StyleProperty: "styles", Position: domain.PositionPrepend}

func spanOf(t *testing.T, src, sub string) domain.Span {
	t.Helper()
	i := strings.Index(src, sub)
	require.GreaterOrEqual(t, i, 0, "%q not found", sub)
	return domain.Span{Start: i, End: i + len(sub)}
}

func classOf(t *testing.T, src string, members ...domain.Member) domain.Class {
	t.Helper()
	return domain.Class{
		Name:     "Foo",
		Span:     domain.Span{Start: strings.Index(src, "class"), End: strings.LastIndex(src, "}") + 1},
		Heritage: []string{"Base"},
		BodyOpen: strings.Index(src, "{") + 1,
		Members:  members,
	}
}

func arrayMember(t *testing.T, src, decl, array string, elements ...string) domain.Member {
	t.Helper()
	arr := spanOf(t, src, array)
	init := &domain.Initializer{Kind: domain.InitializerArray, Span: arr, Open: arr.Start + 1}
	for _, el := range elements {
		s := spanOf(t, src[arr.Start:arr.End], el)
		init.Elements = append(init.Elements, domain.Span{Start: arr.Start + s.Start, End: arr.Start + s.End})
	}
	return domain.Member{Name: "styles", Static: true, Span: spanOf(t, src, decl), Initializer: init}
}

func exprMember(t *testing.T, src, decl, expr string) domain.Member {
	t.Helper()
	span := spanOf(t, src, decl)
	e := spanOf(t, src[span.Start:span.End], expr)
	return domain.Member{
		Name:   "styles",
		Static: true,
		Span:   span,
		Initializer: &domain.Initializer{
			Kind: domain.InitializerExpression,
			Span: domain.Span{Start: span.Start + e.Start, End: span.Start + e.End},
		},
	}
}

func rewriteOne(t *testing.T, src string, class domain.Class, binding domain.Binding) (string, bool) {
	t.Helper()
	outline := &domain.Outline{Classes: []domain.Class{class}}
	matches := []autoimport.Match{{Class: &outline.Classes[0], Base: "Base", Binding: binding}}
	out, changed, err := autoimport.Rewrite(src, outline, matches, fooPath)
	require.NoError(t, err)
	return out, changed
}

func TestRewrite(t *testing.T) {
	appendBinding := stylesBinding
	appendBinding.Position = domain.PositionAppend

	tests := []struct {
		name       string
		src        string
		class      func(t *testing.T, src string) domain.Class
		binding    domain.Binding
		goldenName string
	}{
		{
			name:       "missing property",
			src:        "class Foo extends Base {}\n",
			class:      func(t *testing.T, src string) domain.Class { return classOf(t, src) },
			binding:    stylesBinding,
			goldenName: "rewrite_missing_property",
		},
		{
			name: "array prepend",
			src:  "class Foo extends Base {\n\tstatic styles = [a, b];\n}\n",
			class: func(t *testing.T, src string) domain.Class {
				return classOf(t, src, arrayMember(t, src, "static styles = [a, b]", "[a, b]", "a", "b"))
			},
			binding:    stylesBinding,
			goldenName: "rewrite_array_prepend",
		},
		{
			name: "array append",
			src:  "class Foo extends Base {\n\tstatic styles = [a, b];\n}\n",
			class: func(t *testing.T, src string) domain.Class {
				return classOf(t, src, arrayMember(t, src, "static styles = [a, b]", "[a, b]", "a", "b"))
			},
			binding:    appendBinding,
			goldenName: "rewrite_array_append",
		},
		{
			name: "empty array",
			src:  "class Foo extends Base {\n\tstatic styles = [];\n}\n",
			class: func(t *testing.T, src string) domain.Class {
				return classOf(t, src, arrayMember(t, src, "static styles = []", "[]"))
			},
			binding:    stylesBinding,
			goldenName: "rewrite_empty_array",
		},
		{
			name: "expression prepend",
			src:  "class Foo extends Base {\n\tstatic styles = X;\n}\n",
			class: func(t *testing.T, src string) domain.Class {
				return classOf(t, src, exprMember(t, src, "static styles = X", "X"))
			},
			binding:    stylesBinding,
			goldenName: "rewrite_expression_prepend",
		},
		{
			name: "expression append",
			src:  "class Foo extends Base {\n\tstatic styles = X;\n}\n",
			class: func(t *testing.T, src string) domain.Class {
				return classOf(t, src, exprMember(t, src, "static styles = X", "X"))
			},
			binding:    appendBinding,
			goldenName: "rewrite_expression_append",
		},
		{
			name: "no initializer",
			src:  "class Foo extends Base {\n\tstatic styles: CSSResultGroup;\n}\n",
			class: func(t *testing.T, src string) domain.Class {
				return classOf(t, src, domain.Member{
					Name:   "styles",
					Static: true,
					Span:   spanOf(t, src, "static styles: CSSResultGroup"),
				})
			},
			binding:    stylesBinding,
			goldenName: "rewrite_no_initializer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, changed := rewriteOne(t, tt.src, tt.class(t, tt.src), tt.binding)
			require.True(t, changed)
			assert.Equal(t, strings.Count(tt.src, "\n"), strings.Count(out, "\n"), "line count must be preserved")

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, []byte(out))
		})
	}
}

func TestRewrite_ImportIsRecognizedByScanner(t *testing.T) {
	src := "class Foo extends Base {}\n"
	out, _ := rewriteOne(t, src, classOf(t, src), stylesBinding)

	assert.True(t, stylesheet.HasSheetImport("./foo.css", out))
	ident, ok := stylesheet.SheetImportBinding("./foo.css", out)
	require.True(t, ok)
	assert.Equal(t, "foo_styles", ident)
}

func TestRewrite_NonStaticMemberIsIgnored(t *testing.T) {
	src := "class Foo extends Base {\n\tstyles = [a];\n}\n"
	class := classOf(t, src, domain.Member{Name: "styles", Static: false, Span: spanOf(t, src, "styles = [a]")})

	out, changed := rewriteOne(t, src, class, stylesBinding)
	require.True(t, changed)
	assert.Contains(t, out, "{ static styles = [foo_styles];\n\tstyles = [a];")
}

func TestRewrite_Hashbang(t *testing.T) {
	src := "#!/usr/bin/env node\nclass Foo extends Base {}\n"
	outline := &domain.Outline{
		ImportOffset: len("#!/usr/bin/env node\n"),
		Classes:      []domain.Class{classOf(t, src)},
	}
	outline.Classes[0].BodyOpen = strings.Index(src, "{") + 1
	matches := []autoimport.Match{{Class: &outline.Classes[0], Base: "Base", Binding: stylesBinding}}

	out, changed, err := autoimport.Rewrite(src, outline, matches, fooPath)
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t,
		"#!/usr/bin/env node\nimport foo_styles from \"./foo.css\" with { type: \"css\" }; class Foo extends Base { static styles = [foo_styles];}\n",
		out,
	)
}

func TestRewrite_HashbangWithoutNewline(t *testing.T) {
	src := "#!/usr/bin/env node"
	class := domain.Class{Name: "Foo", Heritage: []string{"Base"}, BodyOpen: len(src)}
	outline := &domain.Outline{ImportOffset: len(src)}
	matches := []autoimport.Match{{Class: &class, Base: "Base", Binding: stylesBinding}}

	out, changed, err := autoimport.Rewrite(src, outline, matches, fooPath)
	require.NoError(t, err)
	require.True(t, changed)
	assert.True(t, strings.HasPrefix(out, "#!/usr/bin/env node\nimport foo_styles"))
}

func TestRewrite_DirectiveOnSameLine(t *testing.T) {
	src := "\"use client\"; class Foo extends Base {}\n"
	outline := &domain.Outline{
		ImportOffset: len("\"use client\";"),
		Classes:      []domain.Class{classOf(t, src)},
	}
	matches := []autoimport.Match{{Class: &outline.Classes[0], Base: "Base", Binding: stylesBinding}}

	out, changed, err := autoimport.Rewrite(src, outline, matches, fooPath)
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t,
		"\"use client\"; import foo_styles from \"./foo.css\" with { type: \"css\" };  class Foo extends Base { static styles = [foo_styles];}\n",
		out,
	)
}

func TestRewrite_AlreadyRewritten(t *testing.T) {
	src := "import foo_styles from \"./foo.css\" with { type: \"css\" }; class Foo extends Base {\n\tstatic styles = [foo_styles, a];\n}\n"
	class := classOf(t, src, arrayMember(t, src, "static styles = [foo_styles, a]", "[foo_styles, a]", "foo_styles", "a"))
	class.BodyOpen = strings.Index(src, "Base {") + len("Base {")

	out, changed := rewriteOne(t, src, class, stylesBinding)
	assert.False(t, changed)
	assert.Equal(t, src, out)
}

func TestRewrite_ReusesExistingImportBinding(t *testing.T) {
	src := "import sheet from './foo.css' assert { type: 'css' };\nclass Foo extends Base {}\n"
	class := classOf(t, src)
	class.BodyOpen = strings.Index(src, "Base {") + len("Base {")

	out, changed := rewriteOne(t, src, class, stylesBinding)
	require.True(t, changed)
	assert.Equal(t, "import sheet from './foo.css' assert { type: 'css' };\nclass Foo extends Base { static styles = [sheet];}\n", out)
}

func TestRewrite_ExpressionAlreadyReferencesSheet(t *testing.T) {
	src := "class Foo extends Base {\n\tstatic styles = foo_styles;\n}\n"
	class := classOf(t, src, exprMember(t, src, "static styles = foo_styles", "foo_styles"))

	out, changed := rewriteOne(t, src, class, stylesBinding)
	require.True(t, changed, "the import is still missing")
	assert.Equal(t, 1, strings.Count(out, "foo_styles;"))
	assert.True(t, strings.HasPrefix(out, "import foo_styles from \"./foo.css\""))
}

func TestRewrite_MultipleClasses(t *testing.T) {
	src := "class A extends Base {}\nclass B extends Base {}\n"
	first := strings.Index(src, "{") + 1
	second := strings.LastIndex(src, "{") + 1
	outline := &domain.Outline{Classes: []domain.Class{
		{Name: "A", Heritage: []string{"Base"}, BodyOpen: first},
		{Name: "B", Heritage: []string{"Base"}, BodyOpen: second},
	}}
	matches := []autoimport.Match{
		{Class: &outline.Classes[0], Base: "Base", Binding: stylesBinding},
		{Class: &outline.Classes[1], Base: "Base", Binding: domain.Binding{BaseClass: "Base", StyleProperty: "sheets"}},
	}

	out, changed, err := autoimport.Rewrite(src, outline, matches, fooPath)
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, 1, strings.Count(out, "import foo_styles"))
	assert.Contains(t, out, "class A extends Base { static styles = [foo_styles];}\n")
	assert.Contains(t, out, "class B extends Base { static sheets = [foo_styles];}\n")
}

func TestRewrite_NoMatches(t *testing.T) {
	out, changed, err := autoimport.Rewrite("class A {}", &domain.Outline{}, nil, fooPath)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "class A {}", out)
}
