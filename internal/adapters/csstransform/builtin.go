// Package csstransform provides the built-in stylesheet transformers selectable by name.
package csstransform

import (
	"io"
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.trai.ch/sheet/internal/core/domain"
	"go.trai.ch/zerr"
)

var builtins = map[string]domain.Transformer{
	"strip-comments": StripComments,
	"trim":           Trim,
}

// Lookup returns the built-in transformer with the given name.
func Lookup(name string) (domain.Transformer, error) {
	t, ok := builtins[name]
	if !ok {
		return nil, zerr.With(zerr.With(domain.ErrUnknownTransformer, "name", name), "known", strings.Join(Names(), ", "))
	}
	return t, nil
}

// Resolve looks up every name in order.
func Resolve(names []string) ([]domain.Transformer, error) {
	out := make([]domain.Transformer, 0, len(names))
	for _, name := range names {
		t, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// Names returns the sorted names of the built-in transformers.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// tokens calls fn for every token of code. It reports false when the lexer fails
// before the end of the input.
func tokens(code string, fn func(tt css.TokenType, data []byte)) bool {
	l := css.NewLexer(parse.NewInputString(code))
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			return l.Err() == io.EOF
		}
		fn(tt, data)
	}
}

// StripComments removes every comment from a stylesheet.
// Comment lookalikes inside strings and URLs are kept.
func StripComments(code, _ string) string {
	var b strings.Builder
	b.Grow(len(code))
	ok := tokens(code, func(tt css.TokenType, data []byte) {
		if tt != css.CommentToken {
			b.Write(data)
		}
	})
	if !ok {
		return code
	}
	return b.String()
}

// Trim collapses every whitespace run that spans a line break into a single
// newline and trims the stylesheet.
func Trim(code, _ string) string {
	var b strings.Builder
	b.Grow(len(code))
	ok := tokens(code, func(tt css.TokenType, data []byte) {
		if tt == css.WhitespaceToken && strings.ContainsAny(string(data), "\n\r\f") {
			b.WriteByte('\n')
			return
		}
		b.Write(data)
	})
	if !ok {
		return code
	}
	return strings.TrimSpace(b.String())
}
