package stylesheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/sheet/internal/engine/stylesheet"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: "``"},
		{name: "plain", in: "a{color:red}", want: "`a{color:red}`"},
		{name: "backtick", in: "a`b", want: "`a\\`b`"},
		{name: "dollar", in: "${x}", want: "`\\${x}`"},
		{name: "backslash", in: `content:"\2014"`, want: "`content:\"\\\\2014\"`"},
		{name: "newlines and unicode kept", in: "a{}\nb{content:\"ü\"}", want: "`a{}\nb{content:\"ü\"}`"},
		{name: "carriage return", in: "a{}\r\nb{}\r", want: "`a{}\\r\nb{}\\r`"},
		{name: "escaped r is not a carriage return", in: `\r`, want: "`\\\\r`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stylesheet.Escape(tt.in))
		})
	}
}

func TestEscape_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"`",
		"\\",
		"$",
		"\\`$",
		"\\\\``$$",
		"a{content:'\\`'}",
		".x::after{content:\"${not a template}\"}",
		"multi\nline\r\n\ttext",
		"\x00\xff binary",
	}

	for _, in := range inputs {
		assert.Equal(t, in, stylesheet.Unescape(stylesheet.Escape(in)), "input %q", in)
	}
}

func TestEscape_NoRawCarriageReturn(t *testing.T) {
	out := stylesheet.Escape(".a {\r\n  color: red;\r\n}\r\n")
	assert.NotContains(t, out, "\r")
	assert.Equal(t, "`.a {\\r\n  color: red;\\r\n}\\r\n`", out)
}

func TestUnescape_NotALiteral(t *testing.T) {
	assert.Equal(t, "plain", stylesheet.Unescape("plain"))
	assert.Equal(t, "`", stylesheet.Unescape("`"))
}
