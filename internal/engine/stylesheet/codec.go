// Package stylesheet turns stylesheet imports carrying a css type attribute into
// virtual modules that export a constructed style sheet.
package stylesheet

import "strings"

var (
	escaper   = strings.NewReplacer(`\`, `\\`, "`", "\\`", `$`, `\$`, "\r", `\r`)
	unescaper = strings.NewReplacer(`\\`, `\`, "\\`", "`", `\$`, `$`, `\r`, "\r")
)

// Escape returns text as a template literal. Backslashes, backticks and dollar signs
// are escaped, and carriage returns are written as \r because template literals
// normalize raw CR LF to LF. Every other character is kept as is.
func Escape(text string) string {
	return "`" + escaper.Replace(text) + "`"
}

// Unescape reverses Escape. Input that is not delimited by backticks is returned unchanged.
func Unescape(literal string) string {
	if len(literal) < 2 || literal[0] != '`' || literal[len(literal)-1] != '`' {
		return literal
	}
	return unescaper.Replace(literal[1 : len(literal)-1])
}
