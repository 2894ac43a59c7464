package domain

// Span is a half-open byte range [Start, End) in a source file.
type Span struct {
	Start int
	End   int
}

// Text returns the source text covered by the span.
func (s Span) Text(src []byte) string {
	return string(src[s.Start:s.End])
}

// InitializerKind classifies the value assigned to a class field.
type InitializerKind uint8

const (
	// InitializerExpression is any value that is not an array literal.
	InitializerExpression InitializerKind = iota
	// InitializerArray is an array literal.
	InitializerArray
)

// Initializer describes the value of a class field.
type Initializer struct {
	Kind InitializerKind
	Span Span
	// Elements are the element ranges of an array literal, in source order.
	Elements []Span
	// Open is the offset right after the opening bracket of an array literal.
	Open int
}

// Member is a field declared directly in a class body.
type Member struct {
	Name   string
	Static bool
	// Span covers the member declaration without a trailing semicolon.
	Span        Span
	Initializer *Initializer
}

// Class is a class declaration found in a source file.
type Class struct {
	Name string
	Span Span
	// Heritage holds the text of every extended expression, in source order.
	Heritage []string
	// BodyOpen is the offset right after the opening brace of the class body.
	BodyOpen int
	Members  []Member
	// Nested holds class declarations found inside this class.
	Nested []Class
}

// StaticMember returns the direct static member with the given name.
func (c *Class) StaticMember(name string) (*Member, bool) {
	for i := range c.Members {
		if c.Members[i].Static && c.Members[i].Name == name {
			return &c.Members[i], true
		}
	}
	return nil, false
}

// Outline is the part of a syntax tree the auto import rewriter needs.
type Outline struct {
	// ImportOffset is where a new import declaration is inserted.
	ImportOffset int
	// Classes holds the outermost class declarations, in source order.
	Classes []Class
}
