package domain

import "go.trai.ch/zerr"

// Position controls where an auto imported sheet is placed in an existing style list.
type Position string

const (
	// PositionPrepend inserts the sheet as the first element. It is the default.
	PositionPrepend Position = "prepend"
	// PositionAppend inserts the sheet as the last element.
	PositionAppend Position = "append"
)

// ParsePosition converts a configuration value into a Position.
// An empty value selects PositionPrepend.
func ParsePosition(s string) (Position, error) {
	switch Position(s) {
	case "", PositionPrepend:
		return PositionPrepend, nil
	case PositionAppend:
		return PositionAppend, nil
	default:
		return "", zerr.With(ErrInvalidPosition, "position", s)
	}
}

// Binding maps a base class name to the static property that receives the auto imported sheet.
type Binding struct {
	// BaseClass is compared textually against the extends clause of each class.
	BaseClass string
	// StyleProperty is the static property holding the style list.
	StyleProperty string
	// Position is where the sheet is placed in the style list.
	Position Position
}

// IsAppend reports whether the binding places the sheet after existing styles.
func (b Binding) IsAppend() bool {
	return b.Position == PositionAppend
}

// AutoImport holds the ordered auto import bindings.
type AutoImport struct {
	Bindings []Binding
}

// Lookup returns the first binding for the given base class name.
// Bindings are not required to be unique; the first one in list order wins.
func (a *AutoImport) Lookup(baseClass string) (Binding, bool) {
	if a == nil {
		return Binding{}, false
	}
	for _, b := range a.Bindings {
		if b.BaseClass == baseClass {
			return b, true
		}
	}
	return Binding{}, false
}

// Enabled reports whether at least one binding is configured.
func (a *AutoImport) Enabled() bool {
	return a != nil && len(a.Bindings) > 0
}
