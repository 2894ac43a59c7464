// Package style holds the colors and line marks of the sheet CLI output.
package style

import (
	"log/slog"

	"github.com/charmbracelet/lipgloss"
)

// Brand colors.
var (
	Slate  = lipgloss.Color("#667085")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Mark is the leading icon and the color of one kind of log line.
// Informational lines carry no icon.
type Mark struct {
	Icon  string
	Color lipgloss.Color
}

// Prefix returns msg with the icon of m in front of it.
func (m Mark) Prefix(msg string) string {
	if m.Icon == "" {
		return msg
	}
	return m.Icon + " " + msg
}

var (
	info    = Mark{Color: Slate}
	warning = Mark{Icon: "!", Color: Yellow}
	failure = Mark{Icon: "✗", Color: Red}
)

// ForLevel returns the mark for records logged at level.
func ForLevel(level slog.Level) Mark {
	switch {
	case level >= slog.LevelError:
		return failure
	case level >= slog.LevelWarn:
		return warning
	default:
		return info
	}
}
