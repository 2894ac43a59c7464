package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/sheet/internal/ui/output"
	"go.trai.ch/sheet/internal/ui/style"
)

// PrettyHandler is a slog.Handler writing one colored line per record:
// the level mark, the message, then key=value pairs.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	// prefix is the dotted group path applied to later attributes.
	prefix string
	// attrs are the pairs added by WithAttrs, already rendered.
	attrs []string
}

// NewPrettyHandler creates a PrettyHandler writing to w, or os.Stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &PrettyHandler{out: output.New(w), level: level}
}

// Enabled reports whether records at level are written.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes r.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	mark := style.ForLevel(r.Level)

	var line strings.Builder
	line.WriteString(mark.Prefix(r.Message))
	for _, pair := range h.attrs {
		line.WriteString(" " + pair)
	}
	r.Attrs(func(a slog.Attr) bool {
		for _, pair := range render(h.prefix, a) {
			line.WriteString(" " + pair)
		}
		return true
	})

	colored := h.out.String(line.String()).Foreground(h.out.Color(string(mark.Color)))
	_, err := h.out.WriteString(colored.String() + "\n")
	return err
}

// WithAttrs returns a handler that writes attrs on every line.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append([]string(nil), h.attrs...)
	for _, a := range attrs {
		next.attrs = append(next.attrs, render(h.prefix, a)...)
	}
	return &next
}

// WithGroup returns a handler that qualifies later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = join(h.prefix, name)
	return &next
}

// render flattens a into key=value pairs. Group attributes expand to one pair
// per member; empty attributes render nothing.
func render(prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return nil
	}
	if a.Value.Kind() != slog.KindGroup {
		return []string{join(prefix, a.Key) + "=" + a.Value.String()}
	}

	var pairs []string
	for _, member := range a.Value.Group() {
		pairs = append(pairs, render(join(prefix, a.Key), member)...)
	}
	return pairs
}

func join(prefix, key string) string {
	switch {
	case prefix == "":
		return key
	case key == "":
		return prefix
	default:
		return prefix + "." + key
	}
}
