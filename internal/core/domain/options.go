package domain

import "go.trai.ch/zerr"

// Mode names the kind of build session.
type Mode string

const (
	// ModeProduction is the default mode. Minification statistics are reported.
	ModeProduction Mode = "production"
	// ModeDevelopment is the development-style mode. Minification statistics are not collected.
	ModeDevelopment Mode = "development"
)

// ParseMode converts a configuration value into a Mode. An empty value selects ModeProduction.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeProduction:
		return ModeProduction, nil
	case ModeDevelopment:
		return ModeDevelopment, nil
	default:
		return "", zerr.With(ErrInvalidMode, "mode", s)
	}
}

// Transformer rewrites stylesheet text before it is minified.
// It receives the current text and the real path of the stylesheet.
type Transformer func(code, path string) string

// Options configures one build session of the stylesheet pipeline.
type Options struct {
	// Transformers are applied to every stylesheet in order.
	Transformers []Transformer
	// AdditionalCode lines are spliced into every generated stylesheet module.
	AdditionalCode []string
	// Minify enables the CSS minifier.
	Minify bool
	// AutoImport enables injecting sibling stylesheets into matching classes.
	AutoImport *AutoImport
	// Mode selects the session mode.
	Mode Mode
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Minify: true,
		Mode:   ModeProduction,
	}
}

// IsDevelopment reports whether the session runs in development mode.
func (o Options) IsDevelopment() bool {
	return o.Mode == ModeDevelopment
}

// Config is a fully resolved project configuration.
type Config struct {
	// Root is the absolute project root.
	Root string
	// EntryPoints are absolute paths of the bundle entry points.
	EntryPoints []string
	// Outdir is the absolute output directory.
	Outdir string
	// Options configures the stylesheet pipeline.
	Options Options
}
