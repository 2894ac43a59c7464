// Package importsheet provides an esbuild plugin that turns
// `import sheet from "./a.css" with { type: "css" }` into a constructable
// CSSStyleSheet module, and optionally injects sibling stylesheets into
// classes extending configured base classes.
//
//	result := api.Build(api.BuildOptions{
//		EntryPoints: []string{"src/main.ts"},
//		Bundle:      true,
//		Plugins:     []api.Plugin{importsheet.New(importsheet.DefaultOptions())},
//	})
package importsheet

import (
	"context"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/sheet/internal/adapters/csstransform"
	"go.trai.ch/sheet/internal/adapters/esbuild"
	"go.trai.ch/sheet/internal/adapters/fs"
	"go.trai.ch/sheet/internal/adapters/logger"
	"go.trai.ch/sheet/internal/adapters/telemetry"
	"go.trai.ch/sheet/internal/adapters/treesitter"
	"go.trai.ch/sheet/internal/core/domain"
	"go.trai.ch/sheet/internal/core/ports"
	"go.trai.ch/sheet/internal/engine/pipeline"
	"go.trai.ch/sheet/internal/engine/stylesheet"
)

type (
	// Options configures the plugin.
	Options = domain.Options
	// AutoImport holds the ordered auto import bindings.
	AutoImport = domain.AutoImport
	// Binding maps a base class to the static property receiving the sheet.
	Binding = domain.Binding
	// Position is where an auto imported sheet goes in an existing style list.
	Position = domain.Position
	// Mode names the kind of build session.
	Mode = domain.Mode
	// Transformer rewrites stylesheet text before it is minified.
	Transformer = domain.Transformer
	// Logger receives the plugin's log output.
	Logger = ports.Logger
)

const (
	// Prepend places the sheet first in an existing style list.
	Prepend = domain.PositionPrepend
	// Append places the sheet last in an existing style list.
	Append = domain.PositionAppend
	// Production is the default mode.
	Production = domain.ModeProduction
	// Development disables the minification report.
	Development = domain.ModeDevelopment
	// PluginName is the esbuild plugin name.
	PluginName = domain.PluginName
	// VirtualNamespace is the esbuild namespace of generated stylesheet modules.
	VirtualNamespace = domain.Namespace
)

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return domain.DefaultOptions()
}

// Builtin returns the built-in transformer with the given name.
func Builtin(name string) (Transformer, error) {
	return csstransform.Lookup(name)
}

type settings struct {
	ctx    context.Context
	logger Logger
}

// Option customizes New.
type Option func(*settings)

// WithLogger routes log output to l instead of stderr.
func WithLogger(l Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithContext sets the context passed to the plugin hooks.
// Cancelling it aborts source parsing.
func WithContext(ctx context.Context) Option {
	return func(s *settings) { s.ctx = ctx }
}

// New returns the esbuild plugin configured by opts. Every build, or build
// context, gets its own session. Minified stylesheets are memoized across them.
//
// The minification summary of a session is logged when esbuild disposes it,
// which happens on a separate goroutine after api.Build returns. Use
// NewWithEnd to log it before the process exits.
func New(opts Options, options ...Option) api.Plugin {
	return newPlugin(opts, options, nil)
}

// NewWithEnd is like New and also returns end, which logs the summary of
// every session started so far. Call it after api.Build returns or after
// BuildContext.Dispose.
func NewWithEnd(opts Options, options ...Option) (plugin api.Plugin, end func()) {
	var sessions pipeline.Group
	return newPlugin(opts, options, sessions.Add), sessions.End
}

func newPlugin(opts Options, options []Option, onSession func(*pipeline.Pipeline)) api.Plugin {
	s := settings{ctx: context.Background()}
	for _, o := range options {
		o(&s)
	}
	if s.logger == nil {
		s.logger = logger.New()
	}

	return esbuild.NewPlugin(s.ctx, opts, pipeline.Deps{
		FS:          fs.NewOSFS(),
		Minifier:    esbuild.NewMinifier(),
		Parser:      treesitter.NewParser(),
		Logger:      s.logger,
		Tracer:      telemetry.NewOTelTracer(domain.PluginName),
		MinifyCache: stylesheet.NewMinifyCache(),
	}, onSession)
}
