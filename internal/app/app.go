// Package app implements the application layer for sheet.
package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/evanw/esbuild/pkg/api"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/sheet/internal/adapters/detector"
	"go.trai.ch/sheet/internal/adapters/telemetry"
	"go.trai.ch/sheet/internal/adapters/watcher"
	"go.trai.ch/sheet/internal/core/domain"
	"go.trai.ch/sheet/internal/core/ports"
	"go.trai.ch/sheet/internal/engine/pipeline"
	"go.trai.ch/sheet/internal/engine/stylesheet"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	fs           ports.FileSystem
	minifier     ports.Minifier
	parser       ports.SourceParser
	tracer       ports.Tracer
	recorder     *telemetry.Recorder
	watchers     watcher.Factory
	detector     *detector.Node
	debounce     time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	fs ports.FileSystem,
	minifier ports.Minifier,
	parser ports.SourceParser,
	tracer ports.Tracer,
	recorder *telemetry.Recorder,
	watchers watcher.Factory,
	det *detector.Node,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		fs:           fs,
		minifier:     minifier,
		parser:       parser,
		tracer:       tracer,
		recorder:     recorder,
		watchers:     watchers,
		detector:     det,
		debounce:     watcher.DefaultDebounceWindow,
	}
}

// WithDebounceWindow sets how long watch mode waits for more changes before rebuilding.
func (a *App) WithDebounceWindow(d time.Duration) *App {
	a.debounce = d
	return a
}

// BuildOptions configuration for the Build and Watch methods.
type BuildOptions struct {
	// ConfigPath is a config file or the directory to search from. Defaults to ".".
	ConfigPath string
	Mode       string
	NoMinify   bool
	Outdir     string
	LogFormat  string
}

func (a *App) configureLogging(flag string) {
	if a.detector == nil {
		return
	}
	format := a.detector.Detect(flag)
	if l, ok := a.logger.(interface{ SetJSON(enable bool) }); ok {
		l.SetJSON(format == detector.FormatJSON)
	}
}

// loadConfig loads the configuration and applies the command line overrides.
func (a *App) loadConfig(opts BuildOptions) (*domain.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve config path"), "path", path)
	}

	cfg, err := a.configLoader.Load(abs)
	if err != nil {
		return nil, err
	}

	if opts.Mode != "" {
		mode, err := domain.ParseMode(opts.Mode)
		if err != nil {
			return nil, err
		}
		cfg.Options.Mode = mode
	}
	if opts.NoMinify {
		cfg.Options.Minify = false
	}
	if opts.Outdir != "" {
		outdir, err := filepath.Abs(opts.Outdir)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to resolve outdir"), "path", opts.Outdir)
		}
		cfg.Outdir = outdir
	}
	return cfg, nil
}

func (a *App) loadBuildConfig(opts BuildOptions) (*domain.Config, error) {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, err
	}
	if len(cfg.EntryPoints) == 0 {
		return nil, zerr.With(domain.ErrNoEntryPoints, "root", cfg.Root)
	}
	return cfg, nil
}

func (a *App) pipelineDeps(cache *stylesheet.MinifyCache) pipeline.Deps {
	return pipeline.Deps{
		FS:          a.fs,
		Minifier:    a.minifier,
		Parser:      a.parser,
		Logger:      a.logger,
		Tracer:      a.tracer,
		MinifyCache: cache,
	}
}

// setupTelemetry installs the span recorder as the global OTel span processor.
func (a *App) setupTelemetry() {
	if a.recorder == nil {
		return
	}
	a.recorder.Reset()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(a.recorder)))
}

func buildOptions(cfg *domain.Config, plugin api.Plugin) api.BuildOptions {
	opts := api.BuildOptions{
		AbsWorkingDir: cfg.Root,
		EntryPoints:   cfg.EntryPoints,
		Outdir:        cfg.Outdir,
		Bundle:        true,
		Write:         true,
		Format:        api.FormatESModule,
		LogLevel:      api.LogLevelSilent,
		Plugins:       []api.Plugin{plugin},
	}
	if cfg.Options.IsDevelopment() {
		opts.Sourcemap = api.SourceMapLinked
	}
	return opts
}

// report logs the messages of a build result and the per hook span counts.
func (a *App) report(result api.BuildResult, cfg *domain.Config) error {
	for _, msg := range result.Warnings {
		a.logger.Warn(formatMessage(msg))
	}
	for _, msg := range result.Errors {
		a.logger.Error(zerr.New(formatMessage(msg)))
	}
	if len(result.Errors) > 0 {
		return zerr.With(domain.ErrBuildFailed, "errors", len(result.Errors))
	}

	if a.recorder != nil {
		for _, c := range a.recorder.Counts() {
			a.logger.Info(fmt.Sprintf("%s: %d calls, %d handled, %d failed", c.Name, c.Calls, c.Handled, c.Failed))
		}
		a.recorder.Reset()
	}

	a.logger.Info(fmt.Sprintf("built %s into %s", plural(len(cfg.EntryPoints), "entry point"), relativeTo(cfg.Root, cfg.Outdir)))
	return nil
}

func formatMessage(msg api.Message) string {
	text := msg.Text
	if msg.PluginName != "" {
		text = "[" + msg.PluginName + "] " + text
	}
	if msg.Location == nil {
		return text
	}
	if msg.Location.Line == 0 {
		return fmt.Sprintf("%s: %s", msg.Location.File, text)
	}
	return fmt.Sprintf("%s:%d:%d: %s", msg.Location.File, msg.Location.Line, msg.Location.Column, text)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func relativeTo(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
