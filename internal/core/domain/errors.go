package domain

import "go.trai.ch/zerr"

var (
	// ErrImporterReadFailed is returned when the source of a module importing a stylesheet cannot be read.
	ErrImporterReadFailed = zerr.New("failed to read importer source")

	// ErrStylesheetReadFailed is returned when the stylesheet behind a virtual module cannot be read.
	ErrStylesheetReadFailed = zerr.New("failed to read stylesheet")

	// ErrMinifyFailed is returned by minifiers when a stylesheet cannot be minified.
	ErrMinifyFailed = zerr.New("failed to minify css sheet")

	// ErrParseFailed is returned when a source file cannot be parsed into a syntax tree.
	ErrParseFailed = zerr.New("failed to parse source file")

	// ErrRewriteProducedNoOutput is returned when rewriting a matched file yields no source text.
	ErrRewriteProducedNoOutput = zerr.New("auto import rewrite produced no output")

	// ErrInvalidPosition is returned when an auto import binding names an unknown insertion position.
	ErrInvalidPosition = zerr.New("invalid position, expected 'prepend' or 'append'")

	// ErrInvalidBinding is returned when an auto import binding lacks a class name or
	// names a style property that is not an identifier.
	ErrInvalidBinding = zerr.New("invalid autoImport binding, expected a className and an identifier styleName")

	// ErrUnknownTransformer is returned when the configuration names a transformer that does not exist.
	ErrUnknownTransformer = zerr.New("unknown transformer")

	// ErrInvalidMode is returned when the configured build mode is not recognised.
	ErrInvalidMode = zerr.New("invalid mode, expected 'development' or 'production'")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no config file can be found.
	ErrConfigNotFound = zerr.New("could not find " + ConfigFileName)

	// ErrNoEntryPoints is returned when a build is requested without entry points.
	ErrNoEntryPoints = zerr.New("no entry points specified")

	// ErrBuildFailed is returned when esbuild reports errors for a build.
	ErrBuildFailed = zerr.New("build failed")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to start watcher")
)
