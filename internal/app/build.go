package app

import (
	"context"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/sheet/internal/adapters/esbuild"
	"go.trai.ch/sheet/internal/engine/pipeline"
	"go.trai.ch/sheet/internal/engine/stylesheet"
)

// Build bundles the configured entry points once.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	a.configureLogging(opts.LogFormat)

	cfg, err := a.loadBuildConfig(opts)
	if err != nil {
		return err
	}

	a.setupTelemetry()
	var sessions pipeline.Group
	plugin := esbuild.NewPlugin(ctx, cfg.Options, a.pipelineDeps(stylesheet.NewMinifyCache()), sessions.Add)

	result := api.Build(buildOptions(cfg, plugin))
	sessions.End()
	return a.report(result, cfg)
}
