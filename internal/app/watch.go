package app

import (
	"context"
	"fmt"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/sheet/internal/adapters/esbuild"
	"go.trai.ch/sheet/internal/adapters/watcher"
	"go.trai.ch/sheet/internal/core/domain"
	"go.trai.ch/sheet/internal/engine/pipeline"
	"go.trai.ch/sheet/internal/engine/stylesheet"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Watch builds the configured entry points and rebuilds them whenever a file
// under the project root changes, until ctx is cancelled.
func (a *App) Watch(ctx context.Context, opts BuildOptions) error {
	a.configureLogging(opts.LogFormat)

	cfg, err := a.loadBuildConfig(opts)
	if err != nil {
		return err
	}

	a.setupTelemetry()
	// One plugin session spans every rebuild of the context.
	var sessions pipeline.Group
	plugin := esbuild.NewPlugin(ctx, cfg.Options, a.pipelineDeps(stylesheet.NewMinifyCache()), sessions.Add)

	bctx, ctxErr := api.Context(buildOptions(cfg, plugin))
	if ctxErr != nil {
		for _, msg := range ctxErr.Errors {
			a.logger.Error(zerr.New(formatMessage(msg)))
		}
		return zerr.With(domain.ErrBuildFailed, "errors", len(ctxErr.Errors))
	}
	defer func() {
		bctx.Dispose()
		sessions.End()
	}()

	w, err := a.watchers(a.logger, cfg.Outdir)
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	defer func() { _ = w.Stop() }()

	if err := w.Start(ctx, cfg.Root); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "root", cfg.Root)
	}

	a.rebuild(bctx, cfg)
	a.logger.Info("watching for changes in " + cfg.Root)

	// A pending rebuild already covers every later change.
	changed := make(chan []string, 1)
	deb := watcher.NewDebouncer(a.debounce, func(paths []string) {
		select {
		case changed <- paths:
		default:
		}
	})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for event := range w.Events() {
			deb.Add(event.Path)
		}
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case paths := <-changed:
				a.logger.Info(fmt.Sprintf("%s changed, rebuilding", plural(len(paths), "file")))
				a.rebuild(bctx, cfg)
			}
		}
	})

	return g.Wait()
}

// rebuild runs one incremental build. Failures are logged and watching goes on.
func (a *App) rebuild(bctx api.BuildContext, cfg *domain.Config) {
	if err := a.report(bctx.Rebuild(), cfg); err != nil {
		a.logger.Error(err)
	}
}
