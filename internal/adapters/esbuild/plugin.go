// Package esbuild adapts the stylesheet pipeline to esbuild's plugin API.
package esbuild

import (
	"context"
	"os"
	"path/filepath"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/sheet/internal/core/domain"
	"go.trai.ch/sheet/internal/engine/autoimport"
	"go.trai.ch/sheet/internal/engine/pipeline"
)

// NewPlugin returns the esbuild plugin. Every Setup call, that is every build
// or build context, starts a new pipeline session. onSession, when non-nil,
// receives each new pipeline.
func NewPlugin(
	ctx context.Context,
	opts domain.Options,
	deps pipeline.Deps,
	onSession func(*pipeline.Pipeline),
) api.Plugin {
	return api.Plugin{
		Name: domain.PluginName,
		Setup: func(build api.PluginBuild) {
			p := pipeline.New(opts, deps)
			if onSession != nil {
				onSession(p)
			}
			setup(ctx, build, p)
		},
	}
}

func setup(ctx context.Context, build api.PluginBuild, p *pipeline.Pipeline) {
	host := &hostResolver{build: build}

	build.OnResolve(api.OnResolveOptions{Filter: domain.SheetFilter, Namespace: "file"},
		func(args api.OnResolveArgs) (api.OnResolveResult, error) {
			if _, nested := args.PluginData.(resolving); nested {
				return api.OnResolveResult{}, nil
			}
			id, ok, err := p.ResolveID(ctx, host, args.Path, args.Importer)
			if err != nil {
				return api.OnResolveResult{Errors: []api.Message{message(err, args.Importer)}}, nil
			}
			if !ok {
				return api.OnResolveResult{}, nil
			}
			return api.OnResolveResult{Path: id, Namespace: domain.Namespace}, nil
		})

	build.OnLoad(api.OnLoadOptions{Filter: `.*`, Namespace: domain.Namespace},
		func(args api.OnLoadArgs) (api.OnLoadResult, error) {
			res, ok, err := p.Load(ctx, args.Path)
			if err != nil {
				return api.OnLoadResult{Errors: []api.Message{message(err, args.Path)}}, nil
			}
			if !ok {
				return api.OnLoadResult{}, nil
			}
			return api.OnLoadResult{
				Contents:   &res.Contents,
				Loader:     api.LoaderJS,
				ResolveDir: filepath.Dir(res.RealPath),
				WatchFiles: res.WatchFiles,
			}, nil
		})

	if p.Session().Options.AutoImport.Enabled() {
		build.OnLoad(api.OnLoadOptions{Filter: domain.SourceFilter, Namespace: "file"},
			func(args api.OnLoadArgs) (api.OnLoadResult, error) {
				return transform(ctx, p, args.Path)
			})
	}

	build.OnDispose(p.End)
}

// transform runs the auto import rewriter as the file loader. Unchanged files
// are left to esbuild's default loader.
func transform(ctx context.Context, p *pipeline.Pipeline, path string) (api.OnLoadResult, error) {
	code, err := os.ReadFile(path) //nolint:gosec // path comes from esbuild
	if err != nil {
		return api.OnLoadResult{}, nil //nolint:nilerr // esbuild reports the read failure itself
	}

	res, err := p.Transform(ctx, string(code), path)
	if err != nil {
		return api.OnLoadResult{Errors: []api.Message{message(err, path)}}, nil
	}
	if res.State != autoimport.Rewritten {
		return api.OnLoadResult{}, nil
	}
	return api.OnLoadResult{
		Contents:   &res.Code,
		Loader:     LoaderFor(path),
		ResolveDir: filepath.Dir(path),
	}, nil
}

// LoaderFor returns the esbuild loader for a source file extension.
func LoaderFor(path string) api.Loader {
	switch filepath.Ext(path) {
	case ".ts", ".mts":
		return api.LoaderTS
	case ".tsx", ".mtsx":
		return api.LoaderTSX
	case ".jsx", ".mjsx":
		return api.LoaderJSX
	default:
		return api.LoaderJS
	}
}

func message(err error, file string) api.Message {
	return api.Message{
		PluginName: domain.PluginName,
		Text:       err.Error(),
		Location:   &api.Location{File: file},
	}
}
