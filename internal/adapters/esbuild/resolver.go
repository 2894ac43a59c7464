package esbuild

import (
	"context"
	"path/filepath"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/sheet/internal/core/ports"
)

// resolving marks nested resolutions started by the plugin so its own
// OnResolve callback does not handle them again.
type resolving struct{}

var _ ports.HostResolver = (*hostResolver)(nil)

// hostResolver resolves specifiers through esbuild's resolver.
type hostResolver struct {
	build api.PluginBuild
}

func (r *hostResolver) Resolve(_ context.Context, specifier, importer string) (string, bool) {
	res := r.build.Resolve(specifier, api.ResolveOptions{
		Importer:   importer,
		ResolveDir: filepath.Dir(importer),
		Kind:       api.ResolveJSImportStatement,
		PluginData: resolving{},
	})
	if len(res.Errors) > 0 || res.External || res.Path == "" {
		return "", false
	}
	return res.Path, true
}
