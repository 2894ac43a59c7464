package esbuild_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sheet/internal/adapters/esbuild"
	"go.trai.ch/sheet/internal/adapters/fs"
	"go.trai.ch/sheet/internal/adapters/telemetry"
	"go.trai.ch/sheet/internal/adapters/treesitter"
	"go.trai.ch/sheet/internal/core/domain"
	"go.trai.ch/sheet/internal/core/ports/mocks"
	"go.trai.ch/sheet/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func bundle(t *testing.T, entry string, opts domain.Options, deps pipeline.Deps) (string, *pipeline.Pipeline, api.BuildResult) {
	t.Helper()

	var sessions []*pipeline.Pipeline
	plugin := esbuild.NewPlugin(context.Background(), opts, deps, func(p *pipeline.Pipeline) {
		sessions = append(sessions, p)
	})

	result := api.Build(api.BuildOptions{
		EntryPoints: []string{entry},
		Bundle:      true,
		Write:       false,
		Format:      api.FormatESModule,
		LogLevel:    api.LogLevelSilent,
		Outdir:      filepath.Join(filepath.Dir(entry), "dist"),
		Plugins:     []api.Plugin{plugin},
	})
	require.Len(t, sessions, 1)

	var out strings.Builder
	for _, f := range result.OutputFiles {
		out.Write(f.Contents)
	}
	return out.String(), sessions[0], result
}

func newDeps(t *testing.T) pipeline.Deps {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	return pipeline.Deps{
		FS:       fs.NewOSFS(),
		Minifier: esbuild.NewMinifier(),
		Parser:   treesitter.NewParser(),
		Logger:   logger,
		Tracer:   telemetry.NewNoOpTracer(),
	}
}

func TestPlugin_SheetImport(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"main.js": `import sheet from "./a.css" with { type: "css" };` + "\n" +
			"document.adoptedStyleSheets = [sheet];\n",
		"a.css": ".a {\n  display: block;\n}\n",
	})

	out, p, result := bundle(t, filepath.Join(dir, "main.js"), domain.DefaultOptions(), newDeps(t))
	require.Empty(t, result.Errors)

	assert.Contains(t, out, "new CSSStyleSheet()")
	assert.Contains(t, out, ".a{display:block}")
	assert.Equal(t, 1, p.Session().Modules.Len())
	assert.Positive(t, p.Session().Stats.Saved())
}

func TestPlugin_PlainCSSImportIsIgnored(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"main.js": `import "./a.css";` + "\n",
		"a.css":   ".a { display: block; }\n",
	})

	out, p, result := bundle(t, filepath.Join(dir, "main.js"), domain.DefaultOptions(), newDeps(t))
	require.Empty(t, result.Errors)

	assert.NotContains(t, out, "CSSStyleSheet")
	assert.Equal(t, 0, p.Session().Modules.Len())
}

func TestPlugin_AutoImport(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"lit.ts":     "export class LitElement {}\n",
		"button.ts":  "import { LitElement } from \"./lit\";\n\nexport class Button extends LitElement {}\n",
		"button.css": ".button {\n  display: block;\n}\n",
		"main.ts":    "import { Button } from \"./button\";\nconsole.log(Button);\n",
	})

	opts := domain.DefaultOptions()
	opts.AutoImport = &domain.AutoImport{Bindings: []domain.Binding{
		{BaseClass: "LitElement", StyleProperty: "styles", Position: domain.PositionPrepend},
	}}

	out, p, result := bundle(t, filepath.Join(dir, "main.ts"), opts, newDeps(t))
	require.Empty(t, result.Errors)

	assert.Contains(t, out, "new CSSStyleSheet()")
	assert.Contains(t, out, ".button{display:block}")
	assert.Contains(t, out, "styles")

	cached, ok := p.Session().Sources.Get(filepath.Join(dir, "button.ts"))
	require.True(t, ok)
	assert.Contains(t, cached, `import button_styles from "./button.css" with { type: "css" };`)
	assert.Contains(t, cached, "static styles = [button_styles];")
}

func TestPlugin_MissingStylesheet(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"main.js": `import sheet from "./missing.css" with { type: "css" };` + "\nconsole.log(sheet);\n",
	})

	_, _, result := bundle(t, filepath.Join(dir, "main.js"), domain.DefaultOptions(), newDeps(t))
	assert.NotEmpty(t, result.Errors)
}

func TestLoaderFor(t *testing.T) {
	cases := map[string]api.Loader{
		"a.ts":   api.LoaderTS,
		"a.mts":  api.LoaderTS,
		"a.tsx":  api.LoaderTSX,
		"a.jsx":  api.LoaderJSX,
		"a.js":   api.LoaderJS,
		"a.mjs":  api.LoaderJS,
		"a.mjsx": api.LoaderJSX,
	}
	for path, want := range cases {
		assert.Equal(t, want, esbuild.LoaderFor(path), path)
	}
}

func TestPlugin_GroupEndsSessionBeforeReturning(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"main.js": `import sheet from "./a.css" with { type: "css" };` + "\nconsole.log(sheet);\n",
		"a.css":   ".a {\n  display: block;\n}\n",
	})

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	var infos []string
	logger.EXPECT().Info(gomock.Any()).Do(func(msg string) { infos = append(infos, msg) }).Times(1)

	deps := newDeps(t)
	deps.Logger = logger

	var sessions pipeline.Group
	plugin := esbuild.NewPlugin(context.Background(), domain.DefaultOptions(), deps, sessions.Add)
	result := api.Build(api.BuildOptions{
		EntryPoints: []string{filepath.Join(dir, "main.js")},
		Bundle:      true,
		Write:       false,
		LogLevel:    api.LogLevelSilent,
		Outdir:      filepath.Join(dir, "dist"),
		Plugins:     []api.Plugin{plugin},
	})
	require.Empty(t, result.Errors)

	sessions.End()
	require.Len(t, infos, 1)
	assert.True(t, strings.HasPrefix(infos[0], "minified css sheets by"), infos[0])
}
