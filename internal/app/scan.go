package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/xlab/treeprint"
	"go.trai.ch/sheet/internal/engine/autoimport"
	"go.trai.ch/sheet/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// ScanOptions configuration for the Scan method.
type ScanOptions struct {
	// ConfigPath is a config file or the directory to search from. Defaults to ".".
	ConfigPath string
	LogFormat  string
}

// Scan prints which classes of files would receive their sibling stylesheet.
// Nothing is rewritten.
func (a *App) Scan(ctx context.Context, out io.Writer, files []string, opts ScanOptions) error {
	a.configureLogging(opts.LogFormat)

	cfg, err := a.loadConfig(BuildOptions{ConfigPath: opts.ConfigPath})
	if err != nil {
		return err
	}

	p := pipeline.New(cfg.Options, a.pipelineDeps(nil))
	tree := treeprint.NewWithRoot(cfg.Root)

	for _, file := range files {
		path, err := filepath.Abs(file)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve file"), "path", file)
		}

		code, err := a.fs.ReadFile(path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
		}

		res, err := p.Scan(ctx, code, path)
		if err != nil {
			return zerr.With(err, "path", path)
		}

		addScanResult(tree, relativeTo(cfg.Root, path), res)
	}

	_, err = io.WriteString(out, tree.String())
	return err
}

func addScanResult(tree treeprint.Tree, name string, res *autoimport.ScanResult) {
	switch {
	case !res.Applicable:
		tree.AddMetaNode("skipped", name)
	case len(res.Matches) == 0:
		tree.AddMetaNode("no match", name)
	default:
		branch := tree.AddMetaBranch(matchCount(len(res.Matches)), name)
		ident := autoimport.Identifier(name)
		for _, m := range res.Matches {
			branch.AddNode(fmt.Sprintf("%s extends %s: static %s (%s) <- %s",
				className(m.Class.Name), m.Base, m.Binding.StyleProperty, m.Binding.Position, ident))
		}
	}
}

func className(name string) string {
	if name == "" {
		return "<anonymous>"
	}
	return name
}

func matchCount(n int) string {
	if n == 1 {
		return "1 match"
	}
	return fmt.Sprintf("%d matches", n)
}
