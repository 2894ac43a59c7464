package stylesheet

import (
	"context"
	"strings"

	"go.trai.ch/sheet/internal/core/domain"
	"go.trai.ch/sheet/internal/core/ports"
	"go.trai.ch/sheet/internal/engine/session"
	"go.trai.ch/zerr"
)

// LoadResult is the generated module for a virtual stylesheet.
type LoadResult struct {
	// Contents is the generated module source.
	Contents string
	// RealPath is the stylesheet the module was generated from.
	RealPath string
	// WatchFiles are the files the host should watch for changes.
	WatchFiles []string
}

// Loader generates constructable style sheet modules for registered virtual modules.
type Loader struct {
	sess     *session.Session
	fs       ports.FileSystem
	minifier ports.Minifier
	cache    *MinifyCache
	logger   ports.Logger
}

// NewLoader creates a Loader. A nil cache disables minifier memoization.
func NewLoader(
	sess *session.Session,
	fs ports.FileSystem,
	minifier ports.Minifier,
	cache *MinifyCache,
	logger ports.Logger,
) *Loader {
	return &Loader{sess: sess, fs: fs, minifier: minifier, cache: cache, logger: logger}
}

// Load generates the module for id. It reports false when id is not a registered virtual module.
func (l *Loader) Load(ctx context.Context, id string) (*LoadResult, bool, error) {
	realPath, ok := l.sess.Modules.Lookup(id)
	if !ok {
		return nil, false, nil
	}

	data, err := l.fs.ReadFile(realPath)
	if err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrStylesheetReadFailed.Error()), "path", realPath)
	}

	css := string(data)
	for _, transform := range l.sess.Options.Transformers {
		css = transform(css, realPath)
	}

	if l.sess.Options.Minify {
		before := len(css)
		css = l.minify(ctx, css, realPath)
		if !l.sess.Options.IsDevelopment() {
			l.sess.Stats.Add(before, len(css))
		}
	}

	return &LoadResult{
		Contents:   Module(css, l.sess.Options.AdditionalCode),
		RealPath:   realPath,
		WatchFiles: []string{realPath},
	}, true, nil
}

func (l *Loader) minify(ctx context.Context, css, path string) string {
	if l.cache != nil {
		if out, ok := l.cache.Get(path, css); ok {
			return out
		}
	}

	out, err := l.minifier.Minify(ctx, css, path)
	if err != nil {
		l.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrMinifyFailed.Error()), "path", path))
		return css
	}

	if l.cache != nil {
		l.cache.Put(path, css, out)
	}
	return out
}

// Module renders the source of a module exporting a style sheet built from css.
func Module(css string, additionalCode []string) string {
	var b strings.Builder
	b.WriteString("const styles = ")
	b.WriteString(Escape(css))
	b.WriteString("\n")
	b.WriteString(strings.Join(additionalCode, "\n"))
	b.WriteString("\nconst sheet = new CSSStyleSheet();")
	b.WriteString("\nsheet.replaceSync(styles);")
	b.WriteString("\nexport default sheet;")
	return b.String()
}
