// Package pipeline exposes the build hooks of the stylesheet plugin.
package pipeline

import (
	"context"
	"sync"

	"go.trai.ch/sheet/internal/core/domain"
	"go.trai.ch/sheet/internal/core/ports"
	"go.trai.ch/sheet/internal/engine/autoimport"
	"go.trai.ch/sheet/internal/engine/session"
	"go.trai.ch/sheet/internal/engine/stylesheet"
)

// Deps are the collaborators of a Pipeline.
type Deps struct {
	FS       ports.FileSystem
	Minifier ports.Minifier
	Parser   ports.SourceParser
	Logger   ports.Logger
	// Tracer is optional.
	Tracer ports.Tracer
	// MinifyCache is optional. It may be shared between sessions.
	MinifyCache *stylesheet.MinifyCache
}

type nopTracer struct{}

func (nopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, nopSpan{}
}

type nopSpan struct{}

func (nopSpan) End()                     {}
func (nopSpan) RecordError(error)        {}
func (nopSpan) SetAttribute(string, any) {}

// Pipeline runs the resolve, load and transform hooks of one build session.
type Pipeline struct {
	sess        *session.Session
	resolver    *stylesheet.Resolver
	loader      *stylesheet.Loader
	matcher     *autoimport.Matcher
	transformer *autoimport.Transformer
	logger      ports.Logger
	tracer      ports.Tracer
	endOnce     sync.Once
}

// New creates a Pipeline with a fresh session for opts.
func New(opts domain.Options, deps Deps) *Pipeline {
	if deps.Tracer == nil {
		deps.Tracer = nopTracer{}
	}
	sess := session.New(opts)
	matcher := autoimport.NewMatcher(opts.AutoImport, deps.FS, deps.Parser)
	return &Pipeline{
		sess:        sess,
		resolver:    stylesheet.NewResolver(sess, deps.FS),
		loader:      stylesheet.NewLoader(sess, deps.FS, deps.Minifier, deps.MinifyCache, deps.Logger),
		matcher:     matcher,
		transformer: autoimport.NewTransformer(sess, matcher),
		logger:      deps.Logger,
		tracer:      deps.Tracer,
	}
}

// Session returns the session state of the pipeline.
func (p *Pipeline) Session() *session.Session {
	return p.sess
}

// ResolveID returns the virtual module identifier for a stylesheet import.
// It reports false when the host should resolve the import itself.
func (p *Pipeline) ResolveID(ctx context.Context, host ports.HostResolver, source, importer string) (string, bool, error) {
	ctx, span := p.tracer.Start(ctx, "sheet.resolve")
	defer span.End()
	span.SetAttribute("sheet.specifier", source)
	span.SetAttribute("sheet.importer", importer)

	id, ok, err := p.resolver.Resolve(ctx, host, source, importer)
	if err != nil {
		span.RecordError(err)
		return "", false, err
	}
	span.SetAttribute("sheet.virtual", ok)
	return id, ok, nil
}

// Load generates the module for a virtual stylesheet identifier.
// It reports false when id was not minted by ResolveID.
func (p *Pipeline) Load(ctx context.Context, id string) (*stylesheet.LoadResult, bool, error) {
	ctx, span := p.tracer.Start(ctx, "sheet.load")
	defer span.End()
	span.SetAttribute("sheet.id", id)

	res, ok, err := p.loader.Load(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, false, err
	}
	span.SetAttribute("sheet.virtual", ok)
	if ok {
		span.SetAttribute("sheet.path", res.RealPath)
	}
	return res, ok, nil
}

// Transform injects sibling stylesheets into the classes of a source file.
func (p *Pipeline) Transform(ctx context.Context, code, path string) (*autoimport.Result, error) {
	ctx, span := p.tracer.Start(ctx, "sheet.transform")
	defer span.End()
	span.SetAttribute("sheet.path", path)

	res, err := p.transformer.Transform(ctx, code, path)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("sheet.state", res.State.String())
	span.SetAttribute("sheet.matches", len(res.Matches))
	return res, nil
}

// Scan reports the classes of a source file that would receive their sibling stylesheet.
// It does not touch the session.
func (p *Pipeline) Scan(ctx context.Context, code []byte, path string) (*autoimport.ScanResult, error) {
	ctx, span := p.tracer.Start(ctx, "sheet.scan")
	defer span.End()
	span.SetAttribute("sheet.path", path)

	res, err := p.matcher.Scan(ctx, code, path)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return res, nil
}

// End reports the minification summary of the session. Only the first call has an effect.
func (p *Pipeline) End() {
	p.endOnce.Do(func() {
		if msg, ok := p.sess.Summary(); ok {
			p.logger.Info(msg)
		}
	})
}
