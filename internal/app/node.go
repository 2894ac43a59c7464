package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sheet/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/sheet/internal/adapters/detector"   //nolint:depguard // Wired in app layer
	"go.trai.ch/sheet/internal/adapters/esbuild"    //nolint:depguard // Wired in app layer
	"go.trai.ch/sheet/internal/adapters/fs"         //nolint:depguard // Wired in app layer
	"go.trai.ch/sheet/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/sheet/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/sheet/internal/adapters/treesitter" //nolint:depguard // Wired in app layer
	"go.trai.ch/sheet/internal/adapters/watcher"    //nolint:depguard // Wired in app layer
	"go.trai.ch/sheet/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			fs.NodeID,
			esbuild.MinifierNodeID,
			treesitter.NodeID,
			telemetry.TracerNodeID,
			telemetry.RecorderNodeID,
			watcher.NodeID,
			detector.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	fsys, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}

	minifier, err := graft.Dep[ports.Minifier](ctx)
	if err != nil {
		return nil, err
	}

	parser, err := graft.Dep[ports.SourceParser](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	recorder, err := graft.Dep[*telemetry.Recorder](ctx)
	if err != nil {
		return nil, err
	}

	watchers, err := graft.Dep[watcher.Factory](ctx)
	if err != nil {
		return nil, err
	}

	det, err := graft.Dep[*detector.Node](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, fsys, minifier, parser, tracer, recorder, watchers, det), nil
}
