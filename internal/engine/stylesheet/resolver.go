package stylesheet

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/sheet/internal/core/domain"
	"go.trai.ch/sheet/internal/core/ports"
	"go.trai.ch/sheet/internal/engine/session"
	"go.trai.ch/zerr"
)

// Resolver mints virtual module identifiers for stylesheet imports.
type Resolver struct {
	sess *session.Session
	fs   ports.FileSystem
}

// NewResolver creates a Resolver bound to a session.
func NewResolver(sess *session.Session, fs ports.FileSystem) *Resolver {
	return &Resolver{sess: sess, fs: fs}
}

// Resolve returns the virtual module identifier for specifier when importer imports
// it with a css type attribute. It reports false when the import is not handled.
func (r *Resolver) Resolve(
	ctx context.Context,
	host ports.HostResolver,
	specifier, importer string,
) (string, bool, error) {
	if !strings.HasSuffix(specifier, domain.SheetExt) || importer == "" {
		return "", false, nil
	}

	importer = domain.StripQuery(importer)
	if !domain.IsSourceExt(filepath.Ext(importer)) {
		return "", false, nil
	}

	realPath, ok := host.Resolve(ctx, specifier, importer)
	if !ok || realPath == "" {
		return "", false, nil
	}

	source, ok := r.sess.Sources.Get(importer)
	if !ok {
		data, err := r.fs.ReadFile(importer)
		if err != nil {
			return "", false, zerr.With(zerr.Wrap(err, domain.ErrImporterReadFailed.Error()), "path", importer)
		}
		source = string(data)
	}

	if !HasSheetImport(specifier, source) {
		return "", false, nil
	}

	id := domain.VirtualID(realPath)
	r.sess.Modules.Register(id, realPath)
	return id, true, nil
}
