package autoimport

import (
	"context"

	"go.trai.ch/sheet/internal/core/domain"
	"go.trai.ch/sheet/internal/engine/session"
)

// State is the outcome of transforming one source file.
type State uint8

const (
	// NotApplicable means auto importing does not apply to the file.
	NotApplicable State = iota
	// NoMatch means no class extends a configured base class.
	NoMatch
	// AlreadyRewritten means every matched class already carries the stylesheet.
	AlreadyRewritten
	// Rewritten means the source was changed.
	Rewritten
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case NotApplicable:
		return "not applicable"
	case NoMatch:
		return "no match"
	case AlreadyRewritten:
		return "already rewritten"
	case Rewritten:
		return "rewritten"
	default:
		return "unknown"
	}
}

// Result is the outcome of Transform.
type Result struct {
	State State
	// Code is the rewritten source. It is only set when State is Rewritten.
	Code    string
	Matches []Match
}

// Transformer rewrites source files and records the rewritten text in the session.
type Transformer struct {
	sess    *session.Session
	matcher *Matcher
}

// NewTransformer creates a Transformer.
func NewTransformer(sess *session.Session, matcher *Matcher) *Transformer {
	return &Transformer{sess: sess, matcher: matcher}
}

// Transform rewrites code loaded from path. Files that end up unchanged are
// dropped from the session's source cache so resolution reads them from disk.
func (t *Transformer) Transform(ctx context.Context, code, path string) (*Result, error) {
	path = domain.StripQuery(path)

	scan, err := t.matcher.Scan(ctx, []byte(code), path)
	if err != nil {
		return nil, err
	}

	if !scan.Applicable {
		t.sess.Sources.Forget(path)
		return &Result{State: NotApplicable}, nil
	}
	if len(scan.Matches) == 0 {
		t.sess.Sources.Forget(path)
		return &Result{State: NoMatch}, nil
	}

	out, changed, err := Rewrite(code, scan.Outline, scan.Matches, path)
	if err != nil {
		return nil, err
	}
	if !changed {
		t.sess.Sources.Forget(path)
		return &Result{State: AlreadyRewritten, Matches: scan.Matches}, nil
	}

	t.sess.Sources.Put(path, out)
	return &Result{State: Rewritten, Code: out, Matches: scan.Matches}, nil
}
