package telemetry

import (
	"context"
	"sort"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// HookCount summarizes the ended spans of one hook.
type HookCount struct {
	Name   string
	Calls  int
	Failed int
	// Handled counts spans whose "sheet.virtual" attribute was true or whose
	// "sheet.state" attribute was "rewritten".
	Handled int
}

// Recorder implements sdktrace.SpanProcessor and counts ended spans per name.
type Recorder struct {
	mu     sync.Mutex
	counts map[string]*HookCount
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{counts: make(map[string]*HookCount)}
}

// OnStart does nothing.
func (r *Recorder) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd counts the span.
func (r *Recorder) OnEnd(s sdktrace.ReadOnlySpan) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.counts[s.Name()]
	if !ok {
		c = &HookCount{Name: s.Name()}
		r.counts[s.Name()] = c
	}
	c.Calls++
	if s.Status().Code == codes.Error {
		c.Failed++
	}
	if handled(s.Attributes()) {
		c.Handled++
	}
}

func handled(attrs []attribute.KeyValue) bool {
	for _, kv := range attrs {
		switch kv.Key {
		case "sheet.virtual":
			if kv.Value.AsBool() {
				return true
			}
		case "sheet.state":
			if kv.Value.AsString() == "rewritten" {
				return true
			}
		}
	}
	return false
}

// Counts returns a snapshot of the counters, sorted by span name.
func (r *Recorder) Counts() []HookCount {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]HookCount, 0, len(r.counts))
	for _, c := range r.counts {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Count returns the counter for one span name.
func (r *Recorder) Count(name string) HookCount {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.counts[name]; ok {
		return *c
	}
	return HookCount{Name: name}
}

// Reset clears all counters.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts = make(map[string]*HookCount)
}

// Shutdown does nothing.
func (r *Recorder) Shutdown(context.Context) error {
	return nil
}

// ForceFlush does nothing.
func (r *Recorder) ForceFlush(context.Context) error {
	return nil
}
