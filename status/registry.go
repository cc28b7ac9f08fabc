// Package status is a lock-free metrics facade shared by the engine and the status bar
package status

import (
	"fmt"
	"sync/atomic"
)

// Registry is the central metrics facade
// Producers cache pointers during init; hot paths write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot reads every metric into a flat map keyed by metric name
// Values are bool, int64, float64 or string
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Bools.Range(func(k string, p *atomic.Bool) { out[k] = p.Load() })
	r.Ints.Range(func(k string, p *atomic.Int64) { out[k] = p.Load() })
	r.Floats.Range(func(k string, p *AtomicFloat) { out[k] = p.Get() })
	r.Strings.Range(func(k string, p *AtomicString) { out[k] = p.Load() })
	return out
}

// LogAttrs flattens the snapshot into alternating key/value pairs for slog
func (r *Registry) LogAttrs() []any {
	snap := r.Snapshot()
	attrs := make([]any, 0, len(snap)*2)
	for _, k := range sortedKeys(snap) {
		attrs = append(attrs, k, snap[k])
	}
	return attrs
}

// String renders the snapshot as "key=value" pairs in key order
func (r *Registry) String() string {
	snap := r.Snapshot()
	s := ""
	for i, k := range sortedKeys(snap) {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%s=%v", k, snap[k])
	}
	return s
}
