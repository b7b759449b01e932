package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys published by the frame loop and audio
const (
	KeyFrames    = "engine.frames"
	KeyOverruns  = "engine.overruns"
	KeyContacts  = "engine.contacts"
	KeyEntities  = "engine.entities"
	KeyFPS       = "engine.fps"
	KeyFrameWork = "engine.frame_work_ms"
	KeyAudio     = "audio.enabled"
	KeySounds    = "audio.sounds"
)

// Registry is the central metrics facade
// Writers cache pointers during init; the frame loop writes directly to atomics
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Summary renders every metric as "key=value" pairs in key order per type
func (r *Registry) Summary() string {
	parts := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.2f", k, v.Get()))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		parts = append(parts, fmt.Sprintf("%s=%t", k, v.Load()))
	})
	return strings.Join(parts, " ")
}
