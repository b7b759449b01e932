package status

import (
	"sync"
	"testing"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	r := NewRegistry()

	a := r.Ints.Get(KeyFrames)
	b := r.Ints.Get(KeyFrames)
	if a != b {
		t.Error("Expected the same pointer for repeated Get")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Expected 3, got %d", b.Load())
	}
}

func TestMetricMapLookup(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()

	if ptr, ok := m.Lookup(KeyFPS); ok || ptr != nil {
		t.Errorf("Expected missing metric, got %v", ptr)
	}
	if m.Count() != 0 {
		t.Errorf("Expected Lookup not to register, got %d metrics", m.Count())
	}

	created := m.Get(KeyFPS)
	created.Set(120)
	found, ok := m.Lookup(KeyFPS)
	if !ok || found != created {
		t.Fatal("Expected Lookup to return the registered pointer")
	}
	if found.Get() != 120 {
		t.Errorf("Expected 120, got %v", found.Get())
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	for _, k := range []string{"c", "a", "b"} {
		m.Get(k)
	}

	var keys []string
	m.Range(func(k string, _ *AtomicFloat) { keys = append(keys, k) })
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("Expected [a b c], got %v", keys)
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Get(KeyFPS).Set(60)
		}()
	}
	wg.Wait()

	if m.Count() != 1 {
		t.Errorf("Expected 1 metric, got %d", m.Count())
	}
}

func TestAtomicFloatSmooth(t *testing.T) {
	var f AtomicFloat
	if got := f.Smooth(120, 0.1); got != 120 {
		t.Errorf("Expected first sample stored as-is, got %v", got)
	}
	if got := f.Smooth(100, 0.5); got != 110 {
		t.Errorf("Expected 110, got %v", got)
	}
}

func TestSummaryOrder(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyOverruns).Store(2)
	r.Ints.Get(KeyFrames).Store(10)
	r.Floats.Get(KeyFPS).Set(119.5)
	r.Bools.Get(KeyAudio).Store(true)

	want := "engine.frames=10 engine.overruns=2 engine.fps=119.50 audio.enabled=true"
	if got := r.Summary(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if r.TotalCount() != 4 {
		t.Errorf("Expected 4 metrics, got %d", r.TotalCount())
	}
}
