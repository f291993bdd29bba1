package status

import "sync/atomic"

// Registry is the central metrics facade
// Tasks cache pointers at startup; per-tick writes go straight to the atomics
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

// Snapshot is a point-in-time copy of every metric, keyed by name
type Snapshot struct {
	Bools   map[string]bool    `json:"bools"`
	Ints    map[string]int64   `json:"ints"`
	Floats  map[string]float64 `json:"floats"`
	Strings map[string]string  `json:"strings"`
}

// Snapshot reads every metric; values of different metrics may come from different ticks
func (r *Registry) Snapshot() Snapshot {
	s := Snapshot{
		Bools:   make(map[string]bool, r.Bools.Count()),
		Ints:    make(map[string]int64, r.Ints.Count()),
		Floats:  make(map[string]float64, r.Floats.Count()),
		Strings: make(map[string]string, r.Strings.Count()),
	}
	r.Bools.Range(func(k string, v *atomic.Bool) { s.Bools[k] = v.Load() })
	r.Ints.Range(func(k string, v *atomic.Int64) { s.Ints[k] = v.Load() })
	r.Floats.Range(func(k string, v *AtomicFloat) { s.Floats[k] = v.Get() })
	r.Strings.Range(func(k string, v *AtomicString) { s.Strings[k] = v.Load() })
	return s
}
