package observability

import (
	"sync"
)

// Metrics provides basic in-memory counters for interaction handling. No
// metrics backend is configured; counters are exposed over the ops HTTP
// surface as JSON.
type Metrics struct {
	mu               sync.Mutex
	interactionCount map[string]int64
	errorCount       map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		interactionCount: make(map[string]int64),
		errorCount:       make(map[string]int64),
	}
}

// RecordInteraction increments the counter for a handled control.
func (m *Metrics) RecordInteraction(control, outcome string) {
	if m == nil {
		return
	}
	key := control + "|" + outcome
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interactionCount[key]++
}

// RecordError increments the counter for a failed control by error kind.
func (m *Metrics) RecordError(control, kind string) {
	if m == nil {
		return
	}
	key := control + "|" + kind
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// Snapshot returns copies of the current counters.
func (m *Metrics) Snapshot() (interactions, errors map[string]int64) {
	if m == nil {
		return map[string]int64{}, map[string]int64{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	interactions = make(map[string]int64, len(m.interactionCount))
	for k, v := range m.interactionCount {
		interactions[k] = v
	}
	errors = make(map[string]int64, len(m.errorCount))
	for k, v := range m.errorCount {
		errors[k] = v
	}
	return interactions, errors
}
