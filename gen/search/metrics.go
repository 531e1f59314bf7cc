package search

import (
	"maps"
	"sync"
)

// WorkerStats holds the counters of one worker.
type WorkerStats struct {
	// Evaluated is the number of seeds the predicate ran for.
	Evaluated uint64
	Matched   uint64
	Failed    uint64
	// Stalls counts the matches that found the buffer of the worker full.
	Stalls uint64
}

// Metrics tracks per-worker counters of searches. A nil *Metrics discards
// everything, and one Metrics may be shared by consecutive searches.
type Metrics struct {
	mu      sync.Mutex
	workers map[int]WorkerStats
}

// NewMetrics creates an empty metrics registry.
func NewMetrics() *Metrics {
	return &Metrics{workers: make(map[int]WorkerStats)}
}

func (m *Metrics) update(worker int, f func(s *WorkerStats)) {
	if m == nil {
		return
	}
	m.mu.Lock()
	s := m.workers[worker]
	f(&s)
	m.workers[worker] = s
	m.mu.Unlock()
}

// IncEvaluated ...
func (m *Metrics) IncEvaluated(worker int) {
	m.update(worker, func(s *WorkerStats) { s.Evaluated++ })
}

// IncMatched ...
func (m *Metrics) IncMatched(worker int) {
	m.update(worker, func(s *WorkerStats) { s.Matched++ })
}

// IncFailed ...
func (m *Metrics) IncFailed(worker int) {
	m.update(worker, func(s *WorkerStats) { s.Failed++ })
}

// IncBackpressure increments the stall counter of a worker.
func (m *Metrics) IncBackpressure(worker int) {
	m.update(worker, func(s *WorkerStats) { s.Stalls++ })
}

// Snapshot returns a copy of the counters of every worker seen so far.
func (m *Metrics) Snapshot() map[int]WorkerStats {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.workers)
}

// Total returns the counters of all workers summed.
func (m *Metrics) Total() WorkerStats {
	var t WorkerStats
	for _, s := range m.Snapshot() {
		t.Evaluated += s.Evaluated
		t.Matched += s.Matched
		t.Failed += s.Failed
		t.Stalls += s.Stalls
	}
	return t
}
