package executor

import (
	"sync"
	"time"
)

// Metrics collects per-pattern execution statistics.
type Metrics struct {
	mu         sync.RWMutex
	executions map[string]int64
	durations  map[string]time.Duration
	panics     int64
}

// NewMetrics creates an empty metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		executions: make(map[string]int64),
		durations:  make(map[string]time.Duration),
	}
}

// Record adds one execution of pattern with its duration.
func (m *Metrics) Record(pattern string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.executions[pattern]++
	m.durations[pattern] += d
}

// RecordPanic counts a recovered plugin panic.
func (m *Metrics) RecordPanic() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.panics++
}

// Executions returns how often pattern has executed.
func (m *Metrics) Executions(pattern string) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.executions[pattern]
}

// TotalExecutions returns the overall execution count.
func (m *Metrics) TotalExecutions() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var total int64
	for _, n := range m.executions {
		total += n
	}
	return total
}

// AverageDuration returns the mean execution time of pattern, or zero
// when it never ran.
func (m *Metrics) AverageDuration(pattern string) time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := m.executions[pattern]
	if n == 0 {
		return 0
	}
	return m.durations[pattern] / time.Duration(n)
}

// Panics returns the recovered panic count.
func (m *Metrics) Panics() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.panics
}

// Reset clears all recorded statistics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.executions = make(map[string]int64)
	m.durations = make(map[string]time.Duration)
	m.panics = 0
}
