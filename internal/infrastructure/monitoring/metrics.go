package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for filesystem operations.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// Operation metrics
	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec

	// Traversal metrics
	EntriesVisited *prometheus.CounterVec

	// Archive metrics
	ArchiveBytes *prometheus.CounterVec

	// Snapshot for callers without a Prometheus scraper
	snapshot MetricsSnapshot

	mu sync.RWMutex
}

// MetricsSnapshot holds current metric values
type MetricsSnapshot struct {
	TotalOperations int64
	TotalErrors     int64
	EntriesVisited  int64
	BytesArchived   int64
	BytesExtracted  int64
}

// Archive byte directions
const (
	DirectionArchived  = "archived"
	DirectionExtracted = "extracted"
)

// NewMetrics creates a new metrics collector on a private registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		OperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fsutil_operations_total",
				Help: "Total number of filesystem operations",
			},
			[]string{"operation", "status"},
		),
		OperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fsutil_operation_duration_seconds",
				Help:    "Filesystem operation duration in seconds",
				Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5, 30},
			},
			[]string{"operation"},
		),
		EntriesVisited: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fsutil_entries_visited_total",
				Help: "Total number of entries yielded by tree walks",
			},
			[]string{"operation"},
		),
		ArchiveBytes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fsutil_archive_bytes_total",
				Help: "Uncompressed bytes written into or extracted from archives",
			},
			[]string{"direction"},
		),
	}
}

// Registry returns the registry holding all fsutil metrics
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordOperation records a finished operation
func (m *Metrics) RecordOperation(operation, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.OperationsTotal.WithLabelValues(operation, status).Inc()
	m.OperationDuration.WithLabelValues(operation).Observe(duration.Seconds())

	m.mu.Lock()
	m.snapshot.TotalOperations++
	if status != StatusSuccess {
		m.snapshot.TotalErrors++
	}
	m.mu.Unlock()
}

// AddEntries records entries visited by a walk
func (m *Metrics) AddEntries(operation string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.EntriesVisited.WithLabelValues(operation).Add(float64(n))

	m.mu.Lock()
	m.snapshot.EntriesVisited += int64(n)
	m.mu.Unlock()
}

// AddArchiveBytes records uncompressed archive bytes in one direction
func (m *Metrics) AddArchiveBytes(direction string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.ArchiveBytes.WithLabelValues(direction).Add(float64(n))

	m.mu.Lock()
	if direction == DirectionExtracted {
		m.snapshot.BytesExtracted += n
	} else {
		m.snapshot.BytesArchived += n
	}
	m.mu.Unlock()
}

// Snapshot returns a copy of the current values
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}
