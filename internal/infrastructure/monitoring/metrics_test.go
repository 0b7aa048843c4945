package monitoring

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordOperation(t *testing.T) {
	m := NewMetrics()

	m.RecordOperation("zip", StatusSuccess, 10*time.Millisecond)
	m.RecordOperation("zip", StatusError, time.Millisecond)
	m.RecordOperation("unzip", StatusSuccess, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("zip", StatusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("zip", StatusError)))

	snap := m.Snapshot()
	assert.Equal(t, int64(3), snap.TotalOperations)
	assert.Equal(t, int64(1), snap.TotalErrors)
}

func TestEntriesAndBytes(t *testing.T) {
	m := NewMetrics()

	m.AddEntries("size", 4)
	m.AddEntries("size", 0)
	m.AddArchiveBytes(DirectionArchived, 100)
	m.AddArchiveBytes(DirectionExtracted, 40)

	assert.Equal(t, 4.0, testutil.ToFloat64(m.EntriesVisited.WithLabelValues("size")))
	assert.Equal(t, 100.0, testutil.ToFloat64(m.ArchiveBytes.WithLabelValues(DirectionArchived)))

	snap := m.Snapshot()
	assert.Equal(t, int64(4), snap.EntriesVisited)
	assert.Equal(t, int64(100), snap.BytesArchived)
	assert.Equal(t, int64(40), snap.BytesExtracted)
}

func TestRegistryGathers(t *testing.T) {
	m := NewMetrics()
	m.RecordOperation("remove", StatusSuccess, time.Millisecond)

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["fsutil_operations_total"])
	assert.True(t, names["fsutil_operation_duration_seconds"])
}

func TestIndependentRegistries(t *testing.T) {
	// Two collectors must not collide on registration
	a := NewMetrics()
	b := NewMetrics()
	a.RecordOperation("zip", StatusSuccess, 0)

	assert.Equal(t, 0.0, testutil.ToFloat64(b.OperationsTotal.WithLabelValues("zip", StatusSuccess)))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordOperation("zip", StatusSuccess, time.Second)
		m.AddEntries("zip", 3)
		m.AddArchiveBytes(DirectionArchived, 3)
		NewTimer(m, "zip").StopErr(errors.New("boom"))
	})
	assert.Nil(t, m.Registry())
	assert.Equal(t, MetricsSnapshot{}, m.Snapshot())
}

func TestTimer(t *testing.T) {
	m := NewMetrics()

	NewTimer(m, "gunzip").StopErr(nil)
	NewTimer(m, "gunzip").StopErr(errors.New("corrupt"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("gunzip", StatusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("gunzip", StatusError)))
}
