package monitoring

import "time"

// Operation statuses
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Timer measures operation duration
type Timer struct {
	start     time.Time
	metrics   *Metrics
	operation string
}

// NewTimer creates a new timer
func NewTimer(metrics *Metrics, operation string) *Timer {
	return &Timer{
		start:     time.Now(),
		metrics:   metrics,
		operation: operation,
	}
}

// Stop stops the timer and records the duration
func (t *Timer) Stop(status string) {
	t.metrics.RecordOperation(t.operation, status, time.Since(t.start))
}

// StopErr stops the timer with a status derived from err
func (t *Timer) StopErr(err error) {
	if err != nil {
		t.Stop(StatusError)
		return
	}
	t.Stop(StatusSuccess)
}
