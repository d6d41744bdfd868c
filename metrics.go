package volgrid

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordEstimate is called after each estimate call. spheres is the
	// number of input spheres, duration the total time taken, err nil on
	// success.
	RecordEstimate(spheres int, duration time.Duration, err error)

	// RecordBatch is called after each batch run. count is the number of
	// items attempted, failed the number that returned an error, duration
	// the wall time of the whole batch.
	RecordBatch(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordEstimate(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration)      {}

// BasicMetricsCollector provides simple in-memory metrics collection,
// useful for debugging without external dependencies.
type BasicMetricsCollector struct {
	EstimateCount      atomic.Int64
	EstimateErrors     atomic.Int64
	EstimateTotalNanos atomic.Int64
	BatchCount         atomic.Int64
	BatchFailedItems   atomic.Int64
}

// RecordEstimate implements MetricsCollector.
func (m *BasicMetricsCollector) RecordEstimate(_ int, duration time.Duration, err error) {
	m.EstimateCount.Add(1)
	m.EstimateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		m.EstimateErrors.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (m *BasicMetricsCollector) RecordBatch(_, failed int, _ time.Duration) {
	m.BatchCount.Add(1)
	m.BatchFailedItems.Add(int64(failed))
}
