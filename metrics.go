package nmc

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordFit is called after each fit operation.
	// samples is the number of training rows, classes the number of
	// distinct labels found (0 on failure).
	RecordFit(samples, classes int, duration time.Duration, err error)

	// RecordPredict is called after each predict operation.
	RecordPredict(samples int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFit(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordPredict(int, time.Duration, error)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FitCount          atomic.Int64
	FitErrors         atomic.Int64
	FitSamples        atomic.Int64
	FitTotalNanos     atomic.Int64
	PredictCount      atomic.Int64
	PredictErrors     atomic.Int64
	PredictSamples    atomic.Int64
	PredictTotalNanos atomic.Int64
}

// RecordFit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFit(samples, _ int, duration time.Duration, err error) {
	b.FitCount.Add(1)
	b.FitTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FitErrors.Add(1)
		return
	}
	b.FitSamples.Add(int64(samples))
}

// RecordPredict implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPredict(samples int, duration time.Duration, err error) {
	b.PredictCount.Add(1)
	b.PredictTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.PredictErrors.Add(1)
		return
	}
	b.PredictSamples.Add(int64(samples))
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	FitCount        int64
	FitErrors       int64
	FitSamples      int64
	FitAvgNanos     int64
	PredictCount    int64
	PredictErrors   int64
	PredictSamples  int64
	PredictAvgNanos int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		FitCount:       b.FitCount.Load(),
		FitErrors:      b.FitErrors.Load(),
		FitSamples:     b.FitSamples.Load(),
		PredictCount:   b.PredictCount.Load(),
		PredictErrors:  b.PredictErrors.Load(),
		PredictSamples: b.PredictSamples.Load(),
	}
	if s.FitCount > 0 {
		s.FitAvgNanos = b.FitTotalNanos.Load() / s.FitCount
	}
	if s.PredictCount > 0 {
		s.PredictAvgNanos = b.PredictTotalNanos.Load() / s.PredictCount
	}
	return s
}
