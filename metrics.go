package hammingindex

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational
// metrics. Implement this interface to integrate with monitoring
// systems like Prometheus.
type MetricsCollector interface {
	// RecordAdd is called after each AddItem call.
	RecordAdd(duration time.Duration, err error)

	// RecordBatchAdd is called after each AddMany call. requested is the
	// number of items offered, added is the number actually inserted.
	RecordBatchAdd(requested, added int, duration time.Duration)

	// RecordQuery is called after each range query. kind is
	// "bruteforce" or "optimized"; candidates is the number of keys
	// distance-evaluated (equal to size() for bruteforce).
	RecordQuery(kind string, candidates, results int, duration time.Duration, err error)

	// RecordClear is called after each Clear call.
	RecordClear()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(time.Duration, error)                       {}
func (NoopMetricsCollector) RecordBatchAdd(int, int, time.Duration)               {}
func (NoopMetricsCollector) RecordQuery(string, int, int, time.Duration, error)   {}
func (NoopMetricsCollector) RecordClear()                                        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	AddCount             atomic.Int64
	AddErrors            atomic.Int64
	AddTotalNanos        atomic.Int64
	BatchAddCount        atomic.Int64
	BatchAddRequested    atomic.Int64
	BatchAddAdded        atomic.Int64
	BruteForceQueryCount atomic.Int64
	OptimizedQueryCount  atomic.Int64
	QueryErrors          atomic.Int64
	QueryTotalNanos      atomic.Int64
	ClearCount           atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(duration time.Duration, err error) {
	b.AddCount.Add(1)
	b.AddTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AddErrors.Add(1)
	}
}

// RecordBatchAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchAdd(requested, added int, duration time.Duration) {
	b.BatchAddCount.Add(1)
	b.BatchAddRequested.Add(int64(requested))
	b.BatchAddAdded.Add(int64(added))
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(kind string, candidates, results int, duration time.Duration, err error) {
	if kind == "optimized" {
		b.OptimizedQueryCount.Add(1)
	} else {
		b.BruteForceQueryCount.Add(1)
	}
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.QueryErrors.Add(1)
	}
}

// RecordClear implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClear() {
	b.ClearCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:             b.AddCount.Load(),
		AddErrors:            b.AddErrors.Load(),
		AddAvgNanos:          b.getAvgAddNanos(),
		BatchAddCount:        b.BatchAddCount.Load(),
		BatchAddRequested:    b.BatchAddRequested.Load(),
		BatchAddAdded:        b.BatchAddAdded.Load(),
		BruteForceQueryCount: b.BruteForceQueryCount.Load(),
		OptimizedQueryCount:  b.OptimizedQueryCount.Load(),
		QueryErrors:          b.QueryErrors.Load(),
		ClearCount:           b.ClearCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgAddNanos() int64 {
	count := b.AddCount.Load()
	if count == 0 {
		return 0
	}
	return b.AddTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddCount             int64
	AddErrors            int64
	AddAvgNanos          int64
	BatchAddCount        int64
	BatchAddRequested    int64
	BatchAddAdded        int64
	BruteForceQueryCount int64
	OptimizedQueryCount  int64
	QueryErrors          int64
	ClearCount           int64
}
