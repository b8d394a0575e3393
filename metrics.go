package coomat

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives operation counters from a Matrix. All
// methods must be safe for concurrent use.
type MetricsCollector interface {
	// RecordInsert is called for each staged entry.
	RecordInsert()

	// RecordBatchInsert is called once per bulk staging with the number
	// of entries staged.
	RecordBatchInsert(entries int)

	// RecordRemove is called for each staged removal.
	RecordRemove()

	// RecordCommit is called when staged entries are folded into a new
	// committed structure.
	RecordCommit(entries int, duration time.Duration)

	// RecordApply is called for each matrix traversal. Short-circuited
	// operations that never touch the matrix do not report.
	RecordApply(duration time.Duration)

	// RecordSolve is called for each call into a solver backend.
	RecordSolve(duration time.Duration, err error)
}

// NoopMetricsCollector discards all metrics.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert()                    {}
func (NoopMetricsCollector) RecordBatchInsert(int)            {}
func (NoopMetricsCollector) RecordRemove()                    {}
func (NoopMetricsCollector) RecordCommit(int, time.Duration)  {}
func (NoopMetricsCollector) RecordApply(time.Duration)        {}
func (NoopMetricsCollector) RecordSolve(time.Duration, error) {}

// BasicMetricsCollector keeps in-memory counters using atomics.
type BasicMetricsCollector struct {
	insertCount   atomic.Int64
	removeCount   atomic.Int64
	commitCount   atomic.Int64
	applyCount    atomic.Int64
	solveCount    atomic.Int64
	solveErrCount atomic.Int64
	applyNanos    atomic.Int64
	commitNanos   atomic.Int64
}

// NewBasicMetricsCollector creates a zeroed collector.
func NewBasicMetricsCollector() *BasicMetricsCollector {
	return &BasicMetricsCollector{}
}

func (c *BasicMetricsCollector) RecordInsert() {
	c.insertCount.Add(1)
}

func (c *BasicMetricsCollector) RecordBatchInsert(entries int) {
	c.insertCount.Add(int64(entries))
}

func (c *BasicMetricsCollector) RecordRemove() {
	c.removeCount.Add(1)
}

func (c *BasicMetricsCollector) RecordCommit(_ int, duration time.Duration) {
	c.commitCount.Add(1)
	c.commitNanos.Add(int64(duration))
}

func (c *BasicMetricsCollector) RecordApply(duration time.Duration) {
	c.applyCount.Add(1)
	c.applyNanos.Add(int64(duration))
}

func (c *BasicMetricsCollector) RecordSolve(_ time.Duration, err error) {
	c.solveCount.Add(1)
	if err != nil {
		c.solveErrCount.Add(1)
	}
}

// MetricsStats is a point-in-time snapshot of collected counters.
type MetricsStats struct {
	InsertCount  int64
	RemoveCount  int64
	CommitCount  int64
	ApplyCount   int64
	SolveCount   int64
	SolveErrors  int64
	AvgApplyTime time.Duration
}

// GetStats returns current counter values.
func (c *BasicMetricsCollector) GetStats() MetricsStats {
	stats := MetricsStats{
		InsertCount: c.insertCount.Load(),
		RemoveCount: c.removeCount.Load(),
		CommitCount: c.commitCount.Load(),
		ApplyCount:  c.applyCount.Load(),
		SolveCount:  c.solveCount.Load(),
		SolveErrors: c.solveErrCount.Load(),
	}
	if stats.ApplyCount > 0 {
		stats.AvgApplyTime = time.Duration(c.applyNanos.Load() / stats.ApplyCount)
	}
	return stats
}
