package stats

import (
	"time"

	"github.com/go-sif/accum"
	"github.com/go-sif/accum/operations"
)

// Snapshot contains statistics about a finished run of a worker pool
type Snapshot struct {
	Workers   int           // the number of workers which ran
	Tasks     int64         // the number of tasks which ran
	Failures  int64         // the number of tasks which returned an error or panicked
	Slowest   time.Duration // the runtime of the slowest task
	StartTime time.Time     // the start time of the run
	Runtime   time.Duration // the total runtime of the run
}

// RunStatistics tracks a single run of a worker pool. Task counters are written by the
// workers themselves, each into its own slot.
type RunStatistics struct {
	workers   int
	startTime time.Time
	tasks     *accum.Accumulator[int64, operations.Sum[int64]]
	failures  *accum.Accumulator[int64, operations.Sum[int64]]
	slowest   *accum.Accumulator[time.Duration, operations.Max[time.Duration]]
}

// Start begins tracking a run of the given number of workers, allocating counters in scope
func Start(scope *accum.Scope, workers int) *RunStatistics {
	opts := &accum.Options{Capacity: workers}
	return &RunStatistics{
		workers:   workers,
		startTime: time.Now(),
		tasks:     accum.NewAccumulator[int64, operations.Sum[int64]](scope, opts),
		failures:  accum.NewAccumulator[int64, operations.Sum[int64]](scope, opts),
		slowest:   accum.NewAccumulator[time.Duration, operations.Max[time.Duration]](scope, opts),
	}
}

// EndTask records a task which ran on worker, and started at the given time.
// It must only be called from that worker.
func (rs *RunStatistics) EndTask(worker int, started time.Time, failed bool) {
	rs.tasks.Writer().Write(worker, 1)
	if failed {
		rs.failures.Writer().Write(worker, 1)
	}
	rs.slowest.Writer().Write(worker, time.Since(started))
}

// Finish completes tracking. It must only be called once all workers have finished.
func (rs *RunStatistics) Finish() Snapshot {
	slowest := rs.slowest.Value()
	if slowest < 0 {
		slowest = 0
	}
	return Snapshot{
		Workers:   rs.workers,
		Tasks:     rs.tasks.Value(),
		Failures:  rs.failures.Value(),
		Slowest:   slowest,
		StartTime: rs.startTime,
		Runtime:   time.Since(rs.startTime),
	}
}
