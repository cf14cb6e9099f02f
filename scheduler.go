package accum

import "runtime"

// A Scheduler runs workers in parallel. Accumulators depend on it only for the number of
// workers which may run at the same time, which sizes their slot storage. The Scheduler must
// also assign each running worker a distinct identity in [0, MaxParallelism()), and offer a
// completion fence, but those are used by callers rather than by this package.
type Scheduler interface {
	MaxParallelism() int // MaxParallelism returns the number of workers which may run concurrently
}

type defaultScheduler struct{}

func (defaultScheduler) MaxParallelism() int {
	return runtime.GOMAXPROCS(0)
}

// DefaultScheduler reports GOMAXPROCS as its maximum parallelism
var DefaultScheduler Scheduler = defaultScheduler{}
