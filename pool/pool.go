// Package pool provides a Scheduler which runs tasks on a fixed set of worker goroutines. Each
// worker has a stable identity in [0, MaxParallelism()), which tasks pass to an Accumulator's
// writer, and Run returning is the completion fence after which accumulated values may be read.
package pool

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/go-sif/accum"
	"github.com/go-sif/accum/errors"
	"github.com/go-sif/accum/internal/stats"
	"github.com/go-sif/accum/internal/util"
	"github.com/go-sif/accum/logging"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// A Task runs on a worker. worker identifies the running worker, and is never shared with
// another Task running at the same time.
type Task func(ctx context.Context, worker int) error

// Stats contains statistics about the most recent run of a Pool
type Stats = stats.Snapshot

// Options configures a Pool
type Options struct {
	Workers       int  // the number of worker goroutines. Defaults to GOMAXPROCS.
	CollectErrors bool // iff true, run every task and return all errors, instead of cancelling on the first
}

// Pool runs Tasks on a fixed number of workers
type Pool struct {
	id      string
	workers int
	collect bool
	logger  *logging.Logger

	statsLock sync.Mutex
	lastStats Stats
}

var _ accum.Scheduler = (*Pool)(nil)

// New creates a Pool. A nil opts uses the defaults.
func New(opts *Options) *Pool {
	if opts == nil {
		opts = &Options{}
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	id := util.NewID()
	return &Pool{
		id:      id,
		workers: workers,
		collect: opts.CollectErrors,
		logger:  logging.New(fmt.Sprintf("pool %s", id), nil),
	}
}

// ID returns the unique identifier of this Pool
func (p *Pool) ID() string {
	return p.id
}

// MaxParallelism returns the number of workers in this Pool
func (p *Pool) MaxParallelism() int {
	return p.workers
}

// Stats returns statistics about the most recently completed Run
func (p *Pool) Stats() Stats {
	p.statsLock.Lock()
	defer p.statsLock.Unlock()
	return p.lastStats
}

// Run runs tasks on this Pool's workers, and returns once every worker has exited. Writes made
// by the tasks happen before Run returns.
//
// By default, the first error cancels the context passed to the remaining tasks, stops the
// scheduling of new ones, and is returned. With CollectErrors, every task runs and all errors are
// returned together. A panicking task is reported as an errors.TaskPanicError.
//
// Concurrent Runs on the same Pool reuse the same worker identities, so they must not write to
// the same Accumulator.
func (p *Pool) Run(ctx context.Context, tasks ...Task) error {
	if len(tasks) == 0 {
		return ctx.Err()
	}
	workers := p.workers
	if len(tasks) < workers {
		workers = len(tasks)
	}
	var snapshot Stats
	err := accum.Scoped(p, func(s *accum.Scope) error {
		rs := stats.Start(s, workers)
		err := p.run(ctx, workers, rs, tasks)
		snapshot = rs.Finish()
		return err
	})
	p.statsLock.Lock()
	p.lastStats = snapshot
	p.statsLock.Unlock()
	p.logger.Debugf("ran %d tasks on %d workers in %s", snapshot.Tasks, snapshot.Workers, snapshot.Runtime)
	return err
}

func (p *Pool) run(ctx context.Context, workers int, rs *stats.RunStatistics, tasks []Task) error {
	g, gctx := errgroup.WithContext(ctx)
	queue := make(chan Task)
	var errLock sync.Mutex
	var multierr *multierror.Error

	for w := 0; w < workers; w++ {
		worker := w
		g.Go(func() error {
			for task := range queue {
				started := time.Now()
				err := runTask(gctx, worker, task)
				rs.EndTask(worker, started, err != nil)
				if err == nil {
					continue
				}
				if !p.collect {
					return err
				}
				p.logger.Errorf("task failed on worker %d: %v", worker, err)
				errLock.Lock()
				multierr = multierror.Append(multierr, err)
				errLock.Unlock()
			}
			return nil
		})
	}

feed:
	for _, task := range tasks {
		select {
		case queue <- task:
		case <-gctx.Done():
			break feed
		}
	}
	close(queue)

	if err := g.Wait(); err != nil {
		return err
	}
	if multierr != nil {
		multierr.ErrorFormat = util.FormatMultiError
		return multierr
	}
	return ctx.Err()
}

// runTask runs a single task, converting a panic into an error
func runTask(ctx context.Context, worker int, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.TaskPanicError{Worker: worker, Value: r, Trace: util.GetTrace()}
		}
	}()
	return task(ctx, worker)
}

// Range splits [0, n) into chunks of grain indices, and runs fn over each chunk on this Pool.
// A grain <= 0 picks a chunk size giving each worker several chunks.
func (p *Pool) Range(ctx context.Context, n int, grain int, fn func(ctx context.Context, worker, low, high int) error) error {
	if n <= 0 {
		return ctx.Err()
	}
	if grain <= 0 {
		chunks := p.workers * 4
		grain = (n + chunks - 1) / chunks
	}
	tasks := make([]Task, 0, (n+grain-1)/grain)
	for low := 0; low < n; low += grain {
		lo, hi := low, min(low+grain, n)
		tasks = append(tasks, func(ctx context.Context, worker int) error {
			return fn(ctx, worker, lo, hi)
		})
	}
	return p.Run(ctx, tasks...)
}
