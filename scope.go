package accum

import (
	"fmt"
	"sync"

	"github.com/go-sif/accum/errors"
	"github.com/go-sif/accum/internal/util"
	"github.com/go-sif/accum/logging"
	"github.com/hashicorp/go-multierror"
)

// releasable is storage owned by a Scope
type releasable interface {
	ID() string
	Dispose() error
	Released() bool
}

// A Scope owns the storage of the containers allocated within it, and releases all of it when
// closed. Containers may still be disposed individually before the Scope closes.
type Scope struct {
	id     string
	sched  Scheduler
	logger *logging.Logger

	lock   sync.Mutex
	owned  []releasable
	closed bool
}

// NewScope creates a Scope whose containers are sized for sched. A nil sched uses the DefaultScheduler.
func NewScope(sched Scheduler) *Scope {
	if sched == nil {
		sched = DefaultScheduler
	}
	id := util.NewID()
	return &Scope{
		id:     id,
		sched:  sched,
		logger: logging.New(fmt.Sprintf("scope %s", id), nil),
	}
}

// Scoped runs fn with a fresh Scope, and closes the Scope on every exit path, including panics.
// Errors from fn and from closing the Scope are combined.
func Scoped(sched Scheduler, fn func(s *Scope) error) (err error) {
	s := NewScope(sched)
	defer func() {
		if cerr := s.Close(); cerr != nil {
			err = multierror.Append(err, cerr).ErrorOrNil()
		}
	}()
	return fn(s)
}

// ID returns the unique identifier of this Scope
func (s *Scope) ID() string {
	return s.id
}

// Scheduler returns the Scheduler this Scope sizes containers for
func (s *Scope) Scheduler() Scheduler {
	return s.sched
}

// MaxParallelism returns the Scheduler's maximum parallelism, and is the default container capacity
func (s *Scope) MaxParallelism() int {
	return s.sched.MaxParallelism()
}

// register hands ownership of r to this Scope
func (s *Scope) register(r releasable) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.closed {
		panic(errors.ScopeClosedError{ID: s.id})
	}
	s.owned = append(s.owned, r)
}

// Close releases every container in this Scope which has not already been disposed, most
// recently allocated first. Closing a Scope twice returns a ScopeClosedError.
func (s *Scope) Close() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.closed {
		return errors.ScopeClosedError{ID: s.id}
	}
	s.closed = true
	var multierr *multierror.Error
	released := 0
	for i := len(s.owned) - 1; i >= 0; i-- {
		r := s.owned[i]
		if r.Released() {
			continue
		}
		if err := r.Dispose(); err != nil {
			multierr = multierror.Append(multierr, err)
			continue
		}
		released++
	}
	s.owned = nil
	s.logger.Debugf("closed, released %d containers", released)
	if multierr != nil {
		multierr.ErrorFormat = util.FormatMultiError
	}
	return multierr.ErrorOrNil()
}
