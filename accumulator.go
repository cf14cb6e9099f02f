package accum

import (
	"fmt"

	"github.com/go-sif/accum/codec"
	"github.com/go-sif/accum/errors"
	"github.com/go-sif/accum/internal/slots"
	"github.com/go-sif/accum/internal/util"
	"github.com/go-sif/accum/logging"
)

// Options configures the allocation of an Accumulator
type Options struct {
	Capacity int // the number of slots, which bounds the number of concurrent workers. Defaults to the Scope's MaxParallelism.
}

// An Accumulator siphons values from many parallel workers into one slot per worker, and folds
// those slots into a single value once the workers are done. Writes go through a ConcurrentWriter
// and never block, lock or allocate.
//
// Value and Dispose must only be called by the goroutine orchestrating the workers, after a
// completion fence. An Accumulator's storage grows with its capacity, never with the number of
// values written.
type Accumulator[T any, O Operation[T]] struct {
	id       string
	op       O
	slots    *slots.Array[T]
	released bool
	logger   *logging.Logger
}

// NewAccumulator allocates an Accumulator in a Scope, using the zero value of O as its Operation.
// A nil scope leaves the Accumulator unowned, sized for the DefaultScheduler, and the caller must
// Dispose it. A nil opts uses the default capacity.
func NewAccumulator[T any, O Operation[T]](scope *Scope, opts *Options) *Accumulator[T, O] {
	var op O
	return NewAccumulatorWith[T, O](scope, op, opts)
}

// NewAccumulatorWith allocates an Accumulator using the given Operation value, for Operations
// which carry configuration (such as a Func)
func NewAccumulatorWith[T any, O Operation[T]](scope *Scope, op O, opts *Options) *Accumulator[T, O] {
	capacity := 0
	if opts != nil {
		capacity = opts.Capacity
	}
	if capacity <= 0 {
		if scope != nil {
			capacity = scope.MaxParallelism()
		} else {
			capacity = DefaultScheduler.MaxParallelism()
		}
	}
	if capacity < 1 {
		capacity = 1
	}
	id := util.NewID()
	a := &Accumulator[T, O]{
		id:     id,
		op:     op,
		slots:  slots.New(capacity, op.Identity()),
		logger: logging.New(fmt.Sprintf("accumulator %s", id), nil),
	}
	if scope != nil {
		scope.register(a)
	}
	a.logger.Debugf("allocated %d slots", capacity)
	return a
}

// ID returns the unique identifier of this Accumulator
func (a *Accumulator[T, O]) ID() string {
	return a.id
}

// Capacity returns the number of slots, and therefore the range [0, Capacity()) of valid worker identities
func (a *Accumulator[T, O]) Capacity() int {
	return a.slots.Len()
}

// Writer returns a handle which workers write through. Writers may be freely copied.
func (a *Accumulator[T, O]) Writer() ConcurrentWriter[T, O] {
	return ConcurrentWriter[T, O]{id: a.id, op: a.op, slots: a.slots}
}

// Value folds every slot into a single value, starting from the Operation's identity. It must
// only be called once all workers writing to this Accumulator have finished; calling it
// concurrently with a write is a data race.
func (a *Accumulator[T, O]) Value() T {
	if debugChecks && a.released {
		panic(errors.UseAfterReleaseError{Kind: "accumulator", ID: a.id})
	}
	acc := a.op.Identity()
	for i := 0; i < a.slots.Len(); i++ {
		acc = a.op.Combine(acc, a.slots.Get(i))
	}
	return acc
}

// ToBytes serializes the folded value of this Accumulator, under the same fence as Value
func (a *Accumulator[T, O]) ToBytes() ([]byte, error) {
	buf, err := codec.Encode(a.Value())
	if err != nil {
		return nil, fmt.Errorf("Unable to serialize accumulator %s: %w", a.id, err)
	}
	return buf, nil
}

// MergeBytes folds a value serialized by ToBytes (typically by another process) into this
// Accumulator through the given worker's slot. It is a write, with the same obligations as Write.
func (a *Accumulator[T, O]) MergeBytes(worker int, buf []byte) error {
	v, err := codec.Decode[T](buf)
	if err != nil {
		return fmt.Errorf("Unable to merge into accumulator %s: %w", a.id, err)
	}
	a.Writer().Write(worker, v)
	return nil
}

// Released returns true iff this Accumulator has been disposed
func (a *Accumulator[T, O]) Released() bool {
	return a.released
}

// Dispose releases the slot storage of this Accumulator. Disposing twice returns an
// AlreadyReleasedError. Writers derived from this Accumulator must not be used afterwards.
func (a *Accumulator[T, O]) Dispose() error {
	if a.released {
		return errors.AlreadyReleasedError{Kind: "accumulator", ID: a.id}
	}
	capacity := a.slots.Len()
	a.released = true
	a.slots.Release()
	a.logger.Debugf("released %d slots", capacity)
	return nil
}
