package accum

import (
	"github.com/go-sif/accum/errors"
	"github.com/go-sif/accum/internal/slots"
)

// ConcurrentWriter is a non-owning view over an Accumulator's slots, passed into parallel
// workers. It carries no mutable state of its own, so it may be copied and shared freely.
type ConcurrentWriter[T any, O Operation[T]] struct {
	id    string
	op    O
	slots *slots.Array[T]
}

// Write folds value into the slot owned by worker. The update is a plain read-modify-write:
// it is safe only because no two concurrently running workers share an identity. worker must
// lie within [0, Capacity()). Write never blocks, fails or allocates.
func (w ConcurrentWriter[T, O]) Write(worker int, value T) {
	if debugChecks {
		w.check(worker)
	}
	slot := w.slots.At(worker)
	*slot = w.op.Combine(*slot, value)
}

// Bind resolves a worker identity once, returning a writer for that worker alone
func (w ConcurrentWriter[T, O]) Bind(worker int) BoundWriter[T, O] {
	if debugChecks {
		w.check(worker)
	}
	return BoundWriter[T, O]{w: w, worker: worker}
}

func (w ConcurrentWriter[T, O]) check(worker int) {
	if w.slots.Released() {
		panic(errors.UseAfterReleaseError{Kind: "accumulator", ID: w.id})
	}
	if worker < 0 || worker >= w.slots.Len() {
		panic(errors.WorkerOutOfRangeError{ID: w.id, Worker: worker, Capacity: w.slots.Len()})
	}
}

// BoundWriter writes on behalf of a single worker identity
type BoundWriter[T any, O Operation[T]] struct {
	w      ConcurrentWriter[T, O]
	worker int
}

// Worker returns the worker identity this writer is bound to
func (b BoundWriter[T, O]) Worker() int {
	return b.worker
}

// Write folds value into the bound worker's slot
func (b BoundWriter[T, O]) Write(value T) {
	b.w.Write(b.worker, value)
}
