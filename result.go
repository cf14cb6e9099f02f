package accum

import (
	"github.com/go-sif/accum/errors"
	"github.com/go-sif/accum/internal/util"
)

// Result holds exactly one value. It is the non-concurrent counterpart of an Accumulator, and
// must not be shared between workers.
type Result[T any] struct {
	id       string
	value    T
	released bool
}

// NewResult allocates a Result in a Scope, holding the zero value of T. A nil scope leaves
// the Result unowned, and the caller must Dispose it.
func NewResult[T any](scope *Scope) *Result[T] {
	r := &Result[T]{id: util.NewID()}
	if scope != nil {
		scope.register(r)
	}
	return r
}

// ID returns the unique identifier of this Result
func (r *Result[T]) ID() string {
	return r.id
}

// Value returns the held value
func (r *Result[T]) Value() T {
	if debugChecks && r.released {
		panic(errors.UseAfterReleaseError{Kind: "result", ID: r.id})
	}
	return r.value
}

// Set replaces the held value
func (r *Result[T]) Set(v T) {
	if debugChecks && r.released {
		panic(errors.UseAfterReleaseError{Kind: "result", ID: r.id})
	}
	r.value = v
}

// Released returns true iff this Result has been disposed
func (r *Result[T]) Released() bool {
	return r.released
}

// Dispose releases the held value. Disposing twice returns an AlreadyReleasedError.
func (r *Result[T]) Dispose() error {
	if r.released {
		return errors.AlreadyReleasedError{Kind: "result", ID: r.id}
	}
	var zero T
	r.value = zero
	r.released = true
	return nil
}
