package errors

import (
	"fmt"
)

// AlreadyReleasedError occurs when a container's storage is released more than once
type AlreadyReleasedError struct {
	Kind string
	ID   string
}

// Error returns a textual representation of this AlreadyReleasedError
func (e AlreadyReleasedError) Error() string {
	return fmt.Sprintf("%s %s has already been released", e.Kind, e.ID)
}

// UseAfterReleaseError occurs when a released container is read or written. It is only
// detected in builds using the accumdebug tag.
type UseAfterReleaseError struct {
	Kind string
	ID   string
}

// Error returns a textual representation of this UseAfterReleaseError
func (e UseAfterReleaseError) Error() string {
	return fmt.Sprintf("%s %s was used after it was released", e.Kind, e.ID)
}

// WorkerOutOfRangeError occurs when a worker identity does not map to a slot. It is only
// detected in builds using the accumdebug tag.
type WorkerOutOfRangeError struct {
	ID       string
	Worker   int
	Capacity int
}

// Error returns a textual representation of this WorkerOutOfRangeError
func (e WorkerOutOfRangeError) Error() string {
	return fmt.Sprintf("Worker %d is outside of the slot range [0, %d) of accumulator %s", e.Worker, e.Capacity, e.ID)
}

// ScopeClosedError occurs when a Scope is closed twice, or a container is allocated in a closed Scope
type ScopeClosedError struct{ ID string }

// Error returns a textual representation of this ScopeClosedError
func (e ScopeClosedError) Error() string {
	return fmt.Sprintf("Scope %s is already closed", e.ID)
}

// TaskPanicError occurs when a Task panics while running on a worker
type TaskPanicError struct {
	Worker int
	Value  interface{}
	Trace  string
}

// Error returns a textual representation of this TaskPanicError
func (e TaskPanicError) Error() string {
	return fmt.Sprintf("Task panicked on worker %d: %v\n%s", e.Worker, e.Value, e.Trace)
}
