package operations

import "github.com/go-sif/accum/types"

// operation mirrors accum.Operation, so that this package does not depend on the root package
type operation[T any] interface {
	Identity() T
	Combine(a, b T) T
}

// Composed accumulates two operations side by side, over a types.Pair
type Composed[A, B any, OA operation[A], OB operation[B]] struct {
	First  OA
	Second OB
}

// Identity returns the pair of both identities
func (c Composed[A, B, OA, OB]) Identity() types.Pair[A, B] {
	return types.PairOf(c.First.Identity(), c.Second.Identity())
}

// Combine combines both halves of a and b with their own operation
func (c Composed[A, B, OA, OB]) Combine(a, b types.Pair[A, B]) types.Pair[A, B] {
	return types.PairOf(c.First.Combine(a.First, b.First), c.Second.Combine(a.Second, b.Second))
}
