package operations

// BitOr sets every bit set in any value
type BitOr[T Integer] struct{}

// Identity returns 0
func (BitOr[T]) Identity() T {
	return 0
}

// Combine returns a | b
func (BitOr[T]) Combine(a, b T) T {
	return a | b
}

// BitAnd keeps only the bits set in every value
type BitAnd[T Integer] struct{}

// Identity returns a value with every bit set
func (BitAnd[T]) Identity() T {
	var zero T
	return ^zero
}

// Combine returns a & b
func (BitAnd[T]) Combine(a, b T) T {
	return a & b
}

// Any is true if any value is true
type Any struct{}

// Identity returns false
func (Any) Identity() bool {
	return false
}

// Combine returns a || b
func (Any) Combine(a, b bool) bool {
	return a || b
}

// All is true if every value is true
type All struct{}

// Identity returns true
func (All) Identity() bool {
	return true
}

// Combine returns a && b
func (All) Combine(a, b bool) bool {
	return a && b
}
