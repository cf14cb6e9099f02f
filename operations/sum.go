package operations

// Sum adds values
type Sum[T Number] struct{}

// Identity returns 0
func (Sum[T]) Identity() T {
	return 0
}

// Combine returns a + b
func (Sum[T]) Combine(a, b T) T {
	return a + b
}

// Product multiplies values
type Product[T Number] struct{}

// Identity returns 1
func (Product[T]) Identity() T {
	return 1
}

// Combine returns a * b
func (Product[T]) Combine(a, b T) T {
	return a * b
}

// Count counts contributions. Each worker writes 1 per counted item, or a partial count.
type Count = Sum[uint64]
