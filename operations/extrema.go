package operations

// Max keeps the largest value. NaN inputs are ignored unless every input is NaN.
type Max[T Number] struct{}

// Identity returns the lowest value of T
func (Max[T]) Identity() T {
	return lowest[T]()
}

// Combine returns the larger of a and b
func (Max[T]) Combine(a, b T) T {
	if b > a || a != a {
		return b
	}
	return a
}

// Min keeps the smallest value. NaN inputs are ignored unless every input is NaN.
type Min[T Number] struct{}

// Identity returns the highest value of T
func (Min[T]) Identity() T {
	return highest[T]()
}

// Combine returns the smaller of a and b
func (Min[T]) Combine(a, b T) T {
	if b < a || a != a {
		return b
	}
	return a
}
