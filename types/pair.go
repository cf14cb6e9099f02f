package types

// Pair holds the results of two operations accumulated side by side
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf builds a Pair
func PairOf[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}
