package accum

// An Operation defines how an Accumulator combines values. Combine must be associative and
// commutative, and Identity must return a value e such that Combine(e, x) == x for every x.
// Neither property can be checked mechanically: an Operation violating them produces silently
// wrong results. Use the law checks in the testing package to verify an Operation.
//
// Combine must not have side effects, and should not allocate.
type Operation[T any] interface {
	Identity() T      // Identity returns the identity element of Combine
	Combine(a, b T) T // Combine merges two values into one
}

// Func is an Operation assembled at runtime from function values. Each write through an
// Accumulator using a Func pays for an indirect call, which an Operation selected by type avoids.
// The zero Func is not usable, so a Func must be passed to NewAccumulatorWith.
type Func[T any] struct {
	IdentityFn func() T
	CombineFn  func(a, b T) T
}

// Identity calls IdentityFn
func (f Func[T]) Identity() T {
	return f.IdentityFn()
}

// Combine calls CombineFn
func (f Func[T]) Combine(a, b T) T {
	return f.CombineFn(a, b)
}

// Fold sequentially combines values, starting from the Operation's identity
func Fold[T any, O Operation[T]](op O, values ...T) T {
	acc := op.Identity()
	for _, v := range values {
		acc = op.Combine(acc, v)
	}
	return acc
}
