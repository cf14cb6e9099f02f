package operations

import "math"

// Integer is satisfied by all integer types
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is satisfied by all floating-point types
type Float interface {
	~float32 | ~float64
}

// Number is satisfied by all integer and floating-point types
type Number interface {
	Integer | Float
}

// lowest returns the smallest value representable by T, or -Inf for floating-point types
func lowest[T Number]() T {
	var zero T
	half := 0.5
	if T(half) != zero {
		inf := math.Inf(-1)
		return T(inf)
	}
	one := T(1)
	if zero-one > zero {
		return zero
	}
	// doubling a negative value wraps to zero only from the minimum
	v := -one
	for {
		next := v * 2
		if next >= v {
			return v
		}
		v = next
	}
}

// highest returns the largest value representable by T, or +Inf for floating-point types
func highest[T Number]() T {
	var zero T
	half := 0.5
	if T(half) != zero {
		inf := math.Inf(1)
		return T(inf)
	}
	one := T(1)
	if zero-one > zero {
		return zero - one
	}
	return -(lowest[T]() + one)
}
