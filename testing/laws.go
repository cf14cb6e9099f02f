// Package testing provides helpers for verifying that an Operation satisfies the algebraic laws
// an Accumulator depends on. A violation of these laws cannot be detected at runtime, so every
// Operation should be checked with CheckLaws.
package testing

import (
	"math"
	"math/rand/v2"
	gotesting "testing"

	"github.com/go-sif/accum"
)

// PropertyN is the number of samples drawn by CheckLaws
const PropertyN = 1000

// A Generator draws a random value
type Generator[T any] func(rng *rand.Rand) T

// CheckLaws draws PropertyN samples from gen, and fails t if op's identity, commutativity or
// associativity does not hold for them, according to eq
func CheckLaws[T any](t gotesting.TB, op accum.Operation[T], gen Generator[T], eq func(a, b T) bool) {
	t.Helper()
	rng := rand.New(rand.NewPCG(42, 0))
	id := op.Identity()
	for i := 0; i < PropertyN; i++ {
		a, b, c := gen(rng), gen(rng), gen(rng)
		if got := op.Combine(id, a); !eq(got, a) {
			t.Fatalf("left identity: Combine(%v, %v) = %v", id, a, got)
		}
		if got := op.Combine(a, id); !eq(got, a) {
			t.Fatalf("right identity: Combine(%v, %v) = %v", a, id, got)
		}
		if ab, ba := op.Combine(a, b), op.Combine(b, a); !eq(ab, ba) {
			t.Fatalf("commutativity: Combine(%v, %v) = %v, but Combine(%v, %v) = %v", a, b, ab, b, a, ba)
		}
		left := op.Combine(op.Combine(a, b), c)
		right := op.Combine(a, op.Combine(b, c))
		if !eq(left, right) {
			t.Fatalf("associativity: (%v . %v) . %v = %v, but %v . (%v . %v) = %v", a, b, c, left, a, b, c, right)
		}
	}
}

// Exact compares values with ==
func Exact[T comparable](a, b T) bool {
	return a == b
}

// InDelta returns a comparison treating floats within delta of each other, or equal
// infinities, as equal
func InDelta(delta float64) func(a, b float64) bool {
	return func(a, b float64) bool {
		if math.IsInf(a, 0) || math.IsInf(b, 0) {
			return a == b
		}
		return math.Abs(a-b) <= delta
	}
}

// RandInt returns a random int in [-1000, 1000]
func RandInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// RandFloat returns a random float64 in [-1000, 1000), rounded to a multiple of 1/64 so that
// sums of a few samples are exact
func RandFloat(rng *rand.Rand) float64 {
	return math.Round((rng.Float64()*2000-1000)*64) / 64
}
