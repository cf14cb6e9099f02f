package testing

import (
	"fmt"
	"math/rand/v2"
	gotesting "testing"

	"github.com/go-sif/accum"
	"github.com/stretchr/testify/require"
)

// recorder captures failures instead of stopping the test
type recorder struct {
	gotesting.TB
	failed  bool
	message string
}

func (r *recorder) Helper() {}

func (r *recorder) Fatalf(format string, args ...interface{}) {
	r.failed = true
	r.message = fmt.Sprintf(format, args...)
}

func TestCheckLawsAcceptsSum(t *gotesting.T) {
	sum := accum.Func[int]{
		IdentityFn: func() int { return 0 },
		CombineFn:  func(a, b int) int { return a + b },
	}
	r := &recorder{TB: t}
	CheckLaws[int](r, sum, RandInt, Exact[int])
	require.False(t, r.failed, r.message)
}

func TestCheckLawsRejectsSubtraction(t *gotesting.T) {
	sub := accum.Func[int]{
		IdentityFn: func() int { return 0 },
		CombineFn:  func(a, b int) int { return a - b },
	}
	r := &recorder{TB: t}
	CheckLaws[int](r, sub, RandInt, Exact[int])
	require.True(t, r.failed)
}

func TestCheckLawsRejectsWrongIdentity(t *gotesting.T) {
	sum := accum.Func[int]{
		IdentityFn: func() int { return 1 },
		CombineFn:  func(a, b int) int { return a + b },
	}
	r := &recorder{TB: t}
	CheckLaws[int](r, sum, RandInt, Exact[int])
	require.True(t, r.failed)
	require.Contains(t, r.message, "identity")
}

func TestInDelta(t *gotesting.T) {
	eq := InDelta(1e-9)
	require.True(t, eq(1, 1+1e-12))
	require.False(t, eq(1, 1.1))
	rng := rand.New(rand.NewPCG(1, 2))
	f := RandFloat(rng)
	require.True(t, f >= -1000 && f <= 1000)
}
