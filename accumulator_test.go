package accum_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/go-sif/accum"
	"github.com/go-sif/accum/errors"
	"github.com/go-sif/accum/operations"
	"github.com/go-sif/accum/pool"
	accumtest "github.com/go-sif/accum/testing"
	"github.com/go-sif/accum/types"
	"github.com/stretchr/testify/require"
)

func TestSumScenario(t *testing.T) {
	acc := accum.NewAccumulator[int, operations.Sum[int]](nil, &accum.Options{Capacity: 4})
	defer acc.Dispose()
	require.Equal(t, 4, acc.Capacity())
	w := acc.Writer()
	w.Write(0, 1)
	w.Write(0, 2)
	w.Write(1, 3)
	w.Write(2, 4)
	require.Equal(t, 10, acc.Value())
}

func TestMaxScenario(t *testing.T) {
	acc := accum.NewAccumulator[float64, operations.Max[float64]](nil, &accum.Options{Capacity: 3})
	defer acc.Dispose()
	w := acc.Writer()
	w.Bind(0).Write(2.0)
	w.Bind(0).Write(5.0)
	w.Bind(1).Write(3.0)
	require.Equal(t, 5.0, acc.Value())
}

func TestIdentityWithoutWrites(t *testing.T) {
	err := accum.Scoped(nil, func(s *accum.Scope) error {
		require.Equal(t, 0, accum.NewAccumulator[int, operations.Sum[int]](s, nil).Value())
		require.Equal(t, 1.0, accum.NewAccumulator[float64, operations.Product[float64]](s, nil).Value())
		require.Equal(t, true, accum.NewAccumulator[bool, operations.All](s, nil).Value())
		require.True(t, accum.NewAccumulator[types.Bounds, operations.BoundsUnion](s, nil).Value().Empty())
		require.Equal(t, operations.Min[int32]{}.Identity(), accum.NewAccumulator[int32, operations.Min[int32]](s, nil).Value())
		return nil
	})
	require.Nil(t, err)
}

func TestDefaultCapacity(t *testing.T) {
	p := pool.New(&pool.Options{Workers: 5})
	s := accum.NewScope(p)
	defer s.Close()
	require.Equal(t, 5, accum.NewAccumulator[int, operations.Sum[int]](s, nil).Capacity())
	require.Equal(t, 5, accum.NewAccumulator[int, operations.Sum[int]](s, &accum.Options{Capacity: -1}).Capacity())
	require.Equal(t, 2, accum.NewAccumulator[int, operations.Sum[int]](s, &accum.Options{Capacity: 2}).Capacity())
	unscoped := accum.NewAccumulator[int, operations.Sum[int]](nil, nil)
	require.Equal(t, accum.DefaultScheduler.MaxParallelism(), unscoped.Capacity())
	require.Nil(t, unscoped.Dispose())
}

func TestParallelEqualsSequential(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for workers := 1; workers <= 9; workers += 2 {
		values := make([]int64, 1+rng.IntN(5000))
		for i := range values {
			values[i] = int64(accumtest.RandInt(rng))
		}
		want := accum.Fold(operations.Sum[int64]{}, values...)

		p := pool.New(&pool.Options{Workers: workers})
		err := accum.Scoped(p, func(s *accum.Scope) error {
			acc := accum.NewAccumulator[int64, operations.Sum[int64]](s, nil)
			w := acc.Writer()
			err := p.Range(context.Background(), len(values), 1+rng.IntN(64), func(ctx context.Context, worker, low, high int) error {
				bound := w.Bind(worker)
				for _, v := range values[low:high] {
					bound.Write(v)
				}
				return nil
			})
			require.Nil(t, err)
			require.Equal(t, want, acc.Value(), "workers=%d", workers)
			return nil
		})
		require.Nil(t, err)
	}
}

func TestParallelFloatSumWithinTolerance(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	values := make([]float64, 10000)
	for i := range values {
		values[i] = rng.Float64()*2 - 1
	}
	want := accum.Fold(operations.Sum[float64]{}, values...)
	p := pool.New(&pool.Options{Workers: 6})
	err := accum.Scoped(p, func(s *accum.Scope) error {
		acc := accum.NewAccumulator[float64, operations.Sum[float64]](s, nil)
		w := acc.Writer()
		require.Nil(t, p.Range(context.Background(), len(values), 0, func(ctx context.Context, worker, low, high int) error {
			for _, v := range values[low:high] {
				w.Write(worker, v)
			}
			return nil
		}))
		require.InDelta(t, want, acc.Value(), 1e-9)
		return nil
	})
	require.Nil(t, err)
}

func TestOrderIndependence(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	values := make([]int, 200)
	for i := range values {
		values[i] = accumtest.RandInt(rng)
	}
	var results []int
	for trial := 0; trial < 10; trial++ {
		acc := accum.NewAccumulator[int, operations.Max[int]](nil, &accum.Options{Capacity: 4})
		w := acc.Writer()
		perm := rng.Perm(len(values))
		for _, j := range perm {
			w.Write(rng.IntN(4), values[j])
		}
		results = append(results, acc.Value())
		require.Nil(t, acc.Dispose())
	}
	for _, r := range results {
		require.Equal(t, results[0], r)
	}
	require.Equal(t, accum.Fold(operations.Max[int]{}, values...), results[0])
}

func TestDisposeOnce(t *testing.T) {
	acc := accum.NewAccumulator[int, operations.Sum[int]](nil, &accum.Options{Capacity: 2})
	require.False(t, acc.Released())
	require.Nil(t, acc.Dispose())
	require.True(t, acc.Released())
	err := acc.Dispose()
	require.NotNil(t, err)
	released, ok := err.(errors.AlreadyReleasedError)
	require.True(t, ok)
	require.Equal(t, acc.ID(), released.ID)
	require.Equal(t, "accumulator", released.Kind)
}

func TestFuncOperation(t *testing.T) {
	op := accum.Func[string]{
		IdentityFn: func() string { return "" },
		CombineFn: func(a, b string) string {
			if len(b) > len(a) || (len(b) == len(a) && b > a) {
				return b
			}
			return a
		},
	}
	acc := accum.NewAccumulatorWith[string](nil, op, &accum.Options{Capacity: 2})
	defer acc.Dispose()
	w := acc.Writer()
	w.Write(0, "ab")
	w.Write(1, "xyz")
	w.Write(0, "abc")
	require.Equal(t, "xyz", acc.Value())
}

func TestComposedAccumulator(t *testing.T) {
	type countAndSum = operations.Composed[uint64, float64, operations.Count, operations.Sum[float64]]
	acc := accum.NewAccumulator[types.Pair[uint64, float64], countAndSum](nil, &accum.Options{Capacity: 2})
	defer acc.Dispose()
	w := acc.Writer()
	for i := 0; i < 100; i++ {
		w.Write(i%2, types.PairOf(uint64(1), float64(i)))
	}
	res := acc.Value()
	require.EqualValues(t, 100, res.First)
	require.Equal(t, 4950.0, res.Second)
}

func TestMergeBytes(t *testing.T) {
	// each "node" accumulates locally, then the coordinator merges their serialized results
	coordinator := accum.NewAccumulator[types.Bounds, operations.BoundsUnion](nil, &accum.Options{Capacity: 1})
	defer coordinator.Dispose()
	for node := 0; node < 3; node++ {
		local := accum.NewAccumulator[types.Bounds, operations.BoundsUnion](nil, &accum.Options{Capacity: 2})
		w := local.Writer()
		w.Write(0, types.BoundsOf(types.Vec3{X: float64(node)}))
		w.Write(1, types.BoundsOf(types.Vec3{Y: float64(-node)}))
		buf, err := local.ToBytes()
		require.Nil(t, err)
		require.Nil(t, local.Dispose())
		require.Nil(t, coordinator.MergeBytes(0, buf))
	}
	got := coordinator.Value()
	require.Equal(t, types.Vec3{X: 0, Y: -2, Z: 0}, got.Min)
	require.Equal(t, types.Vec3{X: 2, Y: 0, Z: 0}, got.Max)

	require.NotNil(t, coordinator.MergeBytes(0, []byte("garbage")))
}
