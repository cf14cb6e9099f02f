// Package accum contains the core components of accum, a library of lock-free concurrent
// accumulators. An Accumulator lets many parallel workers each fold partial results into a
// single shared value without locks, atomics or per-worker output buffers.
//
// An Accumulator owns one slot per potential concurrent worker, each seeded with the identity of
// its Operation. Workers write through a ConcurrentWriter, naming their own worker identity, and
// each write folds the value into that worker's slot with a plain read-modify-write. Once every
// worker has finished, Value folds the slots together. Because an Operation must be associative
// and commutative, neither the fold order nor the order in which workers wrote changes the result.
//
// The caller carries two obligations which are not checked at runtime:
//
//   - no two workers running at the same time may use the same worker identity, and every
//     identity must lie within [0, Capacity())
//   - Value must only be called after a completion fence (for example, pool.Run returning) has
//     been observed for every worker that wrote
//
// Building with the accumdebug tag adds checks for use-after-release and out-of-range worker
// identities.
//
// Storage is bound to a Scope, which releases every container allocated in it when closed:
//
//	err := accum.Scoped(p, func(s *accum.Scope) error {
//		acc := accum.NewAccumulator[int64, operations.Sum[int64]](s, nil)
//		w := acc.Writer()
//		if err := p.Run(ctx, func(ctx context.Context, worker int) error {
//			w.Write(worker, 1)
//			return nil
//		}); err != nil {
//			return err
//		}
//		total = acc.Value()
//		return nil
//	})
package accum
