package iterkit

import (
	"go.llib.dev/easyiter/pkg/iterkit/advance"
	"go.llib.dev/easyiter/pkg/iterkit/compare"
	"go.llib.dev/easyiter/pkg/iterkit/deref"
	"go.llib.dev/easyiter/pkg/tuple"
)

// Zip traverses two sequences simultaneously and yields the pair of their values.
//
// Only the last sequence is compared against its end, so it decides when the iteration stops.
// The sequences must have the same length.
// When a leading sequence is shorter, dereferencing it past its end panics.
func Zip[T1, V1, T2, V2 any](a Sequence[T1, V1], b Sequence[T2, V2]) Wrapped[tuple.T2[Iterator[T1, V1], Iterator[T2, V2]], tuple.T2[V1, V2]] {
	var (
		adv = advance.ByTupleIncrement2[Iterator[T1, V1], Iterator[T2, V2]]()
		der = deref.ByTupleDereference2[Iterator[T1, V1], Iterator[T2, V2], V1, V2]()
		cmp = compare.ByLastTupleElementMatch[tuple.T2[Iterator[T1, V1], Iterator[T2, V2]]](Iterator[T2, V2].Equal)
	)
	return Wrap(
		New(tuple.Of2(a.Begin(), b.Begin()), adv, der, cmp),
		New(tuple.Of2(a.End(), b.End()), adv, der, cmp),
	)
}

// Zip3 traverses three sequences simultaneously, the same way as Zip does.
func Zip3[T1, V1, T2, V2, T3, V3 any](a Sequence[T1, V1], b Sequence[T2, V2], c Sequence[T3, V3]) Wrapped[tuple.T3[Iterator[T1, V1], Iterator[T2, V2], Iterator[T3, V3]], tuple.T3[V1, V2, V3]] {
	var (
		adv = advance.ByTupleIncrement3[Iterator[T1, V1], Iterator[T2, V2], Iterator[T3, V3]]()
		der = deref.ByTupleDereference3[Iterator[T1, V1], Iterator[T2, V2], Iterator[T3, V3], V1, V2, V3]()
		cmp = compare.ByLastTupleElementMatch[tuple.T3[Iterator[T1, V1], Iterator[T2, V2], Iterator[T3, V3]]](Iterator[T3, V3].Equal)
	)
	return Wrap(
		New(tuple.Of3(a.Begin(), b.Begin(), c.Begin()), adv, der, cmp),
		New(tuple.Of3(a.End(), b.End(), c.End()), adv, der, cmp),
	)
}

// Enumerate yields the values of a sequence paired with their index.
// The index always starts at zero and is the first member of the pair.
func Enumerate[T, V any](seq Sequence[T, V]) Wrapped[tuple.T2[Iterator[int, int], Iterator[T, V]], tuple.T2[int, V]] {
	return Zip[int, int, T, V](WrapEnd(Counter(0, 1), IterationEnd{}), seq)
}
