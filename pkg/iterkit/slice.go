package iterkit

import (
	"go.llib.dev/easyiter/pkg/iterkit/advance"
	"go.llib.dev/easyiter/pkg/iterkit/compare"
	"go.llib.dev/easyiter/pkg/iterkit/deref"
)

// ValuesBetween iterates over the addresses of vs[begin:end].
// Writing through the yielded pointers updates the slice.
func ValuesBetween[E any](vs []E, begin, end int) Wrapped[int, *E] {
	return Wrap(byIndex(vs, begin, 1), byIndex(vs, end, 1))
}

// Slice iterates over the addresses of every element in vs.
func Slice[E any](vs []E) Wrapped[int, *E] {
	return ValuesBetween(vs, 0, len(vs))
}

// SliceValues iterates over copies of the elements in vs.
func SliceValues[E any](vs []E) Wrapped[int, E] {
	d := func(cursor *int) E { return vs[*cursor] }
	return Wrap(
		New(0, advance.ByValue(1), d, compare.ByValue[int]()),
		New(len(vs), advance.ByValue(1), d, compare.ByValue[int]()),
	)
}

func byIndex[E any](vs []E, index, step int) Iterator[int, *E] {
	return New(index, advance.ByValue(step), deref.ByIndex(vs), compare.ByValue[int]())
}
