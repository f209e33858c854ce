package iterkit

import (
	"iter"

	"go.llib.dev/easyiter/pkg/tuple"
)

// Sequence is anything that can hand out a begin and an end iterator.
// Advancing Begin repeatedly must reach End, or exhaust Begin, in a finite number of steps
// for the sequence to be finite.
type Sequence[T, V any] interface {
	Begin() Iterator[T, V]
	End() Iterator[T, V]
}

// Wrapped is a begin and end iterator pair.
// Wrapped over copyable cursors can be iterated any number of times,
// each iteration starts from a fresh copy of the begin iterator.
type Wrapped[T, V any] struct {
	begin Iterator[T, V]
	end   Iterator[T, V]
}

// Wrap packages two iterators into a sequence.
// No validation happens, the caller guarantees that begin reaches end.
func Wrap[T, V any](begin, end Iterator[T, V]) Wrapped[T, V] {
	return Wrapped[T, V]{begin: begin, end: end}
}

// WrapEnd packages a self-terminating iterator into a sequence that ends when it is exhausted.
func WrapEnd[T, V any](begin Iterator[T, V], _ IterationEnd) Wrapped[T, V] {
	return Wrap(begin, End[T, V]())
}

func (w Wrapped[T, V]) Begin() Iterator[T, V] { return w.begin }

func (w Wrapped[T, V]) End() Iterator[T, V] { return w.end }

// All returns the sequence as an iter.Seq, so it can be used with range.
func (w Wrapped[T, V]) All() iter.Seq[V] { return Values[T, V](w) }

// Values walks any Sequence as an iter.Seq.
func Values[T, V any](seq Sequence[T, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		end := seq.End()
		for it := seq.Begin(); !it.Equal(end); it.Advance() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Pairs walks a sequence of two member tuples as an iter.Seq2,
// which is how zip and enumerate results are destructured in a range clause.
//
//	for i, v := range iterkit.Pairs(iterkit.Enumerate(iterkit.Slice(vs))) {
//		*v = i * i
//	}
func Pairs[T, A, B any](seq Sequence[T, tuple.T2[A, B]]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		for v := range Values(seq) {
			if !yield(v.A, v.B) {
				return
			}
		}
	}
}
