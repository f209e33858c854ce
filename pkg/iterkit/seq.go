package iterkit

import "iter"

// Collect drains the sequence into a slice.
func Collect[T any](i iter.Seq[T]) []T {
	if i == nil {
		return nil
	}
	var vs = make([]T, 0)
	for v := range i {
		vs = append(vs, v)
	}
	return vs
}

// Count will iterate over and count the total iterations number
//
// Good when all you want is count all the elements in an iterator but don't want to do anything else.
func Count[T any](i iter.Seq[T]) int {
	var total int
	for range i {
		total++
	}
	return total
}

func Reduce[R, T any](i iter.Seq[T], initial R, fn func(R, T) R) R {
	var v = initial
	for c := range i {
		v = fn(v, c)
	}
	return v
}

// Map transforms every value of the sequence.
func Map[To any, From any](i iter.Seq[From], transform func(From) To) iter.Seq[To] {
	return func(yield func(To) bool) {
		for v := range i {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

func Filter[T any](i iter.Seq[T], filter func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range i {
			if filter(v) && !yield(v) {
				return
			}
		}
	}
}

// Limit stops the sequence after n values.
// Unlimited sequences, like the ones driven by an endless Counter, can be bounded with it.
func Limit[V any](i iter.Seq[V], n int) iter.Seq[V] {
	return func(yield func(V) bool) {
		if n <= 0 {
			return
		}
		var count int
		for v := range i {
			if !yield(v) {
				return
			}
			count++
			if n <= count {
				return
			}
		}
	}
}

// First returns the first value of the sequence.
func First[T any](i iter.Seq[T]) (T, bool) {
	for v := range i {
		return v, true
	}
	var zero T
	return zero, false
}
