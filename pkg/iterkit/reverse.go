package iterkit

// Reversible is a container that provides its own reverse direction iterators.
type Reversible[T, V any] interface {
	RBegin() Iterator[T, V]
	REnd() Iterator[T, V]
}

// Reverse wraps the reverse iterators of a container.
// It adds no iteration logic of its own.
func Reverse[T, V any](c Reversible[T, V]) Wrapped[T, V] {
	return Wrap(c.RBegin(), c.REnd())
}

// ReverseSlice iterates over the addresses of the elements in vs, last element first.
func ReverseSlice[E any](vs []E) Wrapped[int, *E] {
	return Reverse[int, *E](reversedSlice[E](vs))
}

type reversedSlice[E any] []E

func (vs reversedSlice[E]) RBegin() Iterator[int, *E] { return byIndex([]E(vs), len(vs)-1, -1) }

func (vs reversedSlice[E]) REnd() Iterator[int, *E] { return byIndex([]E(vs), -1, -1) }
