package iterkit

import (
	"go.llib.dev/easyiter/pkg/errorkit"
	"go.llib.dev/easyiter/pkg/iterkit/advance"
	"go.llib.dev/easyiter/pkg/iterkit/compare"
	"go.llib.dev/easyiter/pkg/iterkit/deref"
)

// ErrUndefinedIterator is raised when an exhausted iterator is dereferenced.
const ErrUndefinedIterator errorkit.Error = "attempt to dereference an undefined iterator"

// Iterator is a cursor of type T that yields values of type V.
// How the cursor moves, what it yields and how two cursors compare
// are defined by the strategies it was constructed with.
//
// Iterator is a value type: assigning it copies the cursor,
// and the copies move independently.
//
// Iterators made with New are bounded by an explicit end iterator and are never exhausted.
// Iterators made with NewTracked are self-terminating:
// their advance strategy reports when there are no more values,
// after which the iterator is exhausted and equal to IterationEnd.
type Iterator[T, V any] struct {
	cursor  T
	advance advance.CheckFunc[T]
	deref   deref.Func[T, V]
	compare compare.Func[T]

	tracked bool
	valid   bool
	end     bool
}

// IterationEnd marks the end of a self-terminating sequence.
// It is equal to every exhausted iterator and unequal to every valid one.
type IterationEnd struct{}

// New creates an iterator that is bounded by an explicit end iterator.
func New[T, V any](cursor T, adv advance.Func[T], d deref.Func[T, V], c compare.Func[T]) Iterator[T, V] {
	return Iterator[T, V]{
		cursor:  cursor,
		advance: adv.Checked(),
		deref:   d,
		compare: c,
	}
}

// NewTracked creates a self-terminating iterator.
// When ok is false, the iterator starts exhausted.
func NewTracked[T, V any](cursor T, ok bool, adv advance.CheckFunc[T], d deref.Func[T, V], c compare.Func[T]) Iterator[T, V] {
	return Iterator[T, V]{
		cursor:  cursor,
		advance: adv,
		deref:   d,
		compare: c,
		tracked: true,
		valid:   ok,
	}
}

// NewValue creates a bounded iterator that yields its cursor and compares by value.
//
//	evens := iterkit.NewValue(0, func(n *int) { *n += 2 })
func NewValue[T comparable](cursor T, adv advance.Func[T]) Iterator[T, T] {
	return New(cursor, adv, deref.ByValue[T](), compare.ByValue[T]())
}

// End returns the IterationEnd marker in the shape of an Iterator,
// so it can stand wherever a typed end iterator is expected.
func End[T, V any]() Iterator[T, V] {
	return Iterator[T, V]{end: true}
}

// Cursor returns a copy of the current cursor value.
func (it Iterator[T, V]) Cursor() T { return it.cursor }

// Valid reports whether the iterator can be dereferenced.
// Bounded iterators are always valid, their end is detected by comparison.
func (it Iterator[T, V]) Valid() bool {
	if it.end {
		return false
	}
	return !it.tracked || it.valid
}

// Advance moves the iterator to the next value and reports whether it is still valid.
// Advancing an exhausted iterator is a no-op.
func (it *Iterator[T, V]) Advance() bool {
	if it.end {
		return false
	}
	if !it.tracked {
		it.advance(&it.cursor)
		return true
	}
	if it.valid {
		it.valid = it.advance(&it.cursor)
	}
	return it.valid
}

// Get returns the value at the current position.
// An exhausted iterator yields ErrUndefinedIterator.
func (it *Iterator[T, V]) Get() (V, error) {
	if !it.Valid() {
		var zero V
		return zero, ErrUndefinedIterator
	}
	return it.deref(&it.cursor), nil
}

// Value returns the value at the current position.
// It panics with ErrUndefinedIterator when the iterator is exhausted.
func (it *Iterator[T, V]) Value() V {
	v, err := it.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// Equal reports whether two iterators point to the same position.
// When either side is an End marker, the other side is checked for exhaustion instead.
func (it Iterator[T, V]) Equal(oth Iterator[T, V]) bool {
	switch {
	case it.end && oth.end:
		return true
	case oth.end:
		return it.EqualEnd(IterationEnd{})
	case it.end:
		return oth.EqualEnd(IterationEnd{})
	default:
		return it.compare(it.cursor, oth.cursor)
	}
}

// EqualEnd reports whether the iterator is exhausted.
// A bounded iterator never equals IterationEnd and must be paired with a typed end iterator.
func (it Iterator[T, V]) EqualEnd(IterationEnd) bool {
	if it.end {
		return true
	}
	return it.tracked && !it.valid
}
