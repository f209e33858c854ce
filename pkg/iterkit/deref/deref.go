// Package deref holds the strategies that turn a cursor into the value an iterator produces.
package deref

import "go.llib.dev/easyiter/pkg/tuple"

// Func computes the view of the current cursor.
// The cursor is passed by pointer, so a strategy may hand out a reference to it.
type Func[T, V any] func(cursor *T) V

// ByValue yields a copy of the cursor.
func ByValue[T any]() Func[T, T] {
	return func(cursor *T) T { return *cursor }
}

// ByConstValueReference yields a read-only view of the cursor.
// Go has no const references, so the view is a copy.
func ByConstValueReference[T any]() Func[T, T] {
	return ByValue[T]()
}

// ByValueReference yields a pointer to the cursor held by the iterator.
func ByValueReference[T any]() Func[T, *T] {
	return func(cursor *T) *T { return cursor }
}

// ByValueDereference yields the value a pointer cursor points at.
func ByValueDereference[T any]() Func[*T, T] {
	return func(cursor **T) T { return **cursor }
}

// ByIndex treats an int cursor as a position in vs and yields a pointer to that element.
// This is how slices are walked by address.
func ByIndex[E any](vs []E) Func[int, *E] {
	return func(cursor *int) *E { return &vs[*cursor] }
}

// Valuer is a cursor member that can produce its current value, like an iterator.
type Valuer[T, V any] interface {
	*T
	Value() V
}

// ByTupleDereference2 yields the tuple of the member views.
// Members yielding pointers keep yielding pointers, so writes go to the backing element.
func ByTupleDereference2[A, B, VA, VB any, PA Valuer[A, VA], PB Valuer[B, VB]]() Func[tuple.T2[A, B], tuple.T2[VA, VB]] {
	return func(cursor *tuple.T2[A, B]) tuple.T2[VA, VB] {
		return tuple.Of2(PA(&cursor.A).Value(), PB(&cursor.B).Value())
	}
}

// ByTupleDereference3 yields the tuple of the member views.
func ByTupleDereference3[A, B, C, VA, VB, VC any, PA Valuer[A, VA], PB Valuer[B, VB], PC Valuer[C, VC]]() Func[tuple.T3[A, B, C], tuple.T3[VA, VB, VC]] {
	return func(cursor *tuple.T3[A, B, C]) tuple.T3[VA, VB, VC] {
		return tuple.Of3(PA(&cursor.A).Value(), PB(&cursor.B).Value(), PC(&cursor.C).Value())
	}
}

// ByMemberCall delegates to the cursor's own Value method.
func ByMemberCall[T, V any, P Valuer[T, V]]() Func[T, V] {
	return func(cursor *T) V { return P(cursor).Value() }
}
