// Package advance holds the strategies an iterator uses to move its cursor forward.
//
// A Func only moves the cursor. A CheckFunc also reports whether the cursor still
// holds a value, which is what makes an iterator self-terminating.
package advance

import (
	"go.llib.dev/easyiter/internal/constraints"
	"go.llib.dev/easyiter/pkg/tuple"
)

// Func moves the cursor to the next position.
type Func[T any] func(cursor *T)

// Checked lifts a plain step into a CheckFunc that never reports the end.
func (fn Func[T]) Checked() CheckFunc[T] {
	return func(cursor *T) bool {
		fn(cursor)
		return true
	}
}

// CheckFunc moves the cursor to the next position and reports whether there is a value there.
type CheckFunc[T any] func(cursor *T) bool

// ByValue adds n to the cursor on every step.
// A negative n walks backwards.
func ByValue[N constraints.Integer](n N) Func[N] {
	return func(cursor *N) { *cursor += n }
}

// Stepper is a cursor member that can advance itself, like an iterator.
type Stepper[T any] interface {
	*T
	Advance() bool
}

// ByTupleIncrement2 advances every member of a two member tuple cursor.
func ByTupleIncrement2[A, B any, PA Stepper[A], PB Stepper[B]]() Func[tuple.T2[A, B]] {
	return func(cursor *tuple.T2[A, B]) {
		PA(&cursor.A).Advance()
		PB(&cursor.B).Advance()
	}
}

// ByTupleIncrement3 advances every member of a three member tuple cursor.
func ByTupleIncrement3[A, B, C any, PA Stepper[A], PB Stepper[B], PC Stepper[C]]() Func[tuple.T3[A, B, C]] {
	return func(cursor *tuple.T3[A, B, C]) {
		PA(&cursor.A).Advance()
		PB(&cursor.B).Advance()
		PC(&cursor.C).Advance()
	}
}

// ByMemberCall delegates to the cursor's own Advance method.
// The method's result tells whether the cursor still holds a value.
func ByMemberCall[T any, P Stepper[T]]() CheckFunc[T] {
	return func(cursor *T) bool { return P(cursor).Advance() }
}
