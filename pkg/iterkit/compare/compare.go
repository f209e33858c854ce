// Package compare holds the strategies an iterator uses to decide whether two cursors are equal.
package compare

// Func reports whether two cursor values are at the same position.
type Func[T any] func(a, b T) bool

// ByValue compares cursors with the == operator.
func ByValue[T comparable]() Func[T] {
	return func(a, b T) bool { return a == b }
}

// ByAddress compares pointer cursors by identity.
func ByAddress[T any]() Func[*T] {
	return func(a, b *T) bool { return a == b }
}

// ByLastTupleElementMatch compares only the final member of two tuple cursors.
// It lets one designated member drive the termination of a tuple cursor.
func ByLastTupleElementMatch[Tuple interface{ Last() L }, L any](eq Func[L]) Func[Tuple] {
	return func(a, b Tuple) bool { return eq(a.Last(), b.Last()) }
}

// Never reports every pair of cursors as unequal.
// It is meant for iterators that signal their end through an exhaustion flag.
func Never[T any]() Func[T] {
	return func(T, T) bool { return false }
}
