// Package tuple provides fixed arity product types.
//
// Tuples are plain values: copying a tuple copies every member.
// The Last accessors let generic code select the final member without knowing the arity.
package tuple

type T2[A, B any] struct {
	A A
	B B
}

func Of2[A, B any](a A, b B) T2[A, B] { return T2[A, B]{A: a, B: b} }

// Last returns the final member of the tuple.
func (t T2[A, B]) Last() B { return t.B }

// Split returns the members, which makes tuples easy to destructure:
//
//	i, v := t.Split()
func (t T2[A, B]) Split() (A, B) { return t.A, t.B }

type T3[A, B, C any] struct {
	A A
	B B
	C C
}

func Of3[A, B, C any](a A, b B, c C) T3[A, B, C] { return T3[A, B, C]{A: a, B: b, C: c} }

// Last returns the final member of the tuple.
func (t T3[A, B, C]) Last() C { return t.C }

func (t T3[A, B, C]) Split() (A, B, C) { return t.A, t.B, t.C }
