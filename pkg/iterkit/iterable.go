package iterkit

import (
	"iter"

	"go.llib.dev/easyiter/pkg/iterkit/advance"
	"go.llib.dev/easyiter/pkg/iterkit/compare"
	"go.llib.dev/easyiter/pkg/iterkit/deref"
)

// Generator is the shape MakeIterable expects from a stateful value of type G.
//
// Advance moves G to its next value and reports whether there is one.
// Value returns the current value.
// G starts at its first value, so Value is called before the first Advance.
type Generator[G, V any] interface {
	*G
	Advance() bool
	Value() V
}

// Initializer is an optional extension of a Generator.
// Init is called once, right before the iteration begins.
// When it returns false, the sequence is empty.
type Initializer interface {
	Init() bool
}

// Iterable is a single-use sequence driven by a Generator.
type Iterable[G, V any] struct {
	start Iterator[G, V]
	init  func(*G) bool
	used  bool
}

// MakeIterable wraps a Generator value into a single-use sequence.
//
//	type Countdown struct{ N int }
//
//	func (c *Countdown) Advance() bool { c.N--; return 0 < c.N }
//	func (c *Countdown) Value() int    { return c.N }
//
//	for n := range iterkit.MakeIterable[Countdown, int](Countdown{N: 3}).All() {
//		fmt.Println(n) // 3, 2, 1
//	}
//
// When *G implements Initializer, Init is deferred until Begin is first called.
func MakeIterable[G, V any, P Generator[G, V]](g G) *Iterable[G, V] {
	var init func(*G) bool
	if _, ok := any(P(&g)).(Initializer); ok {
		init = func(g *G) bool { return any(P(g)).(Initializer).Init() }
	}
	return &Iterable[G, V]{
		start: NewTracked(g, true,
			advance.ByMemberCall[G, P](),
			deref.ByMemberCall[G, V, P](),
			compare.Never[G]()),
		init: init,
	}
}

// Begin returns the iterator that walks the sequence.
// Only the first call yields the sequence, later calls return an exhausted iterator.
func (i *Iterable[G, V]) Begin() Iterator[G, V] {
	if i.used {
		return End[G, V]()
	}
	i.used = true
	if i.init != nil {
		i.start.valid = i.init(&i.start.cursor)
	}
	return i.start
}

// End returns the IterationEnd marker of the sequence.
func (i *Iterable[G, V]) End() Iterator[G, V] {
	return End[G, V]()
}

// All returns the sequence as a single-use iter.Seq.
func (i *Iterable[G, V]) All() iter.Seq[V] { return Values[G, V](i) }

// FromPull turns a pull style iterator, such as the one made by iter.Pull, into an Iterable.
// Releasing the pull iterator remains the caller's duty.
//
//	next, stop := iter.Pull(seq)
//	defer stop()
//	for i, v := range iterkit.Pairs(iterkit.Enumerate(iterkit.FromPull(next))) {
//		// ...
//	}
func FromPull[V any](next func() (V, bool)) *Iterable[Pull[V], V] {
	return MakeIterable[Pull[V], V](Pull[V]{next: next})
}

// Pull is the Generator behind FromPull.
type Pull[V any] struct {
	next  func() (V, bool)
	value V
}

func (p *Pull[V]) Init() bool { return p.Advance() }

func (p *Pull[V]) Advance() bool {
	v, ok := p.next()
	if !ok {
		return false
	}
	p.value = v
	return true
}

func (p *Pull[V]) Value() V { return p.value }
