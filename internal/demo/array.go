package demo

import (
	"fmt"
	"io"

	"go.llib.dev/easyiter/pkg/iterkit"
	"go.llib.dev/easyiter/pkg/iterkit/advance"
	"go.llib.dev/easyiter/pkg/iterkit/compare"
	"go.llib.dev/easyiter/pkg/iterkit/deref"
)

// Array is a fixed size container that hands out its own iterators.
type Array[T any] struct {
	data []T
}

func NewArray[T any](size int) *Array[T] {
	return &Array[T]{data: make([]T, size)}
}

// Begin yields references to the elements, so writes go into the array.
func (a *Array[T]) Begin() iterkit.Iterator[int, *T] { return a.at(0) }

func (a *Array[T]) End() iterkit.Iterator[int, *T] { return a.at(len(a.data)) }

// View is the read-only counterpart of the array's own iteration.
func (a *Array[T]) View() iterkit.Wrapped[int, T] {
	d := func(i *int) T { return a.data[*i] }
	return iterkit.Wrap(
		iterkit.New(0, advance.ByValue(1), d, compare.ByValue[int]()),
		iterkit.New(len(a.data), advance.ByValue(1), d, compare.ByValue[int]()),
	)
}

func (a *Array[T]) at(i int) iterkit.Iterator[int, *T] {
	return iterkit.New(i, advance.ByValue(1), deref.ByIndex(a.data), compare.ByValue[int]())
}

// Array fills a ten element array with squares through enumerate, then prints it.
func Array(w io.Writer) error {
	arr := NewArray[int](10)

	for i, v := range iterkit.Pairs(iterkit.Enumerate[int, *int](arr)) {
		*v = i * i
	}

	for i, v := range iterkit.Pairs(iterkit.Enumerate(arr.View())) {
		if _, err := fmt.Fprintf(w, "arr[%d] = %d\n", i, v); err != nil {
			return err
		}
	}
	return nil
}
