package demo

import (
	"fmt"
	"io"
	"math"

	"go.llib.dev/easyiter/pkg/iterkit"
)

// FibonacciGenerator walks the Fibonacci numbers until the next one would overflow uint32.
type FibonacciGenerator struct {
	current uint64
	next    uint64
}

func (f *FibonacciGenerator) Init() bool {
	f.current, f.next = 0, 1
	return true
}

func (f *FibonacciGenerator) Advance() bool {
	if math.MaxUint32-f.current < f.next {
		return false
	}
	f.current, f.next = f.next, f.current+f.next
	return true
}

func (f *FibonacciGenerator) Value() uint64 { return f.current }

// Fibonacci prints the enumerated Fibonacci numbers.
func Fibonacci(w io.Writer) error {
	fib := iterkit.MakeIterable[FibonacciGenerator, uint64](FibonacciGenerator{})
	for i, v := range iterkit.Pairs(iterkit.Enumerate(fib)) {
		if _, err := fmt.Fprintf(w, "Fib_%d\t= %d\n", i, v); err != nil {
			return err
		}
	}
	return nil
}
