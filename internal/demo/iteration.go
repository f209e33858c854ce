package demo

import (
	"fmt"
	"io"

	"go.llib.dev/easyiter/pkg/iterkit"
)

// Iteration prints the even numbers below ten using a custom advance strategy.
func Iteration(w io.Writer) error {
	step := func(n *int) { *n += 2 }
	evens := iterkit.NewValue(0, step)

	for n := range iterkit.Wrap(evens, iterkit.NewValue(10, step)).All() {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	return nil
}
