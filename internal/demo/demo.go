// Package demo holds small programs that show how easyiter sequences are composed.
package demo

import (
	"io"
	"maps"
	"slices"

	"go.llib.dev/easyiter/pkg/errorkit"
	"go.llib.dev/easyiter/pkg/iterkit"
)

const ErrUnknownDemo errorkit.Error = "unknown demo"

// Func writes the output of a demo program to w.
type Func func(w io.Writer) error

var registry = map[string]Func{
	"array":     Array,
	"fibonacci": Fibonacci,
	"iteration": Iteration,
}

// Names lists the available demos in alphabetical order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Run executes the named demo.
func Run(name string, w io.Writer) error {
	fn := iterkit.Find(registry, name)
	if fn == nil {
		return ErrUnknownDemo.F("%q, expected one of %v", name, Names())
	}
	return (*fn)(w)
}
