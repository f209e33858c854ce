// Package errorkit holds the small set of error helpers shared across easyiter.
package errorkit

import (
	"errors"
	"fmt"
)

// Recover will attempt a recover, and if recovery yields a value, it sets it as an error.
// It must be called directly from a deferred context.
//
// Usage:
//
//	defer errorkit.Recover(&returnError)
func Recover(returnErr *error) {
	r := recover()
	if r == nil {
		return
	}
	switch r := r.(type) {
	case error:
		*returnErr = r
	default:
		*returnErr = fmt.Errorf("%v", r)
	}
}

// As function serves as a shorthand to enable one-liner error handling with errors.As.
// It's meant to be used within an if statement, much like Lookup functions such as os.LookupEnv.
func As[T error](err error) (T, bool) {
	var v T
	ok := errors.As(err, &v)
	return v, ok
}
