package iterkit

import (
	"go.llib.dev/easyiter/internal/constraints"
	"go.llib.dev/easyiter/pkg/iterkit/advance"
	"go.llib.dev/easyiter/pkg/iterkit/compare"
	"go.llib.dev/easyiter/pkg/iterkit/deref"
	"go.llib.dev/easyiter/pkg/tuple"
)

// Counter returns an iterator that yields n and then every value after it by step.
func Counter[N constraints.Integer](n, step N) Iterator[N, N] {
	return New(n, advance.ByValue(step), deref.ByValue[N](), compare.ByValue[N]())
}

// Range returns the values from 0 up to, but not including, end.
func Range[N constraints.Integer](end N) Wrapped[tuple.T2[N, uint64], N] {
	return RangeBetween(0, end)
}

// RangeBetween returns the values from begin up to, but not including, end.
func RangeBetween[N constraints.Integer](begin, end N) Wrapped[tuple.T2[N, uint64], N] {
	return RangeStep(begin, end, 1)
}

// RangeStep returns the values from begin towards end by step, not including end.
// A negative step counts downwards, so begin should be greater than end,
// otherwise the range is empty. A zero step is invalid.
//
// It yields ceil((end-begin)/step) values, so when the distance isn't a multiple of step,
// the last value falls short of end by less than a step,
// which is one value more than a range that rounds its end down to a multiple of step.
//
// The cursor pairs the value with the number of steps taken,
// and the range ends on the step count, thus a range that reaches
// the limits of N doesn't wrap around onto its own beginning.
func RangeStep[N constraints.Integer](begin, end, step N) Wrapped[tuple.T2[N, uint64], N] {
	var adv advance.Func[tuple.T2[N, uint64]] = func(c *tuple.T2[N, uint64]) {
		c.A += step
		c.B++
	}
	var view deref.Func[tuple.T2[N, uint64], N] = func(c *tuple.T2[N, uint64]) N { return c.A }
	cmp := compare.ByLastTupleElementMatch[tuple.T2[N, uint64], uint64](compare.ByValue[uint64]())
	return Wrap(
		New(tuple.Of2(begin, uint64(0)), adv, view, cmp),
		New(tuple.Of2(begin, stepCount(begin, end, step)), adv, view, cmp),
	)
}

func stepCount[N constraints.Integer](begin, end, step N) uint64 {
	var distance, abs uint64
	switch {
	case 0 < step && begin < end:
		distance, abs = uint64(end)-uint64(begin), uint64(step)
	case step < 0 && end < begin:
		distance, abs = uint64(begin)-uint64(end), -uint64(step)
	default:
		return 0
	}
	return distance/abs + min(distance%abs, 1)
}
