package bench

import (
	"go.llib.dev/easyiter/pkg/iterkit"
)

// Case runs one benchmark round over 0..limit and returns a checksum of what it computed.
type Case struct {
	Run func(limit int) int
	// Expected is the closed form of the checksum.
	Expected func(limit int) int
}

var triangular = func(limit int) int { return limit * (limit + 1) / 2 }

var cases = map[string]Case{
	"range": {
		Run: func(limit int) int {
			return iterkit.Reduce(iterkit.RangeBetween(0, limit+1).All(), 0, add)
		},
		Expected: triangular,
	},
	"range-hand": {
		Run: func(limit int) int {
			var sum int
			for i := 0; i <= limit; i++ {
				sum += i
			}
			return sum
		},
		Expected: triangular,
	},
	"custom-range": {
		Run: func(limit int) int {
			inc := func(n *int) { *n++ }
			var sum int
			for n := range iterkit.Wrap(iterkit.NewValue(0, inc), iterkit.NewValue(limit+1, inc)).All() {
				sum += n
			}
			return sum
		},
		Expected: triangular,
	},
	"enumerate": {
		Run: func(limit int) int {
			vs := make([]int, limit+1)
			for i, v := range iterkit.Pairs(iterkit.Enumerate(iterkit.Slice(vs))) {
				*v = i
			}
			return iterkit.Reduce(iterkit.SliceValues(vs).All(), 0, add)
		},
		Expected: triangular,
	},
	"enumerate-hand": {
		Run: func(limit int) int {
			vs := make([]int, limit+1)
			for i := range vs {
				vs[i] = i
			}
			var sum int
			for _, v := range vs {
				sum += v
			}
			return sum
		},
		Expected: triangular,
	},
	"zip": {
		Run: func(limit int) int {
			as := make([]int, limit+1)
			bs := make([]int, limit+1)
			iterkit.Copy(iterkit.Range(limit+1), iterkit.Slice(as))
			for a, b := range iterkit.Pairs(iterkit.Zip(iterkit.SliceValues(as), iterkit.Slice(bs))) {
				*b = 2 * a
			}
			return iterkit.Reduce(iterkit.SliceValues(bs).All(), 0, add)
		},
		Expected: func(limit int) int { return limit * (limit + 1) },
	},
	"zip-hand": {
		Run: func(limit int) int {
			as := make([]int, limit+1)
			bs := make([]int, limit+1)
			for i := range as {
				as[i] = i
			}
			for i := range as {
				bs[i] = 2 * as[i]
			}
			var sum int
			for _, b := range bs {
				sum += b
			}
			return sum
		},
		Expected: func(limit int) int { return limit * (limit + 1) },
	},
	"copy": {
		Run: func(limit int) int {
			dst := make([]int, limit+1)
			iterkit.Copy(iterkit.Range(limit+1), iterkit.Slice(dst))
			return iterkit.Reduce(iterkit.SliceValues(dst).All(), 0, add)
		},
		Expected: triangular,
	},
	"copy-hand": {
		Run: func(limit int) int {
			dst := make([]int, limit+1)
			for i := range dst {
				dst[i] = i
			}
			var sum int
			for _, v := range dst {
				sum += v
			}
			return sum
		},
		Expected: triangular,
	},
}

var caseOrder = []string{
	"range", "range-hand", "custom-range",
	"enumerate", "enumerate-hand",
	"zip", "zip-hand",
	"copy", "copy-hand",
}

// CaseNames lists the known cases, library cases followed by their hand written baseline.
func CaseNames() []string {
	return append([]string(nil), caseOrder...)
}

func add(a, b int) int { return a + b }
