package bench

import (
	"context"
	"strings"
	"testing"

	"github.com/c2h5oh/datasize"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"go.llib.dev/testcase/assert"
)

func registerCase(t *testing.T, name string, c Case) *Config {
	t.Helper()
	cases[name] = c
	order := caseOrder
	caseOrder = append(CaseNames(), name)
	t.Cleanup(func() {
		delete(cases, name)
		caseOrder = order
	})
	return &Config{Max: 10, Rounds: 1, Parallel: 1, Cases: []string{name}, MemoryLimit: datasize.KB}
}

func TestRun_checksumMismatch(t *testing.T) {
	cfg := registerCase(t, "off-by-one", Case{
		Run:      func(limit int) int { return triangular(limit) + 1 },
		Expected: triangular,
	})

	core, logs := observer.New(zapcore.DebugLevel)
	_, err := Run(context.Background(), cfg, zap.New(core).Sugar())
	assert.ErrorIs(t, err, ErrChecksum)

	failed := logs.FilterMessage("case failed").All()
	assert.Equal(t, 1, len(failed))
	assert.Equal(t, string(ErrChecksum), failed[0].ContextMap()["kind"])
}

func TestRun_panickingCase(t *testing.T) {
	cfg := registerCase(t, "out-of-bounds", Case{
		Run:      func(limit int) int { return make([]int, limit)[limit] },
		Expected: triangular,
	})

	_, err := Run(context.Background(), cfg, zap.NewNop().Sugar())
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "index out of range"))
}

func TestCases_closedForms(t *testing.T) {
	for _, name := range caseOrder {
		t.Run(name, func(t *testing.T) {
			c, ok := cases[name]
			assert.True(t, ok)
			for _, limit := range []int{1, 2, 10, 999} {
				assert.Equal(t, c.Expected(limit), c.Run(limit))
			}
		})
	}
}
