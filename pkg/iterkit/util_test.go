package iterkit_test

import (
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"go.llib.dev/easyiter/pkg/iterkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

func TestFill(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		vs = testcase.Let(s, func(t *testcase.T) []string {
			return random.Slice(t.Random.IntB(0, 32), t.Random.String)
		})
		v = testcase.Let(s, func(t *testcase.T) string { return t.Random.String() })
	)

	s.Test("every element gets the value", func(t *testcase.T) {
		iterkit.Fill(iterkit.Slice(vs.Get(t)), v.Get(t))
		for _, got := range vs.Get(t) {
			assert.Equal(t, v.Get(t), got)
		}
	})

	s.Test("a reversed window is filled the same way", func(t *testcase.T) {
		iterkit.Fill(iterkit.ReverseSlice(vs.Get(t)), v.Get(t))
		for _, got := range vs.Get(t) {
			assert.Equal(t, v.Get(t), got)
		}
	})
}

func TestCopy(t *testing.T) {
	s := testcase.NewSpec(t)

	src := testcase.Let(s, func(t *testcase.T) []int {
		return random.Slice(t.Random.IntB(0, 32), t.Random.Int)
	})

	s.Test("dst receives the values of src, element by element", func(t *testcase.T) {
		dst := make([]int, len(src.Get(t)))
		iterkit.Copy(iterkit.SliceValues(src.Get(t)), iterkit.Slice(dst))
		if diff := cmp.Diff(src.Get(t), dst); diff != "" {
			t.Fatalf("copy mismatch (-want +got):\n%s", diff)
		}
	})

	s.Test("a range can be copied into a slice", func(t *testcase.T) {
		dst := make([]int, len(src.Get(t)))
		iterkit.Copy(iterkit.Range(len(dst)), iterkit.Slice(dst))
		for i, v := range dst {
			assert.Equal(t, i, v)
		}
	})

	s.Test("copying into a reversed slice reverses the order", func(t *testcase.T) {
		n := len(src.Get(t))
		dst := make([]int, n)
		iterkit.Copy(iterkit.SliceValues(src.Get(t)), iterkit.ReverseSlice(dst))
		for i := range dst {
			assert.Equal(t, src.Get(t)[n-1-i], dst[i])
		}
	})
}

func TestCopyFunc(t *testing.T) {
	names := []string{randomdata.SillyName(), randomdata.SillyName(), randomdata.SillyName()}
	lengths := make([]int, len(names))
	iterkit.CopyFunc(iterkit.SliceValues(names), iterkit.Slice(lengths), func(s string) int { return len(s) })
	for i, n := range names {
		require.Equal(t, len(n), lengths[i])
	}
}

func TestFind(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		key = testcase.Let(s, func(t *testcase.T) string { return randomdata.SillyName() })
		val = testcase.Let(s, func(t *testcase.T) int { return randomdata.Number(1, 1000) })
		m   = testcase.Let(s, func(t *testcase.T) map[string]int {
			return map[string]int{key.Get(t): val.Get(t)}
		})
	)

	s.When("the key is present", func(s *testcase.Spec) {
		s.Then("a reference to the value is returned", func(t *testcase.T) {
			got := iterkit.Find(m.Get(t), key.Get(t))
			assert.NotNil(t, got)
			assert.Equal(t, val.Get(t), *got)
		})

		s.Then("it can be erased", func(t *testcase.T) {
			assert.True(t, iterkit.EraseIfFound(m.Get(t), key.Get(t)))
			assert.Nil(t, iterkit.Find(m.Get(t), key.Get(t)))
			assert.Empty(t, m.Get(t))
		})
	})

	s.When("the key is absent", func(s *testcase.Spec) {
		othKey := testcase.Let(s, func(t *testcase.T) string { return key.Get(t) + "-" + randomdata.SillyName() })

		s.Then("nil is returned", func(t *testcase.T) {
			assert.Nil(t, iterkit.Find(m.Get(t), othKey.Get(t)))
		})

		s.Then("erasing reports false and leaves the map untouched", func(t *testcase.T) {
			assert.False(t, iterkit.EraseIfFound(m.Get(t), othKey.Get(t)))
			assert.Equal(t, 1, len(m.Get(t)))
		})
	})

	s.Test("pointer valued maps hand out the stored object", func(t *testcase.T) {
		type user struct{ Name string }
		u := &user{Name: randomdata.SillyName()}
		users := map[int]*user{42: u}
		got := iterkit.Find(users, 42)
		assert.NotNil(t, got)
		(*got).Name = "renamed"
		assert.Equal(t, "renamed", users[42].Name)
	})
}

func TestFound(t *testing.T) {
	m := map[string]int{"answer": 42}

	v, ok := m["answer"]
	got := iterkit.Found(v, ok)
	assert.NotNil(t, got)
	assert.Equal(t, 42, *got)

	v, ok = m["question"]
	assert.Nil(t, iterkit.Found(v, ok))
}
