package boltiter_test

import (
	"bytes"
	"path/filepath"
	"slices"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/boltdb/bolt"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"

	"go.llib.dev/easyiter/adapter/boltiter"
	"go.llib.dev/easyiter/pkg/iterkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

var bucketName = []byte("entries")

func openDB(tb testing.TB) *bolt.DB {
	tb.Helper()
	db, err := bolt.Open(filepath.Join(tb.TempDir(), uuid.NewV4().String()+".db"), 0600, nil)
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = db.Close() })
	return db
}

func keysOf(es []boltiter.Entry) [][]byte {
	var keys [][]byte
	for _, e := range es {
		keys = append(keys, append([]byte(nil), e.Key...))
	}
	return keys
}

func TestBucket(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		db   = testcase.Let(s, func(t *testcase.T) *bolt.DB { return openDB(t) })
		keys = testcase.Let(s, func(t *testcase.T) [][]byte {
			return random.Slice(t.Random.IntB(1, 32), func() []byte {
				return []byte(uuid.NewV4().String())
			})
		})
	)
	s.Before(func(t *testcase.T) {
		assert.NoError(t, db.Get(t).Update(func(tx *bolt.Tx) error {
			b, err := tx.CreateBucketIfNotExists(bucketName)
			if err != nil {
				return err
			}
			for _, k := range keys.Get(t) {
				if err := b.Put(k, []byte(randomdata.SillyName())); err != nil {
					return err
				}
			}
			return nil
		}))
	})
	sorted := func(t *testcase.T) [][]byte {
		ks := slices.Clone(keys.Get(t))
		slices.SortFunc(ks, bytes.Compare)
		return ks
	}

	s.Test("Bucket yields every key in byte order", func(t *testcase.T) {
		assert.NoError(t, db.Get(t).View(func(tx *bolt.Tx) error {
			got := iterkit.Collect(boltiter.Bucket(tx, bucketName).All())
			assert.Equal(t, sorted(t), keysOf(got))
			for _, e := range got {
				assert.Equal(t, tx.Bucket(bucketName).Get(e.Key), e.Value)
			}
			return nil
		}))
	})

	s.Test("Reverse yields every key in reverse byte order", func(t *testcase.T) {
		assert.NoError(t, db.Get(t).View(func(tx *bolt.Tx) error {
			exp := sorted(t)
			slices.Reverse(exp)
			assert.Equal(t, exp, keysOf(iterkit.Collect(boltiter.Reverse(tx, bucketName).All())))
			return nil
		}))
	})

	s.Test("Prefix yields only the matching keys", func(t *testcase.T) {
		prefix := sorted(t)[0][:1]
		var exp [][]byte
		for _, k := range sorted(t) {
			if bytes.HasPrefix(k, prefix) {
				exp = append(exp, k)
			}
		}
		assert.NoError(t, db.Get(t).View(func(tx *bolt.Tx) error {
			assert.Equal(t, exp, keysOf(iterkit.Collect(boltiter.Prefix(tx, bucketName, prefix).All())))
			return nil
		}))
	})

	s.Test("Prefix without a match yields nothing", func(t *testcase.T) {
		assert.NoError(t, db.Get(t).View(func(tx *bolt.Tx) error {
			assert.Equal(t, 0, iterkit.Count(boltiter.Prefix(tx, bucketName, []byte("~")).All()))
			return nil
		}))
	})

	s.Test("entries can be enumerated", func(t *testcase.T) {
		assert.NoError(t, db.Get(t).View(func(tx *bolt.Tx) error {
			var n int
			for i, e := range iterkit.Pairs(iterkit.Enumerate(boltiter.Bucket(tx, bucketName))) {
				assert.Equal(t, sorted(t)[i], e.Key)
				n++
			}
			assert.Equal(t, len(keys.Get(t)), n)
			return nil
		}))
	})
}

func TestBucket_missing(t *testing.T) {
	db := openDB(t)
	require.NoError(t, db.View(func(tx *bolt.Tx) error {
		seq := boltiter.Bucket(tx, []byte(randomdata.SillyName()))
		it := seq.Begin()
		require.True(t, it.EqualEnd(iterkit.IterationEnd{}))
		require.Equal(t, 0, iterkit.Count(boltiter.Reverse(tx, []byte("missing")).All()))
		return nil
	}))
}
