// Package boltiter exposes bolt buckets as easyiter sequences.
//
// The sequences borrow the cursor of the transaction they were made in,
// so they must be consumed before the transaction is closed.
// The same applies to the byte slices of an Entry.
//
//	err := db.View(func(tx *bolt.Tx) error {
//		for e := range boltiter.Bucket(tx, []byte("users")).All() {
//			fmt.Printf("%s=%s\n", e.Key, e.Value)
//		}
//		return nil
//	})
package boltiter

import (
	"bytes"

	"github.com/boltdb/bolt"

	"go.llib.dev/easyiter/pkg/iterkit"
)

// Entry is a key value pair of a bucket.
type Entry struct {
	Key   []byte
	Value []byte
}

type direction int

const (
	forward direction = iota
	backward
)

// Cursor walks a bolt bucket. It is the generator behind the sequences of this package.
type Cursor struct {
	bucket    *bolt.Bucket
	cursor    *bolt.Cursor
	direction direction
	prefix    []byte

	key   []byte
	value []byte
}

// Bucket iterates over every entry of the named bucket in key order.
// A missing bucket is an empty sequence.
func Bucket(tx *bolt.Tx, name []byte) *iterkit.Iterable[Cursor, Entry] {
	return iterkit.MakeIterable[Cursor, Entry](Cursor{bucket: tx.Bucket(name), direction: forward})
}

// Prefix iterates over the entries of the named bucket whose key starts with prefix.
func Prefix(tx *bolt.Tx, name, prefix []byte) *iterkit.Iterable[Cursor, Entry] {
	return iterkit.MakeIterable[Cursor, Entry](Cursor{bucket: tx.Bucket(name), direction: forward, prefix: prefix})
}

// Reverse iterates over every entry of the named bucket in descending key order.
func Reverse(tx *bolt.Tx, name []byte) *iterkit.Iterable[Cursor, Entry] {
	return iterkit.MakeIterable[Cursor, Entry](Cursor{bucket: tx.Bucket(name), direction: backward})
}

func (c *Cursor) Init() bool {
	if c.bucket == nil {
		return false
	}
	c.cursor = c.bucket.Cursor()
	switch {
	case c.prefix != nil:
		c.key, c.value = c.cursor.Seek(c.prefix)
	case c.direction == backward:
		c.key, c.value = c.cursor.Last()
	default:
		c.key, c.value = c.cursor.First()
	}
	return c.ok()
}

func (c *Cursor) Advance() bool {
	if c.direction == backward {
		c.key, c.value = c.cursor.Prev()
	} else {
		c.key, c.value = c.cursor.Next()
	}
	return c.ok()
}

func (c *Cursor) Value() Entry {
	return Entry{Key: c.key, Value: c.value}
}

func (c *Cursor) ok() bool {
	if c.key == nil {
		return false
	}
	return c.prefix == nil || bytes.HasPrefix(c.key, c.prefix)
}
