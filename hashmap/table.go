// Package hashmap implements a string-keyed hash table with separate chaining
// and doubling growth.
//
// A Table owns its values: every value that leaves the table, whether
// overwritten, deleted, cleared or dropped by Close, is handed to the
// configured release function exactly once. Tables are not safe for
// concurrent use.
package hashmap

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/tuannh982/chainmap/utils/math"
)

type link[V any] struct {
	key   string
	value V
	next  *link[V]
}

type Config[V any] struct {
	// Hash selects buckets. Defaults to StringHash.
	Hash HashFunc
	// Release is called with every value the table drops. May be nil.
	Release func(V)
	// Logger receives resize events at debug level.
	Logger *log.Entry
}

type Table[V any] struct {
	buckets []*link[V]
	count   int
	hash    HashFunc
	release func(V)
	log     *log.Entry
}

// New creates an empty table with the given number of buckets, hashing with
// StringHash. It panics if capacity is not positive.
func New[V any](capacity int) *Table[V] {
	return NewWithConfig(capacity, Config[V]{})
}

func NewWithConfig[V any](capacity int, cfg Config[V]) *Table[V] {
	if capacity <= 0 {
		panic(ErrInvalidCapacity)
	}
	buckets, err := makeBuckets[V](capacity)
	must(err)
	t := &Table[V]{
		buckets: buckets,
		count:   0,
		hash:    cfg.Hash,
		release: cfg.Release,
		log:     cfg.Logger,
	}
	if t.hash == nil {
		t.hash = StringHash
	}
	if t.log == nil {
		t.log = log.WithFields(log.Fields{"component": "hashmap"})
	}
	return t
}

func (t *Table[V]) mustOpen() {
	if t == nil {
		panic(ErrNilTable)
	}
	if t.buckets == nil {
		panic(ErrClosed)
	}
}

func (t *Table[V]) index(key string) int {
	return math.Mod(t.hash(key), len(t.buckets))
}

func (t *Table[V]) find(key string) *link[V] {
	for cur := t.buckets[t.index(key)]; cur != nil; cur = cur.next {
		if cur.key == key {
			return cur
		}
	}
	return nil
}

func (t *Table[V]) drop(v V) {
	if t.release != nil {
		t.release(v)
	}
}

// Put stores value under key. A new key is appended to the tail of its
// bucket's chain; an existing key keeps its place and has its previous value
// released (even when it is the same value) before the new one is stored.
//
// Afterwards the table grows if the load factor reached LoadFactorThreshold.
// A growth failure is returned as an error wrapping ErrCapacityOverflow; the
// value has been stored regardless and the table stays consistent.
func (t *Table[V]) Put(key string, value V) error {
	t.mustOpen()
	i := t.index(key)
	cur := t.buckets[i]
	if cur == nil {
		t.buckets[i] = &link[V]{key: key, value: value}
		t.count++
	} else {
		for {
			if cur.key == key {
				t.drop(cur.value)
				cur.value = value
				break
			}
			if cur.next == nil {
				cur.next = &link[V]{key: key, value: value}
				t.count++
				break
			}
			cur = cur.next
		}
	}
	if t.LoadFactor() >= LoadFactorThreshold {
		return t.resize(2 * len(t.buckets))
	}
	return nil
}

// Get returns the value stored under key. The value remains owned by the
// table.
func (t *Table[V]) Get(key string) (v V, ok bool) {
	t.mustOpen()
	if l := t.find(key); l != nil {
		return l.value, true
	}
	return v, false
}

func (t *Table[V]) Contains(key string) bool {
	t.mustOpen()
	return t.find(key) != nil
}

// Delete removes key and releases its value. Deleting an absent key does
// nothing.
func (t *Table[V]) Delete(key string) {
	t.mustOpen()
	i := t.index(key)
	var prev *link[V]
	for cur := t.buckets[i]; cur != nil; prev, cur = cur, cur.next {
		if cur.key != key {
			continue
		}
		if prev == nil {
			t.buckets[i] = cur.next
		} else {
			prev.next = cur.next
		}
		cur.next = nil
		t.count--
		t.drop(cur.value)
		return
	}
}

func (t *Table[V]) Size() int {
	t.mustOpen()
	return t.count
}

func (t *Table[V]) Capacity() int {
	t.mustOpen()
	return len(t.buckets)
}

// EmptyBuckets returns the number of buckets without any entry.
func (t *Table[V]) EmptyBuckets() int {
	t.mustOpen()
	total := 0
	for _, head := range t.buckets {
		if head == nil {
			total++
		}
	}
	return total
}

// LoadFactor returns Size()/Capacity(). It can exceed 1 when chains are long.
func (t *Table[V]) LoadFactor() float64 {
	t.mustOpen()
	return float64(t.count) / float64(len(t.buckets))
}

// Each calls fn for every entry in bucket then chain order until fn returns
// false.
func (t *Table[V]) Each(fn func(key string, value V) bool) {
	t.mustOpen()
	for _, head := range t.buckets {
		for cur := head; cur != nil; cur = cur.next {
			if !fn(cur.key, cur.value) {
				return
			}
		}
	}
}

func (t *Table[V]) Keys() []string {
	arr := make([]string, 0, t.Size())
	t.Each(func(key string, _ V) bool {
		arr = append(arr, key)
		return true
	})
	return arr
}

func (t *Table[V]) Values() []V {
	arr := make([]V, 0, t.Size())
	t.Each(func(_ string, value V) bool {
		arr = append(arr, value)
		return true
	})
	return arr
}

// Clear releases every value and empties the table, keeping its capacity.
func (t *Table[V]) Clear() {
	t.mustOpen()
	t.dropAll()
}

// Close releases every value exactly once and discards the buckets. The
// table must not be used afterwards.
func (t *Table[V]) Close() {
	t.mustOpen()
	t.dropAll()
	t.buckets = nil
}

func (t *Table[V]) dropAll() {
	for i, head := range t.buckets {
		t.buckets[i] = nil
		for cur := head; cur != nil; {
			next := cur.next
			cur.next = nil
			t.count--
			t.drop(cur.value)
			cur = next
		}
	}
}

func (t *Table[V]) String() string {
	return fmt.Sprintf("size=%d capacity=%d empty=%d load=%.2f",
		t.Size(), t.Capacity(), t.EmptyBuckets(), t.LoadFactor())
}
