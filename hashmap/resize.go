package hashmap

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/tuannh982/chainmap/utils/math"
)

const (
	// LoadFactorThreshold is the load factor at which Put doubles the table.
	LoadFactorThreshold = 0.75
	MaxCapacity         = 1 << 30
)

// CapacityFor returns the smallest capacity holding n entries below
// LoadFactorThreshold.
func CapacityFor(n int) int {
	if n < 0 {
		n = 0
	}
	return math.DivCeil(4*n+1, 3)
}

func makeBuckets[V any](capacity int) (buckets []*link[V], err error) {
	if capacity > MaxCapacity {
		return nil, fmt.Errorf("%w: %d buckets exceeds %d", ErrCapacityOverflow, capacity, MaxCapacity)
	}
	defer func() {
		if r := recover(); r != nil {
			buckets = nil
			err = fmt.Errorf("%w: allocating %d buckets: %v", ErrCapacityOverflow, capacity, r)
		}
	}()
	return make([]*link[V], capacity), nil
}

// Reserve grows the table, doubling as many times as needed, so that n
// entries fit without crossing LoadFactorThreshold.
func (t *Table[V]) Reserve(n int) error {
	t.mustOpen()
	if n > MaxCapacity {
		return fmt.Errorf("reserve %d entries: %w", n, ErrCapacityOverflow)
	}
	want := CapacityFor(n)
	c := len(t.buckets)
	if want <= c {
		return nil
	}
	for c < want {
		c *= 2
	}
	return t.resize(c)
}

// resize rebuilds the chains over a new bucket array of the given size. Both
// arrays it needs are allocated before any link is touched, so a failure
// leaves the table as it was.
func (t *Table[V]) resize(capacity int) error {
	old := t.buckets
	buckets, err := makeBuckets[V](capacity)
	if err != nil {
		return fmt.Errorf("grow %d -> %d: %w", len(old), capacity, err)
	}
	tails, err := makeBuckets[V](capacity)
	if err != nil {
		return fmt.Errorf("grow %d -> %d: %w", len(old), capacity, err)
	}
	for _, head := range old {
		for cur := head; cur != nil; {
			next := cur.next
			cur.next = nil
			i := math.Mod(t.hash(cur.key), capacity)
			if tails[i] == nil {
				buckets[i] = cur
			} else {
				tails[i].next = cur
			}
			tails[i] = cur
			cur = next
		}
	}
	t.buckets = buckets
	t.log.WithFields(log.Fields{
		"from": len(old),
		"to":   capacity,
		"size": t.count,
	}).Debug("table resized")
	return nil
}
