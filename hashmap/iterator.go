package hashmap

// Iterator walks the entries of a Table in bucket order, then chain order.
// The table must not be modified while an iterator is in use.
type Iterator[V any] struct {
	buckets []*link[V]
	bucket  int
	next    *link[V]
	current *link[V]
}

func (t *Table[V]) Iterator() *Iterator[V] {
	t.mustOpen()
	it := &Iterator[V]{buckets: t.buckets}
	it.Reset()
	return it
}

// Reset rewinds the iterator to the first entry.
func (it *Iterator[V]) Reset() {
	it.bucket = -1
	it.next = nil
	it.current = nil
	it.seek()
}

// seek moves to the head of the next non-empty bucket unless an entry is
// already pending.
func (it *Iterator[V]) seek() {
	for it.next == nil {
		it.bucket++
		if it.bucket >= len(it.buckets) {
			return
		}
		it.next = it.buckets[it.bucket]
	}
}

func (it *Iterator[V]) HasNext() bool {
	return it.next != nil
}

// Next returns the key of the next entry. It panics with ErrIteratorExhausted
// when HasNext is false.
func (it *Iterator[V]) Next() string {
	if it.next == nil {
		panic(ErrIteratorExhausted)
	}
	it.current = it.next
	it.next = it.next.next
	it.seek()
	return it.current.key
}

// Value returns the value belonging to the key last returned by Next.
func (it *Iterator[V]) Value() V {
	if it.current == nil {
		panic(ErrNoCurrentEntry)
	}
	return it.current.value
}
