package collections

import "github.com/tuannh982/chainmap/hashmap"

type Map[K any, V any] interface {
	Contains(k K) bool
	Put(k K, v V) error
	Get(k K) (V, bool)
	Delete(k K)
	Size() int
	Keys() []K
	Values() []V
}

var _ Map[string, int] = (*hashmap.Table[int])(nil)

func NewHashMap[V any](capacity int) Map[string, V] {
	return hashmap.New[V](capacity)
}
