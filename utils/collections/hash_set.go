package collections

import "github.com/tuannh982/chainmap/hashmap"

type hashSet struct {
	entries *hashmap.Table[struct{}]
}

func NewHashSet(capacity int) Set[string] {
	return &hashSet{
		entries: hashmap.New[struct{}](capacity),
	}
}

func (s *hashSet) Contains(v string) bool {
	return s.entries.Contains(v)
}

func (s *hashSet) Add(v string) error {
	if s.Contains(v) {
		return ErrValueExisted
	}
	return s.entries.Put(v, struct{}{})
}

func (s *hashSet) Remove(v string) error {
	if !s.Contains(v) {
		return ErrValueNotExisted
	}
	s.entries.Delete(v)
	return nil
}

func (s *hashSet) Size() int {
	return s.entries.Size()
}

func (s *hashSet) Entries() []string {
	return s.entries.Keys()
}
