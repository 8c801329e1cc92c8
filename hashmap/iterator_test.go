package hashmap

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestIteratorCompleteness(t *testing.T) {
	keys := shuffledKeys(1000, 11)
	m := New[int](16)
	for i, k := range keys {
		require.Nil(t, m.Put(k, i))
	}
	found := make([]string, 0, len(keys))
	it := m.Iterator()
	for it.HasNext() {
		k := it.Next()
		require.True(t, m.Contains(k))
		v, _ := m.Get(k)
		require.Equal(t, v, it.Value())
		found = append(found, k)
	}
	require.Equal(t, len(keys), len(found))
	want := append([]string(nil), keys...)
	slices.Sort(want)
	slices.Sort(found)
	require.Equal(t, want, found)
}

func TestIteratorOrder(t *testing.T) {
	m := New[int](8)
	// buckets: "b" 98%8=2, "a" 97%8=1, "i" 105%8=1, "c" 99%8=3
	for i, k := range []string{"b", "a", "i", "c"} {
		require.Nil(t, m.Put(k, i))
	}
	got := make([]string, 0)
	it := m.Iterator()
	for it.HasNext() {
		got = append(got, it.Next())
	}
	require.Equal(t, []string{"a", "i", "b", "c"}, got)
	require.Equal(t, got, m.Keys())
}

func TestIteratorExhausted(t *testing.T) {
	m := New[int](4)
	it := m.Iterator()
	require.False(t, it.HasNext())
	require.PanicsWithValue(t, ErrIteratorExhausted, func() { it.Next() })
	require.PanicsWithValue(t, ErrNoCurrentEntry, func() { it.Value() })

	require.Nil(t, m.Put("k", 1))
	it = m.Iterator()
	require.True(t, it.HasNext())
	require.Equal(t, "k", it.Next())
	require.False(t, it.HasNext())
	require.PanicsWithValue(t, ErrIteratorExhausted, func() { it.Next() })
}

func TestIteratorReset(t *testing.T) {
	m := New[string](8)
	require.Nil(t, m.Put("x", "1"))
	require.Nil(t, m.Put("y", "2"))
	it := m.Iterator()
	first := it.Next()
	_ = it.Next()
	require.False(t, it.HasNext())
	it.Reset()
	require.True(t, it.HasNext())
	require.Equal(t, first, it.Next())
}
