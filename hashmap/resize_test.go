package hashmap

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestCapacityFor(t *testing.T) {
	require.Equal(t, 1, CapacityFor(0))
	require.Equal(t, 2, CapacityFor(1))
	require.Equal(t, 5, CapacityFor(3))
	require.Equal(t, 9, CapacityFor(6))
	for n := 0; n < 500; n++ {
		c := CapacityFor(n)
		require.Less(t, float64(n)/float64(c), LoadFactorThreshold)
	}
}

func TestResizePreservesContents(t *testing.T) {
	keys := shuffledKeys(64, 7)
	m := New[int](128)
	for i, k := range keys[:48] {
		require.Nil(t, m.Put(k, i))
	}
	require.Equal(t, 128, m.Capacity())
	require.Nil(t, m.Put(keys[48], 48))
	require.Nil(t, m.Put(keys[49], 49))
	require.Equal(t, 128, m.Capacity())
	for i, k := range keys[50:] {
		require.Nil(t, m.Put(k, 50+i))
	}
	require.Equal(t, 128, m.Capacity())

	require.Nil(t, m.Reserve(200))
	require.Equal(t, 512, m.Capacity())
	require.Equal(t, len(keys), m.Size())
	for i, k := range keys {
		v, ok := m.Get(k)
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestResizeKeepsChainOrder(t *testing.T) {
	m := NewWithConfig(2, Config[int]{Hash: sameBucket})
	want := []string{"q", "w", "e", "r", "t", "y"}
	for i, k := range want {
		require.Nil(t, m.Put(k, i))
	}
	require.Equal(t, 16, m.Capacity())
	require.Equal(t, want, m.Keys())
	require.Equal(t, 15, m.EmptyBuckets())
}

func TestResizeTrigger(t *testing.T) {
	m := New[int](4)
	require.Nil(t, m.Put("a", 1))
	require.Nil(t, m.Put("b", 2))
	require.Nil(t, m.Put("b", 3))
	require.Equal(t, 4, m.Capacity())
	require.Nil(t, m.Put("c", 3))
	require.Equal(t, 8, m.Capacity())
	require.Less(t, m.LoadFactor(), LoadFactorThreshold)
}

func TestReserve(t *testing.T) {
	m := New[int](4)
	require.Nil(t, m.Reserve(2))
	require.Equal(t, 4, m.Capacity())
	require.Nil(t, m.Reserve(100))
	require.Equal(t, 256, m.Capacity())
	err := m.Reserve(MaxCapacity + 1)
	require.True(t, errors.Is(err, ErrCapacityOverflow))
	require.Equal(t, 256, m.Capacity())
}

func TestMakeBucketsOverflow(t *testing.T) {
	_, err := makeBuckets[int](MaxCapacity + 1)
	require.True(t, errors.Is(err, ErrCapacityOverflow))
	buckets, err := makeBuckets[int](8)
	require.Nil(t, err)
	require.Equal(t, 8, len(buckets))
}

func TestResizeFailureLeavesTable(t *testing.T) {
	m := NewWithConfig(4, Config[int]{Hash: sameBucket})
	require.Nil(t, m.Put("a", 1))
	require.Nil(t, m.Put("b", 2))
	err := m.resize(MaxCapacity * 2)
	require.True(t, errors.Is(err, ErrCapacityOverflow))
	require.Equal(t, 4, m.Capacity())
	require.Equal(t, []string{"a", "b"}, m.Keys())
}

func TestResizeLogging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	m := NewWithConfig(2, Config[int]{Logger: logger.WithField("table", "test")})
	require.Nil(t, m.Put("a", 1))
	require.Nil(t, m.Put("b", 2))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, "table resized", entry.Message)
	require.Equal(t, 2, entry.Data["from"])
	require.Equal(t, 4, entry.Data["to"])
	require.Equal(t, "test", entry.Data["table"])
}
