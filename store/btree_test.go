package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBTreeCacheGetSet(t *testing.T) {
	base := MemStore()

	k, v := []byte("french"), []byte("fry")

	// empty read
	got, err := base.Get(k)
	require.NoError(t, err)
	assert.Nil(t, got)
	has, err := base.Has(k)
	require.NoError(t, err)
	assert.False(t, has)

	// write and read back
	require.NoError(t, base.Set(k, v))
	got, err = base.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)
	has, err = base.Has(k)
	require.NoError(t, err)
	assert.True(t, has)

	// delete and it is gone
	require.NoError(t, base.Delete(k))
	got, err = base.Get(k)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBTreeCacheWrapDiscard(t *testing.T) {
	base := MemStore()
	k, v := []byte("winter"), []byte("feast")
	require.NoError(t, base.Set(k, v))

	cache := base.CacheWrap()

	k2, v2 := []byte("summer"), []byte("fresh")
	require.NoError(t, cache.Set(k2, v2))
	require.NoError(t, cache.Delete(k))

	// cache sees its own writes layered over base
	got, err := cache.Get(k2)
	require.NoError(t, err)
	assert.Equal(t, v2, got)
	has, err := cache.Has(k)
	require.NoError(t, err)
	assert.False(t, has)

	// base is untouched until Write
	got, err = base.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)
	has, err = base.Has(k2)
	require.NoError(t, err)
	assert.False(t, has)

	// discard drops every pending change
	cache.Discard()
	got, err = base.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)
	has, err = base.Has(k2)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestBTreeCacheWrapWrite(t *testing.T) {
	base := MemStore()
	k, v := []byte("winter"), []byte("feast")
	require.NoError(t, base.Set(k, v))

	cache := base.CacheWrap()
	k2, v2 := []byte("summer"), []byte("fresh")
	require.NoError(t, cache.Set(k2, v2))
	require.NoError(t, cache.Delete(k))
	require.NoError(t, cache.Write())

	// all changes are visible in the base store now
	got, err := base.Get(k2)
	require.NoError(t, err)
	assert.Equal(t, v2, got)
	has, err := base.Has(k)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestBTreeCacheWrapNested(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("a"), []byte("1")))

	outer := base.CacheWrap()
	require.NoError(t, outer.Set([]byte("b"), []byte("2")))

	inner := outer.CacheWrap()
	require.NoError(t, inner.Set([]byte("c"), []byte("3")))

	// inner sees all levels
	for _, k := range []string{"a", "b", "c"} {
		has, err := inner.Has([]byte(k))
		require.NoError(t, err)
		assert.True(t, has, k)
	}

	// discard inner, write outer
	inner.Discard()
	require.NoError(t, outer.Write())

	has, err := base.Has([]byte("b"))
	require.NoError(t, err)
	assert.True(t, has)
	has, err = base.Has([]byte("c"))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestBTreeCacheWrapIterator(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("a"), []byte("1")))
	require.NoError(t, base.Set([]byte("c"), []byte("3")))

	cache := base.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	require.NoError(t, cache.Delete(base2key(t, cache, "c")))

	iter, err := cache.Iterator(nil, nil)
	require.NoError(t, err)
	defer iter.Close()

	var keys []string
	for ; iter.Valid(); requireNext(t, iter) {
		keys = append(keys, string(iter.Key()))
	}
	assert.Equal(t, []string{"a", "b"}, keys)
}

func base2key(t *testing.T, kv KVStore, key string) []byte {
	t.Helper()
	has, err := kv.Has([]byte(key))
	require.NoError(t, err)
	require.True(t, has)
	return []byte(key)
}

func requireNext(t *testing.T, iter Iterator) {
	t.Helper()
	require.NoError(t, iter.Next())
}
