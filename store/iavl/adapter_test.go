package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitStoreRoundTrip(t *testing.T) {
	dir, err := ioutil.TempDir("", "remit-iavl")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	db := NewCommitStore(dir, "remit")
	require.NoError(t, db.LoadLatestVersion())

	cache := db.CacheWrap()
	require.NoError(t, cache.Set([]byte("alice"), []byte("100")))
	require.NoError(t, cache.Write())

	id, err := db.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(1), id.Version)

	value, err := db.Get([]byte("alice"))
	require.NoError(t, err)
	assert.Equal(t, []byte("100"), value)
}

func TestCommitStoreDiscard(t *testing.T) {
	dir, err := ioutil.TempDir("", "remit-iavl")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	db := NewCommitStore(dir, "remit")
	require.NoError(t, db.LoadLatestVersion())

	cache := db.CacheWrap()
	require.NoError(t, cache.Set([]byte("bob"), []byte("5")))
	cache.Discard()

	value, err := db.Get([]byte("bob"))
	require.NoError(t, err)
	assert.Nil(t, value)
}
