//nolint
package store

import "github.com/iov-one/remit"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = remit.ReadOnlyKVStore
type KVStore = remit.KVStore
type Iterator = remit.Iterator
type Model = remit.Model
type CacheableKVStore = remit.CacheableKVStore
type KVCacheWrap = remit.KVCacheWrap
type SetDeleter = remit.SetDeleter
type Batch = remit.Batch
type CommitKVStore = remit.CommitKVStore
type CommitID = remit.CommitID
