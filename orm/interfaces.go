package orm

import (
	"github.com/iov-one/remit"
)

// Persistent is implemented by objects that can serialize themselves into
// a binary representation and load themselves back.
type Persistent interface {
	Marshal() ([]byte, error)
	Unmarshal([]byte) error
}

// Model is implemented by the values stored in a Bucket. Copy must return
// a deep, independent instance so that a loaded object never shares state
// with the bucket's prototype.
type Model interface {
	Persistent
	Validate() error
	Copy() Model
}

// Object wraps a key and a stored Model.
type Object interface {
	Key() []byte
	Value() Model
	Validate() error
}

// Reader is the read side of a bucket's store access.
type Reader = remit.ReadOnlyKVStore

// Writer is the write side of a bucket's store access.
type Writer = remit.KVStore
