/*
Package orm provides an easy to use db wrapper.

Break state space into prefixed sections called Buckets. Each bucket
contains only one type of object and is keyed by the caller. This is a
generic building block that should generally be embedded in a type-safe
wrapper to ensure all data is the same type.
*/
package orm

import (
	"fmt"
	"regexp"

	"github.com/iov-one/remit/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Bucket is a prefixed subspace of the DB. proto defines the default
// Model, all elements of this bucket are of this type.
type Bucket struct {
	name   string
	prefix []byte
	proto  Model
}

// NewBucket creates a bucket to store data.
func NewBucket(name string, proto Model) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}

	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		proto:  proto,
	}
}

// Name returns the name of the bucket.
func (b Bucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including the bucket prefix.
func (b Bucket) DBKey(key []byte) []byte {
	return append(b.prefix, key...)
}

// Get one element by key, returns nil Object if not present.
func (b Bucket) Get(db Reader, key []byte) (Object, error) {
	dbkey := b.DBKey(key)
	bz, err := db.Get(dbkey)
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, nil
	}

	value := b.proto.Copy()
	if err := value.Unmarshal(bz); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %q", b.name)
	}
	return NewSimpleObj(key, value), nil
}

// Has checks if an element exists under the key without loading it.
func (b Bucket) Has(db Reader, key []byte) (bool, error) {
	return db.Has(b.DBKey(key))
}

// Save will write the object to the bucket, after validating it.
func (b Bucket) Save(db Writer, obj Object) error {
	if err := obj.Validate(); err != nil {
		return errors.Wrapf(err, "invalid object in %q", b.name)
	}

	bz, err := obj.Value().Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshal %q", b.name)
	}
	return db.Set(b.DBKey(obj.Key()), bz)
}

// Delete will remove the value at a key.
func (b Bucket) Delete(db Writer, key []byte) error {
	return db.Delete(b.DBKey(key))
}
