// Package remittest provides helpers for testing code built around the
// remittance engine.
package remittest

import (
	"crypto/rand"
	"io/ioutil"
	"os"
	"testing"

	"golang.org/x/crypto/ed25519"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/store/iavl"
)

// NewCondition generates a private key and returns the signature
// condition of its public key.
func NewCondition() remit.Condition {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	return remit.NewCondition("sigs", "ed25519", pub)
}

// NewAddress generates the address of a new random key.
func NewAddress() remit.Address {
	return NewCondition().Address()
}

// CommitKVStore returns a store instance that is using a filesystem
// backend engine to store the data. Use this instead of store.MemStore
// when you want the exact same storage implementation as a production
// instance is using.
func CommitKVStore(t testing.TB) (db remit.CommitKVStore, cleanup func()) {
	t.Helper()

	dbpath, err := ioutil.TempDir("", t.Name())
	if err != nil {
		t.Fatalf("cannot create a temporary directory: %s", err)
	}

	db = iavl.NewCommitStore(dbpath, "db")
	if err := db.LoadLatestVersion(); err != nil {
		os.RemoveAll(dbpath)
		t.Fatalf("cannot load the store: %s", err)
	}
	return db, func() { os.RemoveAll(dbpath) }
}
