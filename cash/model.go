package cash

import (
	amino "github.com/tendermint/go-amino"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/orm"
)

var cdc = amino.NewCodec()

var _ orm.Model = (*Wallet)(nil)

// Wallet holds the balance of one address in the smallest unit of the
// native currency.
type Wallet struct {
	Balance remit.Amount
}

// Validate ensures the wallet is valid.
func (w *Wallet) Validate() error {
	return nil
}

// Copy makes a new wallet with the same balance.
func (w *Wallet) Copy() orm.Model {
	return &Wallet{
		Balance: w.Balance,
	}
}

// Marshal serializes the wallet.
func (w *Wallet) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(w)
}

// Unmarshal loads the wallet from its serialized form.
func (w *Wallet) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, w)
}

// AsWallet extracts a *Wallet value or nil from the object. Must be
// called on a Bucket result that is a *Wallet, will panic on bad type.
func AsWallet(obj orm.Object) *Wallet {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Wallet)
}

// Bucket is a type-safe wrapper around the wallet storage.
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes a wallet bucket.
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket("cash", &Wallet{}),
	}
}

// Get loads the wallet of the given address, nil if it was never funded.
func (b Bucket) Get(db orm.Reader, addr remit.Address) (*Wallet, error) {
	obj, err := b.Bucket.Get(db, addr)
	if err != nil {
		return nil, err
	}
	return AsWallet(obj), nil
}

// GetOrCreate loads the wallet of the given address, creating an empty
// one if missing.
func (b Bucket) GetOrCreate(db orm.Reader, addr remit.Address) (*Wallet, error) {
	w, err := b.Get(db, addr)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = &Wallet{}
	}
	return w, nil
}

// Save persists the wallet under the given address.
func (b Bucket) Save(db orm.Writer, addr remit.Address, w *Wallet) error {
	if err := addr.Validate(); err != nil {
		return errors.Wrap(err, "wallet address")
	}
	return b.Bucket.Save(db, orm.NewSimpleObj(addr, w))
}
