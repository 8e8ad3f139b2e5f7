package escrow

import (
	amino "github.com/tendermint/go-amino"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/commitment"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/orm"
)

// ErrNoFunds is returned when a redeeming operation hits a record that is
// missing or already spent. Both cases report the same error so a caller
// cannot probe whether a commitment exists.
var ErrNoFunds = errors.Register(1010, "no funds available")

var cdc = amino.NewCodec()

var _ orm.Model = (*Remittance)(nil)

// Remittance is the record of one escrowed amount, stored under its
// commitment.
type Remittance struct {
	// Funder is the party that locked the funds and may reclaim them
	// after expiry. The null funder marks an uninitialized record.
	Funder remit.Address
	// FundsOwed is the escrowed amount still outstanding. Zero once the
	// record is spent.
	FundsOwed remit.Amount
	// Expiry is the deadline separating release from reclaim. It is
	// meaningful only while the record is active and is reset to zero
	// when spent.
	Expiry remit.UnixTime
}

// IsActive returns true while the record still holds redeemable funds.
func (r *Remittance) IsActive() bool {
	return r != nil && !r.Funder.IsEmpty() && r.FundsOwed.IsPositive()
}

// IsSpent returns true for a tombstoned record.
func (r *Remittance) IsSpent() bool {
	return r != nil && !r.Funder.IsEmpty() && r.FundsOwed.IsZero()
}

// Validate ensures the remittance is valid.
func (r *Remittance) Validate() error {
	if err := r.Funder.Validate(); err != nil {
		return errors.Wrap(err, "funder")
	}
	if err := r.Expiry.Validate(); err != nil {
		return errors.Wrap(err, "expiry")
	}
	if r.FundsOwed.IsPositive() && r.Expiry.IsZero() {
		// Zero expiry dates to 1970-01-01 which is always in the past.
		// An active record with it makes no sense.
		return errors.Wrap(errors.ErrState, "active record requires an expiry")
	}
	return nil
}

// Copy makes a new remittance with the same content.
func (r *Remittance) Copy() orm.Model {
	return &Remittance{
		Funder:    r.Funder.Clone(),
		FundsOwed: r.FundsOwed,
		Expiry:    r.Expiry,
	}
}

// Marshal serializes the remittance.
func (r *Remittance) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(r)
}

// Unmarshal loads the remittance from its serialized form.
func (r *Remittance) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, r)
}

// AsRemittance extracts a *Remittance value or nil from the object. Must
// be called on a Bucket result that is a *Remittance, will panic on bad
// type.
func AsRemittance(obj orm.Object) *Remittance {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Remittance)
}

// Bucket is a type-safe wrapper around the remittance storage. It is the
// only writer of remittance records.
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes a remittance bucket.
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket("remit", &Remittance{}),
	}
}

// Get loads the record stored under the commitment, nil if there is none.
func (b Bucket) Get(db orm.Reader, c commitment.Commitment) (*Remittance, error) {
	obj, err := b.Bucket.Get(db, c)
	if err != nil {
		return nil, err
	}
	return AsRemittance(obj), nil
}

// Has checks if a record exists under the commitment without loading it.
func (b Bucket) Has(db orm.Reader, c commitment.Commitment) (bool, error) {
	return b.Bucket.Has(db, c)
}

// Save persists the record under the commitment.
func (b Bucket) Save(db orm.Writer, c commitment.Commitment, r *Remittance) error {
	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "commitment")
	}
	return b.Bucket.Save(db, orm.NewSimpleObj(c, r))
}

// Condition calculates the account holding the escrowed funds of the
// given commitment.
func Condition(c commitment.Commitment) remit.Condition {
	return remit.NewCondition("remit", "lock", c)
}
