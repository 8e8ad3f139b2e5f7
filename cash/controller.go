/*
Package cash keeps a single-asset ledger of wallet balances and moves
value between them.

The ledger never mutates escrow state. Every failure is reported as an
ordinary error with no partial mutation, so a caller composing a move
with its own state changes can treat any error as cause for a full
rollback of its cache wrap.
*/
package cash

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
)

// Controller moves funds between wallets.
type Controller struct {
	bucket Bucket
}

// NewController returns a controller using the given wallet storage.
func NewController(bucket Bucket) Controller {
	return Controller{bucket: bucket}
}

// Balance returns the amount held by the given address. An address that
// was never funded holds zero.
func (c Controller) Balance(db remit.KVStore, addr remit.Address) (remit.Amount, error) {
	w, err := c.bucket.Get(db, addr)
	if err != nil {
		return 0, err
	}
	if w == nil {
		return 0, nil
	}
	return w.Balance, nil
}

// MoveCoins moves the given amount from src to dest. If src doesn't
// exist, or doesn't have sufficient funds, it fails. Both wallets are
// written together or not at all.
func (c Controller) MoveCoins(db remit.KVStore, src, dest remit.Address, amount remit.Amount) error {
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrInput, "non-positive transfer")
	}
	if src.Equals(dest) {
		return errors.Wrap(errors.ErrInput, "transfer to self")
	}

	sender, err := c.bucket.Get(db, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrEmpty, "wallet %s", src)
	}

	sender.Balance, err = sender.Balance.Subtract(amount)
	if err != nil {
		return errors.Wrapf(err, "wallet %s", src)
	}

	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	recipient.Balance, err = recipient.Balance.Add(amount)
	if err != nil {
		return errors.Wrapf(err, "wallet %s", dest)
	}

	if err := c.bucket.Save(db, src, sender); err != nil {
		return err
	}
	return c.bucket.Save(db, dest, recipient)
}

// IssueCoins attempts to add the given amount to the destination wallet.
// Fails if it overflows the wallet. This is how deployments fund wallets;
// the escrow engine itself never mints.
func (c Controller) IssueCoins(db remit.KVStore, dest remit.Address, amount remit.Amount) error {
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrInput, "non-positive issue")
	}

	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	recipient.Balance, err = recipient.Balance.Add(amount)
	if err != nil {
		return errors.Wrapf(err, "wallet %s", dest)
	}

	return c.bucket.Save(db, dest, recipient)
}
