package escrow

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/commitment"
	"github.com/iov-one/remit/errors"
)

// CreateMsg locks an amount under a commitment. The amount is taken from
// the caller's wallet within the same atomic call.
type CreateMsg struct {
	Commitment commitment.Commitment
	Broker     remit.Address
	Amount     remit.Amount
	Expiry     remit.UnixTime
}

// Validate makes sure basic rules are enforced upon input data. The
// checks depending on the caller and the evaluation time are done by the
// engine.
func (m *CreateMsg) Validate() error {
	if !m.Amount.IsPositive() {
		return errors.Wrap(errors.ErrInput, "amount must be positive")
	}
	if err := m.Broker.Validate(); err != nil {
		return errors.Wrap(err, "broker")
	}
	if m.Expiry == 0 {
		// Zero expiry is a valid value that dates to 1970-01-01. We know
		// that this value is in the past and makes no sense. Most likely
		// value was not provided and a zero value remained.
		return errors.Wrap(errors.ErrInput, "expiry is required")
	}
	if err := m.Expiry.Validate(); err != nil {
		return errors.Wrap(err, "invalid expiry value")
	}
	return errors.Wrap(m.Commitment.Validate(), "commitment")
}

// ReleaseMsg redeems an active remittance by revealing the secret. The
// caller plays the broker role; the commitment is derived from the
// preimage and the caller identity, so no broker can redeem on behalf of
// another.
type ReleaseMsg struct {
	Preimage commitment.Preimage
}

// Validate makes sure basic rules are enforced upon input data.
func (m *ReleaseMsg) Validate() error {
	return errors.Wrap(m.Preimage.Validate(), "preimage")
}

// ReclaimMsg returns the funds of an expired remittance to its funder.
type ReclaimMsg struct {
	Commitment commitment.Commitment
}

// Validate makes sure basic rules are enforced upon input data.
func (m *ReclaimMsg) Validate() error {
	return errors.Wrap(m.Commitment.Validate(), "commitment")
}
