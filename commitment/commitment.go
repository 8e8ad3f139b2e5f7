/*
Package commitment derives the hash commitments that remittance records
are keyed by.

A commitment binds together the secret preimage, the broker allowed to
redeem it, and the identity of the escrow instance. The instance identity
is part of the hashed payload, not associated metadata, so the same
(preimage, broker) pair yields different commitments on different
instances and a commitment can never be replayed across deployments.

A few degenerate values are reserved and never accepted as commitments:
the hash of the empty input, the hash of a numeric zero and the raw zero
value. An uninitialized record reads back as all zero values, so an
attacker must not be able to satisfy a lookup with any of them.
*/
package commitment

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
)

const (
	// PreimageSize is the exact size of the secret in bytes.
	PreimageSize = 32

	// Size is the size of a commitment in bytes, the sha256 output width.
	Size = sha256.Size
)

// domain is the separation prefix of every hashed payload. Bump the
// version when the payload layout changes.
var domain = []byte("remit/commit/v1")

// Preimage is the secret chosen by the funder and communicated to the
// broker out-of-band. Revealing it authorizes the release of the funds.
type Preimage []byte

// Validate returns an error for a preimage that must never be accepted.
func (p Preimage) Validate() error {
	if len(p) != PreimageSize {
		return errors.Wrapf(errors.ErrInput,
			"preimage has to be exactly %d bytes", PreimageSize)
	}
	if bytes.Equal(p, zeroPreimage) {
		return errors.Wrap(errors.ErrInput, "preimage is the zero sentinel")
	}
	return nil
}

var zeroPreimage = make([]byte, PreimageSize)

// Commitment is the hash that a remittance record is stored under.
type Commitment []byte

// Validate returns an error if this is not a value that Derive could have
// produced.
func (c Commitment) Validate() error {
	if len(c) != Size {
		return errors.Wrapf(errors.ErrInput,
			"commitment has to be exactly %d bytes", Size)
	}
	if c.IsReserved() {
		return errors.Wrap(errors.ErrInput, "commitment is a reserved value")
	}
	return nil
}

// Equals checks if two commitments are the same.
func (c Commitment) Equals(o Commitment) bool {
	return bytes.Equal(c, o)
}

// IsReserved returns true for the empty-hash sentinels.
func (c Commitment) IsReserved() bool {
	for _, r := range reserved {
		if bytes.Equal(c, r) {
			return true
		}
	}
	return false
}

// reserved holds the raw zero value, the hash of the empty input and the
// hash of a numeric zero.
var reserved = func() [][]byte {
	empty := sha256.Sum256(nil)

	var zero [8]byte
	binary.BigEndian.PutUint64(zero[:], 0)
	numericZero := sha256.Sum256(zero[:])

	return [][]byte{
		make([]byte, Size),
		empty[:],
		numericZero[:],
	}
}()

// Derive computes the commitment for the given preimage, broker and
// escrow instance. It is a pure function of its inputs.
//
// It fails with an invalid input error when the preimage is degenerate,
// the broker is the null identity, the instance identity is empty, or the
// derived value lands on a reserved sentinel.
func Derive(preimage Preimage, broker remit.Address, instanceID string) (Commitment, error) {
	if err := preimage.Validate(); err != nil {
		return nil, err
	}
	if err := broker.Validate(); err != nil {
		return nil, errors.Wrap(err, "broker")
	}
	if instanceID == "" {
		return nil, errors.Wrap(errors.ErrInput, "instance identity missing")
	}

	payload := bytes.Join([][]byte{
		domain,
		[]byte(instanceID),
		broker,
		preimage,
	}, []byte("|"))
	h := sha256.Sum256(payload)

	c := Commitment(h[:])
	if c.IsReserved() {
		// Finding a preimage for a sentinel is a sha256 break, but the
		// record space must never contain one.
		return nil, errors.Wrap(errors.ErrInput, "derived commitment is reserved")
	}
	return c, nil
}
