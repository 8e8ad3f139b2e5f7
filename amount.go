package remit

import (
	"math"
	"strconv"

	"github.com/iov-one/remit/errors"
)

// Amount is a value expressed in the smallest unit of the native currency.
// Zero is a valid amount but carries no value.
type Amount uint64

// IsPositive returns true if the amount carries any value.
func (a Amount) IsPositive() bool {
	return a > 0
}

// IsZero returns true for the empty amount.
func (a Amount) IsZero() bool {
	return a == 0
}

// Add returns the sum of both amounts. It fails when the result does not
// fit in the underlying representation.
func (a Amount) Add(b Amount) (Amount, error) {
	if b > math.MaxUint64-a {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d + %d", a, b)
	}
	return a + b, nil
}

// Subtract returns the difference of both amounts. It fails when the
// result would be negative.
func (a Amount) Subtract(b Amount) (Amount, error) {
	if b > a {
		return 0, errors.Wrapf(errors.ErrInsufficientAmount, "%d - %d", a, b)
	}
	return a - b, nil
}

// String returns the decimal representation.
func (a Amount) String() string {
	return strconv.FormatUint(uint64(a), 10)
}
