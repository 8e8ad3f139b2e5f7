package escrow

import (
	"time"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/gconf"
)

const pkgName = "escrow"

const (
	// DefaultMinLeadTime is the minimum distance between creation and
	// expiry when not configured otherwise.
	DefaultMinLeadTime = 24 * time.Hour

	// DefaultSkewTolerance is subtracted from the minimum lead time so
	// that legitimate near-boundary requests are not rejected because of
	// clock skew between the funder and the clock oracle.
	DefaultSkewTolerance = 5 * time.Minute
)

// Configuration holds the escrow instance settings. It is persisted as a
// gconf singleton.
type Configuration struct {
	// InstanceID is the identity of this escrow instance. It is part of
	// every commitment preimage, so commitments cannot be replayed
	// against another instance.
	InstanceID string
	// MinLeadTime is the minimum number of seconds between creation and
	// expiry of a remittance.
	MinLeadTime int64
	// SkewTolerance is the number of seconds of clock skew accepted when
	// validating the lead time.
	SkewTolerance int64
}

// NewConfiguration returns a configuration for the given instance with
// the default timing settings.
func NewConfiguration(instanceID string) *Configuration {
	return &Configuration{
		InstanceID:    instanceID,
		MinLeadTime:   int64(DefaultMinLeadTime / time.Second),
		SkewTolerance: int64(DefaultSkewTolerance / time.Second),
	}
}

// Validate ensures the configuration is complete and consistent.
func (c *Configuration) Validate() error {
	if c.InstanceID == "" {
		return errors.Wrap(errors.ErrEmpty, "instance identity")
	}
	if c.MinLeadTime <= 0 {
		return errors.Wrap(errors.ErrInput, "minimum lead time must be positive")
	}
	if c.SkewTolerance < 0 {
		return errors.Wrap(errors.ErrInput, "skew tolerance must not be negative")
	}
	if c.SkewTolerance >= c.MinLeadTime {
		return errors.Wrap(errors.ErrInput, "skew tolerance must be below the minimum lead time")
	}
	return nil
}

// Marshal serializes the configuration.
func (c *Configuration) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(c)
}

// Unmarshal loads the configuration from its serialized form.
func (c *Configuration) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, c)
}

// SaveConfiguration persists the configuration singleton.
func SaveConfiguration(db remit.KVStore, c *Configuration) error {
	return gconf.Save(db, pkgName, c)
}

// loadConfiguration reads the configuration singleton. The engine cannot
// operate without one.
func loadConfiguration(db remit.ReadOnlyKVStore) (*Configuration, error) {
	var c Configuration
	if err := gconf.Load(db, pkgName, &c); err != nil {
		return nil, errors.Wrap(err, "escrow configuration")
	}
	return &c, nil
}
