/*
Package gate guards the escrow entry points with a pausable switch.

Pausing is an owner-only capability stored as a configuration singleton.
It is implemented as an explicit guard invoked at the top of each entry
point, not as a type hierarchy, so any component with store access can
consult it.
*/
package gate

import (
	amino "github.com/tendermint/go-amino"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/gconf"
)

// ErrPaused is returned by every guarded operation while the gate is
// closed.
var ErrPaused = errors.Register(1000, "paused")

const pkgName = "gate"

var cdc = amino.NewCodec()

// Configuration holds the owner allowed to flip the switch and the
// current switch state.
type Configuration struct {
	Owner  remit.Address
	Paused bool
}

// Validate ensures the configuration is complete.
func (c *Configuration) Validate() error {
	return errors.Wrap(c.Owner.Validate(), "owner")
}

// Marshal serializes the configuration.
func (c *Configuration) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(c)
}

// Unmarshal loads the configuration from its serialized form.
func (c *Configuration) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, c)
}

// Initialize writes the initial gate configuration. It refuses to
// overwrite an existing one, as ownership transfer is not supported.
func Initialize(db remit.KVStore, owner remit.Address) error {
	var conf Configuration
	switch err := gconf.Load(db, pkgName, &conf); {
	case err == nil:
		return errors.Wrap(errors.ErrDuplicate, "gate already configured")
	case errors.ErrNotFound.Is(err):
		// Expected, first initialization.
	default:
		return err
	}
	return gconf.Save(db, pkgName, &Configuration{Owner: owner})
}

// IsPaused returns the current switch state. An uninitialized gate is
// open.
func IsPaused(db remit.ReadOnlyKVStore) (bool, error) {
	var conf Configuration
	switch err := gconf.Load(db, pkgName, &conf); {
	case err == nil:
		return conf.Paused, nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, err
	}
}

// Pause closes the gate. Owner only.
func Pause(db remit.KVStore, caller remit.Address) error {
	return setPaused(db, caller, true)
}

// Unpause opens the gate. Owner only.
func Unpause(db remit.KVStore, caller remit.Address) error {
	return setPaused(db, caller, false)
}

func setPaused(db remit.KVStore, caller remit.Address, paused bool) error {
	var conf Configuration
	if err := gconf.Load(db, pkgName, &conf); err != nil {
		return errors.Wrap(err, "gate configuration")
	}
	if !conf.Owner.Equals(caller) {
		return errors.Wrap(errors.ErrUnauthorized, "not the owner")
	}
	conf.Paused = paused
	return gconf.Save(db, pkgName, &conf)
}
