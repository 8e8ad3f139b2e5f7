package escrow

import (
	"fmt"
	"sync"
	"time"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/cash"
	"github.com/iov-one/remit/commitment"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/gate"
)

// Engine implements the remittance state machine. It is the only writer
// of remittance records and of the ledger moves belonging to them.
//
// Operations are serialized by a single writer lock and each runs against
// a cache wrap of the store: it either fully commits (state mutation,
// transfer and tags) or fully aborts with the store untouched.
type Engine struct {
	mu     sync.Mutex
	bucket Bucket
	ledger cash.Controller
	logger log.Logger
}

// NewEngine returns an engine operating on the given record storage and
// ledger.
func NewEngine(bucket Bucket, ledger cash.Controller) *Engine {
	return &Engine{
		bucket: bucket,
		ledger: ledger,
		logger: remit.DefaultLogger,
	}
}

// WithLogger sets the logger used for committed operations and returns
// the engine for chaining.
func (e *Engine) WithLogger(logger log.Logger) *Engine {
	e.logger = logger
	return e
}

// Create locks msg.Amount from the caller's wallet under msg.Commitment.
// Exactly one active record is ever producible per commitment; a spent
// commitment cannot be resurrected.
func (e *Engine) Create(ctx remit.Context, db remit.CacheableKVStore, caller remit.Address, msg *CreateMsg) (*remit.Result, error) {
	return e.atomic(db, func(cache remit.KVStore) (*remit.Result, error) {
		return e.create(ctx, cache, caller, msg)
	})
}

// Release pays out an active record to the caller, who proves to be the
// broker by revealing the preimage. It fails once the expiry deadline is
// reached; the boundary instant belongs to Reclaim.
func (e *Engine) Release(ctx remit.Context, db remit.CacheableKVStore, caller remit.Address, msg *ReleaseMsg) (*remit.Result, error) {
	return e.atomic(db, func(cache remit.KVStore) (*remit.Result, error) {
		return e.release(ctx, cache, caller, msg)
	})
}

// Reclaim returns the funds of an expired active record to its funder.
func (e *Engine) Reclaim(ctx remit.Context, db remit.CacheableKVStore, caller remit.Address, msg *ReclaimMsg) (*remit.Result, error) {
	return e.atomic(db, func(cache remit.KVStore) (*remit.Result, error) {
		return e.reclaim(ctx, cache, caller, msg)
	})
}

// atomic runs fn against a cache wrap of db under the writer lock. Any
// error discards the cache so no partial mutation is ever observable.
func (e *Engine) atomic(db remit.CacheableKVStore, fn func(remit.KVStore) (*remit.Result, error)) (*remit.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cache := db.CacheWrap()
	res, err := fn(cache)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "writing cache")
	}
	return res, nil
}

func (e *Engine) create(ctx remit.Context, db remit.KVStore, caller remit.Address, msg *CreateMsg) (*remit.Result, error) {
	now, err := e.guard(ctx, db)
	if err != nil {
		return nil, err
	}
	if err := caller.Validate(); err != nil {
		return nil, errors.Wrap(err, "caller")
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	if msg.Broker.Equals(caller) {
		return nil, errors.Wrap(errors.ErrInput, "broker must differ from the funder")
	}

	conf, err := loadConfiguration(db)
	if err != nil {
		return nil, err
	}
	lead := time.Duration(conf.MinLeadTime-conf.SkewTolerance) * time.Second
	if msg.Expiry < now.Add(lead) {
		return nil, errors.Wrapf(errors.ErrInput,
			"expiry must be at least %s ahead", lead)
	}

	switch has, err := e.bucket.Has(db, msg.Commitment); {
	case err != nil:
		return nil, err
	case has:
		// Active or spent, a commitment is never reused.
		return nil, errors.Wrapf(errors.ErrDuplicate, "commitment %X", []byte(msg.Commitment))
	}

	rem := &Remittance{
		Funder:    caller,
		FundsOwed: msg.Amount,
		Expiry:    msg.Expiry,
	}
	if err := e.bucket.Save(db, msg.Commitment, rem); err != nil {
		return nil, err
	}

	// The escrowed amount is taken from the caller within this same
	// atomic scope. Insufficient funds abort the whole creation.
	escrowAddr := Condition(msg.Commitment).Address()
	if err := e.ledger.MoveCoins(db, caller, escrowAddr, msg.Amount); err != nil {
		return nil, errors.Wrap(err, "escrow deposit")
	}

	e.logger.Info("remittance created",
		"commitment", fmt.Sprintf("%X", []byte(msg.Commitment)),
		"funder", caller,
		"broker", msg.Broker,
		"amount", msg.Amount,
		"expiry", msg.Expiry,
	)
	return &remit.Result{
		Data: msg.Commitment,
		Tags: createdTags(msg.Commitment, caller, msg.Broker, msg.Amount, msg.Expiry),
	}, nil
}

func (e *Engine) release(ctx remit.Context, db remit.KVStore, caller remit.Address, msg *ReleaseMsg) (*remit.Result, error) {
	if _, err := e.guard(ctx, db); err != nil {
		return nil, err
	}
	if err := caller.Validate(); err != nil {
		return nil, errors.Wrap(err, "caller")
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	conf, err := loadConfiguration(db)
	if err != nil {
		return nil, err
	}
	c, err := commitment.Derive(msg.Preimage, caller, conf.InstanceID)
	if err != nil {
		return nil, err
	}

	rem, err := e.bucket.Get(db, c)
	if err != nil {
		return nil, err
	}
	if !rem.IsActive() {
		// Missing and spent records are indistinguishable on purpose.
		return nil, errors.Wrap(ErrNoFunds, "release")
	}
	if remit.IsExpired(ctx, rem.Expiry) {
		return nil, errors.Wrapf(errors.ErrExpired, "deadline %s", rem.Expiry)
	}

	amount := rem.FundsOwed
	rem.FundsOwed = 0
	rem.Expiry = 0
	if err := e.bucket.Save(db, c, rem); err != nil {
		return nil, err
	}

	// The record is already zeroed, so a reentrant call cannot redeem
	// twice. A transfer failure discards the whole cache, restoring the
	// record to its exact pre-call state.
	escrowAddr := Condition(c).Address()
	if err := e.ledger.MoveCoins(db, escrowAddr, caller, amount); err != nil {
		return nil, errors.Wrap(err, "escrow payout")
	}

	e.logger.Info("remittance released",
		"commitment", fmt.Sprintf("%X", []byte(c)),
		"broker", caller,
		"amount", amount,
	)
	return &remit.Result{
		Data: c,
		Tags: releasedTags(c, caller, amount),
	}, nil
}

func (e *Engine) reclaim(ctx remit.Context, db remit.KVStore, caller remit.Address, msg *ReclaimMsg) (*remit.Result, error) {
	if _, err := e.guard(ctx, db); err != nil {
		return nil, err
	}
	if err := caller.Validate(); err != nil {
		return nil, errors.Wrap(err, "caller")
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	rem, err := e.bucket.Get(db, msg.Commitment)
	if err != nil {
		return nil, err
	}
	if !rem.IsActive() {
		return nil, errors.Wrap(ErrNoFunds, "reclaim")
	}
	if !remit.IsExpired(ctx, rem.Expiry) {
		return nil, errors.Wrapf(errors.ErrState, "not expired until %s", rem.Expiry)
	}
	if !caller.Equals(rem.Funder) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "only the funder may reclaim")
	}

	amount := rem.FundsOwed
	rem.FundsOwed = 0
	rem.Expiry = 0
	if err := e.bucket.Save(db, msg.Commitment, rem); err != nil {
		return nil, err
	}

	escrowAddr := Condition(msg.Commitment).Address()
	if err := e.ledger.MoveCoins(db, escrowAddr, caller, amount); err != nil {
		return nil, errors.Wrap(err, "escrow payout")
	}

	e.logger.Info("remittance reclaimed",
		"commitment", fmt.Sprintf("%X", []byte(msg.Commitment)),
		"funder", caller,
		"amount", amount,
	)
	return &remit.Result{
		Data: msg.Commitment,
		Tags: reclaimedTags(msg.Commitment, caller, amount),
	}, nil
}

// guard rejects the call when the gate is closed and reads the
// evaluation time once for the whole operation.
func (e *Engine) guard(ctx remit.Context, db remit.ReadOnlyKVStore) (remit.UnixTime, error) {
	switch paused, err := gate.IsPaused(db); {
	case err != nil:
		return 0, err
	case paused:
		return 0, errors.Wrap(gate.ErrPaused, "escrow")
	}

	now, err := remit.BlockTime(ctx)
	if err != nil {
		return 0, err
	}
	return remit.AsUnixTime(now), nil
}
