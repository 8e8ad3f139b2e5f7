package remit

import (
	"context"
	"time"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/remit/errors"
)

// Context is just here for the docs. All operations pass a context.Context
// carrying the evaluation time and an optional logger, so every component
// of one evaluation agrees on "now".
type Context = context.Context

type contextKey int // local to the remit module

const (
	contextKeyTime contextKey = iota
	contextKeyLogger
)

// DefaultLogger is used for all context that have not set anything
// themselves.
var DefaultLogger = log.NewNopLogger()

// WithBlockTime sets the evaluation time for this call. It must be read
// from a clock oracle shared by all participants, never from a local wall
// clock, so that everyone agrees on expiry boundaries.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, contextKeyTime, t)
}

// BlockTime returns the evaluation time attached to the context. An error
// is returned when the context was not initialized with a time.
func BlockTime(ctx Context) (time.Time, error) {
	val, ok := ctx.Value(contextKeyTime).(time.Time)
	if !ok {
		return time.Time{}, errors.Wrap(errors.ErrHuman, "block time not present in the context")
	}
	return val, nil
}

// IsExpired returns true if the deadline is reached at the evaluation time
// attached to the context. The boundary instant counts as expired.
//
// This function panics when the context does not carry an evaluation time,
// as that is a programmer error.
func IsExpired(ctx Context, t UnixTime) bool {
	now, err := BlockTime(ctx)
	if err != nil {
		panic(err)
	}
	return t <= AsUnixTime(now)
}

// WithLogger sets the logger for this context.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the logger stored in the context, or the DefaultLogger.
func GetLogger(ctx Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}
