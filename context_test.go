package remit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockTime(t *testing.T) {
	now := time.Unix(1609459200, 0)
	ctx := WithBlockTime(context.Background(), now)

	got, err := BlockTime(ctx)
	require.NoError(t, err)
	assert.True(t, now.Equal(got))

	if _, err := BlockTime(context.Background()); err == nil {
		t.Fatal("want an error for a context without a block time")
	}
}

func TestIsExpired(t *testing.T) {
	now := time.Unix(1609459200, 0)
	ctx := WithBlockTime(context.Background(), now)

	assert.True(t, IsExpired(ctx, AsUnixTime(now.Add(-time.Minute))))
	// The boundary instant counts as expired.
	assert.True(t, IsExpired(ctx, AsUnixTime(now)))
	assert.False(t, IsExpired(ctx, AsUnixTime(now.Add(time.Minute))))
}

func TestIsExpiredRequiresBlockTime(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("want a panic for a context without a block time")
		}
	}()
	IsExpired(context.Background(), 42)
}

func TestContextLogger(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, DefaultLogger, GetLogger(ctx))

	logger := DefaultLogger.With("module", "test")
	ctx = WithLogger(ctx, logger)
	assert.Equal(t, logger, GetLogger(ctx))
}
