package commitment

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
)

func testAddress(b byte) remit.Address {
	addr := make(remit.Address, remit.AddressLength)
	for i := range addr {
		addr[i] = b
	}
	return addr
}

func testPreimage(b byte) Preimage {
	p := make(Preimage, PreimageSize)
	for i := range p {
		p[i] = b
	}
	return p
}

func TestDeriveDeterministic(t *testing.T) {
	broker := testAddress(1)

	a, err := Derive(testPreimage(7), broker, "remit-mainnet")
	require.NoError(t, err)
	b, err := Derive(testPreimage(7), broker, "remit-mainnet")
	require.NoError(t, err)
	assert.True(t, a.Equals(b))
	require.NoError(t, a.Validate())
}

func TestDeriveDomainSeparation(t *testing.T) {
	broker := testAddress(1)

	a, err := Derive(testPreimage(7), broker, "remit-mainnet")
	require.NoError(t, err)
	b, err := Derive(testPreimage(7), broker, "remit-testnet")
	require.NoError(t, err)
	assert.False(t, a.Equals(b),
		"different instances must produce different commitments")

	c, err := Derive(testPreimage(7), testAddress(2), "remit-mainnet")
	require.NoError(t, err)
	assert.False(t, a.Equals(c),
		"different brokers must produce different commitments")
}

func TestDeriveRejectsDegenerateInput(t *testing.T) {
	broker := testAddress(1)

	cases := map[string]struct {
		preimage   Preimage
		broker     remit.Address
		instanceID string
		wantErr    *errors.Error
	}{
		"zero preimage": {
			preimage:   make(Preimage, PreimageSize),
			broker:     broker,
			instanceID: "remit-mainnet",
			wantErr:    errors.ErrInput,
		},
		"short preimage": {
			preimage:   testPreimage(7)[:16],
			broker:     broker,
			instanceID: "remit-mainnet",
			wantErr:    errors.ErrInput,
		},
		"null broker": {
			preimage:   testPreimage(7),
			broker:     nil,
			instanceID: "remit-mainnet",
			wantErr:    errors.ErrEmpty,
		},
		"empty instance": {
			preimage:   testPreimage(7),
			broker:     broker,
			instanceID: "",
			wantErr:    errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			_, err := Derive(tc.preimage, tc.broker, tc.instanceID)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestReservedSentinels(t *testing.T) {
	emptyHash := sha256.Sum256(nil)
	zeroHash := sha256.Sum256(make([]byte, 8))

	for _, c := range []Commitment{
		make(Commitment, Size),
		emptyHash[:],
		zeroHash[:],
	} {
		assert.True(t, c.IsReserved(), "%X", []byte(c))
		assert.Error(t, c.Validate())
	}

	derived, err := Derive(testPreimage(7), testAddress(1), "remit-mainnet")
	require.NoError(t, err)
	assert.False(t, derived.IsReserved())
}

func TestCommitmentValidateSize(t *testing.T) {
	assert.Error(t, Commitment([]byte("too short")).Validate())
}
