package escrow

import (
	"testing"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/commitment"
	"github.com/iov-one/remit/errors"
)

func TestCreateMsgValidate(t *testing.T) {
	valid := func() *CreateMsg {
		return &CreateMsg{
			Commitment: testCommitment(t, 1, testAddress(2)),
			Broker:     testAddress(2),
			Amount:     100,
			Expiry:     1700000000,
		}
	}

	cases := map[string]struct {
		mutate  func(msg *CreateMsg)
		wantErr *errors.Error
	}{
		"valid": {
			mutate: func(msg *CreateMsg) {},
		},
		"zero amount": {
			mutate:  func(msg *CreateMsg) { msg.Amount = 0 },
			wantErr: errors.ErrInput,
		},
		"missing broker": {
			mutate:  func(msg *CreateMsg) { msg.Broker = nil },
			wantErr: errors.ErrInput,
		},
		"truncated broker": {
			mutate:  func(msg *CreateMsg) { msg.Broker = msg.Broker[:remit.AddressLength-1] },
			wantErr: errors.ErrInput,
		},
		"zero expiry": {
			mutate:  func(msg *CreateMsg) { msg.Expiry = 0 },
			wantErr: errors.ErrInput,
		},
		"missing commitment": {
			mutate:  func(msg *CreateMsg) { msg.Commitment = nil },
			wantErr: errors.ErrInput,
		},
		"reserved commitment": {
			mutate: func(msg *CreateMsg) {
				msg.Commitment = make(commitment.Commitment, commitment.Size)
			},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			msg := valid()
			tc.mutate(msg)
			err := msg.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %+v", err)
				}
			} else if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestReleaseMsgValidate(t *testing.T) {
	msg := &ReleaseMsg{Preimage: testPreimage(1)}
	if err := msg.Validate(); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	msg = &ReleaseMsg{Preimage: testPreimage(1)[:5]}
	if err := msg.Validate(); !errors.ErrInput.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}

	msg = &ReleaseMsg{Preimage: make(commitment.Preimage, commitment.PreimageSize)}
	if err := msg.Validate(); !errors.ErrInput.Is(err) {
		t.Fatalf("want the zero sentinel rejected, got %+v", err)
	}
}

func TestReclaimMsgValidate(t *testing.T) {
	msg := &ReclaimMsg{Commitment: testCommitment(t, 1, testAddress(2))}
	if err := msg.Validate(); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	msg = &ReclaimMsg{}
	if err := msg.Validate(); !errors.ErrInput.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
}
