package escrow

import (
	"fmt"

	common "github.com/tendermint/tendermint/libs/common"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/commitment"
)

// Tag keys attached to the result of every committed operation.
const (
	TagAction     = "action"
	TagCommitment = "commitment"
	TagFunder     = "funder"
	TagBroker     = "broker"
	TagAmount     = "amount"
	TagExpiry     = "expiry"
)

// Actions reported under TagAction.
const (
	ActionCreated   = "created"
	ActionReleased  = "released"
	ActionReclaimed = "reclaimed"
)

func createdTags(c commitment.Commitment, funder, broker remit.Address, amount remit.Amount, expiry remit.UnixTime) []common.KVPair {
	return []common.KVPair{
		remit.Pair(TagAction, ActionCreated),
		remit.Pair(TagCommitment, fmt.Sprintf("%X", []byte(c))),
		remit.Pair(TagFunder, funder.String()),
		remit.Pair(TagBroker, broker.String()),
		remit.Pair(TagAmount, amount.String()),
		remit.Pair(TagExpiry, fmt.Sprintf("%d", expiry)),
	}
}

func releasedTags(c commitment.Commitment, broker remit.Address, amount remit.Amount) []common.KVPair {
	return []common.KVPair{
		remit.Pair(TagAction, ActionReleased),
		remit.Pair(TagCommitment, fmt.Sprintf("%X", []byte(c))),
		remit.Pair(TagBroker, broker.String()),
		remit.Pair(TagAmount, amount.String()),
	}
}

func reclaimedTags(c commitment.Commitment, funder remit.Address, amount remit.Amount) []common.KVPair {
	return []common.KVPair{
		remit.Pair(TagAction, ActionReclaimed),
		remit.Pair(TagCommitment, fmt.Sprintf("%X", []byte(c))),
		remit.Pair(TagFunder, funder.String()),
		remit.Pair(TagAmount, amount.String()),
	}
}
