package remit

import (
	common "github.com/tendermint/tendermint/libs/common"
)

// Result is returned by every successful state-changing operation. Data
// carries an operation specific payload (usually the commitment) and Tags
// describe what happened, for indexing and subscriptions.
//
// A failed operation returns no Result, so tags are only ever visible for
// calls that fully committed.
type Result struct {
	Data []byte
	Log  string
	Tags []common.KVPair
}

// Pair is a shortcut to construct a tag.
func Pair(key, value string) common.KVPair {
	return common.KVPair{
		Key:   []byte(key),
		Value: []byte(value),
	}
}
