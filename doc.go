/*
Package remit provides the shared primitives of the remittance escrow
engine: addresses and conditions, amounts, POSIX timestamps, the key-value
store interfaces every component is built on, and the context helpers that
carry the evaluation time and logger through an operation.

The engine itself lives in the escrow package. A funder locks an amount
under a commitment derived from a secret, the broker identity and the
escrow-instance identity (package commitment). The broker redeems the
amount by revealing the secret before expiry, or the funder reclaims it
afterwards. Funds are held in a single-asset ledger (package cash) and all
entry points are guarded by a pausable gate (package gate).
*/
package remit
