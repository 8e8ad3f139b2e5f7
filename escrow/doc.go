/*
Package escrow implements the remittance state machine.

Every remittance record walks through at most three states, keyed by its
commitment:

  Empty -> Active -> Spent

Create locks an amount under a commitment and is the only transition out
of Empty. Release (broker reveals the secret before expiry) and Reclaim
(funder takes the funds back at or after expiry) both move an Active
record to Spent, whichever happens first. Spent is terminal: records are
tombstoned, never deleted and never reused, so a commitment can never be
recreated.

Both redeeming operations zero the record before the value transfer is
attempted and run inside a cache wrap of the store. A failed transfer
discards the cache, which rolls the zeroing back, keeping the whole
operation atomic without relying on call ordering discipline alone.
*/
package escrow
