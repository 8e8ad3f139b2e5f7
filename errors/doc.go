/*
Package errors implements custom error interfaces for remit.

The idea is to reuse as many errors from this package as possible and
define custom package errors when absolutely necessary. Errors are
registered with a unique numeric code so that a client can test for a
class of failure without string matching, and every error instance
carries a stack trace from the place it was first created.

Usual workflow:
 1. use errors from this package, or Register your own root error,
 2. wrap errors with context as they travel up: errors.Wrap(err, "bucket"),
 3. test with the root's Is method: errors.ErrNotFound.Is(err).
*/
package errors
