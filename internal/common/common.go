// Package common holds the arithmetic, hashing and randomness primitives the
// Schnorr protocols are built from, together with the error kinds they report.
package common

import "io"

// Close is a helper function for absorbing errors in the `defer x.Close()` pattern
func Close(o io.Closer) {
	_ = o.Close()
}
