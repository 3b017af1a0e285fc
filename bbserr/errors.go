// Package bbserr defines the sentinel error taxonomy shared by every layer
// of the threshold BBS+ stack, from curve-level modular-inverse failures up
// through DKG and reconstruction. Callers should compare with errors.Is
// against the sentinels here rather than matching on message text; every
// function that can fail wraps one of these with %w and contextual detail.
package bbserr

import "errors"

var (
	// ErrThresholdTooHigh is returned when a DKG run is asked to require
	// more shares than participants exist (t > n).
	ErrThresholdTooHigh = errors.New("bbserr: threshold exceeds participant count")

	// ErrInconsistentDKG is returned when a published public share does not
	// lie on the joint polynomial defined by the first t shares.
	ErrInconsistentDKG = errors.New("bbserr: public share inconsistent with joint polynomial")

	// ErrInconsistent is returned when signature shares being reconstructed
	// disagree on their common nonces (e or s).
	ErrInconsistent = errors.New("bbserr: signature shares disagree on common nonce")

	// ErrZeroUSum is returned when the aggregated u-values of a signing
	// session sum to zero, making reconstruction's modular inverse undefined.
	ErrZeroUSum = errors.New("bbserr: aggregated u-values sum to zero")

	// ErrModInverseOfZero is returned when a modular inverse is requested of
	// a value congruent to zero mod the subgroup order.
	ErrModInverseOfZero = errors.New("bbserr: modular inverse of zero")

	// ErrEmptyInput is returned when an operation receives an empty share
	// list, point set, or signer set where at least one element is required.
	ErrEmptyInput = errors.New("bbserr: empty input")

	// ErrLengthMismatch is returned when two related slices disagree in
	// length (e.g. messages vs H-vector) or an index falls outside range.
	ErrLengthMismatch = errors.New("bbserr: length mismatch")
)
