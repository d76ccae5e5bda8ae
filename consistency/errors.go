// SPDX-License-Identifier: MIT

package consistency

import "errors"

var (
	// ErrDimensionMismatch is returned when the weight vector length differs
	// from the table size.
	ErrDimensionMismatch = errors.New("consistency: dimension mismatch")

	// ErrNonPositiveWeight is returned when a weight is zero, negative or non-finite.
	ErrNonPositiveWeight = errors.New("consistency: weights must be finite and > 0")
)
