// SPDX-License-Identifier: MIT

package group

import "errors"

var (
	// ErrEmptyInput is returned when no matrices (or results) are given.
	ErrEmptyInput = errors.New("group: empty input")

	// ErrDimensionMismatch is returned when matrices differ in size or label set.
	ErrDimensionMismatch = errors.New("group: dimension mismatch")

	// ErrInvalidWeights is returned for evaluator weights that are negative,
	// non-finite, sum to zero, or do not match the number of evaluators.
	ErrInvalidWeights = errors.New("group: invalid evaluator weights")

	// ErrUnknownMethod is returned by ParseMethod for unrecognized names.
	ErrUnknownMethod = errors.New("group: unknown aggregation method")

	// ErrNilMatrix is returned when the input contains a nil matrix.
	ErrNilMatrix = errors.New("group: nil matrix")
)
