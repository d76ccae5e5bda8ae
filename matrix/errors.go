// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an op tag) and
// tests match them via errors.Is. No kernel panics on user-triggered input.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so log lines stay greppable.
// Wrap with fmt.Errorf("ctx: %w", ErrX) at the outer boundary only.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> NaN/Inf -> domain (non-positive, not reciprocal).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// a ragged row table, or a non-square matrix where a square one is required.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNonPositive signals a zero or negative entry where the ratio scale
	// requires strictly positive values (log-domain kernels, geometric means).
	ErrNonPositive = errors.New("matrix: non-positive entry on ratio scale")

	// ErrNotReciprocal signals that a[i][j]*a[j][i] != 1 or a[i][i] != 1
	// within the configured tolerance.
	ErrNotReciprocal = errors.New("matrix: matrix is not reciprocal within eps")

	// ErrZeroSum is returned when a vector cannot be normalized because its
	// entries sum to zero.
	ErrZeroSum = errors.New("matrix: vector sums to zero")
)
