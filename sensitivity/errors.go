// SPDX-License-Identifier: MIT

package sensitivity

import (
	"errors"

	"github.com/katalvlaran/ahp/pairwise"
)

var (
	// ErrUnknownCriterion is returned when the target label is not in the matrix.
	ErrUnknownCriterion = pairwise.ErrUnknownCriterion

	// ErrInvalidRange is returned for a negative, non-finite, or ≥ 1 range
	// (1+p must stay positive).
	ErrInvalidRange = errors.New("sensitivity: perturbation range must be in [0, 1)")

	// ErrInvalidSteps is returned when steps < 1.
	ErrInvalidSteps = errors.New("sensitivity: steps must be >= 1")

	// ErrNilMatrix is returned for a nil matrix.
	ErrNilMatrix = errors.New("sensitivity: nil matrix")
)
