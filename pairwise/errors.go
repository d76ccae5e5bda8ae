// SPDX-License-Identifier: MIT

package pairwise

import "errors"

var (
	// ErrUnknownCriterion is returned when a judgment or query references a
	// label that is absent from the declared label set.
	ErrUnknownCriterion = errors.New("pairwise: unknown criterion")

	// ErrDuplicateCriterion is returned when the label set repeats a label.
	ErrDuplicateCriterion = errors.New("pairwise: duplicate criterion")

	// ErrEmptyCriteria is returned when the label set is empty.
	ErrEmptyCriteria = errors.New("pairwise: empty criteria")

	// ErrDimensionMismatch is returned when the table shape does not match
	// the number of labels (or weights).
	ErrDimensionMismatch = errors.New("pairwise: dimension mismatch")

	// ErrJudgmentOutOfScale is returned by ValidateJudgments for values
	// outside [1/9, 9], including zero, NaN and ±Inf.
	ErrJudgmentOutOfScale = errors.New("pairwise: judgment outside 1/9..9 scale")

	// ErrInvalidJudgment is returned by Build for values no ratio table can
	// hold (negative, NaN, ±Inf) and by New for non-positive cells.
	ErrInvalidJudgment = errors.New("pairwise: invalid judgment value")

	// ErrSelfComparison is returned when a judgment compares a label with itself.
	ErrSelfComparison = errors.New("pairwise: judgment compares a criterion with itself")

	// ErrCriteriaMismatch is returned when two label sets differ.
	ErrCriteriaMismatch = errors.New("pairwise: criteria sets differ")

	// ErrInvalidFactor is returned for non-positive or non-finite scale factors.
	ErrInvalidFactor = errors.New("pairwise: scale factor must be finite and > 0")

	// ErrNilMatrix is returned when a nil *Matrix is used.
	ErrNilMatrix = errors.New("pairwise: nil matrix")
)
