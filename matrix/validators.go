// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/domain checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - The reciprocity check runs O(n²) on the upper triangle only.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Domain).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape runs NotNil on both operands, then SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has length n.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidatePositive ensures every element is finite and strictly positive,
// the precondition for log-domain (geometric) kernels.
// Complexity: O(r*c).
func ValidatePositive(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidatePositive", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidatePositive", ErrNaNInf)
			}
			if v <= 0 {
				return validatorErrorf(fmt.Sprintf("ValidatePositive(%d,%d)", i, j), ErrNonPositive)
			}
		}
	}

	return nil
}

// ValidateReciprocal checks the ratio-matrix invariants within tol:
// a[i][i] == 1 and a[i][j]*a[j][i] == 1 for every i<j.
//
// Implementation:
//   - Stage 1: square + positive validation.
//   - Stage 2: scan the diagonal, then the upper triangle in i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrNonPositive, ErrNotReciprocal.
//
// Complexity:
//   - Time O(n²), Space O(1).
func ValidateReciprocal(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidatePositive(m); err != nil {
		return err
	}
	tol = math.Abs(tol)
	n := m.Rows()
	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		aij, _ = m.At(i, i)
		if math.Abs(aij-1) > tol {
			return validatorErrorf(fmt.Sprintf("ValidateReciprocal: diagonal %d", i), ErrNotReciprocal)
		}
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if math.Abs(aij*aji-1) > tol {
				return validatorErrorf(fmt.Sprintf("ValidateReciprocal(%d,%d)", i, j), ErrNotReciprocal)
			}
		}
	}

	return nil
}
