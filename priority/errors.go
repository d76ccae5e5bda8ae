// SPDX-License-Identifier: MIT

package priority

import "errors"

var (
	// ErrEigenFailed is returned by SolveEigen when the decomposition fails
	// or the principal vector is complex, zero or non-finite. Solve never
	// surfaces it; it falls back to the geometric mean instead.
	ErrEigenFailed = errors.New("priority: eigenvector computation failed")

	// ErrUnknownMethod is returned by ParseMethod for unrecognized names.
	ErrUnknownMethod = errors.New("priority: unknown method")

	// ErrNilMatrix is returned when a nil comparison matrix is solved.
	ErrNilMatrix = errors.New("priority: nil matrix")
)
