// SPDX-License-Identifier: MIT

package consensus

import "github.com/katalvlaran/ahp/group"

// Label-set failures reuse the aggregation sentinels so callers match one
// error for both operations.
var (
	ErrDimensionMismatch = group.ErrDimensionMismatch
	ErrNilMatrix         = group.ErrNilMatrix
)
