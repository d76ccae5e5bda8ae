// SPDX-License-Identifier: MIT

package consistency

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/ahp/matrix"
)

// Deviation describes how far judgment (Row, Col) strays from the ratio the
// weights imply. Ratio is a[i][j]·w[j]/w[i]; 1 means perfect agreement.
// Score is max(Ratio, 1/Ratio), so larger is worse in either direction.
type Deviation struct {
	Row   int     `json:"row" yaml:"row"`
	Col   int     `json:"col" yaml:"col"`
	Value float64 `json:"value" yaml:"value"`
	Ratio float64 `json:"ratio" yaml:"ratio"`
	Score float64 `json:"score" yaml:"score"`
}

// Inconsistencies lists every upper-triangle judgment of values with its
// deviation from weights, most inconsistent first. Equal scores keep row-major
// order.
//
// Errors:
//   - matrix validation errors for a non-square or non-positive table.
//   - ErrDimensionMismatch, ErrNonPositiveWeight for a bad weight vector.
//
// Complexity: O(n² log n).
func Inconsistencies(values matrix.Matrix, weights []float64) ([]Deviation, error) {
	if err := matrix.ValidateSquare(values); err != nil {
		return nil, fmt.Errorf("Inconsistencies: %w", err)
	}
	if err := matrix.ValidatePositive(values); err != nil {
		return nil, fmt.Errorf("Inconsistencies: %w", err)
	}
	n := values.Rows()
	if len(weights) != n {
		return nil, fmt.Errorf("Inconsistencies: %d weights for %d rows: %w", len(weights), n, ErrDimensionMismatch)
	}
	for i, w := range weights {
		if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("Inconsistencies: weight %d = %g: %w", i, w, ErrNonPositiveWeight)
		}
	}

	out := make([]Deviation, 0, n*(n-1)/2)
	var a, r float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, _ = values.At(i, j)
			r = a * weights[j] / weights[i]
			out = append(out, Deviation{Row: i, Col: j, Value: a, Ratio: r, Score: math.Max(r, 1/r)})
		}
	}
	sort.SliceStable(out, func(x, y int) bool { return out[x].Score > out[y].Score })

	return out, nil
}
