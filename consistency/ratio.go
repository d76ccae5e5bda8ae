// SPDX-License-Identifier: MIT

package consistency

import "math"

// DefaultThreshold is the conventional CR acceptance bound.
const DefaultThreshold = 0.1

// randomIndex holds Saaty's random consistency indices for n = 1..15.
var randomIndex = [...]float64{
	0, 0, 0.52, 0.89, 1.11, 1.25, 1.35, 1.40, 1.45, 1.49, 1.51, 1.54, 1.56, 1.58, 1.59,
}

// Report bundles the consistency measurements of one table.
type Report struct {
	CI         float64 `json:"ci" yaml:"ci"`
	RI         float64 `json:"ri" yaml:"ri"`
	CR         float64 `json:"cr" yaml:"cr"`
	Consistent bool    `json:"consistent" yaml:"consistent"`
}

// RandomIndex returns RI(n). Sizes above the table reuse its last entry;
// n < 1 yields 0.
func RandomIndex(n int) float64 {
	if n < 1 {
		return 0
	}
	if n > len(randomIndex) {
		return randomIndex[len(randomIndex)-1]
	}

	return randomIndex[n-1]
}

// Index returns CI = (λmax − n)/(n − 1), or 0 when n ≤ 2.
// Slightly negative values from rounding are clamped to 0.
func Index(lambdaMax float64, n int) float64 {
	if n <= 2 || math.IsNaN(lambdaMax) {
		return 0
	}
	ci := (lambdaMax - float64(n)) / float64(n-1)
	if ci < 0 {
		return 0
	}

	return ci
}

// Ratio returns CR = CI/RI(n), or 0 when RI(n) is 0.
func Ratio(lambdaMax float64, n int) float64 {
	ri := RandomIndex(n)
	if ri <= 0 {
		return 0
	}

	return Index(lambdaMax, n) / ri
}

// Check computes the full report and compares CR against threshold.
func Check(lambdaMax float64, n int, threshold float64) Report {
	r := Report{
		CI: Index(lambdaMax, n),
		RI: RandomIndex(n),
		CR: Ratio(lambdaMax, n),
	}
	r.Consistent = r.CR <= threshold

	return r
}
