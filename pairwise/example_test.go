// SPDX-License-Identifier: MIT

package pairwise_test

import (
	"fmt"

	"github.com/katalvlaran/ahp/pairwise"
)

// ExampleBuild fills the reciprocal table from upper-triangle judgments.
func ExampleBuild() {
	m, err := pairwise.Build([]pairwise.Judgment{
		{A: "cost", B: "quality", Value: 2},
		{A: "cost", B: "risk", Value: 4},
		{A: "quality", B: "risk", Value: 2},
	}, []string{"cost", "quality", "risk"})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, row := range m.Rows() {
		fmt.Println(row)
	}
	// Output:
	// [1 2 4]
	// [0.5 1 2]
	// [0.25 0.5 1]
}

// ExampleMatrix_ScaleCriterion shows the perturbation used by sensitivity
// analysis: the target row grows, its column shrinks, reciprocity holds.
func ExampleMatrix_ScaleCriterion() {
	m, _ := pairwise.Build([]pairwise.Judgment{{A: "x", B: "y", Value: 2}}, []string{"x", "y"})
	s, _ := m.ScaleCriterion("x", 1.5)
	xy, _ := s.Value("x", "y")
	yx, _ := s.Value("y", "x")
	fmt.Printf("%.2f %.4f %v\n", xy, yx, s.ValidateReciprocal(1e-12) == nil)
	// Output:
	// 3.00 0.3333 true
}
