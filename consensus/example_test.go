// SPDX-License-Identifier: MIT

package consensus_test

import (
	"fmt"

	"github.com/katalvlaran/ahp/consensus"
	"github.com/katalvlaran/ahp/pairwise"
)

func ExampleAnalyze() {
	labels := []string{"cost", "quality", "risk"}
	alice, _ := pairwise.FromWeights([]float64{5, 3, 2}, labels)
	bob, _ := pairwise.FromWeights([]float64{5, 3, 2}, labels)

	m, err := consensus.Analyze([]*pairwise.Matrix{alice, bob})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("W=%.2f rho=%.2f level=%s\n", m.KendallW, m.SpearmanRho, m.Level())
	// Output:
	// W=1.00 rho=1.00 level=strong
}
