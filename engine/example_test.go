// SPDX-License-Identifier: MIT

package engine_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ahp/config"
	"github.com/katalvlaran/ahp/engine"
	"github.com/katalvlaran/ahp/pairwise"
)

func ExampleEngine_GroupDecision() {
	e, err := engine.New(config.Default())
	if err != nil {
		fmt.Println(err)
		return
	}
	criteria := []string{"cost", "quality"}
	alice, _ := e.BuildMatrix([]pairwise.Judgment{{A: "cost", B: "quality", Value: 2}}, criteria, "alice")
	bob, _ := e.BuildMatrix([]pairwise.Judgment{{A: "cost", B: "quality", Value: 8}}, criteria, "bob")

	d, err := e.GroupDecision(context.Background(), []*pairwise.Matrix{alice, bob}, e.DefaultAggregation())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("cost=%.2f quality=%.2f W=%.2f\n", d.Result.Weights["cost"], d.Result.Weights["quality"], d.Consensus.KendallW)
	// Output:
	// cost=0.80 quality=0.20 W=1.00
}
