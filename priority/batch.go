// SPDX-License-Identifier: MIT

package priority

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ahp/pairwise"
)

// SolveAll solves every matrix concurrently, running at most limit solves
// at once (limit ≤ 0 means unbounded). Results are index-aligned with ms.
// The first failure cancels the remaining solves and is returned wrapped
// with the matrix index.
func SolveAll(ctx context.Context, ms []*pairwise.Matrix, limit int, opts ...Option) ([]Result, error) {
	out := make([]Result, len(ms))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, m := range ms {
		i, m := i, m
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Solve(m, opts...)
			if err != nil {
				return fmt.Errorf("SolveAll: matrix %d: %w", i, err)
			}
			out[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
