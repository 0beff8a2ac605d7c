// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package weierstrass

import (
	"context"
	"fmt"
	"math/big"

	"golang.org/x/sync/errgroup"
)

// ScalarMultAll computes k·p for every k in scalars, running at most limit
// multiplications at once (no limit if limit <= 0). Results are returned in
// the order of scalars. The first failure, or cancellation of ctx, aborts the
// remaining work.
func ScalarMultAll[E Element[E]](ctx context.Context, p Point[E], scalars []*big.Int, limit int) ([]Point[E], error) {
	out := make([]Point[E], len(scalars))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, k := range scalars {
		i, k := i, k
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			q, err := p.ScalarMult(k)
			if err != nil {
				return fmt.Errorf("scalar %d: %w", i, err)
			}
			out[i] = q
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
