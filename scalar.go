// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package weierstrass

import "math/big"

// ScalarMult returns k·p using double-and-add over the bits of k, least
// significant first. k = 0 yields the point at infinity and k = 1 yields p.
// A negative k multiplies -p by |k|.
func (p Point[E]) ScalarMult(k *big.Int) (Point[E], error) {
	if k.Sign() < 0 {
		return p.Neg().ScalarMult(new(big.Int).Neg(k))
	}

	var err error
	result := NewInfinity(p.curve)
	current := p
	for i, n := 0, k.BitLen(); i < n; i++ {
		if k.Bit(i) == 1 {
			if result, err = result.Add(current); err != nil {
				return Point[E]{}, err
			}
		}
		if i+1 == n {
			break
		}
		if current, err = current.Double(); err != nil {
			return Point[E]{}, err
		}
	}
	return result, nil
}

// ScalarMultInt64 is ScalarMult for small scalars.
func (p Point[E]) ScalarMultInt64(k int64) (Point[E], error) {
	return p.ScalarMult(big.NewInt(k))
}
