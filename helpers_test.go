// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package weierstrass_test

import (
	"crypto/sha256"
	"io"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/hkdf"

	"github.com/herczegzsolt/weierstrass"
)

type (
	fieldPoint   = weierstrass.Point[weierstrass.FieldElement]
	integerPoint = weierstrass.Point[weierstrass.Integer]
)

// testScalars returns n pseudo-random integers in [0, max). The stream is
// keyed by the test name so failures are reproducible.
func testScalars(t *testing.T, n int, max *big.Int) []*big.Int {
	t.Helper()
	r := hkdf.New(sha256.New, []byte(t.Name()), nil, []byte("weierstrass test scalars"))
	buf := make([]byte, (max.BitLen()+7)/8+8)
	out := make([]*big.Int, n)
	for i := range out {
		_, err := io.ReadFull(r, buf)
		require.NoError(t, err)
		out[i] = new(big.Int).Mod(new(big.Int).SetBytes(buf), max)
	}
	return out
}

func fe(t *testing.T, num, prime int64) weierstrass.FieldElement {
	t.Helper()
	x, err := weierstrass.NewFieldElementInt64(num, prime)
	require.NoError(t, err)
	return x
}

func fieldCurve(t *testing.T, a, b, prime int64) *weierstrass.FieldCurve {
	t.Helper()
	c, err := weierstrass.NewFieldCurve(fe(t, a, prime), fe(t, b, prime))
	require.NoError(t, err)
	return c
}

// curve223 is y² = x³ + 7 over 𝔽_223.
func curve223(t *testing.T) *weierstrass.FieldCurve {
	return fieldCurve(t, 0, 7, 223)
}

func affine(t *testing.T, c *weierstrass.FieldCurve, x, y int64) fieldPoint {
	t.Helper()
	p := c.Prime().Int64()
	pt, err := weierstrass.NewAffine[weierstrass.FieldElement](c, fe(t, x, p), fe(t, y, p))
	require.NoError(t, err)
	return pt
}

func integerAffine(t *testing.T, c *weierstrass.IntegerCurve, x, y int64) integerPoint {
	t.Helper()
	pt, err := weierstrass.NewAffine[weierstrass.Integer](c, weierstrass.NewIntegerInt64(x), weierstrass.NewIntegerInt64(y))
	require.NoError(t, err)
	return pt
}

func requireSamePoint[E weierstrass.Element[E]](t *testing.T, want, got weierstrass.Point[E]) {
	t.Helper()
	eq, err := want.Equal(got)
	require.NoError(t, err)
	require.Truef(t, eq, "want %v, got %v", want, got)
}

func requireInfinity[E weierstrass.Element[E]](t *testing.T, got weierstrass.Point[E]) {
	t.Helper()
	require.Truef(t, got.IsInfinity(), "want infinity, got %v", got)
}
