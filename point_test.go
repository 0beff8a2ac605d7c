// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package weierstrass_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herczegzsolt/weierstrass"
)

func TestNewAffine(t *testing.T) {
	c := curve223(t)

	for _, xy := range [][2]int64{{192, 105}, {17, 56}, {1, 193}} {
		p := affine(t, c, xy[0], xy[1])
		x, y, ok := p.XY()
		require.True(t, ok)
		assert.Equal(t, big.NewInt(xy[0]), x.Num())
		assert.Equal(t, big.NewInt(xy[1]), y.Num())
		assert.True(t, p.Curve().Equal(c))
	}

	for _, xy := range [][2]int64{{200, 119}, {42, 99}} {
		_, err := weierstrass.NewAffine[weierstrass.FieldElement](c, fe(t, xy[0], 223), fe(t, xy[1], 223))
		assert.ErrorIs(t, err, weierstrass.ErrInvalidPoint, "(%d, %d)", xy[0], xy[1])
	}

	_, err := weierstrass.NewAffine[weierstrass.FieldElement](c, fe(t, 1, 13), fe(t, 1, 13))
	assert.ErrorIs(t, err, weierstrass.ErrMismatchedField)
}

func TestNewInfinity(t *testing.T) {
	c := curve223(t)
	inf := weierstrass.NewInfinity[weierstrass.FieldElement](c)
	assert.True(t, inf.IsInfinity())
	_, _, ok := inf.XY()
	assert.False(t, ok)
	assert.Equal(t, "infinity", inf.String())
}

func TestPointEqual(t *testing.T) {
	c := curve223(t)
	inf := weierstrass.NewInfinity[weierstrass.FieldElement](c)
	p := affine(t, c, 47, 71)

	tests := []struct {
		name string
		a, b fieldPoint
		want bool
	}{
		{"infinity", inf, weierstrass.NewInfinity[weierstrass.FieldElement](c), true},
		{"same_point", p, affine(t, c, 47, 71), true},
		{"different_y", p, affine(t, c, 47, 152), false},
		{"different_x", p, affine(t, c, 17, 56), false},
		{"infinity_and_point", inf, p, false},
		{"point_and_infinity", p, inf, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq, err := tt.a.Equal(tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, eq)
		})
	}
}

func TestPointAdd(t *testing.T) {
	c := curve223(t)

	tests := []struct {
		p, q, sum [2]int64
	}{
		{[2]int64{192, 105}, [2]int64{17, 56}, [2]int64{170, 142}},
		{[2]int64{170, 142}, [2]int64{60, 139}, [2]int64{220, 181}},
		{[2]int64{47, 71}, [2]int64{17, 56}, [2]int64{215, 68}},
		{[2]int64{143, 98}, [2]int64{76, 66}, [2]int64{47, 71}},
	}
	for _, tt := range tests {
		p := affine(t, c, tt.p[0], tt.p[1])
		q := affine(t, c, tt.q[0], tt.q[1])
		want := affine(t, c, tt.sum[0], tt.sum[1])

		got, err := p.Add(q)
		require.NoError(t, err)
		requireSamePoint(t, want, got)

		got, err = q.Add(p)
		require.NoError(t, err)
		requireSamePoint(t, want, got)
	}
}

func TestPointDouble(t *testing.T) {
	c := curve223(t)

	tests := []struct {
		p, double [2]int64
	}{
		{[2]int64{192, 105}, [2]int64{49, 71}},
		{[2]int64{143, 98}, [2]int64{64, 168}},
		{[2]int64{47, 71}, [2]int64{36, 111}},
	}
	for _, tt := range tests {
		p := affine(t, c, tt.p[0], tt.p[1])
		want := affine(t, c, tt.double[0], tt.double[1])

		got, err := p.Add(p)
		require.NoError(t, err)
		requireSamePoint(t, want, got)

		got, err = p.Double()
		require.NoError(t, err)
		requireSamePoint(t, want, got)
	}
}

func TestPointAddRepeated(t *testing.T) {
	c := curve223(t)
	p := affine(t, c, 47, 71)

	sum := weierstrass.NewInfinity[weierstrass.FieldElement](c)
	var err error
	for i := 1; i <= 22; i++ {
		sum, err = sum.Add(p)
		require.NoError(t, err)
		switch i {
		case 4:
			requireSamePoint(t, affine(t, c, 194, 51), sum)
		case 8:
			requireSamePoint(t, affine(t, c, 116, 55), sum)
		case 21:
			requireInfinity(t, sum)
		case 22:
			requireSamePoint(t, p, sum)
		}
	}
}

func TestPointAddInfinity(t *testing.T) {
	c := curve223(t)
	inf := weierstrass.NewInfinity[weierstrass.FieldElement](c)

	for _, xy := range [][2]int64{{192, 105}, {17, 56}, {6, 0}} {
		p := affine(t, c, xy[0], xy[1])

		got, err := p.Add(inf)
		require.NoError(t, err)
		requireSamePoint(t, p, got)

		got, err = inf.Add(p)
		require.NoError(t, err)
		requireSamePoint(t, p, got)
	}

	got, err := inf.Add(inf)
	require.NoError(t, err)
	requireInfinity(t, got)
}

func TestPointAddVertical(t *testing.T) {
	c := fieldCurve(t, 5, 7, 223)
	p := affine(t, c, -1, 1)
	q := affine(t, c, -1, -1)

	got, err := p.Add(q)
	require.NoError(t, err)
	requireInfinity(t, got)

	got, err = p.Add(p.Neg())
	require.NoError(t, err)
	requireInfinity(t, got)
}

func TestPointDoubleVerticalTangent(t *testing.T) {
	// 6³ + 7 = 223, so (6, 0) lies on y² = x³ + 7 over 𝔽_223.
	c := curve223(t)
	p := affine(t, c, 6, 0)

	got, err := p.Add(p)
	require.NoError(t, err)
	requireInfinity(t, got)

	ic := weierstrass.NewIntegerCurve(big.NewInt(0), big.NewInt(0))
	ip := integerAffine(t, ic, 0, 0)
	igot, err := ip.Double()
	require.NoError(t, err)
	requireInfinity(t, igot)
}

func TestPointNeg(t *testing.T) {
	c := curve223(t)
	requireSamePoint(t, affine(t, c, 47, 152), affine(t, c, 47, 71).Neg())
	requireSamePoint(t, affine(t, c, 6, 0), affine(t, c, 6, 0).Neg())

	inf := weierstrass.NewInfinity[weierstrass.FieldElement](c)
	requireInfinity(t, inf.Neg())
}

func TestPointDifferentCurves(t *testing.T) {
	c1 := curve223(t)
	c2 := fieldCurve(t, 5, 7, 223)
	p := affine(t, c1, 47, 71)
	q := affine(t, c2, -1, 1)

	_, err := p.Add(q)
	assert.ErrorIs(t, err, weierstrass.ErrDifferentCurves)

	_, err = p.Equal(q)
	assert.ErrorIs(t, err, weierstrass.ErrDifferentCurves)

	inf1 := weierstrass.NewInfinity[weierstrass.FieldElement](c1)
	inf2 := weierstrass.NewInfinity[weierstrass.FieldElement](c2)
	_, err = inf1.Equal(inf2)
	assert.ErrorIs(t, err, weierstrass.ErrDifferentCurves)

	_, err = inf1.Add(q)
	assert.ErrorIs(t, err, weierstrass.ErrDifferentCurves)

	var zero fieldPoint
	_, err = p.Add(zero)
	assert.ErrorIs(t, err, weierstrass.ErrDifferentCurves)
}

func TestPointSameCoefficientsSameCurve(t *testing.T) {
	p := affine(t, curve223(t), 192, 105)
	q := affine(t, curve223(t), 17, 56)

	got, err := p.Add(q)
	require.NoError(t, err)
	requireSamePoint(t, affine(t, curve223(t), 170, 142), got)
}

func TestIntegerPointAdd(t *testing.T) {
	c := weierstrass.NewIntegerCurve(big.NewInt(5), big.NewInt(7))
	p := integerAffine(t, c, -1, -1)

	got, err := p.Add(integerAffine(t, c, -1, -1))
	require.NoError(t, err)
	requireSamePoint(t, integerAffine(t, c, 18, 77), got)

	got, err = integerAffine(t, c, 2, 5).Add(p)
	require.NoError(t, err)
	requireSamePoint(t, integerAffine(t, c, 3, -7), got)

	got, err = integerAffine(t, c, -1, 1).Add(p)
	require.NoError(t, err)
	requireInfinity(t, got)

	inf := weierstrass.NewInfinity[weierstrass.Integer](c)
	got, err = inf.Add(p)
	require.NoError(t, err)
	requireSamePoint(t, p, got)
}

func TestIntegerPointErrors(t *testing.T) {
	c := weierstrass.NewIntegerCurve(big.NewInt(5), big.NewInt(7))

	_, err := weierstrass.NewAffine[weierstrass.Integer](c, weierstrass.NewIntegerInt64(0), weierstrass.NewIntegerInt64(0))
	assert.ErrorIs(t, err, weierstrass.ErrInvalidPoint)

	// The tangent at (2, 5) has slope 17/10.
	_, err = integerAffine(t, c, 2, 5).Double()
	assert.ErrorIs(t, err, weierstrass.ErrInexactDivision)
}

func TestPointString(t *testing.T) {
	c := curve223(t)
	assert.Equal(t, "(FieldElement_223(47), FieldElement_223(71))", affine(t, c, 47, 71).String())

	ic := weierstrass.NewIntegerCurve(big.NewInt(5), big.NewInt(7))
	assert.Equal(t, "(-1, -1)", integerAffine(t, ic, -1, -1).String())
}
