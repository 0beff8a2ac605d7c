// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package weierstrass

import (
	"fmt"
	"math/big"
)

// Integer is an arbitrary-precision integer used as the coordinate domain of
// an IntegerCurve. Like FieldElement it is immutable. The zero value is 0.
type Integer struct {
	v *big.Int
}

var zero = new(big.Int)

func NewInteger(v *big.Int) Integer {
	return Integer{v: new(big.Int).Set(v)}
}

func NewIntegerInt64(v int64) Integer {
	return Integer{v: big.NewInt(v)}
}

func (x Integer) val() *big.Int {
	if x.v == nil {
		return zero
	}
	return x.v
}

// BigInt returns the value of x.
func (x Integer) BigInt() *big.Int {
	return new(big.Int).Set(x.val())
}

func (x Integer) Add(y Integer) (Integer, error) {
	return Integer{v: new(big.Int).Add(x.val(), y.val())}, nil
}

func (x Integer) Sub(y Integer) (Integer, error) {
	return Integer{v: new(big.Int).Sub(x.val(), y.val())}, nil
}

func (x Integer) Mul(y Integer) (Integer, error) {
	return Integer{v: new(big.Int).Mul(x.val(), y.val())}, nil
}

// Div returns x / y. Unlike integer division it never truncates: a non-zero
// remainder is reported as ErrInexactDivision.
func (x Integer) Div(y Integer) (Integer, error) {
	if y.IsZero() {
		return Integer{}, ErrDivisionByZero
	}
	q, r := new(big.Int).QuoRem(x.val(), y.val(), new(big.Int))
	if r.Sign() != 0 {
		return Integer{}, fmt.Errorf("%w: %v / %v", ErrInexactDivision, x, y)
	}
	return Integer{v: q}, nil
}

func (x Integer) Neg() Integer {
	return Integer{v: new(big.Int).Neg(x.val())}
}

func (x Integer) IsZero() bool {
	return x.val().Sign() == 0
}

func (x Integer) Equal(y Integer) bool {
	return x.val().Cmp(y.val()) == 0
}

func (x Integer) String() string {
	return x.val().String()
}
