// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package weierstrass

import (
	"fmt"
	"math/big"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// FieldElement is an element of the prime field 𝔽_p.
//
// A FieldElement is immutable: every operation returns a new value and the
// underlying integers are never modified after construction, so values may be
// copied and shared freely. The zero value is not a valid element.
type FieldElement struct {
	num   *big.Int // always in [0, prime)
	prime *big.Int
}

// NewFieldElement returns num reduced modulo prime. Negative values are
// mapped to their least non-negative residue.
//
// The primality of prime is not checked here; NewFieldCurve checks it once
// for every element that takes part in curve arithmetic.
func NewFieldElement(num, prime *big.Int) (FieldElement, error) {
	if prime == nil || prime.Cmp(two) < 0 {
		return FieldElement{}, fmt.Errorf("%w: %v", ErrInvalidModulus, prime)
	}
	p := new(big.Int).Set(prime)
	return FieldElement{num: new(big.Int).Mod(num, p), prime: p}, nil
}

// NewFieldElementInt64 is NewFieldElement for small operands.
func NewFieldElementInt64(num, prime int64) (FieldElement, error) {
	return NewFieldElement(big.NewInt(num), big.NewInt(prime))
}

// Num returns the canonical residue of x.
func (x FieldElement) Num() *big.Int {
	return new(big.Int).Set(x.num)
}

// Prime returns the modulus of the field x belongs to.
func (x FieldElement) Prime() *big.Int {
	return new(big.Int).Set(x.prime)
}

// reduce wraps n, which the caller owns, into the field of x.
func (x FieldElement) reduce(n *big.Int) FieldElement {
	return FieldElement{num: n.Mod(n, x.prime), prime: x.prime}
}

func (x FieldElement) check(y FieldElement) error {
	if x.prime == nil || y.prime == nil || x.prime.Cmp(y.prime) != 0 {
		return fmt.Errorf("%w: %v and %v", ErrMismatchedField, x, y)
	}
	return nil
}

// Add returns x + y.
func (x FieldElement) Add(y FieldElement) (FieldElement, error) {
	if err := x.check(y); err != nil {
		return FieldElement{}, err
	}
	return x.reduce(new(big.Int).Add(x.num, y.num)), nil
}

// Sub returns x - y.
func (x FieldElement) Sub(y FieldElement) (FieldElement, error) {
	if err := x.check(y); err != nil {
		return FieldElement{}, err
	}
	return x.reduce(new(big.Int).Sub(x.num, y.num)), nil
}

// Mul returns x · y.
func (x FieldElement) Mul(y FieldElement) (FieldElement, error) {
	if err := x.check(y); err != nil {
		return FieldElement{}, err
	}
	return x.reduce(new(big.Int).Mul(x.num, y.num)), nil
}

// Div returns x / y, computing the inverse of y as y^(p-2) (Fermat's little
// theorem). It fails with ErrDivisionByZero if y is zero.
func (x FieldElement) Div(y FieldElement) (FieldElement, error) {
	if err := x.check(y); err != nil {
		return FieldElement{}, err
	}
	if y.IsZero() {
		return FieldElement{}, ErrDivisionByZero
	}
	inv := new(big.Int).Exp(y.num, new(big.Int).Sub(x.prime, two), x.prime)
	return x.reduce(inv.Mul(inv, x.num)), nil
}

// Inverse returns 1 / x.
func (x FieldElement) Inverse() (FieldElement, error) {
	return x.lift(1).Div(x)
}

// Pow returns x^exp. The exponent is first reduced modulo p-1, so negative
// and oversized exponents are accepted. For x = 0 a positive exponent yields
// 0, a zero exponent yields 1 and a negative exponent fails with
// ErrDivisionByZero.
func (x FieldElement) Pow(exp *big.Int) (FieldElement, error) {
	if x.IsZero() {
		switch exp.Sign() {
		case 1:
			return x, nil
		case 0:
			return x.lift(1), nil
		default:
			return FieldElement{}, ErrDivisionByZero
		}
	}
	order := new(big.Int).Sub(x.prime, one)
	e := new(big.Int).Mod(exp, order)
	return FieldElement{num: new(big.Int).Exp(x.num, e, x.prime), prime: x.prime}, nil
}

// Neg returns -x.
func (x FieldElement) Neg() FieldElement {
	return x.reduce(new(big.Int).Neg(x.num))
}

// IsZero reports whether x is the additive identity.
func (x FieldElement) IsZero() bool {
	return x.num != nil && x.num.Sign() == 0
}

// Equal reports whether x and y have the same value in the same field.
// Elements of different fields are never equal.
func (x FieldElement) Equal(y FieldElement) bool {
	if x.prime == nil || y.prime == nil {
		return x.prime == nil && y.prime == nil
	}
	return x.prime.Cmp(y.prime) == 0 && x.num.Cmp(y.num) == 0
}

func (x FieldElement) String() string {
	if x.prime == nil {
		return "FieldElement(invalid)"
	}
	return fmt.Sprintf("FieldElement_%s(%s)", x.prime, x.num)
}

// lift returns n as an element of the field of x.
func (x FieldElement) lift(n int64) FieldElement {
	return x.reduce(big.NewInt(n))
}
