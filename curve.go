// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package weierstrass

import (
	"fmt"
	"math/big"
)

// Element is the coordinate domain of a curve. Implementations must be
// immutable values; operations that can fail report the failure instead of
// panicking.
type Element[E any] interface {
	Add(y E) (E, error)
	Sub(y E) (E, error)
	Mul(y E) (E, error)
	Div(y E) (E, error)
	Neg() E
	IsZero() bool
	Equal(y E) bool
	fmt.Stringer
}

// Curve is an elliptic curve y² = x³ + ax + b with coordinates in E.
type Curve[E Element[E]] interface {
	// A returns the linear coefficient of the curve equation.
	A() E

	// B returns the constant of the curve equation.
	B() E

	// DefiningEquation returns y² - x³ - ax - b. The point (x, y) lies on
	// the curve iff the result is zero.
	DefiningEquation(x, y E) (E, error)

	// Lift maps a small integer constant into the coordinate domain.
	Lift(n int64) E

	// Equal returns whether this curve is identical to the given curve.
	Equal(c Curve[E]) bool

	fmt.Stringer
}

// calc chains coordinate arithmetic and keeps the first error. Once an error
// is recorded every further operation is skipped.
type calc[E Element[E]] struct {
	err error
}

func (c *calc[E]) do(op func(E) (E, error), y E) E {
	if c.err != nil {
		var r E
		return r
	}
	r, err := op(y)
	if err != nil {
		c.err = err
	}
	return r
}

func (c *calc[E]) add(x, y E) E { return c.do(x.Add, y) }
func (c *calc[E]) sub(x, y E) E { return c.do(x.Sub, y) }
func (c *calc[E]) mul(x, y E) E { return c.do(x.Mul, y) }
func (c *calc[E]) div(x, y E) E { return c.do(x.Div, y) }

func definingEquation[E Element[E]](a, b, x, y E) (E, error) {
	var c calc[E]
	y2 := c.mul(y, y)
	x3 := c.mul(c.mul(x, x), x)
	ax := c.mul(a, x)
	return c.sub(c.sub(c.sub(y2, x3), ax), b), c.err
}

// FieldCurve is a curve over a prime field 𝔽_p.
type FieldCurve struct {
	a, b FieldElement
}

// NewFieldCurve returns the curve y² = x³ + ax + b. Both coefficients must
// belong to the same field, and its modulus must be prime.
func NewFieldCurve(a, b FieldElement) (*FieldCurve, error) {
	if err := a.check(b); err != nil {
		return nil, err
	}
	if !a.prime.ProbablyPrime(20) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModulus, a.prime)
	}
	return &FieldCurve{a: a, b: b}, nil
}

func (curve *FieldCurve) A() FieldElement { return curve.a }
func (curve *FieldCurve) B() FieldElement { return curve.b }

// Prime returns the modulus of the underlying field.
func (curve *FieldCurve) Prime() *big.Int {
	return curve.a.Prime()
}

func (curve *FieldCurve) DefiningEquation(x, y FieldElement) (FieldElement, error) {
	return definingEquation(curve.a, curve.b, x, y)
}

func (curve *FieldCurve) Lift(n int64) FieldElement {
	return curve.a.lift(n)
}

func (curve *FieldCurve) Equal(c Curve[FieldElement]) bool {
	cc, ok := c.(*FieldCurve)
	if !ok || cc == nil {
		return false
	}
	return curve == cc || (curve.a.Equal(cc.a) && curve.b.Equal(cc.b))
}

func (curve *FieldCurve) String() string {
	return fmt.Sprintf("y² = x³ + %sx + %s over F_%s", curve.a.num, curve.b.num, curve.a.prime)
}

// IntegerCurve is a curve over the integers. Point addition on it succeeds
// only while every slope is integral; it exists for small worked examples.
type IntegerCurve struct {
	a, b Integer
}

func NewIntegerCurve(a, b *big.Int) *IntegerCurve {
	return &IntegerCurve{a: NewInteger(a), b: NewInteger(b)}
}

func (curve *IntegerCurve) A() Integer { return curve.a }
func (curve *IntegerCurve) B() Integer { return curve.b }

func (curve *IntegerCurve) DefiningEquation(x, y Integer) (Integer, error) {
	return definingEquation(curve.a, curve.b, x, y)
}

func (curve *IntegerCurve) Lift(n int64) Integer {
	return NewIntegerInt64(n)
}

func (curve *IntegerCurve) Equal(c Curve[Integer]) bool {
	cc, ok := c.(*IntegerCurve)
	if !ok || cc == nil {
		return false
	}
	return curve == cc || (curve.a.Equal(cc.a) && curve.b.Equal(cc.b))
}

func (curve *IntegerCurve) String() string {
	return fmt.Sprintf("y² = x³ + %sx + %s over Z", curve.a, curve.b)
}
