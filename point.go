// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package weierstrass

import "fmt"

// Point is a point on a Curve: either an affine coordinate pair satisfying
// the curve equation, or the point at infinity. Points are immutable values
// and always carry the curve they were constructed on.
//
// The zero value is not bound to any curve and is not a valid point.
type Point[E Element[E]] struct {
	curve    Curve[E]
	x, y     E
	infinity bool
}

// NewAffine returns the point (x, y) on curve, or an error wrapping
// ErrInvalidPoint if the coordinates do not satisfy the curve equation.
func NewAffine[E Element[E]](curve Curve[E], x, y E) (Point[E], error) {
	d, err := curve.DefiningEquation(x, y)
	if err != nil {
		return Point[E]{}, err
	}
	if !d.IsZero() {
		return Point[E]{}, fmt.Errorf("%w: (%v, %v) on %v", ErrInvalidPoint, x, y, curve)
	}
	return Point[E]{curve: curve, x: x, y: y}, nil
}

// NewInfinity returns the identity element of the group of curve.
func NewInfinity[E Element[E]](curve Curve[E]) Point[E] {
	return Point[E]{curve: curve, infinity: true}
}

// Curve returns the curve p is bound to.
func (p Point[E]) Curve() Curve[E] {
	return p.curve
}

func (p Point[E]) IsInfinity() bool {
	return p.infinity
}

// XY returns the affine coordinates of p. ok is false for the point at
// infinity.
func (p Point[E]) XY() (x, y E, ok bool) {
	if p.infinity {
		return x, y, false
	}
	return p.x, p.y, true
}

func (p Point[E]) sameCurve(q Point[E]) bool {
	return p.curve != nil && q.curve != nil && p.curve.Equal(q.curve)
}

// Equal reports whether p and q are the same point. It fails with
// ErrDifferentCurves if they are bound to different curves.
func (p Point[E]) Equal(q Point[E]) (bool, error) {
	if !p.sameCurve(q) {
		return false, ErrDifferentCurves
	}
	if p.infinity || q.infinity {
		return p.infinity == q.infinity, nil
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y), nil
}

// Add returns p + q under the chord-and-tangent group law. It fails with
// ErrDifferentCurves if the points are bound to different curves.
func (p Point[E]) Add(q Point[E]) (Point[E], error) {
	if !p.sameCurve(q) {
		return Point[E]{}, ErrDifferentCurves
	}
	switch {
	case p.infinity:
		return q, nil
	case q.infinity:
		return p, nil
	case !p.x.Equal(q.x):
		return p.chord(q)
	case !p.y.Equal(q.y), p.y.IsZero():
		// Vertical chord through P and -P, or vertical tangent at y = 0.
		return NewInfinity(p.curve), nil
	default:
		return p.tangent()
	}
}

// Double returns 2p.
func (p Point[E]) Double() (Point[E], error) {
	return p.Add(p)
}

// Neg returns -p, the reflection of p in the x axis.
func (p Point[E]) Neg() Point[E] {
	if p.infinity {
		return p
	}
	return Point[E]{curve: p.curve, x: p.x, y: p.y.Neg()}
}

// chord adds two affine points. It requires p.x != q.x.
func (p Point[E]) chord(q Point[E]) (Point[E], error) {
	var c calc[E]
	// slope = (y2 - y1) / (x2 - x1)
	slope := c.div(c.sub(q.y, p.y), c.sub(q.x, p.x))
	// x3 = slope² - x1 - x2
	x3 := c.sub(c.sub(c.mul(slope, slope), p.x), q.x)
	// y3 = slope·(x1 - x3) - y1
	y3 := c.sub(c.mul(slope, c.sub(p.x, x3)), p.y)
	if c.err != nil {
		return Point[E]{}, c.err
	}
	return p.mustAffine(x3, y3), nil
}

// tangent doubles an affine point. It requires p.y != 0.
func (p Point[E]) tangent() (Point[E], error) {
	var c calc[E]
	two, three := p.curve.Lift(2), p.curve.Lift(3)
	// slope = (3·x1² + a) / (2·y1)
	num := c.add(c.mul(three, c.mul(p.x, p.x)), p.curve.A())
	slope := c.div(num, c.mul(two, p.y))
	// x3 = slope² - 2·x1
	x3 := c.sub(c.mul(slope, slope), c.mul(two, p.x))
	// y3 = slope·(x1 - x3) - y1
	y3 := c.sub(c.mul(slope, c.sub(p.x, x3)), p.y)
	if c.err != nil {
		return Point[E]{}, c.err
	}
	return p.mustAffine(x3, y3), nil
}

// mustAffine binds the result of the group law to the curve of p. The group
// law is closed, so a failure here means the arithmetic itself is broken.
func (p Point[E]) mustAffine(x, y E) Point[E] {
	r, err := NewAffine(p.curve, x, y)
	if err != nil {
		panic("weierstrass: internal error: group law left the curve: " + err.Error())
	}
	return r
}

func (p Point[E]) String() string {
	if p.infinity {
		return "infinity"
	}
	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}
