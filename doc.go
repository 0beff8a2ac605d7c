// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package weierstrass implements elliptic curve arithmetic for curves in
// short Weierstrass form, y² = x³ + ax + b.
//
// The package is built from three layers:
//
//   - FieldElement, an integer reduced modulo a prime, with explicit
//     Add, Sub, Mul, Div and Pow operations that report mismatched fields
//     and division by zero as errors.
//   - Curve, an interface over the coordinate domain. FieldCurve works over
//     a prime field and IntegerCurve over the integers; the latter is useful
//     for small worked examples.
//   - Point, an affine point or the point at infinity bound to one Curve,
//     implementing the chord-and-tangent group law and double-and-add
//     scalar multiplication.
//
// Named curves (P-224, P-256, P-384, P-521 and secp256k1) are available as
// immutable handles:
//
//	c := weierstrass.Secp256k1()
//	q, err := c.ScalarBaseMult(k)
//
// All values are immutable and may be shared between goroutines freely.
//
// The arithmetic is not constant time and must not be used where timing
// side channels matter.
package weierstrass
