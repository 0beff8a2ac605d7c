// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package weierstrass

import "errors"

var (
	// ErrInvalidPoint is returned when affine coordinates do not satisfy the
	// curve equation.
	ErrInvalidPoint = errors.New("weierstrass: point is not on the curve")

	// ErrDifferentCurves is returned when two points bound to different
	// curves are added or compared.
	ErrDifferentCurves = errors.New("weierstrass: points are on different curves")

	// ErrDivisionByZero is returned when zero would have to be inverted.
	ErrDivisionByZero = errors.New("weierstrass: division by zero")

	// ErrMismatchedField is returned when elements of different prime
	// fields are combined.
	ErrMismatchedField = errors.New("weierstrass: elements belong to different fields")

	// ErrInexactDivision is returned by Integer.Div when the quotient is not
	// an integer.
	ErrInexactDivision = errors.New("weierstrass: inexact integer division")

	ErrInvalidModulus = errors.New("weierstrass: modulus is not prime")
	ErrUnknownCurve   = errors.New("weierstrass: unknown curve")
)
