// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package la implements the dense vector primitive shared by every layer of
// the solver core: objective evaluation, solver state, line search, and the
// hyper-parameter search spaces all operate on la.Vector. Elementwise
// arithmetic is delegated to gonum/floats rather than re-implemented with
// hand-written loops.
package la

import (
	"math"

	"github.com/numgo/optcore/chk"
	"gonum.org/v1/gonum/floats"
)

// Vector is a dense real vector, following gosl's convention of naming
// vectors as slice types rather than wrapping them in a struct.
type Vector []float64

// NewVector allocates a zeroed vector of length n.
func NewVector(n int) Vector {
	return make(Vector, n)
}

// NewVectorSlice wraps an existing slice as a Vector without copying.
func NewVectorSlice(s []float64) Vector {
	return Vector(s)
}

// GetCopy returns an independent copy of o.
func (o Vector) GetCopy() Vector {
	c := make(Vector, len(o))
	copy(c, o)
	return c
}

// Apply sets o[i] = alpha * other[i] for every i.
func (o Vector) Apply(alpha float64, other Vector) {
	chk.IntAssert(len(o), len(other))
	for i := range o {
		o[i] = alpha * other[i]
	}
}

// Fill sets every entry of o to v.
func (o Vector) Fill(v float64) {
	for i := range o {
		o[i] = v
	}
}

// Dot returns the inner product o·other.
func (o Vector) Dot(other Vector) float64 {
	chk.IntAssert(len(o), len(other))
	return floats.Dot(o, other)
}

// Norm returns the Euclidean (2-) norm of o.
func (o Vector) Norm() float64 {
	return floats.Norm(o, 2)
}

// NormP returns the p-norm of o, p >= 1.
func (o Vector) NormP(p float64) float64 {
	return floats.Norm(o, p)
}

// NormInf returns the infinity (max absolute value) norm of o.
func (o Vector) NormInf() float64 {
	max := 0.0
	for _, v := range o {
		if a := math.Abs(v); a > max {
			max = a
		}
	}
	return max
}

// Scale returns a new vector equal to s*o.
func (o Vector) Scale(s float64) Vector {
	r := o.GetCopy()
	floats.Scale(s, r)
	return r
}

// ScaleInPlace multiplies every entry of o by s.
func (o Vector) ScaleInPlace(s float64) {
	floats.Scale(s, o)
}

// Add sets result = a*x + b*y. result may alias x or y.
func Add(result Vector, a float64, x Vector, b float64, y Vector) {
	chk.IntAssert(len(x), len(y))
	chk.IntAssert(len(result), len(x))
	for i := range result {
		result[i] = a*x[i] + b*y[i]
	}
}

// MulElemwise sets result[i] = a[i]*b[i].
func MulElemwise(result, a, b Vector) {
	chk.IntAssert(len(a), len(b))
	chk.IntAssert(len(result), len(a))
	floats.MulTo(result, a, b)
}

// DivElemwise sets result[i] = a[i]/b[i].
func DivElemwise(result, a, b Vector) {
	chk.IntAssert(len(a), len(b))
	chk.IntAssert(len(result), len(a))
	floats.DivTo(result, a, b)
}

// SqrtElemwise sets result[i] = sqrt(a[i]).
func SqrtElemwise(result, a Vector) {
	chk.IntAssert(len(result), len(a))
	for i := range a {
		result[i] = math.Sqrt(a[i])
	}
}

// SquareElemwise sets result[i] = a[i]*a[i].
func SquareElemwise(result, a Vector) {
	chk.IntAssert(len(result), len(a))
	for i := range a {
		result[i] = a[i] * a[i]
	}
}

// IsFinite returns true iff every entry of o is finite (not NaN or ±Inf).
func IsFinite(o Vector) bool {
	for _, v := range o {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
