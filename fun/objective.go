// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fun implements the objective-function contract shared by every
// solver: a value-and-gradient oracle plus optional metadata, grounded on
// gosl's fun.Sv/fun.Vv function-type-alias convention and the
// opt.Factory-style problem construction seen in
// gosl/examples/opt_comparison01.go.
package fun

import "github.com/numgo/optcore/la"

// Sv is a scalar-valued function of a vector, f: R^n -> R, matching
// gosl/fun's Sv type alias convention.
type Sv func(x la.Vector) float64

// Objective is the minimal contract a solver needs: size, value, and an
// analytic or finite-difference value+gradient oracle.
type Objective interface {
	// Size returns the problem dimensionality n >= 1.
	Size() int

	// Value evaluates f at x. Evaluation counting is done by Adapter,
	// not by implementations of this interface.
	Value(x la.Vector) float64

	// ValueGrad evaluates f and its gradient at x. Implementations must
	// keep ValueGrad(x) and Value(x) internally consistent.
	ValueGrad(x la.Vector) (float64, la.Vector)

	// IsValid reports whether x lies in the function's declared domain.
	IsValid(x la.Vector) bool
}

// Described is the optional metadata surface: convexity, dimensionality
// range, name, and known-minimum membership test.
type Described interface {
	Objective
	IsConvex() bool
	MinDims() int
	MaxDims() int
	Name() string
	IsMinimum(x la.Vector, eps float64) bool
}

// ValueOnly is an objective that can only be evaluated, with no analytic
// gradient. Adapter falls back to central differences for such objectives.
type ValueOnly interface {
	Size() int
	Value(x la.Vector) float64
	IsValid(x la.Vector) bool
}

// gradProvider is the subset of Objective that supplies an analytic
// gradient; used internally to detect whether an Adapter must fall back to
// finite differences.
type gradProvider interface {
	ValueGrad(x la.Vector) (float64, la.Vector)
}
