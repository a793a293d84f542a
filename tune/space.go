// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tune implements the hyper-parameter search spaces and the
// compositional tuner that drives them, grounded on gosl/ml's
// ParamsReg-style grid-of-candidates convention (ml/paramsreg.go) and
// generalized to the grid-refinement / log-mapping machinery the
// stochastic solvers need.
package tune

// Space is a one-dimensional hyper-parameter search space: a finite or
// refinable set of candidate physical values, plus a refine step that
// narrows the space around a reported optimum.
type Space interface {
	// Values returns the current candidate physical values to try.
	Values() []float64
	// Refine narrows the space around best, the physical value that scored
	// best in the most recent sweep, returning false if the space could not
	// be narrowed further (finite spaces never narrow).
	Refine(best float64) bool
}

// Mapping is an injective function from a linear search variable to a
// physical parameter value, and its inverse.
type Mapping struct {
	ToPhysical func(v float64) float64
	ToSearch   func(p float64) float64
}

// Identity is the identity mapping, used for linear-scale parameters.
var Identity = Mapping{
	ToPhysical: func(v float64) float64 { return v },
	ToSearch:   func(p float64) float64 { return p },
}
