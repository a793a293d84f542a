// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testfuncs

import "github.com/numgo/optcore/fun"

// scalableFactories lists every scalable entry's constructor, keyed by its
// own [min_dims, max_dims] window; Catalog sweeps dimensions and includes
// whichever of these the current dimension falls within.
var scalableFactories = []func(d int) fun.Described{
	func(d int) fun.Described { return Sphere{Dims: d} },
	func(d int) fun.Described { return AxisEllipsoid{Dims: d} },
	func(d int) fun.Described { return SumSquares{Dims: d} },
	func(d int) fun.Described { return ChungReynolds{Dims: d} },
	func(d int) fun.Described { return SchumerSteiglitz{Dims: d} },
	func(d int) fun.Described { return RotatedEllipsoid{Dims: d} },
	func(d int) fun.Described { return Zakharov{Dims: d} },
	func(d int) fun.Described { return Trid{Dims: d} },
	func(d int) fun.Described { return Qing{Dims: d} },
	func(d int) fun.Described { return Cauchy{Dims: d} },
	func(d int) fun.Described { return Sargan{Dims: d} },
	func(d int) fun.Described { return Powell{Dims: d} },
	func(d int) fun.Described { return Rosenbrock{Dims: d} },
	func(d int) fun.Described { return Exponential{Dims: d} },
	func(d int) fun.Described { return DixonPrice{Dims: d} },
	func(d int) fun.Described { return StyblinskiTang{Dims: d} },
}

// fixedFactories lists every fixed-dimensionality entry's constructor.
var fixedFactories = []func() fun.Described{
	func() fun.Described { return Beale{} },
	func() fun.Described { return Booth{} },
	func() fun.Described { return Matyas{} },
	func() fun.Described { return ThreeHumpCamel{} },
	func() fun.Described { return GoldsteinPrice{} },
	func() fun.Described { return Himmelblau{} },
	func() fun.Described { return McCormick{} },
	func() fun.Described { return Bohachevsky{Variant: Bohachevsky1} },
	func() fun.Described { return Bohachevsky{Variant: Bohachevsky2} },
	func() fun.Described { return Bohachevsky{Variant: Bohachevsky3} },
	func() fun.Described { return Colville{} },
}

// Catalog returns a fresh slice of every test function in the catalog,
// evaluated across the dimension sweep that starts at minDim, increments
// by 1 up to 8, and doubles thereafter, up to and including maxDim.
// Fixed-dimensionality entries (Beale, Booth, ..., Colville) are included
// exactly once, independent of the sweep, since their own Size() is fixed.
// Scalable entries are instantiated once per swept dimension that falls
// within their declared [MinDims, MaxDims] window. The factory is a pure
// function: every call returns independent instances, holding no
// package-level state.
func Catalog(minDim, maxDim int) []fun.Described {
	var out []fun.Described

	for _, mk := range fixedFactories {
		out = append(out, mk())
	}

	for d := sweepStart(minDim); d <= maxDim; d = sweepNext(d) {
		for _, mk := range scalableFactories {
			f := mk(d)
			if _, isPowell := f.(Powell); isPowell && d%4 != 0 {
				continue // Powell is only defined for d a multiple of 4
			}
			if d >= f.MinDims() && d <= f.MaxDims() {
				out = append(out, f)
			}
		}
	}

	return out
}

func sweepStart(minDim int) int {
	if minDim < 1 {
		return 1
	}
	return minDim
}

// sweepNext advances the dimension sweep: +1 while below 8, doubling
// thereafter.
func sweepNext(d int) int {
	if d < 8 {
		return d + 1
	}
	return d * 2
}
