// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tune

import "math"

// GridSpace partitions a search interval [lo, hi] into k+1 evenly spaced
// points, maps each to a physical parameter value via Mapping, and narrows
// itself around the best-performing point on each Refine call.
type GridSpace struct {
	lo, hi       float64 // original, immutable outer bounds (search scale)
	loCur, hiCur float64 // current window (search scale)
	k            int
	eps          float64
	mapping      Mapping
}

// NewGridSpace returns a grid space over [lo, hi] (in search-variable
// units) partitioned into k+1 points, using mapping to convert search
// values to physical parameter values. eps is the grid-width stopping
// tolerance for Refine.
func NewGridSpace(lo, hi float64, k int, mapping Mapping, eps float64) *GridSpace {
	if k < 1 {
		k = 1
	}
	return &GridSpace{lo: lo, hi: hi, loCur: lo, hiCur: hi, k: k, eps: eps, mapping: mapping}
}

// NewLinearGridSpace returns a grid space over [lo, hi] with the identity
// mapping, the common case for parameters already on a natural linear
// scale (e.g. momentum, decay).
func NewLinearGridSpace(lo, hi float64, k int, eps float64) *GridSpace {
	return NewGridSpace(lo, hi, k, Identity, eps)
}

// NewLogGridSpace returns a grid space over the search interval [loExp,
// hiExp] (exponents of 10) mapped to physical values via v -> 10^v, the
// common case for learning rates and regularization strengths.
func NewLogGridSpace(loExp, hiExp float64, k int, eps float64) *GridSpace {
	m := Mapping{
		ToPhysical: func(v float64) float64 { return math.Pow(10, v) },
		ToSearch:   func(p float64) float64 { return math.Log10(p) },
	}
	return NewGridSpace(loExp, hiExp, k, m, eps)
}

// Values returns the k+1 physical values of the current window.
func (g *GridSpace) Values() []float64 {
	vals := make([]float64, g.k+1)
	step := (g.hiCur - g.loCur) / float64(g.k)
	for i := 0; i <= g.k; i++ {
		v := g.loCur + float64(i)*step
		vals[i] = g.mapping.ToPhysical(v)
	}
	return vals
}

// Refine narrows the window to a factor (k-1)/k around best (a physical
// value), clamped so the window never exceeds the original [lo, hi], and
// returns false once the grid spacing has shrunk below eps.
func (g *GridSpace) Refine(best float64) bool {
	spacing := (g.hiCur - g.loCur) / float64(g.k)
	if spacing < g.eps {
		return false
	}

	center := g.mapping.ToSearch(best)
	newWidth := (g.hiCur - g.loCur) * float64(g.k-1) / float64(g.k)
	if newWidth <= 0 {
		return false
	}

	newLo := center - newWidth/2
	newHi := center + newWidth/2
	if newLo < g.lo {
		newLo = g.lo
		newHi = newLo + newWidth
	}
	if newHi > g.hi {
		newHi = g.hi
		newLo = newHi - newWidth
	}
	g.loCur, g.hiCur = newLo, newHi
	return true
}
