// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linesearch implements the batch-solver line-search state
// machine: initial-step selection, backtracking Armijo/Wolfe, and a
// bracket-and-zoom strong-Wolfe interpolation search (Nocedal & Wright,
// Algorithms 3.5/3.6), grounded on the line-search bookkeeping fields
// (linSearch, linSchMaxIt) in gosl/num/nlsolver.go.
package linesearch

import (
	"math"

	"github.com/numgo/optcore/la"
)

// InitStrategy selects how the initial trial step t0 is computed.
type InitStrategy int

const (
	// Unit always starts at t0 = 1, the canonical L-BFGS initial step.
	Unit InitStrategy = iota
	// Quadratic estimates t0 from the change in f across iterations.
	Quadratic
	// Consistent preserves the first-order change magnitude across
	// iterations.
	Consistent
)

// Strategy selects the acceptance condition and search procedure.
type Strategy int

const (
	// BacktrackArmijo accepts the first step satisfying sufficient decrease.
	BacktrackArmijo Strategy = iota
	// BacktrackWolfe additionally enforces the curvature condition in its
	// absolute-value form |g(t).d| <= c2 |d.g|, growing the step when
	// curvature fails after Armijo holds.
	BacktrackWolfe
	// Interpolation is the bracket-and-zoom strong-Wolfe search.
	Interpolation
)

// Params configures a line search.
type Params struct {
	Init        InitStrategy
	Strategy    Strategy
	C1          float64 // Armijo sufficient-decrease constant, in (0, 0.5)
	C2          float64 // curvature constant, in (C1, 1)
	Shrink      float64 // backtracking multiplier, in (0,1), default 0.5
	Grow        float64 // step-growth multiplier for BacktrackWolfe, default 2.5
	MaxIters    int     // halving/growing/bracketing budget, default 64
	MaxZoomIter int     // inner zoom iterations, default 64
	TMax        float64 // upper bound on t for BacktrackWolfe/Interpolation
}

// DefaultArmijo returns the default backtracking-Armijo parameters
// (c1 = 1e-4, shrink = 0.5, 64 halvings).
func DefaultArmijo() Params {
	return Params{
		Strategy: BacktrackArmijo,
		C1:       1e-4,
		Shrink:   0.5,
		MaxIters: 64,
	}
}

// DefaultWolfe returns the default backtracking-Wolfe parameters for the
// given curvature constant (0.9 for L-BFGS, 0.1 for CGD by convention).
func DefaultWolfe(c2 float64) Params {
	return Params{
		Strategy: BacktrackWolfe,
		C1:       1e-4,
		C2:       c2,
		Shrink:   0.5,
		Grow:     2.5,
		MaxIters: 64,
		TMax:     1e3,
	}
}

// DefaultInterpolation returns the default strong-Wolfe bracket-and-zoom
// parameters for the given curvature constant.
func DefaultInterpolation(c2 float64) Params {
	return Params{
		Strategy:    Interpolation,
		C1:          1e-4,
		C2:          c2,
		MaxIters:    64,
		MaxZoomIter: 64,
		TMax:        1e3,
	}
}

// EvalFunc evaluates f and its gradient at x + t*d for a given step t. The
// caller closes over x, d, and the objective adapter.
type EvalFunc func(t float64) (f float64, g la.Vector)

// Result is the outcome of a line search.
type Result struct {
	T  float64
	F  float64
	G  la.Vector
	Ok bool
}

// InitContext carries the iteration history InitialStep needs.
type InitContext struct {
	FirstIter bool
	F         float64 // f(x_k)
	FPrev     float64 // f(x_{k-1})
	DG        float64 // d_k . g_k
	DGPrev    float64 // d_{k-1} . g_{k-1}
	TPrev     float64 // t_{k-1}
}

// InitialStep computes t0 per the configured InitStrategy.
func InitialStep(strategy InitStrategy, ctx InitContext) float64 {
	switch strategy {
	case Unit:
		return 1.0
	case Quadratic:
		if ctx.FirstIter || ctx.DG == 0 {
			return 1.0
		}
		est := 2 * (ctx.F - ctx.FPrev) / ctx.DG
		if est <= 0 {
			return 1.0
		}
		return math.Min(1.0, est)
	case Consistent:
		if ctx.FirstIter || ctx.DG == 0 {
			return 1.0
		}
		return ctx.TPrev * ctx.DGPrev / ctx.DG
	default:
		return 1.0
	}
}

// Search runs the configured line search from trial step t0, given the
// current value f0, directional derivative dg0 = d.g0, and an evaluator
// closing over x and d. dg0 must be negative (d must be a descent
// direction); callers are responsible for the steepest-descent restart
// when this does not hold.
func Search(p Params, f0, dg0 float64, d la.Vector, t0 float64, eval EvalFunc) Result {
	switch p.Strategy {
	case BacktrackArmijo:
		return backtrackArmijo(p, f0, dg0, t0, eval)
	case BacktrackWolfe:
		return backtrackWolfe(p, f0, dg0, d, t0, eval)
	case Interpolation:
		return interpolation(p, f0, dg0, d, t0, eval)
	default:
		return Result{}
	}
}

func backtrackArmijo(p Params, f0, dg0, t0 float64, eval EvalFunc) Result {
	t := t0
	maxIt := p.MaxIters
	if maxIt <= 0 {
		maxIt = 64
	}
	shrink := p.Shrink
	if shrink <= 0 {
		shrink = 0.5
	}
	for i := 0; i < maxIt; i++ {
		f, g := eval(t)
		if f <= f0+p.C1*t*dg0 {
			return Result{T: t, F: f, G: g, Ok: true}
		}
		t *= shrink
	}
	return Result{Ok: false}
}

func backtrackWolfe(p Params, f0, dg0 float64, d la.Vector, t0 float64, eval EvalFunc) Result {
	t := t0
	maxIt := p.MaxIters
	if maxIt <= 0 {
		maxIt = 64
	}
	shrink := p.Shrink
	if shrink <= 0 {
		shrink = 0.5
	}
	grow := p.Grow
	if grow <= 0 {
		grow = 2.5
	}
	tMax := p.TMax
	if tMax <= 0 {
		tMax = 1e3
	}
	for i := 0; i < maxIt; i++ {
		f, g := eval(t)
		if f <= f0+p.C1*t*dg0 {
			dg := g.Dot(d)
			if math.Abs(dg) <= p.C2*math.Abs(dg0) {
				return Result{T: t, F: f, G: g, Ok: true}
			}
			t *= grow
			if t > tMax {
				return Result{Ok: false}
			}
			continue
		}
		t *= shrink
	}
	return Result{Ok: false}
}

// interpolation implements the bracket-and-zoom strong-Wolfe search,
// Nocedal & Wright Algorithms 3.5 (bracketing) and 3.6 (zoom), using
// bisection for the trial point within zoom (an acceptable fallback to
// cubic/quadratic interpolation).
func interpolation(p Params, f0, dg0 float64, d la.Vector, t0 float64, eval EvalFunc) Result {
	maxIt := p.MaxIters
	if maxIt <= 0 {
		maxIt = 64
	}
	tMax := p.TMax
	if tMax <= 0 {
		tMax = 1e3
	}

	tPrev := 0.0
	fPrev := f0
	t := t0
	if t <= 0 {
		t = 1.0
	}

	for i := 1; i <= maxIt; i++ {
		f, g := eval(t)
		dg := g.Dot(d)

		if f > f0+p.C1*t*dg0 || (i > 1 && f >= fPrev) {
			return zoom(p, f0, dg0, d, tPrev, t, fPrev, f, eval)
		}
		if math.Abs(dg) <= p.C2*math.Abs(dg0) {
			return Result{T: t, F: f, G: g, Ok: true}
		}
		if dg >= 0 {
			return zoom(p, f0, dg0, d, t, tPrev, f, fPrev, eval)
		}

		tPrev, fPrev = t, f
		t = math.Min(2*t, tMax)
		if t == tPrev {
			return Result{Ok: false}
		}
	}
	return Result{Ok: false}
}

// zoom narrows the bracket [lo, hi] until a strong-Wolfe point is found or
// the inner-iteration budget is exhausted.
func zoom(p Params, f0, dg0 float64, d la.Vector, lo, hi, fLo, fHi float64, eval EvalFunc) Result {
	maxIt := p.MaxZoomIter
	if maxIt <= 0 {
		maxIt = 64
	}
	for j := 0; j < maxIt; j++ {
		t := 0.5 * (lo + hi)
		f, g := eval(t)

		if f > f0+p.C1*t*dg0 || f >= fLo {
			hi, fHi = t, f
		} else {
			dg := g.Dot(d)
			if math.Abs(dg) <= p.C2*math.Abs(dg0) {
				return Result{T: t, F: f, G: g, Ok: true}
			}
			if dg*(hi-lo) >= 0 {
				hi, fHi = lo, fLo
			}
			lo, fLo = t, f
		}
		if math.Abs(hi-lo) < 1e-16 {
			break
		}
	}
	return Result{Ok: false}
}
