// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fun

import (
	"math/rand"

	"github.com/numgo/optcore/chk"
	"github.com/numgo/optcore/la"
)

// fdStep is the central-difference step used for finite-difference
// gradients. Hard-coded: tests expect the fixed
// 1e-6 form rather than a scaled h = sqrt(eps)*max(1,|x_i|) step.
const fdStep = 1e-6

// Adapter wraps a ValueOnly (or full Objective) and adds evaluation
// counters plus a finite-difference gradient fallback, mirroring the
// counting fields (NumFeval/NumGeval-style) gosl's opt and num solvers
// carry on the solver struct itself rather than on the objective; here they
// live on the objective side so that a single objective instance can be
// shared across several solver runs (callers reset counters explicitly,
// to track evaluation cost).
type Adapter struct {
	obj      ValueOnly
	gradFn   gradProvider // non-nil iff obj supplies an analytic gradient
	evalCnt  int
	gradCnt  int
}

// NewAdapter wraps obj. If obj also implements the analytic-gradient
// surface (ValueGrad), it is used; otherwise ValueGrad falls back to
// central differences.
func NewAdapter(obj ValueOnly) *Adapter {
	a := &Adapter{obj: obj}
	if gp, ok := obj.(gradProvider); ok {
		a.gradFn = gp
	}
	return a
}

// Size returns the problem dimensionality.
func (a *Adapter) Size() int {
	return a.obj.Size()
}

// IsValid reports whether x lies in the objective's domain.
func (a *Adapter) IsValid(x la.Vector) bool {
	return a.obj.IsValid(x)
}

// Value evaluates f(x), incrementing the evaluation counter.
func (a *Adapter) Value(x la.Vector) float64 {
	a.checkSize(x)
	a.evalCnt++
	return a.obj.Value(x)
}

// ValueGrad evaluates f(x) and its gradient, incrementing both counters.
// Consumers may not assume gradients are cheaper than values: when the
// wrapped objective has no analytic gradient, ValueGrad evaluates f at
// 2n+1 points to build a central-difference gradient.
func (a *Adapter) ValueGrad(x la.Vector) (float64, la.Vector) {
	a.checkSize(x)
	if a.gradFn != nil {
		a.evalCnt++
		a.gradCnt++
		return a.gradFn.ValueGrad(x)
	}
	f := a.obj.Value(x)
	a.evalCnt++
	g := a.fdGrad(x)
	a.gradCnt++
	return f, g
}

// EvalCount returns the number of Value/ValueGrad-induced evaluations.
func (a *Adapter) EvalCount() int { return a.evalCnt }

// GradCount returns the number of gradient evaluations.
func (a *Adapter) GradCount() int { return a.gradCnt }

// ResetCounts zeroes both counters. Counters are otherwise monotone
// non-decreasing for the lifetime of the Adapter.
func (a *Adapter) ResetCounts() {
	a.evalCnt = 0
	a.gradCnt = 0
}

func (a *Adapter) checkSize(x la.Vector) {
	if len(x) != a.obj.Size() {
		chk.Panic("fun: Value/ValueGrad called with |x|=%d, want %d", len(x), a.obj.Size())
	}
}

// fdGrad computes a central-difference gradient estimate at x, without
// touching the evaluation/gradient counters (callers account for those).
func (a *Adapter) fdGrad(x la.Vector) la.Vector {
	n := len(x)
	g := la.NewVector(n)
	xp := x.GetCopy()
	for i := 0; i < n; i++ {
		orig := xp[i]
		xp[i] = orig + fdStep
		fPlus := a.obj.Value(xp)
		xp[i] = orig - fdStep
		fMinus := a.obj.Value(xp)
		xp[i] = orig
		g[i] = (fPlus - fMinus) / (2 * fdStep)
	}
	return g
}

// GradAccuracy returns ||g_analytic(x) - g_fd(x)||_inf. When the objective
// has no analytic gradient this is identically zero (ValueGrad already is
// the finite-difference estimate).
func (a *Adapter) GradAccuracy(x la.Vector) float64 {
	_, gAnalytic := a.ValueGrad(x)
	gFD := a.fdGrad(x)
	diff := la.NewVector(len(x))
	la.Add(diff, 1, gAnalytic, -1, gFD)
	return diff.NormInf()
}

// IsConvexOnSegment samples k random convex combinations of x and y and
// checks f(alpha*x+(1-alpha)*y) <= alpha*f(x) + (1-alpha)*f(y) + eps for
// every sample.
func (a *Adapter) IsConvexOnSegment(x, y la.Vector, k int, eps float64) bool {
	fx := a.Value(x)
	fy := a.Value(y)
	mid := la.NewVector(len(x))
	for i := 0; i < k; i++ {
		alpha := rand.Float64()
		la.Add(mid, alpha, x, 1-alpha, y)
		fMid := a.Value(mid)
		rhs := alpha*fx + (1-alpha)*fy + eps
		if fMid > rhs {
			return false
		}
	}
	return true
}
