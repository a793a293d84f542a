// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linesearch

import (
	"math"
	"testing"

	"github.com/numgo/optcore/la"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quadraticEval builds an EvalFunc for f(x) = x.x starting at x0 along
// direction d: f(x0 + t d) and its gradient 2(x0+t d).
func quadraticEval(x0, d la.Vector) EvalFunc {
	return func(t float64) (float64, la.Vector) {
		x := la.NewVector(len(x0))
		la.Add(x, 1, x0, t, d)
		g := x.Scale(2)
		return x.Dot(x), g
	}
}

func TestBacktrackArmijoSatisfiesCondition(t *testing.T) {
	x0 := la.NewVectorSlice([]float64{1, 1})
	d := la.NewVectorSlice([]float64{-2, -2}) // steepest descent direction
	g0 := x0.Scale(2)
	f0 := x0.Dot(x0)
	dg0 := d.Dot(g0)
	require.Less(t, dg0, 0.0)

	p := DefaultArmijo()
	res := Search(p, f0, dg0, d, 1.0, quadraticEval(x0, d))
	require.True(t, res.Ok)
	assert.LessOrEqual(t, res.F, f0+p.C1*res.T*dg0)
}

func TestBacktrackWolfeSatisfiesBothConditions(t *testing.T) {
	x0 := la.NewVectorSlice([]float64{1, 1})
	d := la.NewVectorSlice([]float64{-2, -2})
	g0 := x0.Scale(2)
	f0 := x0.Dot(x0)
	dg0 := d.Dot(g0)

	p := DefaultWolfe(0.9)
	res := Search(p, f0, dg0, d, 1.0, quadraticEval(x0, d))
	require.True(t, res.Ok)
	assert.LessOrEqual(t, res.F, f0+p.C1*res.T*dg0)
	assert.LessOrEqual(t, math.Abs(res.G.Dot(d)), p.C2*math.Abs(dg0))
}

func TestInterpolationSatisfiesStrongWolfe(t *testing.T) {
	x0 := la.NewVectorSlice([]float64{1, 1})
	d := la.NewVectorSlice([]float64{-2, -2})
	g0 := x0.Scale(2)
	f0 := x0.Dot(x0)
	dg0 := d.Dot(g0)

	p := DefaultInterpolation(0.9)
	res := Search(p, f0, dg0, d, 1.0, quadraticEval(x0, d))
	require.True(t, res.Ok)
	assert.LessOrEqual(t, res.F, f0+p.C1*res.T*dg0+1e-12)
	assert.LessOrEqual(t, math.Abs(res.G.Dot(d)), p.C2*math.Abs(dg0)+1e-9)
}

func TestInitialStepUnit(t *testing.T) {
	assert.Equal(t, 1.0, InitialStep(Unit, InitContext{}))
}

func TestInitialStepQuadraticFallsBackOnFirstIter(t *testing.T) {
	assert.Equal(t, 1.0, InitialStep(Quadratic, InitContext{FirstIter: true}))
}

func TestInitialStepQuadraticEstimate(t *testing.T) {
	ctx := InitContext{F: 5, FPrev: 10, DG: -2.5}
	// est = 2*(5-10)/(-2.5) = 4, capped at 1
	assert.Equal(t, 1.0, InitialStep(Quadratic, ctx))
}

func TestInitialStepConsistent(t *testing.T) {
	ctx := InitContext{DG: -1, DGPrev: -2, TPrev: 0.5}
	assert.Equal(t, 1.0, InitialStep(Consistent, ctx))
}
