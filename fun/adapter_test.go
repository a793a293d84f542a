// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fun

import (
	"testing"

	"github.com/numgo/optcore/la"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quadratic implements Objective: f(x) = sum x_i^2, analytic grad = 2x.
type quadratic struct{ n int }

func (q quadratic) Size() int { return q.n }
func (q quadratic) Value(x la.Vector) float64 {
	return x.Dot(x)
}
func (q quadratic) ValueGrad(x la.Vector) (float64, la.Vector) {
	g := x.Scale(2)
	return x.Dot(x), g
}
func (q quadratic) IsValid(x la.Vector) bool { return true }

// valueOnlyQuadratic implements only Value, exercising the FD fallback.
type valueOnlyQuadratic struct{ n int }

func (q valueOnlyQuadratic) Size() int                  { return q.n }
func (q valueOnlyQuadratic) Value(x la.Vector) float64  { return x.Dot(x) }
func (q valueOnlyQuadratic) IsValid(x la.Vector) bool   { return true }

func TestAdapterAnalyticGradient(t *testing.T) {
	a := NewAdapter(quadratic{n: 3})
	x := la.NewVectorSlice([]float64{1, 2, 3})
	f, g := a.ValueGrad(x)
	assert.Equal(t, 14.0, f)
	assert.Equal(t, la.Vector{2, 4, 6}, g)
	assert.Equal(t, 1, a.EvalCount())
	assert.Equal(t, 1, a.GradCount())
}

func TestAdapterFiniteDifferenceFallback(t *testing.T) {
	a := NewAdapter(valueOnlyQuadratic{n: 3})
	x := la.NewVectorSlice([]float64{1, 2, 3})
	f, g := a.ValueGrad(x)
	assert.Equal(t, 14.0, f)
	require.Len(t, g, 3)
	assert.InDeltaSlice(t, []float64{2, 4, 6}, []float64(g), 1e-5)
}

func TestAdapterGradAccuracy(t *testing.T) {
	a := NewAdapter(quadratic{n: 2})
	x := la.NewVectorSlice([]float64{1.3, -2.7})
	acc := a.GradAccuracy(x)
	assert.Less(t, acc, 1e-6)
}

func TestAdapterIsConvexOnSegment(t *testing.T) {
	a := NewAdapter(quadratic{n: 2})
	x := la.NewVectorSlice([]float64{1, 1})
	y := la.NewVectorSlice([]float64{-1, 2})
	assert.True(t, a.IsConvexOnSegment(x, y, 50, 1e-8))
}

func TestAdapterDimensionMismatchPanics(t *testing.T) {
	a := NewAdapter(quadratic{n: 3})
	assert.Panics(t, func() {
		a.Value(la.NewVector(2))
	})
}

func TestAdapterResetCounts(t *testing.T) {
	a := NewAdapter(quadratic{n: 2})
	a.Value(la.NewVector(2))
	a.ValueGrad(la.NewVector(2))
	assert.Equal(t, 2, a.EvalCount())
	a.ResetCounts()
	assert.Equal(t, 0, a.EvalCount())
	assert.Equal(t, 0, a.GradCount())
}
