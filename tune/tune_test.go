// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tune

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTuneFiniteSpaceIdempotent checks the tuner idempotence property
// running twice over the same finite product space yields
// identical results.
func TestTuneFiniteSpaceIdempotent(t *testing.T) {
	op := func(v []float64) float64 {
		return (v[0]-3)*(v[0]-3) + (v[1]-7)*(v[1]-7)
	}
	a := NewFiniteSpace([]float64{1, 3, 5})
	b := NewFiniteSpace([]float64{5, 7, 9})

	score1, args1 := Tune(op, a, b)
	score2, args2 := Tune(op, NewFiniteSpace([]float64{1, 3, 5}), NewFiniteSpace([]float64{5, 7, 9}))

	assert.Equal(t, score1, score2)
	assert.Equal(t, args1, args2)
	assert.Equal(t, 0.0, score1)
	assert.Equal(t, []float64{3, 7}, args1)
}

// TestTuneGridRefinementFindsOptimum exercises scenario 6: a separable
// quadratic over two linear grid spaces converges to the analytic optimum
// as the grids are refined down to their epsilon spacing.
func TestTuneGridRefinementFindsOptimum(t *testing.T) {
	op := func(v []float64) float64 {
		return (v[0]-0.3)*(v[0]-0.3) + (v[1]+1.7)*(v[1]+1.7)
	}
	a := NewLinearGridSpace(-1, 1, 4, 1e-6)
	b := NewLinearGridSpace(-2, 2, 4, 1e-6)

	_, args := Tune(op, a, b)
	assert.InDelta(t, 0.3, args[0], 1e-3)
	assert.InDelta(t, -1.7, args[1], 1e-3)
}

func TestLogGridSpaceMapsExponents(t *testing.T) {
	g := NewLogGridSpace(-4, 0, 4, 1e-6)
	vals := g.Values()
	assert.InDelta(t, 1e-4, vals[0], 1e-12)
	assert.InDelta(t, 1, vals[len(vals)-1], 1e-12)
}

func TestFiniteSpaceNeverRefines(t *testing.T) {
	f := NewFiniteSpace([]float64{1, 2, 3})
	assert.False(t, f.Refine(2))
}

func TestGridSpaceRefineStopsBelowEpsilon(t *testing.T) {
	g := NewLinearGridSpace(0, 1, 2, 0.6)
	ok := g.Refine(0.5)
	assert.False(t, ok, "spacing 0.5 is already below eps 0.6")
}

func TestNonFiniteScoreTreatedAsInf(t *testing.T) {
	op := func(v []float64) float64 {
		if v[0] == 2 {
			return math.NaN()
		}
		return v[0]
	}
	a := NewFiniteSpace([]float64{2, 1, 3})
	score, args := Tune(op, a)
	assert.Equal(t, 1.0, score)
	assert.Equal(t, []float64{1}, args)
}
