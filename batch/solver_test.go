// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import (
	"testing"

	"github.com/numgo/optcore/la"
	"github.com/numgo/optcore/solverstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sphere is f(x) = sum(x_i^2), a convex quadratic with minimum 0 at the
// origin, used as the common smoke-test objective across solver variants.
type sphere struct {
	n int
}

func (s sphere) Size() int                  { return s.n }
func (s sphere) IsValid(x la.Vector) bool   { return true }
func (s sphere) Value(x la.Vector) float64  { return x.Dot(x) }
func (s sphere) ValueGrad(x la.Vector) (float64, la.Vector) {
	g := x.Scale(2)
	return x.Dot(x), g
}

func x0(n int, v float64) la.Vector {
	x := la.NewVector(n)
	x.Fill(v)
	return x
}

func TestGDConvergesOnSphere(t *testing.T) {
	sol := NewGD()
	st, err := sol.Min(sphere{n: 5}, x0(5, 3), nil)
	require.NoError(t, err)
	assert.Equal(t, solverstate.Converged, st.Status)
	assert.InDelta(t, 0, st.F, 1e-6)
}

func TestLBFGSConvergesQuicklyOnSphere(t *testing.T) {
	sol := NewLBFGS()
	st, err := sol.Min(sphere{n: 10}, x0(10, 2), nil)
	require.NoError(t, err)
	assert.Equal(t, solverstate.Converged, st.Status)
	assert.LessOrEqual(t, sol.NumIter, 2, "L-BFGS should solve a quadratic in very few iterations")
}

func TestCGDVariantsConvergeOnSphere(t *testing.T) {
	variants := []CGDVariant{VariantPRP, VariantFR, VariantHS, VariantDY, VariantCD, VariantLS, VariantN, VariantDYCD, VariantDYHS}
	for _, v := range variants {
		sol := NewCGD(v)
		st, err := sol.Min(sphere{n: 6}, x0(6, 1.5), nil)
		require.NoError(t, err, "variant %s", v)
		assert.Equal(t, solverstate.Converged, st.Status, "variant %s", v)
	}
}

func TestMinRespectsUserStopCallback(t *testing.T) {
	sol := NewGD()
	sol.Params.MaxIters = 1000
	calls := 0
	// GD reaches the sphere's minimum in its first step, so the run would
	// converge before a second callback; the stop is requested on call one.
	cb := func(s solverstate.State, cfg []solverstate.ConfigParam) bool {
		calls++
		return calls < 1
	}
	st, err := sol.Min(sphere{n: 4}, x0(4, 5), cb)
	require.NoError(t, err)
	assert.Equal(t, solverstate.UserStop, st.Status)
}

func TestUseHistRecordsTrajectory(t *testing.T) {
	sol := NewGD()
	sol.UseHist = true
	_, err := sol.Min(sphere{n: 3}, x0(3, 1), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, sol.Hist)
}

func TestLBFGSHistoryBounded(t *testing.T) {
	sol := NewLBFGS()
	sol.Params.HistorySize = 3
	sol.hist = NewHistory(3)
	_, err := sol.Min(sphere{n: 8}, x0(8, 4), nil)
	require.NoError(t, err)
	assert.LessOrEqual(t, sol.hist.Len(), 3)
}

func TestDefaultParamsPairingTable(t *testing.T) {
	p := DefaultParams(LBFGS, VariantPRP)
	assert.Equal(t, 0.9, p.LS.C2)

	p = DefaultParams(CGD, VariantFR)
	assert.Equal(t, 1e-4, p.LS.C1)

	p = DefaultParams(CGD, VariantCD)
	assert.Equal(t, 0.1, p.LS.C2)
}

func TestSetParamsAppliesOverrides(t *testing.T) {
	p := DefaultParams(GD, VariantPRP)
	p.SetParams(map[string]float64{"maxIters": 50, "eps": 1e-9, "lsC1": 1e-3})
	assert.Equal(t, 50, p.MaxIters)
	assert.Equal(t, 1e-9, p.Eps)
	assert.Equal(t, 1e-3, p.LS.C1)
}

func TestSetParamsPanicsOnUnknownKey(t *testing.T) {
	p := DefaultParams(GD, VariantPRP)
	assert.Panics(t, func() {
		p.SetParams(map[string]float64{"bogus": 1})
	})
}
