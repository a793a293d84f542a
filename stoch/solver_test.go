// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stoch

import (
	"testing"

	"github.com/numgo/optcore/la"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sumSquaresToCenters is a noiseless stand-in for the "quadratic
// sum-of-squares with N random centers" scenario:
// f(x) = sum((x_i - c_i)^2), gradient 2(x-c). Deterministic here (no
// sampling noise) since the contract only requires value_grad to be an
// unbiased estimator, and a constant-bias-free exact gradient qualifies.
type sumSquaresToCenters struct {
	centers la.Vector
}

func (q sumSquaresToCenters) Size() int { return len(q.centers) }
func (q sumSquaresToCenters) IsValid(x la.Vector) bool {
	return la.IsFinite(x)
}
func (q sumSquaresToCenters) Value(x la.Vector) float64 {
	diff := la.NewVector(len(x))
	la.Add(diff, 1, x, -1, q.centers)
	return diff.Dot(diff)
}
func (q sumSquaresToCenters) ValueGrad(x la.Vector) (float64, la.Vector) {
	diff := la.NewVector(len(x))
	la.Add(diff, 1, x, -1, q.centers)
	g := diff.Scale(2)
	return diff.Dot(diff), g
}

func centers(n int, v float64) la.Vector {
	c := la.NewVector(n)
	c.Fill(v)
	return c
}

func zeros(n int) la.Vector {
	return la.NewVector(n)
}

func TestAdaGradReducesLossOnQuadratic(t *testing.T) {
	obj := sumSquaresToCenters{centers: centers(20, 1.0)}
	sol := NewAdaGrad()
	sol.Params.Epochs = 50
	sol.Params.EpochSize = 100
	sol.Params.Alpha0 = 0.5

	x0 := zeros(20)
	f0 := obj.Value(x0)

	st, err := sol.Min(obj, x0, nil)
	require.NoError(t, err)
	assert.Less(t, st.F, 0.01*f0, "AdaGrad should reduce f by at least 99%%")
}

func TestSGConvergesOnQuadratic(t *testing.T) {
	obj := sumSquaresToCenters{centers: centers(5, 2.0)}
	sol := NewSG()
	sol.Params.Epochs = 50
	sol.Params.EpochSize = 50
	sol.Params.Alpha0 = 0.1

	st, err := sol.Min(obj, zeros(5), nil)
	require.NoError(t, err)
	assert.Less(t, st.F, 1.0)
}

func TestAGRestartVariantsRun(t *testing.T) {
	obj := sumSquaresToCenters{centers: centers(5, 1.5)}
	for _, r := range []Restart{RestartNone, RestartFunction, RestartGradient} {
		sol := NewAG(r)
		sol.Params.Epochs = 20
		sol.Params.EpochSize = 50
		sol.Params.Alpha0 = 0.05
		st, err := sol.Min(obj, zeros(5), nil)
		require.NoError(t, err, "restart %s", r)
		assert.True(t, la.IsFinite(st.X), "restart %s", r)
	}
}

func TestAdamAndAdaDeltaRun(t *testing.T) {
	obj := sumSquaresToCenters{centers: centers(8, 0.7)}

	adam := NewAdam()
	adam.Params.Epochs = 30
	adam.Params.EpochSize = 50
	stAdam, err := adam.Min(obj, zeros(8), nil)
	require.NoError(t, err)
	assert.True(t, la.IsFinite(stAdam.X))

	ad := NewAdaDelta()
	ad.Params.Epochs = 30
	ad.Params.EpochSize = 50
	stAD, err := ad.Min(obj, zeros(8), nil)
	require.NoError(t, err)
	assert.True(t, la.IsFinite(stAD.X))
}

func TestUseHistRecordsOneStatePerEpoch(t *testing.T) {
	obj := sumSquaresToCenters{centers: centers(3, 1)}
	sol := NewSG()
	sol.UseHist = true
	sol.Params.Epochs = 5
	sol.Params.EpochSize = 10
	_, err := sol.Min(obj, zeros(3), nil)
	require.NoError(t, err)
	assert.Len(t, sol.Hist, 5)
}

func TestAutoTunePicksAFiniteScore(t *testing.T) {
	obj := sumSquaresToCenters{centers: centers(4, 1)}
	sol := NewAdaGrad()
	sol.Params.EpochSize = 20
	tuned := sol.AutoTune(obj, zeros(4))
	assert.Greater(t, tuned.Alpha0, 0.0)
	assert.Equal(t, sol.Params.Epochs, tuned.Epochs)
}

func TestSetParamsAppliesOverrides(t *testing.T) {
	p := DefaultParams(Adam)
	p.SetParams(map[string]float64{"epochs": 10, "alpha0": 0.01, "beta2": 0.99})
	assert.Equal(t, 10, p.Epochs)
	assert.Equal(t, 0.01, p.Alpha0)
	assert.Equal(t, 0.99, p.Beta2)
}

func TestSetParamsPanicsOnUnknownKey(t *testing.T) {
	p := DefaultParams(SG)
	assert.Panics(t, func() {
		p.SetParams(map[string]float64{"bogus": 1})
	})
}
