// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minimize

import (
	"testing"

	"github.com/numgo/optcore/batch"
	"github.com/numgo/optcore/la"
	"github.com/numgo/optcore/solverstate"
	"github.com/numgo/optcore/stoch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sphere struct{ n int }

func (s sphere) Size() int                { return s.n }
func (s sphere) IsValid(x la.Vector) bool { return x.Norm() < 100 }
func (s sphere) Value(x la.Vector) float64 {
	return x.Dot(x)
}
func (s sphere) ValueGrad(x la.Vector) (float64, la.Vector) {
	return x.Dot(x), x.Scale(2)
}

func TestBatchConvergesOnSphere(t *testing.T) {
	params := DefaultBatchParams(batch.LBFGS, batch.VariantPRP)
	x0 := la.NewVector(10)
	x0.Fill(1)
	st, err := Batch(params, sphere{n: 10}, x0, nil)
	require.NoError(t, err)
	assert.Equal(t, solverstate.Converged, st.Status)
}

func TestBatchDimensionMismatchReturnsError(t *testing.T) {
	params := DefaultBatchParams(batch.GD, batch.VariantPRP)
	_, err := Batch(params, sphere{n: 10}, la.NewVector(3), nil)
	assert.Error(t, err)
}

func TestStochWithAutoTuneReducesF(t *testing.T) {
	params := DefaultStochParams(stoch.AdaGrad)
	params.Epochs = 20
	params.EpochSize = 50
	x0 := la.NewVector(5)
	x0.Fill(2)
	f0 := sphere{n: 5}.Value(x0)

	st, err := Stoch(params, sphere{n: 5}, x0, nil)
	require.NoError(t, err)
	assert.Less(t, st.F, f0*0.5)
}

func TestStochDimensionMismatchReturnsError(t *testing.T) {
	params := DefaultStochParams(stoch.SG)
	_, err := Stoch(params, sphere{n: 5}, la.NewVector(2), nil)
	assert.Error(t, err)
}
