// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runavg

import (
	"math"
	"testing"

	"github.com/numgo/optcore/la"
	"github.com/stretchr/testify/assert"
)

func TestEMAIdenticalUpdates(t *testing.T) {
	const beta = 0.9
	const v = 3.0
	e := NewEMA(1, beta)
	n := 10
	for i := 0; i < n; i++ {
		e.Update(la.NewVectorSlice([]float64{v}))
	}
	want := v * (1 - math.Pow(beta, float64(n)))
	assert.InDelta(t, want, e.Value()[0], 1e-9)
}

func TestArithmeticMeanConvergesToAverage(t *testing.T) {
	m := NewArithmeticMean(1)
	samples := []float64{1, 2, 3, 4, 5}
	for _, s := range samples {
		m.Update(la.NewVectorSlice([]float64{s}))
	}
	assert.InDelta(t, 3.0, m.Mean()[0], 1e-12)
	assert.Equal(t, 5, m.Count())
}

func TestEMAStartsAtZero(t *testing.T) {
	e := NewEMA(3, 0.5)
	assert.Equal(t, la.Vector{0, 0, 0}, e.Value())
}
