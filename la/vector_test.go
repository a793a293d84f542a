// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorDotNorm(t *testing.T) {
	a := NewVectorSlice([]float64{3, 4})
	assert.Equal(t, 5.0, a.Norm())
	assert.Equal(t, 25.0, a.Dot(a))
}

func TestVectorNormInf(t *testing.T) {
	a := NewVectorSlice([]float64{-1, 5, -9, 2})
	assert.Equal(t, 9.0, a.NormInf())
}

func TestVectorApplyScale(t *testing.T) {
	a := NewVectorSlice([]float64{1, 2, 3})
	b := NewVector(3)
	b.Apply(2, a)
	assert.Equal(t, Vector{2, 4, 6}, b)

	c := a.Scale(-1)
	assert.Equal(t, Vector{-1, -2, -3}, c)
	assert.Equal(t, Vector{1, 2, 3}, a, "Scale must not mutate the receiver")
}

func TestVectorAdd(t *testing.T) {
	x := NewVectorSlice([]float64{1, 0, 0})
	y := NewVectorSlice([]float64{0, 1, 0})
	r := NewVector(3)
	Add(r, 2, x, 3, y)
	assert.Equal(t, Vector{2, 3, 0}, r)
}

func TestVectorElemwise(t *testing.T) {
	a := NewVectorSlice([]float64{1, 2, 3})
	b := NewVectorSlice([]float64{4, 5, 6})
	r := NewVector(3)
	MulElemwise(r, a, b)
	assert.Equal(t, Vector{4, 10, 18}, r)
	DivElemwise(r, b, a)
	assert.InDeltaSlice(t, []float64{4, 2.5, 2}, []float64(r), 1e-12)
}

func TestVectorIsFinite(t *testing.T) {
	assert.True(t, IsFinite(NewVectorSlice([]float64{1, 2, 3})))
	assert.False(t, IsFinite(NewVectorSlice([]float64{1, math.NaN(), 3})))
	assert.False(t, IsFinite(NewVectorSlice([]float64{1, math.Inf(1), 3})))
}
