// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solverstate

import (
	"math"
	"testing"

	"github.com/numgo/optcore/la"
	"github.com/stretchr/testify/assert"
)

func TestNewStateInvariants(t *testing.T) {
	s := New(3)
	assert.True(t, math.IsInf(s.F, 1))
	assert.Equal(t, 1.0, s.T)
	assert.Equal(t, Running, s.Status)
	assert.Len(t, s.X, 3)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "converged", Converged.String())
	assert.Equal(t, "max_iters", MaxIters.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "user_stop", UserStop.String())
}

func TestBestTracksMinimum(t *testing.T) {
	var b Best
	s1 := New(1)
	s1.F = 10
	s2 := New(1)
	s2.F = 2
	s3 := New(1)
	s3.F = 5
	b.Track(s1)
	b.Track(s2)
	b.Track(s3)
	assert.Equal(t, 2.0, b.Best().F)
}

func TestConvergedAt(t *testing.T) {
	s := New(2)
	s.F = 10
	s.G = la.NewVectorSlice([]float64{1e-8, 1e-9})
	assert.True(t, s.ConvergedAt(1e-6))
	s.G = la.NewVectorSlice([]float64{1, 0})
	assert.False(t, s.ConvergedAt(1e-6))
}

func TestBestClonesState(t *testing.T) {
	var b Best
	s := New(2)
	s.F = 1
	s.X = la.NewVectorSlice([]float64{1, 2})
	b.Track(s)
	s.X[0] = 999
	assert.Equal(t, 1.0, b.Best().X[0])
}
