// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testfuncs

import (
	"math/rand"
	"testing"

	"github.com/numgo/optcore/fun"
	"github.com/numgo/optcore/la"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleValid draws a random point in f's declared domain by shrinking a
// normal vector until IsValid accepts it.
func sampleValid(t *testing.T, f fun.Described, r *rand.Rand) la.Vector {
	t.Helper()
	n := f.Size()
	for scale := 1.0; scale > 1e-6; scale *= 0.5 {
		x := la.NewVector(n)
		for i := range x {
			x[i] = scale * r.NormFloat64()
		}
		if f.IsValid(x) {
			return x
		}
	}
	require.Fail(t, "could not sample a valid point for "+f.Name())
	return nil
}

func TestCatalogGradientAccuracy(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, f := range Catalog(2, 8) {
		a := fun.NewAdapter(f)
		x := sampleValid(t, f, r)
		acc := a.GradAccuracy(x)
		assert.Less(t, acc, 1e-6, "%s: analytic/FD gradient mismatch at %v", f.Name(), x)
	}
}

func TestCatalogConvexityDeclaration(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for _, f := range Catalog(2, 8) {
		if !f.IsConvex() {
			continue
		}
		a := fun.NewAdapter(f)
		x := sampleValid(t, f, r)
		y := sampleValid(t, f, r)
		assert.True(t, a.IsConvexOnSegment(x, y, 100, 1e-8),
			"%s declares IsConvex() but failed the midpoint check", f.Name())
	}
}

func TestCatalogSweepsDimensions(t *testing.T) {
	cat := Catalog(2, 20)
	require.NotEmpty(t, cat)

	dims := map[int]bool{}
	for _, f := range cat {
		dims[f.Size()] = true
	}
	for _, want := range []int{2, 3, 4, 5, 6, 7, 8, 16} {
		assert.True(t, dims[want], "expected a catalog entry at dimension %d", want)
	}
	assert.False(t, dims[9], "sweep should double past 8, skipping 9")
}

func TestCatalogFixedEntriesAppearOnce(t *testing.T) {
	cat := Catalog(2, 32)
	count := 0
	for _, f := range cat {
		if f.Name() == "Beale" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestSphereIsMinimumAtOrigin(t *testing.T) {
	s := Sphere{Dims: 4}
	assert.True(t, s.IsMinimum(la.NewVector(4), 1e-9))
	assert.False(t, s.IsMinimum(la.NewVectorSlice([]float64{1, 0, 0, 0}), 1e-9))
}

func TestRosenbrockMinimumIsOnes(t *testing.T) {
	r := Rosenbrock{Dims: 2}
	ones := la.NewVectorSlice([]float64{1, 1})
	f, g := r.ValueGrad(ones)
	assert.Equal(t, 0.0, f)
	assert.InDeltaSlice(t, []float64{0, 0}, []float64(g), 1e-12)
	assert.True(t, r.IsMinimum(ones, 1e-9))
}
