// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runavg implements two running-average helpers: a count-based
// arithmetic mean (used by AdaGrad) and a fixed-momentum exponential
// moving average (used by AdaDelta, Adam, and the averaged-iterate
// trajectory of every stochastic solver).
package runavg

import "github.com/numgo/optcore/la"

// ArithmeticMean maintains the running elementwise mean of a sequence of
// vectors, updated in O(n) per call.
type ArithmeticMean struct {
	n    int
	mean la.Vector
}

// NewArithmeticMean returns a zero-initialized mean tracker for
// dim-dimensional vectors.
func NewArithmeticMean(dim int) *ArithmeticMean {
	return &ArithmeticMean{mean: la.NewVector(dim)}
}

// Update folds x into the running mean.
func (m *ArithmeticMean) Update(x la.Vector) {
	m.n++
	for i := range m.mean {
		m.mean[i] += (x[i] - m.mean[i]) / float64(m.n)
	}
}

// Mean returns the current running mean (not a copy; callers must not
// mutate it).
func (m *ArithmeticMean) Mean() la.Vector {
	return m.mean
}

// Count returns the number of updates folded into the mean so far.
func (m *ArithmeticMean) Count() int {
	return m.n
}

// EMA maintains an exponential moving average v <- beta*v + (1-beta)*x,
// initialized to zero, with fixed momentum beta in (0,1).
type EMA struct {
	beta float64
	v    la.Vector
}

// NewEMA returns a zero-initialized EMA tracker with momentum beta.
func NewEMA(dim int, beta float64) *EMA {
	return &EMA{beta: beta, v: la.NewVector(dim)}
}

// Update folds x into the moving average.
func (e *EMA) Update(x la.Vector) {
	for i := range e.v {
		e.v[i] = e.beta*e.v[i] + (1-e.beta)*x[i]
	}
}

// Value returns the current EMA value (not a copy).
func (e *EMA) Value() la.Vector {
	return e.v
}

// Beta returns the momentum configured for this EMA.
func (e *EMA) Beta() float64 {
	return e.beta
}
