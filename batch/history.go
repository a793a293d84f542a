// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package batch implements the deterministic, full-gradient solver family:
// gradient descent, the nonlinear conjugate-gradient variants, and
// limited-memory BFGS, sharing one iterate-direction-linesearch-update
// skeleton. Grounded on gosl/opt's solver-struct convention
// (opt.NewConjGrad, opt.NewGradDesc, sol.Min(x, callback)) and on the
// iteration/tolerance bookkeeping in gosl/num/nlsolver.go.
package batch

import "github.com/numgo/optcore/la"

// pair is one (s, y) correction pair in the L-BFGS history buffer.
type pair struct {
	s la.Vector // x_{k+1} - x_k
	y la.Vector // g_{k+1} - g_k
}

// History is the bounded FIFO of L-BFGS correction pairs. It grows until
// full (default m = 6) and then discards the oldest pair on overflow.
type History struct {
	m     int
	pairs []pair
}

// NewHistory returns an empty history with capacity m.
func NewHistory(m int) *History {
	if m <= 0 {
		m = 6
	}
	return &History{m: m, pairs: make([]pair, 0, m)}
}

// Push records a new (s, y) pair, discarding the oldest pair if the
// history is already at capacity.
func (h *History) Push(s, y la.Vector) {
	if len(h.pairs) >= h.m {
		h.pairs = h.pairs[1:]
	}
	h.pairs = append(h.pairs, pair{s: s.GetCopy(), y: y.GetCopy()})
}

// Len returns the number of pairs currently stored.
func (h *History) Len() int {
	return len(h.pairs)
}

// Cap returns the configured maximum history size m.
func (h *History) Cap() int {
	return h.m
}

// Reset empties the history without changing its capacity.
func (h *History) Reset() {
	h.pairs = h.pairs[:0]
}
