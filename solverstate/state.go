// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solverstate implements the mutable (x, f, g, d, t, iter, status)
// tuple threaded through every batch and stochastic solver step, and the
// "best state observed so far" tracker used by stochastic solvers.
package solverstate

import (
	"math"

	"github.com/numgo/optcore/la"
)

// Status encodes the outcome of a solver run.
type Status int

const (
	// Running is the state of an in-progress solve; never returned as a
	// final status.
	Running Status = iota
	// Converged means ||g||_inf / max(1,|f|) < eps was reached.
	Converged
	// MaxIters means the iteration/epoch budget was exhausted.
	MaxIters
	// Failed means the line search could not satisfy its conditions, the
	// gradient became non-finite, or the direction was non-descent even
	// after a steepest-descent restart.
	Failed
	// UserStop means the user-log callback returned false.
	UserStop
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case MaxIters:
		return "max_iters"
	case Failed:
		return "failed"
	case UserStop:
		return "user_stop"
	default:
		return "unknown"
	}
}

// State is the solver's mutable iterate tuple.
type State struct {
	X      la.Vector // current iterate
	F      float64   // current value; +Inf before the first evaluation
	G      la.Vector // current gradient
	D      la.Vector // current search/step direction
	T      float64   // last accepted step length (1.0 if not applicable)
	Iter   int        // iteration / epoch counter
	Status Status
}

// New returns a fresh state for an n-dimensional problem, with F
// initialized to +Inf for the state before the first evaluation.
func New(n int) State {
	return State{
		X:      la.NewVector(n),
		F:      math.Inf(1),
		G:      la.NewVector(n),
		D:      la.NewVector(n),
		T:      1.0,
		Iter:   0,
		Status: Running,
	}
}

// Clone returns a deep copy of s, so that callers may retain a state across
// further mutation of the solver's live iterate.
func (s State) Clone() State {
	return State{
		X:      s.X.GetCopy(),
		F:      s.F,
		G:      s.G.GetCopy(),
		D:      s.D.GetCopy(),
		T:      s.T,
		Iter:   s.Iter,
		Status: s.Status,
	}
}

// Less orders states by F, lower is better; used by Best.
func (s State) Less(other State) bool {
	return s.F < other.F
}

// Converged reports whether ||g||_inf / max(1,|f|) < eps.
func (s State) ConvergedAt(eps float64) bool {
	return s.G.NormInf()/math.Max(1, math.Abs(s.F)) < eps
}

// Best tracks the minimum-F state observed across a sequence of Track
// calls, per the "best state" ordering rule.
type Best struct {
	has  bool
	best State
}

// Track records s as a candidate for best-so-far, cloning it so later
// in-place mutation of the caller's live state does not corrupt the
// tracked best.
func (b *Best) Track(s State) {
	if !b.has || s.Less(b.best) {
		b.best = s.Clone()
		b.has = true
	}
}

// Best returns the best state tracked so far. The zero value is returned
// if Track was never called.
func (b *Best) Best() State {
	return b.best
}

// HasBest reports whether Track has been called at least once.
func (b *Best) HasBest() bool {
	return b.has
}
