// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stoch

import (
	"math"

	"github.com/numgo/optcore/fun"
	"github.com/numgo/optcore/la"
	"github.com/numgo/optcore/tune"
)

// AutoTune implements the auto-tuning protocol: before the
// main run, execute a reduced run (1 epoch, same epoch size) for every
// combination of the algorithm's default hyper-parameter grid, record the
// final averaged f (non-finite treated as +Inf), and return the
// argmin-scoring Params, with Epochs restored to the caller's original
// budget. The receiver's own Params (Algorithm, Epochs, EpochSize,
// Restart) seed every trial; only the grid axes are swept.
func (s *Solver) AutoTune(obj fun.Objective, x0 la.Vector) Params {
	axes := DefaultGrid(s.Params.Algorithm)
	if len(axes) == 0 {
		return s.Params
	}

	epochs := s.Params.Epochs
	base := s.Params
	base.Epochs = 1

	spaces := make([]tune.Space, len(axes))
	for i, a := range axes {
		spaces[i] = tune.NewFiniteSpace(a.Values)
	}

	op := func(values []float64) float64 {
		trialParams := applyGrid(base, axes, values)
		trial := &Solver{Params: trialParams}
		st, err := trial.Min(obj, x0, nil)
		if err != nil || math.IsNaN(st.F) || math.IsInf(st.F, 0) {
			return math.Inf(1)
		}
		return st.F
	}

	_, bestValues := tune.Tune(op, spaces...)
	best := applyGrid(base, axes, bestValues)
	best.Epochs = epochs
	return best
}

// applyGrid returns a copy of base with each axes[i].Name field set to
// values[i].
func applyGrid(base Params, axes []GridAxis, values []float64) Params {
	p := base
	for i, a := range axes {
		switch a.Name {
		case "alpha0":
			p.Alpha0 = values[i]
		case "decay":
			p.Decay = values[i]
		case "beta":
			p.Beta = values[i]
		case "eps":
			p.Eps = values[i]
		case "q":
			p.Q = values[i]
		}
	}
	return p
}
