// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import (
	"github.com/numgo/optcore/chk"
	"github.com/numgo/optcore/fun"
	"github.com/numgo/optcore/la"
	"github.com/numgo/optcore/linesearch"
	"github.com/numgo/optcore/solverstate"
)

// Solver is the shared batch skeleton: initialize, then per
// iteration check convergence, compute a descent direction, restart to
// steepest descent if it is not one, line-search, update, and track the
// best state seen. GD, CGD, and L-BFGS differ only in how Direction is
// computed and what history they keep, mirroring gosl/opt's
// NewConjGrad/NewGradDesc solver-struct convention.
type Solver struct {
	Params Params

	// NumIter, NumFeval, NumGeval are cumulative counters exposed the way
	// gosl/opt solvers expose sol.NumIter/NumFeval/NumGeval.
	NumIter  int
	NumFeval int
	NumGeval int

	// UseHist toggles whether the iterate trajectory is recorded in Hist,
	// mirroring gosl/opt's sol.UseHist/sol.Hist fields.
	UseHist bool
	Hist    []solverstate.State

	hist  *History // L-BFGS only
	dPrev la.Vector
	gPrev la.Vector
	fPrev float64
}

// NewGD returns a gradient-descent solver with default parameters.
func NewGD() *Solver {
	return &Solver{Params: DefaultParams(GD, VariantPRP)}
}

// NewCGD returns a nonlinear conjugate-gradient solver using the given beta
// variant, with the variant's default parameters.
func NewCGD(variant CGDVariant) *Solver {
	return &Solver{Params: DefaultParams(CGD, variant)}
}

// NewLBFGS returns a limited-memory BFGS solver with default parameters.
func NewLBFGS() *Solver {
	s := &Solver{Params: DefaultParams(LBFGS, VariantPRP)}
	s.hist = NewHistory(s.Params.HistorySize)
	return s
}

// Min runs the solver from x0 against obj until convergence, iteration
// exhaustion, line-search failure, or the callback requests a stop. cb may
// be nil, in which case solverstate.AlwaysContinue is used.
func (s *Solver) Min(obj fun.ValueOnly, x0 la.Vector, cb solverstate.Callback) (solverstate.State, error) {
	chk.IntAssert(len(x0), obj.Size())
	if cb == nil {
		cb = solverstate.AlwaysContinue
	}

	adapter := fun.NewAdapter(obj)
	n := len(x0)

	st := solverstate.New(n)
	st.X = x0.GetCopy()
	st.F, st.G = adapter.ValueGrad(st.X)
	s.countEval(adapter)

	if s.Params.Algorithm == LBFGS {
		m := s.Params.HistorySize
		if m <= 0 {
			m = 6
		}
		if s.hist == nil || s.hist.Cap() != m {
			s.hist = NewHistory(m)
		} else {
			s.hist.Reset()
		}
	} else {
		s.hist = nil
	}
	s.dPrev = nil
	s.gPrev = nil

	var best solverstate.Best
	best.Track(st)
	if s.UseHist {
		s.Hist = append(s.Hist[:0], st.Clone())
	}

	config := s.config()

	for iter := 0; iter < s.Params.MaxIters; iter++ {
		st.Iter = iter
		s.NumIter = iter + 1

		if st.ConvergedAt(s.Params.Eps) {
			st.Status = solverstate.Converged
			best.Track(st)
			return s.finish(best, st.Status), nil
		}

		d := s.direction(st.G)
		dg := d.Dot(st.G)
		if dg >= 0 {
			d = st.G.Scale(-1)
			dg = d.Dot(st.G)
		}
		st.D = d

		t0 := linesearch.InitialStep(s.Params.LS.Init, s.initContext(st, dg))

		xCur := st.X
		evalAt := func(t float64) (float64, la.Vector) {
			xt := la.NewVector(n)
			la.Add(xt, 1, xCur, t, d)
			f, g := adapter.ValueGrad(xt)
			s.countEval(adapter)
			return f, g
		}

		res := linesearch.Search(s.Params.LS, st.F, dg, d, t0, evalAt)
		if !res.Ok || !la.IsFinite(res.G) {
			st.Status = solverstate.Failed
			best.Track(st)
			return s.finish(best, st.Status), errLineSearchFailed
		}

		xNext := la.NewVector(n)
		la.Add(xNext, 1, xCur, res.T, d)

		if s.hist != nil {
			sVec := la.NewVector(n)
			la.Add(sVec, 1, xNext, -1, xCur)
			yVec := la.NewVector(n)
			la.Add(yVec, 1, res.G, -1, st.G)
			s.hist.Push(sVec, yVec)
		}
		s.dPrev = d
		s.gPrev = st.G
		s.fPrev = st.F

		st.X = xNext
		st.F = res.F
		st.G = res.G
		st.T = res.T

		best.Track(st)
		if s.UseHist {
			s.Hist = append(s.Hist, st.Clone())
		}

		if !cb(st, config) {
			st.Status = solverstate.UserStop
			best.Track(st)
			return s.finish(best, st.Status), nil
		}
	}

	st.Status = solverstate.MaxIters
	best.Track(st)
	return s.finish(best, st.Status), nil
}

// direction dispatches to GD/CGD/LBFGS, per Params.Algorithm.
func (s *Solver) direction(g la.Vector) la.Vector {
	switch s.Params.Algorithm {
	case LBFGS:
		return twoLoopRecursion(g, s.hist)
	case CGD:
		if s.dPrev == nil || s.gPrev == nil {
			return g.Scale(-1)
		}
		beta := betaFuncFor(s.Params.Variant)(g, s.gPrev, s.dPrev, s.Params.Eta)
		d := la.NewVector(len(g))
		la.Add(d, -1, g, beta, s.dPrev)
		return d
	default: // GD
		return g.Scale(-1)
	}
}

func (s *Solver) initContext(st solverstate.State, dg float64) linesearch.InitContext {
	ctx := linesearch.InitContext{
		FirstIter: s.NumIter <= 1,
		F:         st.F,
		DG:        dg,
		TPrev:     st.T,
	}
	if !ctx.FirstIter && s.gPrev != nil {
		ctx.DGPrev = s.dPrev.Dot(s.gPrev)
		ctx.FPrev = s.fPrev
	}
	return ctx
}

func (s *Solver) countEval(a *fun.Adapter) {
	s.NumFeval = a.EvalCount()
	s.NumGeval = a.GradCount()
}

func (s *Solver) config() []solverstate.ConfigParam {
	return []solverstate.ConfigParam{
		{Name: "algorithm", Value: float64(s.Params.Algorithm)},
		{Name: "variant", Value: float64(s.Params.Variant)},
	}
}

// finish returns the best state seen, carrying the final status of the run.
func (s *Solver) finish(best solverstate.Best, status solverstate.Status) solverstate.State {
	final := best.Best()
	final.Status = status
	return final
}

// errLineSearchFailed is returned by Min when no step satisfying the
// configured line-search conditions could be found.
var errLineSearchFailed = chk.Err("batch: line search failed to find an acceptable step")
