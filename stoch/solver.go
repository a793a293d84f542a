// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stoch

import (
	"math"

	"github.com/numgo/optcore/chk"
	"github.com/numgo/optcore/fun"
	"github.com/numgo/optcore/la"
	"github.com/numgo/optcore/runavg"
	"github.com/numgo/optcore/solverstate"
)

// Solver is the shared stochastic skeleton: two nested loops
// (epoch, iteration), one oracle call and one parameter update per inner
// iteration, reporting an averaged state to the user log once per epoch.
// It maintains the current/averaged/best state triple and returns best.
type Solver struct {
	Params Params

	NumEpoch int
	NumIter  int
	NumFeval int
	NumGeval int

	// UseHist records the per-epoch averaged state, mirroring
	// gosl/opt's sol.UseHist/sol.Hist convention.
	UseHist bool
	Hist    []solverstate.State

	v    la.Vector              // SGM velocity
	G    *runavg.ArithmeticMean // AdaGrad accumulated squared gradient
	eg2  *runavg.EMA            // AdaDelta E[g^2]
	edx2 *runavg.EMA            // AdaDelta E[dx^2]
	m1   *runavg.EMA            // Adam first moment
	m2   *runavg.EMA            // Adam second moment

	// AG-specific lookahead state.
	y      la.Vector
	x      la.Vector
	theta  float64
	fPrev  float64
	hasAG  bool
}

func NewSG() *Solver      { return &Solver{Params: DefaultParams(SG)} }
func NewSGM() *Solver     { return &Solver{Params: DefaultParams(SGM)} }
func NewNGD() *Solver     { return &Solver{Params: DefaultParams(NGD)} }
func NewAdaGrad() *Solver { return &Solver{Params: DefaultParams(AdaGrad)} }
func NewAdaDelta() *Solver { return &Solver{Params: DefaultParams(AdaDelta)} }
func NewAdam() *Solver    { return &Solver{Params: DefaultParams(Adam)} }

// NewAG returns a Nesterov accelerated-gradient solver with the given
// restart policy.
func NewAG(restart Restart) *Solver {
	p := DefaultParams(AG)
	p.Restart = restart
	return &Solver{Params: p}
}

// Min runs the solver from x0 against the noisy objective obj for
// Params.Epochs epochs of Params.EpochSize inner iterations each. cb is
// invoked once per epoch with the averaged state; nil defaults to
// solverstate.AlwaysContinue.
func (s *Solver) Min(obj fun.Objective, x0 la.Vector, cb solverstate.Callback) (solverstate.State, error) {
	chk.IntAssert(len(x0), obj.Size())
	if cb == nil {
		cb = solverstate.AlwaysContinue
	}
	n := len(x0)
	s.allocate(n)

	cur := x0.GetCopy()
	s.x = x0.GetCopy()
	s.y = x0.GetCopy()
	s.theta = 1.0
	s.hasAG = false

	avg := runavg.NewEMA(n, s.Params.AverageBeta)
	avg.Update(cur)

	var best solverstate.Best
	config := s.config()
	status := solverstate.MaxIters

	globalIter := 0
epochs:
	for e := 0; e < s.Params.Epochs; e++ {
		s.NumEpoch = e + 1
		for i := 0; i < s.Params.EpochSize; i++ {
			probe := cur
			if s.Params.Algorithm == AG {
				probe = s.y
			}
			f, g := obj.ValueGrad(probe)
			s.NumFeval++
			s.NumGeval++

			alpha := s.alphaAt(i)
			var xSnap, ySnap la.Vector
			var thetaSnap, fPrevSnap float64
			var hasAGSnap bool
			if s.Params.Algorithm == AG {
				xSnap, ySnap = s.x.GetCopy(), s.y.GetCopy()
				thetaSnap, fPrevSnap, hasAGSnap = s.theta, s.fPrev, s.hasAG
			}
			next := s.update(cur, f, g, alpha)

			if !obj.IsValid(next) || !la.IsFinite(next) {
				next = cur // reject divergent iterate
				if s.Params.Algorithm == AG {
					s.x, s.y = xSnap, ySnap
					s.theta, s.fPrev, s.hasAG = thetaSnap, fPrevSnap, hasAGSnap
				}
			}
			cur = next
			avg.Update(cur)
			globalIter++
			s.NumIter = globalIter
		}

		avgX := avg.Value()
		avgF := obj.Value(avgX)
		s.NumFeval++

		st := solverstate.State{X: avgX.GetCopy(), F: avgF, G: la.NewVector(n), D: la.NewVector(n), T: 1, Iter: e, Status: solverstate.Running}
		best.Track(st)
		if s.UseHist {
			s.Hist = append(s.Hist, st.Clone())
		}
		if !cb(st, config) {
			status = solverstate.UserStop
			break epochs
		}
	}

	final := best.Best()
	final.Status = status
	return final, nil
}

// alphaAt returns the learning rate for inner-iteration index i, per
// alpha = alpha0 / (i+1)^decay. Algorithms without a decay parameter
// (NGD, AdaGrad, AdaDelta, Adam, AG) use a constant alpha0.
func (s *Solver) alphaAt(i int) float64 {
	switch s.Params.Algorithm {
	case SG, SGM:
		return s.Params.Alpha0 / math.Pow(float64(i+1), s.Params.Decay)
	default:
		return s.Params.Alpha0
	}
}

func (s *Solver) allocate(n int) {
	s.v = la.NewVector(n)
	s.G = runavg.NewArithmeticMean(n)
	s.eg2 = runavg.NewEMA(n, s.Params.Beta)
	s.edx2 = runavg.NewEMA(n, s.Params.Beta)
	s.m1 = runavg.NewEMA(n, s.Params.Beta)
	beta2 := s.Params.Beta2
	if beta2 == 0 {
		beta2 = 0.999
	}
	s.m2 = runavg.NewEMA(n, beta2)
}

// update computes the next iterate given the current point x, the probe's
// value/gradient, and the current learning rate. For AG, x is ignored in
// favor of the solver's internal anchor/lookahead state, and the returned
// point is the new anchor.
func (s *Solver) update(x la.Vector, f float64, g la.Vector, alpha float64) la.Vector {
	n := len(x)
	next := la.NewVector(n)

	switch s.Params.Algorithm {
	case SG:
		la.Add(next, 1, x, -alpha, g)

	case SGM:
		la.Add(s.v, s.Params.Beta, s.v, -alpha, g)
		la.Add(next, 1, x, 1, s.v)

	case NGD:
		norm := g.Norm()
		if norm == 0 {
			norm = 1
		}
		la.Add(next, 1, x, -alpha/norm, g)

	case AdaGrad:
		sq := la.NewVector(n)
		la.SquareElemwise(sq, g)
		s.G.Update(sq)
		step := la.NewVector(n)
		for i := range step {
			step[i] = g[i] / math.Sqrt(s.G.Mean()[i]+s.Params.Eps)
		}
		la.Add(next, 1, x, -alpha, step)

	case AdaDelta:
		sq := la.NewVector(n)
		la.SquareElemwise(sq, g)
		s.eg2.Update(sq)
		delta := la.NewVector(n)
		for i := range delta {
			delta[i] = -g[i] * math.Sqrt(s.edx2.Value()[i]+s.Params.Eps) / math.Sqrt(s.eg2.Value()[i]+s.Params.Eps)
		}
		la.Add(next, 1, x, 1, delta)
		sqDelta := la.NewVector(n)
		la.SquareElemwise(sqDelta, delta)
		s.edx2.Update(sqDelta)

	case Adam:
		s.m1.Update(g)
		sq := la.NewVector(n)
		la.SquareElemwise(sq, g)
		s.m2.Update(sq)
		for i := range next {
			next[i] = x[i] - alpha*s.m1.Value()[i]/(math.Sqrt(s.m2.Value()[i])+s.Params.Eps)
		}

	case AG:
		return s.agStep(f, g, alpha)

	default:
		la.Add(next, 1, x, -alpha, g)
	}
	return next
}

// agStep implements Nesterov accelerated gradient with adaptive theta and
// the configured restart policy. g is evaluated at the lookahead point
// s.y; the method advances both s.x (the anchor) and s.y (the next
// lookahead point, which is what the next inner iteration probes) and
// returns the new anchor s.x, the point that is propagated as cur,
// averaged, and checked for divergence.
func (s *Solver) agStep(f float64, g la.Vector, alpha float64) la.Vector {
	n := len(s.x)

	xNew := la.NewVector(n)
	la.Add(xNew, 1, s.y, -alpha, g)

	thetaPrev := s.theta
	thetaNew := solveTheta(thetaPrev, s.Params.Q)
	beta := thetaPrev * (1 - thetaPrev) / (thetaPrev*thetaPrev + thetaNew)

	diff := la.NewVector(n)
	la.Add(diff, 1, xNew, -1, s.x)
	yNew := la.NewVector(n)
	la.Add(yNew, 1, xNew, beta, diff)

	restart := false
	switch s.Params.Restart {
	case RestartFunction:
		restart = s.hasAG && f > s.fPrev
	case RestartGradient:
		restart = s.hasAG && g.Dot(diff) > 0
	}
	if restart {
		thetaNew = 1
	}

	s.x = xNew
	s.y = yNew
	s.theta = thetaNew
	s.fPrev = f
	s.hasAG = true
	return xNew
}

// solveTheta solves theta_cur^2 + (theta_prev^2 - q) theta_cur -
// theta_prev^2 = 0 for the positive root, per theta_cur^2 = (1 -
// theta_cur) theta_prev^2 + q theta_cur.
func solveTheta(thetaPrev, q float64) float64 {
	b := thetaPrev*thetaPrev - q
	c := thetaPrev * thetaPrev
	disc := b*b + 4*c
	return (-b + math.Sqrt(disc)) / 2
}

func (s *Solver) config() []solverstate.ConfigParam {
	return []solverstate.ConfigParam{
		{Name: "algorithm", Value: float64(s.Params.Algorithm)},
		{Name: "alpha0", Value: s.Params.Alpha0},
		{Name: "decay", Value: s.Params.Decay},
		{Name: "beta", Value: s.Params.Beta},
		{Name: "eps", Value: s.Params.Eps},
		{Name: "q", Value: s.Params.Q},
	}
}
