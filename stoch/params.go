// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stoch

import "github.com/numgo/optcore/chk"

// Params configures a stochastic solver run.
type Params struct {
	Algorithm Algorithm
	Restart   Restart // AG only

	Epochs    int // E
	EpochSize int // I, oracle calls per epoch

	Alpha0 float64 // initial learning rate
	Decay  float64 // SG/SGM step decay exponent, in [0,1]
	Beta   float64 // momentum (SGM) or accumulator momentum (AdaDelta/Adam's beta1)
	Beta2  float64 // Adam's second-moment momentum, fixed default 0.999
	Eps    float64 // numerical-stability epsilon
	Q      float64 // AG's theta-update parameter, in [0,1)

	// AverageBeta is the momentum of the EMA used for the averaged/best
	// state triple, fixed at 0.95.
	AverageBeta float64
}

// DefaultParams returns baseline hyper-parameters for alg. Epochs,
// EpochSize, Alpha0, Eps and AverageBeta are set for every algorithm;
// Decay, Beta, Beta2, Q and Restart are set only for the algorithms that
// use them and are otherwise left at their zero value.
func DefaultParams(alg Algorithm) Params {
	p := Params{
		Algorithm:   alg,
		Epochs:      50,
		EpochSize:   100,
		Alpha0:      1e-2,
		Eps:         1e-8,
		AverageBeta: 0.95,
	}
	switch alg {
	case SG:
		p.Decay = 0.5
	case SGM:
		p.Decay = 0.5
		p.Beta = 0.9
	case NGD:
		// no decay or momentum: normalized gradient uses a constant alpha.
	case AG:
		p.Q = 0.1
		p.Restart = RestartFunction
	case AdaGrad:
		// arithmetic mean of squared gradients; no extra knobs beyond eps.
	case AdaDelta:
		p.Beta = 0.95
	case Adam:
		p.Beta = 0.9
		p.Beta2 = 0.999
	}
	return p
}

// SetParams applies loose (name, value) overrides on top of p's current
// values, mirroring gosl/num/nlsolver.go's Init(..., prms map[string]float64)
// idiom. Unknown keys panic, the same way the teacher's Init rejects an
// unrecognized parameter name.
//  "epochs"    -- Epochs
//  "epochSize" -- EpochSize
//  "alpha0"    -- Alpha0
//  "decay"     -- Decay
//  "beta"      -- Beta
//  "beta2"     -- Beta2
//  "eps"       -- Eps
//  "q"         -- Q
//  "avgBeta"   -- AverageBeta
func (p *Params) SetParams(prms map[string]float64) {
	for k, v := range prms {
		switch k {
		case "epochs":
			p.Epochs = int(v)
		case "epochSize":
			p.EpochSize = int(v)
		case "alpha0":
			p.Alpha0 = v
		case "decay":
			p.Decay = v
		case "beta":
			p.Beta = v
		case "beta2":
			p.Beta2 = v
		case "eps":
			p.Eps = v
		case "q":
			p.Q = v
		case "avgBeta":
			p.AverageBeta = v
		default:
			chk.Panic("stoch: parameter named %q is invalid", k)
		}
	}
}

// GridAxis is one named hyper-parameter axis of a tuning grid.
type GridAxis struct {
	Name   string
	Values []float64
}

// DefaultGrid returns the default hyper-parameter grid for alg,
// in a fixed axis order, omitting parameters the algorithm does not use.
// The fixed order makes the tuner's lexicographic traversal (and therefore
// its idempotence) independent of map iteration order.
func DefaultGrid(alg Algorithm) []GridAxis {
	alpha0 := GridAxis{"alpha0", []float64{1e-4, 1e-3, 1e-2, 1e-1, 1}}
	decay := GridAxis{"decay", []float64{0.10, 0.25, 0.50, 0.75, 1.00}}
	momentum := GridAxis{"beta", []float64{0.1, 0.25, 0.5, 0.9, 0.95}}
	eps := GridAxis{"eps", []float64{1e-4, 1e-6, 1e-8}}
	q := GridAxis{"q", []float64{0.05, 0.10, 0.15, 0.20}}

	switch alg {
	case SG:
		return []GridAxis{alpha0, decay}
	case SGM:
		return []GridAxis{alpha0, decay, momentum}
	case NGD:
		return []GridAxis{alpha0}
	case AG:
		return []GridAxis{alpha0, q}
	case AdaGrad:
		return []GridAxis{alpha0, eps}
	case AdaDelta:
		return []GridAxis{momentum, eps}
	case Adam:
		return []GridAxis{alpha0, eps}
	default:
		return nil
	}
}
