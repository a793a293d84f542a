// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import (
	"github.com/numgo/optcore/chk"
	"github.com/numgo/optcore/linesearch"
)

// Params configures a batch solver run.
type Params struct {
	Algorithm   Algorithm
	Variant     CGDVariant // only meaningful when Algorithm == CGD
	MaxIters    int
	Eps         float64
	HistorySize int // L-BFGS only; default 6
	Eta         float64 // Hager-Zhang N+ clamp parameter, default 0.01
	LS          linesearch.Params
}

// DefaultParams returns the default ls_init/ls_strategy pairing for the
// given algorithm/variant combination. These are starting points, not
// contracts: callers may override Params.LS freely.
func DefaultParams(alg Algorithm, variant CGDVariant) Params {
	p := Params{
		Algorithm:   alg,
		Variant:     variant,
		MaxIters:    1000,
		Eps:         1e-6,
		HistorySize: 6,
		Eta:         0.01,
	}

	switch alg {
	case GD:
		p.LS = linesearch.DefaultWolfe(0.9)
		p.LS.Init = linesearch.Quadratic
	case LBFGS:
		p.LS = linesearch.DefaultInterpolation(0.9)
		p.LS.Init = linesearch.Unit
	case CGD:
		switch variant {
		case VariantCD, VariantDYCD:
			p.LS = linesearch.DefaultInterpolation(0.1)
			p.LS.Init = linesearch.Unit
		case VariantFR:
			p.LS = linesearch.DefaultArmijo()
			p.LS.Init = linesearch.Quadratic
		case VariantDY, VariantHS:
			p.LS = linesearch.DefaultWolfe(0.1)
			p.LS.Init = linesearch.Quadratic
		default: // PRP, LS, N, DYHS
			p.LS = linesearch.DefaultInterpolation(0.1)
			p.LS.Init = linesearch.Quadratic
		}
	}
	return p
}

// SetParams applies loose (name, value) overrides on top of p's current
// values, mirroring gosl/num/nlsolver.go's Init(..., prms map[string]float64)
// idiom for solvers that accept untyped parameter maps. Unknown keys panic,
// the same way the teacher's Init rejects an unrecognized parameter name.
//  "maxIters"    -- MaxIters
//  "eps"         -- Eps
//  "historySize" -- HistorySize
//  "eta"         -- Eta (Hager-Zhang N+ clamp)
//  "lsC1"        -- LS.C1
//  "lsC2"        -- LS.C2
//  "lsShrink"    -- LS.Shrink
//  "lsGrow"      -- LS.Grow
//  "lsMaxIters"  -- LS.MaxIters
//  "lsTMax"      -- LS.TMax
func (p *Params) SetParams(prms map[string]float64) {
	for k, v := range prms {
		switch k {
		case "maxIters":
			p.MaxIters = int(v)
		case "eps":
			p.Eps = v
		case "historySize":
			p.HistorySize = int(v)
		case "eta":
			p.Eta = v
		case "lsC1":
			p.LS.C1 = v
		case "lsC2":
			p.LS.C2 = v
		case "lsShrink":
			p.LS.Shrink = v
		case "lsGrow":
			p.LS.Grow = v
		case "lsMaxIters":
			p.LS.MaxIters = int(v)
		case "lsTMax":
			p.LS.TMax = v
		default:
			chk.Panic("batch: parameter named %q is invalid", k)
		}
	}
}
