// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stoch implements the noisy, epoch/iteration stochastic solver
// family (SG, SGM, NGD, AG with three restart policies, AdaGrad, AdaDelta,
// Adam), sharing the two-level epoch/iteration loop and the
// current/averaged/best state triple. Grounded on the
// iteration-counting convention in gosl/num/nlsolver.go and on
// gosl/ml/paramsreg.go's grid-of-candidates hyper-parameter convention.
package stoch

// Algorithm tags the closed set of stochastic solver algorithms.
type Algorithm int

const (
	SG Algorithm = iota
	SGM
	NGD
	AG
	AdaGrad
	AdaDelta
	Adam
)

func (a Algorithm) String() string {
	switch a {
	case SG:
		return "SG"
	case SGM:
		return "SGM"
	case NGD:
		return "NGD"
	case AG:
		return "AG"
	case AdaGrad:
		return "AdaGrad"
	case AdaDelta:
		return "AdaDelta"
	case Adam:
		return "Adam"
	default:
		return "unknown"
	}
}

// Restart selects AG's momentum-restart policy.
type Restart int

const (
	// RestartNone never resets theta.
	RestartNone Restart = iota
	// RestartFunction resets theta to 1 when f increases between iterations.
	RestartFunction
	// RestartGradient resets theta to 1 when g.(x-x_prev) > 0.
	RestartGradient
)

func (r Restart) String() string {
	switch r {
	case RestartNone:
		return "none"
	case RestartFunction:
		return "function"
	case RestartGradient:
		return "gradient"
	default:
		return "unknown"
	}
}
