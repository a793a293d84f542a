// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

// Algorithm tags the closed set of batch solver algorithms.
type Algorithm int

const (
	// GD is gradient descent: d = -g.
	GD Algorithm = iota
	// CGD is the nonlinear conjugate-gradient family; CGDVariant selects
	// the beta formula. The generic "CGD" caller-facing id defaults to PRP.
	CGD
	// LBFGS is limited-memory BFGS.
	LBFGS
)

func (a Algorithm) String() string {
	switch a {
	case GD:
		return "GD"
	case CGD:
		return "CGD"
	case LBFGS:
		return "L-BFGS"
	default:
		return "unknown"
	}
}

// CGDVariant selects the beta (direction-rule) formula for a CGD solver.
type CGDVariant int

const (
	VariantPRP CGDVariant = iota // default
	VariantFR
	VariantHS
	VariantDY
	VariantCD
	VariantLS
	VariantN
	VariantDYCD
	VariantDYHS
)

func (v CGDVariant) String() string {
	switch v {
	case VariantFR:
		return "FR"
	case VariantPRP:
		return "PRP"
	case VariantHS:
		return "HS"
	case VariantDY:
		return "DY"
	case VariantCD:
		return "CD"
	case VariantLS:
		return "LS"
	case VariantN:
		return "N"
	case VariantDYCD:
		return "DYCD"
	case VariantDYHS:
		return "DYHS"
	default:
		return "unknown"
	}
}
