// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import (
	"math"

	"github.com/numgo/optcore/la"
)

// BetaFunc is the pure "direction rule" that distinguishes one CGD variant
// from another: d_k = -g_k + beta_k * d_{k-1}. eta is the
// clamp parameter used only by the N (Hager-Zhang) variant.
type BetaFunc func(g, gPrev, dPrev la.Vector, eta float64) float64

// betaFR is the Fletcher-Reeves update.
func betaFR(g, gPrev, dPrev la.Vector, eta float64) float64 {
	return g.Dot(g) / gPrev.Dot(gPrev)
}

// betaPRP is the Polak-Ribiere+ update, clamped at zero.
func betaPRP(g, gPrev, dPrev la.Vector, eta float64) float64 {
	diff := diffVec(g, gPrev)
	b := g.Dot(diff) / gPrev.Dot(gPrev)
	return math.Max(0, b)
}

// betaHS is the Hestenes-Stiefel update.
func betaHS(g, gPrev, dPrev la.Vector, eta float64) float64 {
	diff := diffVec(g, gPrev)
	return g.Dot(diff) / dPrev.Dot(diff)
}

// betaDY is the Dai-Yuan update.
func betaDY(g, gPrev, dPrev la.Vector, eta float64) float64 {
	diff := diffVec(g, gPrev)
	return g.Dot(g) / dPrev.Dot(diff)
}

// betaCD is the Conjugate Descent update.
func betaCD(g, gPrev, dPrev la.Vector, eta float64) float64 {
	return -g.Dot(g) / dPrev.Dot(gPrev)
}

// betaLS is the Liu-Storey update.
func betaLS(g, gPrev, dPrev la.Vector, eta float64) float64 {
	diff := diffVec(g, gPrev)
	return -g.Dot(diff) / dPrev.Dot(gPrev)
}

// betaN is the Hager-Zhang N+ update, clamped below by eta_k =
// -1/(||d_prev|| * min(eta, ||g_prev||)).
func betaN(g, gPrev, dPrev la.Vector, eta float64) float64 {
	y := diffVec(g, gPrev)
	dy := dPrev.Dot(y)
	yy := y.Dot(y)
	term := la.NewVector(len(y))
	la.Add(term, 1, y, -2*yy/dy, dPrev)
	b := term.Dot(g) / dy

	if eta <= 0 {
		eta = 0.01
	}
	etaK := -1.0 / (dPrev.Norm() * math.Min(eta, gPrev.Norm()))
	return math.Max(b, etaK)
}

// betaDYCD is the Dai-Yuan/Conjugate-Descent hybrid, clamped at zero.
func betaDYCD(g, gPrev, dPrev la.Vector, eta float64) float64 {
	return math.Max(0, math.Min(betaDY(g, gPrev, dPrev, eta), betaCD(g, gPrev, dPrev, eta)))
}

// betaDYHS is the Dai-Yuan/Hestenes-Stiefel hybrid, clamped at zero.
func betaDYHS(g, gPrev, dPrev la.Vector, eta float64) float64 {
	return math.Max(0, math.Min(betaDY(g, gPrev, dPrev, eta), betaHS(g, gPrev, dPrev, eta)))
}

func diffVec(a, b la.Vector) la.Vector {
	r := la.NewVector(len(a))
	la.Add(r, 1, a, -1, b)
	return r
}

// betaFuncFor maps a CGDVariant to its direction rule.
func betaFuncFor(v CGDVariant) BetaFunc {
	switch v {
	case VariantFR:
		return betaFR
	case VariantPRP:
		return betaPRP
	case VariantHS:
		return betaHS
	case VariantDY:
		return betaDY
	case VariantCD:
		return betaCD
	case VariantLS:
		return betaLS
	case VariantN:
		return betaN
	case VariantDYCD:
		return betaDYCD
	case VariantDYHS:
		return betaDYHS
	default:
		return betaPRP
	}
}
