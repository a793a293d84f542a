// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import "github.com/numgo/optcore/la"

// twoLoopRecursion computes d = -H g via the L-BFGS two-loop recursion
// (Nocedal & Wright, Algorithm 7.4) over the pairs stored in h, newest
// last. Pairs with s.y <= 0 (curvature condition violated) are skipped; if
// the newest pair is skipped, the steepest-descent direction is returned.
func twoLoopRecursion(g la.Vector, h *History) la.Vector {
	n := len(g)
	if h.Len() == 0 {
		return g.Scale(-1)
	}

	// filter out pairs with non-positive curvature, preserving order.
	type rho struct {
		p   pair
		rho float64
	}
	active := make([]rho, 0, h.Len())
	for _, p := range h.pairs {
		sy := p.s.Dot(p.y)
		if sy <= 0 {
			continue
		}
		active = append(active, rho{p: p, rho: 1.0 / sy})
	}
	if len(active) == 0 || h.pairs[len(h.pairs)-1].s.Dot(h.pairs[len(h.pairs)-1].y) <= 0 {
		return g.Scale(-1)
	}

	q := g.GetCopy()
	alphas := make([]float64, len(active))

	for i := len(active) - 1; i >= 0; i-- {
		a := active[i]
		alpha := a.rho * a.p.s.Dot(q)
		alphas[i] = alpha
		la.Add(q, 1, q, -alpha, a.p.y)
	}

	last := active[len(active)-1].p
	gamma := last.s.Dot(last.y) / last.y.Dot(last.y)

	r := la.NewVector(n)
	r.Apply(gamma, q)

	for i := 0; i < len(active); i++ {
		a := active[i]
		beta := a.rho * a.p.y.Dot(r)
		la.Add(r, 1, r, alphas[i]-beta, a.p.s)
	}

	return r.Scale(-1)
}
