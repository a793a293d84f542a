// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testfuncs

import "github.com/numgo/optcore/la"

// nearOrigin returns distance(x, 0) < eps, the shared is_minimum test for
// every scalable function whose unique minimum is the origin.
func nearOrigin(x la.Vector, eps float64) bool {
	return x.Norm() < eps
}

// Sphere is the canonical convex scalable quadratic, f = sum(x_i^2).
type Sphere struct{ Dims int }

func (s Sphere) Size() int                { return s.Dims }
func (s Sphere) Name() string             { return "Sphere" }
func (s Sphere) IsConvex() bool           { return true }
func (s Sphere) MinDims() int             { return 1 }
func (s Sphere) MaxDims() int             { return 100000 }
func (s Sphere) IsValid(x la.Vector) bool { return x.Norm() < 5.12 }

func (s Sphere) Value(x la.Vector) float64 { return x.Dot(x) }

func (s Sphere) ValueGrad(x la.Vector) (float64, la.Vector) {
	return x.Dot(x), x.Scale(2)
}

func (s Sphere) IsMinimum(x la.Vector, eps float64) bool { return nearOrigin(x, eps) }

// AxisEllipsoid is the axis-parallel hyper-ellipsoid, f = sum(i * x_i^2)
// for i = 1..n, convex.
type AxisEllipsoid struct{ Dims int }

func (a AxisEllipsoid) Size() int                { return a.Dims }
func (a AxisEllipsoid) Name() string             { return "Axis Parallel Hyper-Ellipsoid" }
func (a AxisEllipsoid) IsConvex() bool           { return true }
func (a AxisEllipsoid) MinDims() int             { return 1 }
func (a AxisEllipsoid) MaxDims() int             { return 100000 }
func (a AxisEllipsoid) IsValid(x la.Vector) bool { return x.Norm() < 100 }

func (a AxisEllipsoid) Value(x la.Vector) float64 {
	f, _ := a.ValueGrad(x)
	return f
}

func (a AxisEllipsoid) ValueGrad(x la.Vector) (float64, la.Vector) {
	n := len(x)
	g := la.NewVector(n)
	f := 0.0
	for i, xi := range x {
		w := float64(i + 1)
		f += w * xi * xi
		g[i] = 2 * w * xi
	}
	return f, g
}

func (a AxisEllipsoid) IsMinimum(x la.Vector, eps float64) bool { return nearOrigin(x, eps) }

// SumSquares is the weighted sum Σ i·x_i^2 (i = 1..n), the same family as
// AxisEllipsoid but carried as a distinct catalog entry because the
// original source tags it non-convex rather than reusing AxisEllipsoid's
// convex flag (see the package-level design note in the module's DESIGN
// ledger); kept as written rather than "corrected" so that catalog
// consumers distinguishing by is_convex() see the entry the original
// exposed.
type SumSquares struct{ Dims int }

func (s SumSquares) Size() int                { return s.Dims }
func (s SumSquares) Name() string             { return "sum squares" }
func (s SumSquares) IsConvex() bool           { return false }
func (s SumSquares) MinDims() int             { return 1 }
func (s SumSquares) MaxDims() int             { return 100000 }
func (s SumSquares) IsValid(x la.Vector) bool { return x.Norm() < 5.12 }

func (s SumSquares) Value(x la.Vector) float64 {
	f, _ := s.ValueGrad(x)
	return f
}

func (s SumSquares) ValueGrad(x la.Vector) (float64, la.Vector) {
	n := len(x)
	g := la.NewVector(n)
	f := 0.0
	for i, xi := range x {
		w := float64(i + 1)
		f += w * xi * xi
		g[i] = 2 * w * xi
	}
	return f, g
}

func (s SumSquares) IsMinimum(x la.Vector, eps float64) bool { return nearOrigin(x, eps) }

// ChungReynolds is f = (sum(x_i^2)/n)^2, convex.
type ChungReynolds struct{ Dims int }

func (c ChungReynolds) Size() int                { return c.Dims }
func (c ChungReynolds) Name() string             { return "Chung-Reynolds" }
func (c ChungReynolds) IsConvex() bool           { return true }
func (c ChungReynolds) MinDims() int             { return 1 }
func (c ChungReynolds) MaxDims() int             { return 100000 }
func (c ChungReynolds) IsValid(x la.Vector) bool { return x.Norm() < 1 }

func (c ChungReynolds) Value(x la.Vector) float64 {
	scale := 1.0 / float64(c.Dims)
	u := scale * x.Dot(x)
	return u * u
}

func (c ChungReynolds) ValueGrad(x la.Vector) (float64, la.Vector) {
	scale := 1.0 / float64(c.Dims)
	u := scale * x.Dot(x)
	g := la.NewVector(len(x))
	for i, xi := range x {
		g[i] = 4 * scale * u * xi
	}
	return u * u, g
}

func (c ChungReynolds) IsMinimum(x la.Vector, eps float64) bool { return nearOrigin(x, eps) }

// SchumerSteiglitz is f = sum(x_i^4), convex.
type SchumerSteiglitz struct{ Dims int }

func (s SchumerSteiglitz) Size() int                { return s.Dims }
func (s SchumerSteiglitz) Name() string             { return "Schumer-Steiglitz" }
func (s SchumerSteiglitz) IsConvex() bool           { return true }
func (s SchumerSteiglitz) MinDims() int             { return 1 }
func (s SchumerSteiglitz) MaxDims() int             { return 100000 }
func (s SchumerSteiglitz) IsValid(x la.Vector) bool { return true }

func (s SchumerSteiglitz) Value(x la.Vector) float64 {
	f := 0.0
	for _, xi := range x {
		f += xi * xi * xi * xi
	}
	return f
}

func (s SchumerSteiglitz) ValueGrad(x la.Vector) (float64, la.Vector) {
	n := len(x)
	g := la.NewVector(n)
	f := 0.0
	for i, xi := range x {
		f += xi * xi * xi * xi
		g[i] = 4 * xi * xi * xi
	}
	return f, g
}

func (s SchumerSteiglitz) IsMinimum(x la.Vector, eps float64) bool { return nearOrigin(x, eps) }

// RotatedEllipsoid is f = sum_i (sum_{j<=i} x_j)^2, convex.
type RotatedEllipsoid struct{ Dims int }

func (r RotatedEllipsoid) Size() int                { return r.Dims }
func (r RotatedEllipsoid) Name() string             { return "Rotated Hyper-Ellipsoid" }
func (r RotatedEllipsoid) IsConvex() bool           { return true }
func (r RotatedEllipsoid) MinDims() int             { return 1 }
func (r RotatedEllipsoid) MaxDims() int             { return 100000 }
func (r RotatedEllipsoid) IsValid(x la.Vector) bool { return x.Norm() < 100 }

func (r RotatedEllipsoid) Value(x la.Vector) float64 {
	f, _ := r.ValueGrad(x)
	return f
}

func (r RotatedEllipsoid) ValueGrad(x la.Vector) (float64, la.Vector) {
	n := len(x)
	g := la.NewVector(n)
	f, running := 0.0, 0.0
	for i, xi := range x {
		running += xi
		f += running * running
		g[i] = 2 * running
	}
	for i := n - 2; i >= 0; i-- {
		g[i] += g[i+1]
	}
	return f, g
}

func (r RotatedEllipsoid) IsMinimum(x la.Vector, eps float64) bool { return nearOrigin(x, eps) }

// Zakharov is f = u + v^2 + v^4, u = sum(x_i^2), v = sum(w_i x_i) with
// w_i = i/(2n) (0-indexed), convex.
type Zakharov struct{ Dims int }

func (z Zakharov) Size() int                { return z.Dims }
func (z Zakharov) Name() string             { return "Zakharov" }
func (z Zakharov) IsConvex() bool           { return true }
func (z Zakharov) MinDims() int             { return 1 }
func (z Zakharov) MaxDims() int             { return 100000 }
func (z Zakharov) IsValid(x la.Vector) bool { return x.Norm() < 1e9 && minCoeff(x) > -5 && maxCoeff(x) < 10 }

func (z Zakharov) weights() la.Vector {
	n := z.Dims
	w := la.NewVector(n)
	for i := range w {
		w[i] = float64(i) / 2.0 / float64(n)
	}
	return w
}

func (z Zakharov) Value(x la.Vector) float64 {
	f, _ := z.ValueGrad(x)
	return f
}

func (z Zakharov) ValueGrad(x la.Vector) (float64, la.Vector) {
	w := z.weights()
	u := x.Dot(x)
	v := w.Dot(x)
	f := u + v*v + v*v*v*v
	g := la.NewVector(len(x))
	for i := range g {
		g[i] = 2*x[i] + (2*v+4*v*v*v)*w[i]
	}
	return f, g
}

func (z Zakharov) IsMinimum(x la.Vector, eps float64) bool { return nearOrigin(x, eps) }

func minCoeff(x la.Vector) float64 {
	m := x[0]
	for _, v := range x {
		if v < m {
			m = v
		}
	}
	return m
}

func maxCoeff(x la.Vector) float64 {
	m := x[0]
	for _, v := range x {
		if v > m {
			m = v
		}
	}
	return m
}

// Trid is f = sum((x_i-1)^2) - sum(x_i x_{i-1}), convex, with a known
// minimum value of -n(n+4)(n-1)/6 (not checked here; is_minimum follows
// the original's "within epsilon of the analytic minimizer" contract via
// distance to the closed-form stationary point).
type Trid struct{ Dims int }

func (t Trid) Size() int                { return t.Dims }
func (t Trid) Name() string             { return "Trid" }
func (t Trid) IsConvex() bool           { return true }
func (t Trid) MinDims() int             { return 2 }
func (t Trid) MaxDims() int             { return 100000 }
func (t Trid) IsValid(x la.Vector) bool { return x.Norm() < 1+float64(t.Dims*t.Dims) }

func (t Trid) Value(x la.Vector) float64 {
	f, _ := t.ValueGrad(x)
	return f
}

func (t Trid) ValueGrad(x la.Vector) (float64, la.Vector) {
	n := len(x)
	f := 0.0
	for _, xi := range x {
		f += (xi - 1) * (xi - 1)
	}
	for i := 0; i+1 < n; i++ {
		f -= x[i] * x[i+1]
	}

	g := la.NewVector(n)
	for i, xi := range x {
		g[i] = 2 * (xi - 1)
	}
	for i := 1; i < n; i++ {
		g[i] -= x[i-1]
	}
	for i := 0; i+1 < n; i++ {
		g[i] -= x[i+1]
	}
	return f, g
}

// IsMinimum checks x_i = i(n+1-i) for i = 1..n, the Trid function's known
// stationary point.
func (t Trid) IsMinimum(x la.Vector, eps float64) bool {
	n := float64(len(x))
	xmin := la.NewVector(len(x))
	for i := range xmin {
		k := float64(i + 1)
		xmin[i] = k * (n + 1 - k)
	}
	diff := la.NewVector(len(x))
	la.Add(diff, 1, x, -1, xmin)
	return diff.Norm() < eps
}
