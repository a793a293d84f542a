// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testfuncs

import (
	"math"

	"github.com/numgo/optcore/la"
)

// Qing is f = sum((x_i^2 - i)^2) for i = 1..n, non-convex, with 2^n global
// minima at x_i = +-sqrt(i).
type Qing struct{ Dims int }

func (q Qing) Size() int                { return q.Dims }
func (q Qing) Name() string             { return "Qing" }
func (q Qing) IsConvex() bool           { return false }
func (q Qing) MinDims() int             { return 1 }
func (q Qing) MaxDims() int             { return 100000 }
func (q Qing) IsValid(x la.Vector) bool { return x.NormInf() < 500 }

func (q Qing) Value(x la.Vector) float64 {
	f, _ := q.ValueGrad(x)
	return f
}

func (q Qing) ValueGrad(x la.Vector) (float64, la.Vector) {
	n := len(x)
	f := 0.0
	g := la.NewVector(n)
	for i, xi := range x {
		u := xi*xi - float64(i+1)
		f += u * u
		g[i] = 4 * u * xi
	}
	return f, g
}

// IsMinimum checks x_i = +-sqrt(i+1), any sign combination.
func (q Qing) IsMinimum(x la.Vector, eps float64) bool {
	for i, xi := range x {
		want := math.Sqrt(float64(i + 1))
		if math.Abs(math.Abs(xi)-want) >= eps {
			return false
		}
	}
	return true
}

// Cauchy is f = sum(log(1 + x_i^2)), convex on [-1,1]^n per its
// declared restricted convexity, global minimum at the origin.
type Cauchy struct{ Dims int }

func (c Cauchy) Size() int                { return c.Dims }
func (c Cauchy) Name() string             { return "Cauchy" }
func (c Cauchy) IsConvex() bool           { return true }
func (c Cauchy) MinDims() int             { return 1 }
func (c Cauchy) MaxDims() int             { return 100000 }
func (c Cauchy) IsValid(x la.Vector) bool { return x.NormInf() <= 1 }

func (c Cauchy) Value(x la.Vector) float64 {
	f, _ := c.ValueGrad(x)
	return f
}

func (c Cauchy) ValueGrad(x la.Vector) (float64, la.Vector) {
	n := len(x)
	f := 0.0
	g := la.NewVector(n)
	for i, xi := range x {
		f += math.Log(1 + xi*xi)
		g[i] = 2 * xi / (1 + xi*xi)
	}
	return f, g
}

func (c Cauchy) IsMinimum(x la.Vector, eps float64) bool { return nearOrigin(x, eps) }

// Sargan is f = sum(x_i^2 + 0.4 sum_{j!=i} x_i x_j), convex, global minimum
// at the origin.
type Sargan struct{ Dims int }

func (s Sargan) Size() int                { return s.Dims }
func (s Sargan) Name() string             { return "Sargan" }
func (s Sargan) IsConvex() bool           { return true }
func (s Sargan) MinDims() int             { return 1 }
func (s Sargan) MaxDims() int             { return 100000 }
func (s Sargan) IsValid(x la.Vector) bool { return x.NormInf() < 100 }

func (s Sargan) Value(x la.Vector) float64 {
	f, _ := s.ValueGrad(x)
	return f
}

func (s Sargan) ValueGrad(x la.Vector) (float64, la.Vector) {
	n := len(x)
	sum := 0.0
	for _, xi := range x {
		sum += xi
	}
	f := 0.0
	g := la.NewVector(n)
	for i, xi := range x {
		cross := sum - xi
		f += xi*xi + 0.4*xi*cross
		g[i] = 2*xi + 0.4*(cross+sum-xi)
	}
	return f, g
}

func (s Sargan) IsMinimum(x la.Vector, eps float64) bool { return nearOrigin(x, eps) }

// Powell is the scalable Powell singular function, defined for d a
// multiple of 4, convex, global minimum at the origin.
type Powell struct{ Dims int }

func (p Powell) Size() int                { return p.Dims }
func (p Powell) Name() string             { return "Powell" }
func (p Powell) IsConvex() bool           { return true }
func (p Powell) MinDims() int             { return 4 }
func (p Powell) MaxDims() int             { return 100000 }
func (p Powell) IsValid(x la.Vector) bool { return x.NormInf() < 4 }

func (p Powell) Value(x la.Vector) float64 {
	f, _ := p.ValueGrad(x)
	return f
}

func (p Powell) ValueGrad(x la.Vector) (float64, la.Vector) {
	n := len(x)
	f := 0.0
	g := la.NewVector(n)
	for i := 0; i+3 < n; i += 4 {
		x1, x2, x3, x4 := x[i], x[i+1], x[i+2], x[i+3]
		a := x1 + 10*x2
		b := x3 - x4
		c := x2 - 2*x3
		d := x1 - x4

		f += a*a + 5*b*b + c*c*c*c + 10*d*d*d*d

		g[i] += 2*a + 40*d*d*d
		g[i+1] += 20*a + 4*c*c*c
		g[i+2] += 10*b - 8*c*c*c
		g[i+3] += -10*b - 40*d*d*d
	}
	return f, g
}

func (p Powell) IsMinimum(x la.Vector, eps float64) bool { return nearOrigin(x, eps) }

// Rosenbrock is the classic non-convex "banana" valley, f = sum(100(x_{i+1}
// - x_i^2)^2 + (1-x_i)^2), global minimum at the all-ones vector.
type Rosenbrock struct{ Dims int }

func (r Rosenbrock) Size() int                { return r.Dims }
func (r Rosenbrock) Name() string             { return "Rosenbrock" }
func (r Rosenbrock) IsConvex() bool           { return false }
func (r Rosenbrock) MinDims() int             { return 2 }
func (r Rosenbrock) MaxDims() int             { return 100000 }
func (r Rosenbrock) IsValid(x la.Vector) bool { return x.NormInf() < 10 }

func (r Rosenbrock) Value(x la.Vector) float64 {
	f, _ := r.ValueGrad(x)
	return f
}

func (r Rosenbrock) ValueGrad(x la.Vector) (float64, la.Vector) {
	n := len(x)
	f := 0.0
	g := la.NewVector(n)
	for i := 0; i+1 < n; i++ {
		u := x[i+1] - x[i]*x[i]
		v := 1 - x[i]
		f += 100*u*u + v*v
		g[i] += -400*u*x[i] - 2*v
		g[i+1] += 200 * u
	}
	return f, g
}

func (r Rosenbrock) IsMinimum(x la.Vector, eps float64) bool {
	ones := la.NewVector(len(x))
	ones.Fill(1)
	diff := la.NewVector(len(x))
	la.Add(diff, 1, x, -1, ones)
	return diff.Norm() < eps
}

// Exponential is f = -exp(-0.5 sum(x_i^2)), convex on its declared domain,
// global minimum -1 at the origin.
type Exponential struct{ Dims int }

func (e Exponential) Size() int                { return e.Dims }
func (e Exponential) Name() string             { return "Exponential" }
func (e Exponential) IsConvex() bool           { return true }
func (e Exponential) MinDims() int             { return 1 }
func (e Exponential) MaxDims() int             { return 100000 }
func (e Exponential) IsValid(x la.Vector) bool { return x.Norm() <= 1 }

func (e Exponential) Value(x la.Vector) float64 {
	f, _ := e.ValueGrad(x)
	return f
}

func (e Exponential) ValueGrad(x la.Vector) (float64, la.Vector) {
	n := len(x)
	half := 0.5 * x.Dot(x)
	ex := math.Exp(-half)
	f := -ex
	g := la.NewVector(n)
	for i, xi := range x {
		g[i] = ex * xi
	}
	return f, g
}

func (e Exponential) IsMinimum(x la.Vector, eps float64) bool { return nearOrigin(x, eps) }

// DixonPrice is f = (x_1-1)^2 + sum_{i=2}^n i(2x_i^2-x_{i-1})^2,
// non-convex, global minimum at x_i = 2^(-(2^i-2)/2^i).
type DixonPrice struct{ Dims int }

func (d DixonPrice) Size() int                { return d.Dims }
func (d DixonPrice) Name() string             { return "Dixon-Price" }
func (d DixonPrice) IsConvex() bool           { return false }
func (d DixonPrice) MinDims() int             { return 2 }
func (d DixonPrice) MaxDims() int             { return 100000 }
func (d DixonPrice) IsValid(x la.Vector) bool { return x.NormInf() < 10 }

func (d DixonPrice) Value(x la.Vector) float64 {
	f, _ := d.ValueGrad(x)
	return f
}

func (d DixonPrice) ValueGrad(x la.Vector) (float64, la.Vector) {
	n := len(x)
	g := la.NewVector(n)
	u := x[0] - 1
	f := u * u
	g[0] = 2 * u
	for i := 1; i < n; i++ {
		w := float64(i + 1)
		v := 2*x[i]*x[i] - x[i-1]
		f += w * v * v
		g[i] += w * v * 4 * x[i]
		g[i-1] += w * v * -2
	}
	return f, g
}

func (d DixonPrice) IsMinimum(x la.Vector, eps float64) bool {
	want := la.NewVector(len(x))
	for i := range want {
		exp := -(math.Pow(2, float64(i+1)) - 2) / math.Pow(2, float64(i+1))
		want[i] = math.Pow(2, exp)
	}
	diff := la.NewVector(len(x))
	la.Add(diff, 1, x, -1, want)
	return diff.Norm() < eps
}

// StyblinskiTang is f = 0.5 sum(x_i^4 - 16 x_i^2 + 5 x_i), non-convex,
// global minimum near x_i = -2.903534 for every i.
type StyblinskiTang struct{ Dims int }

func (s StyblinskiTang) Size() int                { return s.Dims }
func (s StyblinskiTang) Name() string             { return "Styblinski-Tang" }
func (s StyblinskiTang) IsConvex() bool           { return false }
func (s StyblinskiTang) MinDims() int             { return 1 }
func (s StyblinskiTang) MaxDims() int             { return 100000 }
func (s StyblinskiTang) IsValid(x la.Vector) bool { return x.NormInf() < 5 }

func (s StyblinskiTang) Value(x la.Vector) float64 {
	f, _ := s.ValueGrad(x)
	return f
}

func (s StyblinskiTang) ValueGrad(x la.Vector) (float64, la.Vector) {
	n := len(x)
	f := 0.0
	g := la.NewVector(n)
	for i, xi := range x {
		xi2 := xi * xi
		f += xi2*xi2 - 16*xi2 + 5*xi
		g[i] = 2*xi*xi2 - 16*xi + 2.5
	}
	return 0.5 * f, g
}

func (s StyblinskiTang) IsMinimum(x la.Vector, eps float64) bool {
	const xmin = -2.903534
	want := la.NewVector(len(x))
	want.Fill(xmin)
	diff := la.NewVector(len(x))
	la.Add(diff, 1, x, -1, want)
	return diff.Norm() < eps
}
