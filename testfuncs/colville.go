// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testfuncs

import "github.com/numgo/optcore/la"

// Colville is the fixed 4D Colville function, non-convex, global minimum
// at (1,1,1,1).
type Colville struct{}

func (Colville) Size() int                { return 4 }
func (Colville) Name() string             { return "Colville" }
func (Colville) IsConvex() bool           { return false }
func (Colville) MinDims() int             { return 4 }
func (Colville) MaxDims() int             { return 4 }
func (Colville) IsValid(x la.Vector) bool {
	for _, v := range x {
		if !(-10.0 < v && v < 10.0) {
			return false
		}
	}
	return true
}

func (Colville) Value(x la.Vector) float64 {
	f, _ := Colville{}.ValueGrad(x)
	return f
}

func (Colville) ValueGrad(x la.Vector) (float64, la.Vector) {
	x1, x2, x3, x4 := x[0], x[1], x[2], x[3]

	t1 := x1*x1 - x2
	t2 := x1 - 1
	t3 := x3 - 1
	t4 := x3*x3 - x4
	t5 := x2 - 1
	t6 := x4 - 1

	f := 100*t1*t1 + t2*t2 + 90*t4*t4 + t3*t3 +
		10.1*(t5*t5+t6*t6) + 19.8*t5*t6

	g := la.NewVector(4)
	g[0] = 400*t1*x1 + 2*t2
	g[1] = -200*t1 + 20.2*t5 + 19.8*t6
	g[2] = 360*t4*x3 + 2*t3
	g[3] = -180*t4 + 20.2*t6 + 19.8*t5
	return f, g
}

func (Colville) IsMinimum(x la.Vector, eps float64) bool {
	return closeToAny(x, []la.Vector{{1, 1, 1, 1}}, eps)
}
