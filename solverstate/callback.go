// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solverstate

// ConfigParam is one (name, value) pair identifying a hyper-parameter
// currently in effect, passed to the user-log callback alongside the state.
type ConfigParam struct {
	Name  string
	Value float64
}

// Callback is the user-log hook: invoked once per iteration (batch) or
// once per epoch (stochastic). Returning false requests early termination,
// translated by the solver into Status = UserStop.
type Callback func(s State, config []ConfigParam) bool

// AlwaysContinue is the default callback: never requests termination.
func AlwaysContinue(s State, config []ConfigParam) bool {
	return true
}
