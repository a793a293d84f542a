// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minimize is the library's external entry point:
// Batch and Stoch wrap the batch and stochastic solver families behind
// the single call (params, objective, x0) -> state surface, converting
// the internal chk.Panic preconditions of the underlying packages into
// returned errors at this public boundary, the way a library's public
// entry points validate before a panic-prone inner loop runs, leaving
// chk.Panic as an assertion mechanism for bugs internal to this module.
package minimize

import (
	"fmt"

	"github.com/numgo/optcore/batch"
	"github.com/numgo/optcore/fun"
	"github.com/numgo/optcore/la"
	"github.com/numgo/optcore/solverstate"
	"github.com/numgo/optcore/stoch"
)

// BatchParams configures Batch. Algorithm/Variant/LS mirror batch.Params;
// DefaultBatchParams(alg, variant) seeds the algorithm's default ls_init/
// ls_strategy pairing.
type BatchParams = batch.Params

// DefaultBatchParams returns the default parameters for the given batch
// algorithm/variant pair.
func DefaultBatchParams(alg batch.Algorithm, variant batch.CGDVariant) BatchParams {
	return batch.DefaultParams(alg, variant)
}

// StochParams configures Stoch. AutoTune, when true, runs the reduced
// hyper-parameter sweep before the main run.
type StochParams struct {
	stoch.Params
	AutoTune bool
}

// DefaultStochParams returns the default parameters for the given
// stochastic algorithm, with auto-tuning enabled.
func DefaultStochParams(alg stoch.Algorithm) StochParams {
	return StochParams{Params: stoch.DefaultParams(alg), AutoTune: true}
}

// Batch runs a batch (deterministic, full-gradient) solver from x0 against
// objective until convergence, iteration exhaustion, line-search failure,
// or the callback requests a stop. A dimension mismatch between x0 and
// objective is a precondition violation, returned as an error rather than
// panicking across this package boundary.
func Batch(params BatchParams, objective fun.ValueOnly, x0 la.Vector, cb solverstate.Callback) (st solverstate.State, err error) {
	if len(x0) != objective.Size() {
		return solverstate.State{}, fmt.Errorf("minimize: Batch: len(x0)=%d, objective.Size()=%d", len(x0), objective.Size())
	}
	defer recoverPanic(&err)

	s := &batch.Solver{Params: params}
	return s.Min(objective, x0, cb)
}

// Stoch runs a stochastic (noisy sub-gradient) solver from x0 against
// objective for params.Epochs epochs of params.EpochSize inner iterations
// each. When params.AutoTune is set, a reduced one-epoch sweep over the
// algorithm's default hyper-parameter grid picks the
// hyper-parameter tuple used for the main run.
func Stoch(params StochParams, objective fun.Objective, x0 la.Vector, cb solverstate.Callback) (st solverstate.State, err error) {
	if len(x0) != objective.Size() {
		return solverstate.State{}, fmt.Errorf("minimize: Stoch: len(x0)=%d, objective.Size()=%d", len(x0), objective.Size())
	}
	defer recoverPanic(&err)

	s := &stoch.Solver{Params: params.Params}
	if params.AutoTune {
		s.Params = s.AutoTune(objective, x0)
	}
	return s.Min(objective, x0, cb)
}

// recoverPanic converts an internal chk.Panic (or any other panic) raised
// during a solver run into an error, so that a bug surfacing as a panic in
// an inner package does not crash a caller that only expects errors at
// this boundary.
func recoverPanic(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("minimize: %v", r)
	}
}
