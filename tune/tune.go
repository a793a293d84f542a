// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tune

// Op is the trial objective the tuner minimizes: given one physical value
// per space (in space-argument order), it returns a score (typically the
// final averaged f of a reduced solver run). Non-finite scores are treated
// as +Inf by Tune.
type Op func(values []float64) float64

// Tune evaluates op over the Cartesian product of spaces' current Values(),
// realized as Tune's own nested iteration rather than a separate reified
// composite-space type, since every space already shares the same
// Values()/Refine() surface. It then calls Refine on every
// space with its slice of the best combination found, and repeats until no
// space refines further. Traversal is lexicographic by argument position,
// so repeated calls with the same op and spaces are bit-for-bit
// deterministic.
func Tune(op Op, spaces ...Space) (float64, []float64) {
	if len(spaces) == 0 {
		return op(nil), nil
	}

	var bestScore float64
	var bestArgs []float64
	haveBest := false

	for {
		score, args := sweep(op, spaces)
		if !haveBest || score < bestScore {
			bestScore, bestArgs, haveBest = score, args, true
		}

		anyRefined := false
		for i, s := range spaces {
			if s.Refine(args[i]) {
				anyRefined = true
			}
		}
		if !anyRefined {
			break
		}
	}

	return bestScore, bestArgs
}

// sweep evaluates op over the full Cartesian product of the spaces'
// current Values(), returning the best score and the argument tuple that
// achieved it.
func sweep(op Op, spaces []Space) (float64, []float64) {
	valueLists := make([][]float64, len(spaces))
	for i, s := range spaces {
		valueLists[i] = s.Values()
	}

	best := make([]float64, len(spaces))
	bestScore := positiveInf
	args := make([]float64, len(spaces))

	var recurse func(dim int)
	recurse = func(dim int) {
		if dim == len(spaces) {
			score := op(args)
			if !isFinite(score) {
				score = positiveInf
			}
			if score < bestScore {
				bestScore = score
				copy(best, args)
			}
			return
		}
		for _, v := range valueLists[dim] {
			args[dim] = v
			recurse(dim + 1)
		}
	}
	recurse(0)

	return bestScore, best
}
