// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tune

// FiniteSpace is an explicit, immutable list of candidate values. It never
// refines: Refine always returns false.
type FiniteSpace struct {
	values []float64
}

// NewFiniteSpace returns a FiniteSpace over the given candidates. The slice
// is copied so later caller mutation cannot affect the space.
func NewFiniteSpace(values []float64) *FiniteSpace {
	v := make([]float64, len(values))
	copy(v, values)
	return &FiniteSpace{values: v}
}

// Values returns the fixed candidate list.
func (f *FiniteSpace) Values() []float64 {
	return f.values
}

// Refine is a no-op for finite spaces: they carry no notion of narrowing.
func (f *FiniteSpace) Refine(best float64) bool {
	return false
}
