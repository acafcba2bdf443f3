// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lp

// Disabled is a no-op backend that always reports infeasibility,
// exercising a path where the L1 backend is disabled entirely rather
// than implemented in-process.
type Disabled struct{}

// SolveL1 always reports infeasible; callers leave X at zero.
func (d *Disabled) SolveL1(A [][]float64, B []float64) (X []float64, feasible bool) {
	cols := 0
	if len(A) > 0 {
		cols = len(A[0])
	}
	return make([]float64, cols), false
}
