// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package lp isolates the L1-minimization backend used by the equation
// system's alternative "linear program" step strategy behind a small
// interface, following the Solver/allocators registry idiom of
// fem/solver.go and mdl/solid/model.go (interface + New(name) +
// package-level allocator map). The backend is a scoped per-call
// resource: the equation system constructs a solver value per Solve
// call, uses it for every step of that call and then discards it.
package lp

import "github.com/cpmech/gosl/chk"

// Solver is the contract for an opaque L1 minimizer: given dense A
// (rows x cols) and B (rows), find X (cols) minimizing ||X||_1 subject
// to A.X = B, or report infeasibility.
type Solver interface {
	SolveL1(A [][]float64, B []float64) (X []float64, feasible bool)
}

// allocators holds the available LP backends by name.
var allocators = map[string]func() Solver{
	"simplex":  func() Solver { return new(SimplexL1) },
	"disabled": func() Solver { return new(Disabled) },
}

// New returns a fresh backend instance by name.
func New(name string) Solver {
	allocator, ok := allocators[name]
	if !ok {
		chk.Panic("lp: backend %q is not available\n", name)
	}
	return allocator()
}
