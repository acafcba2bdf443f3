// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqsys

// Config carries the equation system's solver tuning knobs. It is a
// plain struct rather than a JSON-tagged one like
// inp.FuncData/inp.Simulation: sketches have no on-disk format, and the
// same exclusion is carried here for solver configuration.
type Config struct {
	// MaxSteps bounds the Newton loop; default 20.
	MaxSteps int

	// DragSteps is the number of initial iterations during which drag
	// residuals are included before they are suppressed; default 3.
	DragSteps int

	// RevertWhenNotConverged restores the pre-solve parameter snapshot
	// when the loop exhausts without converging; default true.
	RevertWhenNotConverged bool

	// UseLinearProgram selects the L1/linear-program step strategy
	// instead of the default damped Gauss-Newton least squares; default
	// false.
	UseLinearProgram bool
}

// DefaultConfig returns the equation system's documented defaults.
func DefaultConfig() Config {
	return Config{
		MaxSteps:               20,
		DragSteps:              3,
		RevertWhenNotConverged: true,
		UseLinearProgram:       false,
	}
}

// convergenceEps is the residual-norm tolerance (ε=1e-10) used by the
// Newton convergence test.
const convergenceEps = 1e-10

// rankEps is the numerical-rank threshold (ε=1e-10) used by test_rank
// and by the Gaussian-elimination pivot test.
const rankEps = 1e-10

// substitutionEps is the tolerance within which two parameter values are
// considered equal for the purpose of the substitution pass.
const substitutionEps = 1e-9
