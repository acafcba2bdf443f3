// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eqsys implements the equation system: the parameter/equation
// registry, the substitution pass, the symbolic Jacobian build and the
// damped Gauss-Newton / linear-program step loop.
package eqsys

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/cpmech/sketch/expr"
	"github.com/cpmech/sketch/lp"
)

// Status is the outcome of a Solve call.
type Status int

const (
	StatusOkay Status = iota
	StatusDidntConverge
)

func (s Status) String() string {
	if s == StatusOkay {
		return "OKAY"
	}
	return "DIDNT_CONVERGE"
}

// System holds the source equations/parameters, the post-substitution
// "current" view, the symbolic Jacobian cache, and the numeric buffers
// the Newton loop reuses across iterations.
type System struct {
	Config Config

	sourceEquations []*expr.Expression
	sourceParams    []*expr.Parameter

	currentEquations []*expr.Expression
	currentParams    []*expr.Parameter
	substitution     *dsu

	jacobian [][]*expr.Expression // [eq][param], built over currentEquations x currentParams

	// numeric buffers, sized to len(currentEquations) x len(currentParams)
	A   [][]float64
	B   []float64
	X   []float64
	AAT [][]float64
	Z   []float64

	dirty bool

	// CountedSteps is the number of Newton iterations the most recent
	// Solve call actually performed, set on both convergence and
	// exhaustion.
	CountedSteps int
}

// New creates an empty equation system with default configuration.
func New() *System {
	return &System{
		Config:       DefaultConfig(),
		substitution: newDSU(),
		dirty:        true,
	}
}

// AddEquation appends a residual expression to the source list.
func (s *System) AddEquation(e *expr.Expression) {
	s.sourceEquations = append(s.sourceEquations, e)
	s.dirty = true
}

// RemoveEquation removes e (by identity) from the source list. Removing
// an equation that was never added is a programmer error.
func (s *System) RemoveEquation(e *expr.Expression) {
	for i, se := range s.sourceEquations {
		if se == e {
			s.sourceEquations = append(s.sourceEquations[:i], s.sourceEquations[i+1:]...)
			s.dirty = true
			return
		}
	}
	panic("eqsys: RemoveEquation: equation not found")
}

// AddParameter appends p to the source list unless an identical (by
// identity) parameter is already present.
func (s *System) AddParameter(p *expr.Parameter) {
	for _, sp := range s.sourceParams {
		if sp == p {
			return
		}
	}
	s.sourceParams = append(s.sourceParams, p)
	s.dirty = true
}

// RemoveParameter removes p (by identity) from the source list.
// Removing a parameter that was never added is a programmer error.
func (s *System) RemoveParameter(p *expr.Parameter) {
	for i, sp := range s.sourceParams {
		if sp == p {
			s.sourceParams = append(s.sourceParams[:i], s.sourceParams[i+1:]...)
			s.dirty = true
			return
		}
	}
	panic("eqsys: RemoveParameter: parameter not found")
}

// Clear drops all source equations and parameters.
func (s *System) Clear() {
	s.sourceEquations = nil
	s.sourceParams = nil
	s.dirty = true
}

// NumEquations and NumParameters report the source-list sizes, mostly
// useful for tests and diagnostics.
func (s *System) NumEquations() int { return len(s.sourceEquations) }
func (s *System) NumParameters() int { return len(s.sourceParams) }

// updateDirty rebuilds current equations/parameters, the substitution
// map, the symbolic Jacobian and the numeric buffers, if and only if the
// system is dirty. Clears the dirty flag on return.
func (s *System) updateDirty() {
	if !s.dirty {
		return
	}
	s.substitution.reset()
	s.runSubstitutionPass()
	s.buildJacobian()
	s.allocateBuffers()
	s.dirty = false
}

// runSubstitutionPass scans the source equations for the substitution
// form a-b=0 (within substitutionEps) and unions the two parameters,
// eliminating the retired one from currentParams and rewriting it out
// of every remaining equation. See DESIGN.md for the tie-break on
// which of a/b is retired.
func (s *System) runSubstitutionPass() {
	kept := make([]*expr.Expression, 0, len(s.sourceEquations))
	for _, eq := range s.sourceEquations {
		pa, pb, ok := eq.IsSubstitutionForm()
		if !ok {
			kept = append(kept, eq)
			continue
		}
		if math.Abs(pa.Value()-pb.Value()) >= substitutionEps {
			kept = append(kept, eq)
			continue
		}
		if _, merged := s.substitution.union(pa, pb); !merged {
			// already unified by an earlier equation: this one is
			// redundant and can be dropped.
			continue
		}
		// eq ~ a == b: drop it, its content is now carried by the DSU.
	}

	// rewrite every kept equation so no retired parameter remains.
	rewritten := make([]*expr.Expression, len(kept))
	for i, eq := range kept {
		rewritten[i] = s.rewrite(eq)
	}
	s.currentEquations = rewritten

	s.currentParams = s.currentParams[:0]
	for _, p := range s.sourceParams {
		if !s.substitution.retired(p) {
			s.currentParams = append(s.currentParams, p)
		}
	}
}

// rewrite substitutes every retired parameter reachable from eq with its
// DSU representative.
func (s *System) rewrite(eq *expr.Expression) *expr.Expression {
	for _, p := range s.sourceParams {
		if s.substitution.retired(p) {
			rep := s.substitution.find(p)
			eq = eq.Substitute(p, rep)
		}
	}
	return eq
}

// backSubstitute copies every retired parameter's value from its
// representative.
func (s *System) backSubstitute() {
	for _, p := range s.sourceParams {
		if s.substitution.retired(p) {
			p.SetValue(s.substitution.find(p).Value())
		}
	}
}

func (s *System) buildJacobian() {
	s.jacobian = make([][]*expr.Expression, len(s.currentEquations))
	for i, eq := range s.currentEquations {
		row := make([]*expr.Expression, len(s.currentParams))
		for j, p := range s.currentParams {
			row[j] = eq.Derivative(p)
		}
		s.jacobian[i] = row
	}
}

func (s *System) allocateBuffers() {
	rows := len(s.currentEquations)
	cols := len(s.currentParams)
	s.A = la.MatAlloc(rows, cols)
	s.B = make([]float64, rows)
	s.X = make([]float64, cols)
	s.AAT = la.MatAlloc(rows, rows)
	s.Z = make([]float64, rows)
}
