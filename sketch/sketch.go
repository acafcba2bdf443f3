// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sketch implements the top-level Sketch handle: the
// identity-keyed entity/constraint/expression registry, the dirty-flag
// driven reassembly of the underlying equation system, and the
// update() reassembly/solve orchestration.
package sketch

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/sketch/constraint"
	"github.com/cpmech/sketch/entity"
	"github.com/cpmech/sketch/eqsys"
	"github.com/cpmech/sketch/expr"
)

// Sketch holds entities, constraints and free-standing expressions and
// keeps an EquationSystem assembled from them in sync. All three
// registries are sets keyed by identity: insertion order is irrelevant.
type Sketch struct {
	system *eqsys.System

	entities     []*entity.Entity
	constraints  []constraint.Constraint
	expressions  []*expr.Expression

	topologyDirty            bool
	constraintsTopologyDirty  bool
	constraintsDirty          bool
	entitiesDirty             bool
	loopsDirty                bool

	suppressSolve bool
}

// New creates an empty sketch with a default-configured equation system.
func New() *Sketch {
	return &Sketch{
		system:                   eqsys.New(),
		topologyDirty:            true,
		constraintsTopologyDirty: true,
		constraintsDirty:         true,
		entitiesDirty:            true,
		loopsDirty:               true,
	}
}

// AddEntity registers e and marks topology dirty.
func (s *Sketch) AddEntity(e *entity.Entity) {
	for _, existing := range s.entities {
		if existing == e {
			return
		}
	}
	s.entities = append(s.entities, e)
	s.topologyDirty = true
	s.entitiesDirty = true
}

// RemoveEntity unregisters e (by identity) and marks topology dirty.
// Removing an entity that was never added is a programmer error.
func (s *Sketch) RemoveEntity(e *entity.Entity) {
	for i, existing := range s.entities {
		if existing == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			s.topologyDirty = true
			s.entitiesDirty = true
			return
		}
	}
	panic("sketch: RemoveEntity: entity not found")
}

// AddConstraint registers c and marks the constraint-topology dirty.
func (s *Sketch) AddConstraint(c constraint.Constraint) {
	for _, existing := range s.constraints {
		if existing == c {
			return
		}
	}
	s.constraints = append(s.constraints, c)
	s.constraintsTopologyDirty = true
	s.constraintsDirty = true
}

// RemoveConstraint unregisters c (by identity) and marks the
// constraint-topology dirty. Removing a constraint that was never added
// is a programmer error.
func (s *Sketch) RemoveConstraint(c constraint.Constraint) {
	for i, existing := range s.constraints {
		if existing == c {
			s.constraints = append(s.constraints[:i], s.constraints[i+1:]...)
			s.constraintsTopologyDirty = true
			s.constraintsDirty = true
			return
		}
	}
	panic("sketch: RemoveConstraint: constraint not found")
}

// AddExpression registers a free-standing residual expression (e.g. a
// drag target) directly, bypassing the constraint layer.
func (s *Sketch) AddExpression(e *expr.Expression) {
	for _, existing := range s.expressions {
		if existing == e {
			return
		}
	}
	s.expressions = append(s.expressions, e)
	s.topologyDirty = true
}

// RemoveExpression unregisters e (by identity). Removing an expression
// that was never added is a programmer error.
func (s *Sketch) RemoveExpression(e *expr.Expression) {
	for i, existing := range s.expressions {
		if existing == e {
			s.expressions = append(s.expressions[:i], s.expressions[i+1:]...)
			s.topologyDirty = true
			return
		}
	}
	panic("sketch: RemoveExpression: expression not found")
}

// AddExpressionVector registers all three components of v as free
// expressions.
func (s *Sketch) AddExpressionVector(v expr.Vec3) {
	s.AddExpression(v.X)
	s.AddExpression(v.Y)
	s.AddExpression(v.Z)
}

// RemoveExpressionVector unregisters all three components of v.
func (s *Sketch) RemoveExpressionVector(v expr.Vec3) {
	s.RemoveExpression(v.X)
	s.RemoveExpression(v.Y)
	s.RemoveExpression(v.Z)
}

// IsUsingLinearProgram reports whether the underlying equation system
// uses the L1/linear-program step strategy.
func (s *Sketch) IsUsingLinearProgram() bool { return s.system.Config.UseLinearProgram }

// UseLinearProgram toggles the L1/linear-program step strategy.
func (s *Sketch) UseLinearProgram(on bool) { s.system.Config.UseLinearProgram = on }

// hasActiveDrag reports whether any registered free expression is a
// drag residual, letting update() step 3 force a solve through a
// suppressed state while a drag is in progress.
func (s *Sketch) hasActiveDrag() bool {
	for _, e := range s.expressions {
		if e.IsDrag() {
			return true
		}
	}
	return false
}

// Update runs the five-step reassembly/solve algorithm and returns the
// iteration count actually performed (0 when the solve was skipped or
// suppressed).
func (s *Sketch) Update() int {
	if s.constraintsDirty || s.entitiesDirty {
		s.suppressSolve = false
	}

	if s.topologyDirty || s.constraintsTopologyDirty {
		s.reassemble()
	}

	steps := 0
	if !s.suppressSolve || s.hasActiveDrag() {
		status := s.system.Solve()
		steps = s.system.CountedSteps
		if status == eqsys.StatusDidntConverge {
			s.suppressSolve = true
			io.Pf("sketch: update: solve did not converge, suppressing further solves\n")
		}
	}

	s.topologyDirty = false
	s.constraintsTopologyDirty = false
	s.constraintsDirty = false
	s.entitiesDirty = false
	s.loopsDirty = false
	return steps
}

// reassemble clears the equation system and rebuilds it from scratch:
// every free expression as an equation, every entity's parameters, every
// constraint's parameters, and every constraint's residuals.
func (s *Sketch) reassemble() {
	s.system.Clear()

	for _, e := range s.expressions {
		s.system.AddEquation(e)
	}

	for _, e := range s.entities {
		for _, p := range e.Parameters() {
			s.system.AddParameter(p)
		}
	}

	for _, c := range s.constraints {
		for _, p := range freeParameters(c) {
			s.system.AddParameter(p)
		}
		for _, eq := range c.Equations() {
			s.system.AddEquation(eq)
		}
	}
}

// freeParameters returns the subset of c.Parameters() that should
// actually float during the global solve. A value constraint's owned
// dimension (length, distance, angle, k, D, v...) is a user-set target
// held fixed as a constant in its residual, not solved for, unless its
// Reference() flag marks it a reference dimension (PointOn's t is the
// only one in this revision): those behave like ordinary geometric DOF.
func freeParameters(c constraint.Constraint) []*expr.Parameter {
	vc, ok := c.(constraint.ValueConstraint)
	if !ok || vc.Reference() {
		return c.Parameters()
	}
	fixed := vc.Value()
	out := make([]*expr.Parameter, 0, len(c.Parameters()))
	for _, p := range c.Parameters() {
		if p != fixed {
			out = append(out, p)
		}
	}
	return out
}
