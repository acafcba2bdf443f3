// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package constraint implements the residual-generating constraint
// model: coincidence, distance, angle, parallelism, orthogonality,
// tangency, point-on-curve, horizontal/vertical, equal-length,
// diameter, midpoint and triangle-centroid constraints.
//
// Every constraint variant implements the common Constraint interface;
// value constraints additionally own a numeric "setpoint" parameter
// that is hidden from the solver unless Reference() is true (PointOn
// is the only reference-dimension constraint in this revision).
package constraint

import (
	"errors"
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/sketch/eqsys"
	"github.com/cpmech/sketch/expr"
)

// Type tags the kind of constraint, following a CONSTRAINT_TYPE
// convention grounded on the named-type registry idiom of
// inp.FuncData (Type string + parameter list).
type Type string

const (
	TypePointOn             Type = "point_on"
	TypePointsCoincident     Type = "points_coincident"
	TypeMidPoint             Type = "mid_point"
	TypePointCenterTriangle  Type = "point_center_triangle"
	TypeParallel             Type = "parallel"
	TypeOrthogonal           Type = "orthogonal"
	TypeLength               Type = "length"
	TypeEqual                Type = "equal"
	TypePointsDistance       Type = "points_distance"
	TypeHorizontalVertical   Type = "horizontal_vertical"
	TypeAngle                Type = "angle"
	TypeDiameter             Type = "diameter"
	TypeTangent              Type = "tangent"
)

// Constraint is the common interface every constraint variant implements.
type Constraint interface {
	Type() Type
	Parameters() []*expr.Parameter
	Equations() []*expr.Expression
}

// ValueConstraint is additionally implemented by constraints that own a
// numeric setpoint parameter (length, distance, angle, diameter, ...).
type ValueConstraint interface {
	Constraint
	Value() *expr.Parameter
	Reference() bool
}

// Axis names the axis used by a horizontal/vertical constraint.
type Axis int

const (
	AxisOX Axis = iota
	AxisOY
)

// angle2d computes atan2(d0.x*d1.y - d0.y*d1.x, d1.x*d0.x + d1.y*d0.y),
// the signed angle between two planar direction vectors (z is ignored).
// When angle360 is true it instead returns pi - atan2(-cross, dot), an
// alternate branch that no constraint in this revision sets (kept
// inert).
func angle2d(d0, d1 expr.Vec3, angle360 bool) *expr.Expression {
	cross := expr.Sub(expr.Mul(d0.X, d1.Y), expr.Mul(d0.Y, d1.X))
	dot := expr.Add(expr.Mul(d1.X, d0.X), expr.Mul(d1.Y, d0.Y))
	if !angle360 {
		return expr.Atan2(cross, dot)
	}
	return expr.Sub(expr.Const(math.Pi), expr.Atan2(expr.Neg(cross), dot))
}

// piConst is the expression-graph constant pi, shared by every
// option-selection residual that needs |alpha| - pi.
func piConst() *expr.Expression { return expr.Const(math.Pi) }

// residualNorm evaluates every residual and sums their absolute values,
// used by option-selection heuristics (Parallel, Tangent) and by local
// satisfaction seeding (PointOn's t-sweep).
func residualNorm(eqs []*expr.Expression) float64 {
	sum := 0.0
	for _, e := range eqs {
		sum += math.Abs(e.Eval())
	}
	return sum
}

// logSwallowed implements a "failures are logged and swallowed"
// failure semantics: the error is printed via io.Pf and not returned to
// the caller.
func logSwallowed(context string, err error) {
	if err != nil {
		io.Pf("sketch: constraint %s: local satisfy did not converge: %v\n", context, err)
	}
}

// localSatisfy runs a scoped EquationSystem containing just the given
// owned parameters and residuals, with revert_when_not_converged=false,
// implementing "local satisfaction": used at construction to settle a
// value constraint's numeric parameter against the entities' current
// (already-fixed) geometry, and by PointOn's t-sweep.
func localSatisfy(context string, params []*expr.Parameter, eqs []*expr.Expression) {
	sys := eqsys.New()
	sys.Config.RevertWhenNotConverged = false
	for _, p := range params {
		sys.AddParameter(p)
	}
	for _, e := range eqs {
		sys.AddEquation(e)
	}
	if status := sys.Solve(); status != eqsys.StatusOkay {
		logSwallowed(context, errNotConverged)
	}
}

var errNotConverged = errors.New("local equation system did not converge")
