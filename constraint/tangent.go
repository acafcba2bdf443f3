// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/cpmech/sketch/entity"
	"github.com/cpmech/sketch/expr"
)

// TangentOption names which of the two angle branches a Tangent
// constraint has settled on.
type TangentOption int

const (
	TangentCo TangentOption = iota
	TangentAnti
)

// TangentConstraint pins a Line tangent to a Circle at curve parameters
// t0 (on the circle) and t1 (on the line). It always owns both: neither
// is elided when a neighboring PointOn constraint already pins the
// contact point, and no such neighbor is looked for.
type TangentConstraint struct {
	c, l   *entity.Entity
	t0, t1 *expr.Parameter
	option TangentOption
}

// NewTangent constructs a Tangent(C, L) constraint, picking whichever of
// {co, anti} has the smaller residual norm at the current geometry.
func NewTangent(c, l *entity.Entity) *TangentConstraint {
	tc := &TangentConstraint{
		c: c, l: l,
		t0: expr.NewParameter("tangent.t0", 0),
		t1: expr.NewParameter("tangent.t1", 0.5),
	}
	coNorm := residualNorm(tc.equationsFor(TangentCo))
	antiNorm := residualNorm(tc.equationsFor(TangentAnti))
	tc.option = TangentCo
	if antiNorm < coNorm {
		tc.option = TangentAnti
	}
	localSatisfy("tangent", []*expr.Parameter{tc.t0, tc.t1}, tc.Equations())
	return tc
}

func (tc *TangentConstraint) equationsFor(opt TangentOption) []*expr.Expression {
	t0, t1 := expr.Ref(tc.t0), expr.Ref(tc.t1)
	alpha := angle2d(tc.c.TangentAt(t0), tc.l.TangentAt(t1), false)
	var angleResidual *expr.Expression
	if opt == TangentCo {
		angleResidual = alpha
	} else {
		angleResidual = expr.Sub(expr.Abs(alpha), piConst())
	}
	onCircle := tc.c.PointOn(t0)
	onLine := tc.l.PointOn(t1)
	coincidence := onLine.Sub(onCircle)
	return []*expr.Expression{angleResidual, coincidence.X, coincidence.Y}
}

func (tc *TangentConstraint) Type() Type { return TypeTangent }

func (tc *TangentConstraint) Parameters() []*expr.Parameter {
	params := append([]*expr.Parameter{}, tc.c.Parameters()...)
	params = append(params, tc.l.Parameters()...)
	return append(params, tc.t0, tc.t1)
}

func (tc *TangentConstraint) Equations() []*expr.Expression {
	return tc.equationsFor(tc.option)
}

func (tc *TangentConstraint) Option() TangentOption { return tc.option }
