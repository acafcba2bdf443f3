// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/sketch/entity"
	"github.com/cpmech/sketch/expr"
)

// PointOnConstraint pins a Point onto a curve entity at some parameter t.
// t is a reference-dimension value parameter: Reference() reports true,
// so the sketch lets t float in the global solve, unlike the setpoints
// of the other value constraints, which are held fixed.
type PointOnConstraint struct {
	p *entity.Entity
	e *entity.Entity
	t *expr.Parameter
}

// NewPointOn constructs a PointOn(P, E) constraint. The initial t is
// found by sweeping t in [0,1] in steps of 0.125, locally solving each
// seed, and keeping the one with the smallest residual norm.
func NewPointOn(p, e *entity.Entity) *PointOnConstraint {
	c := &PointOnConstraint{p: p, e: e, t: expr.NewParameter("point_on.t", 0)}

	bestT, bestNorm := 0.0, -1.0
	for _, t0 := range utl.LinSpace(0, 1, 9) { // steps of 0.125 => 9 samples
		c.t.SetValue(t0)
		localSatisfy("point_on", []*expr.Parameter{c.t}, c.equations())
		if n := residualNorm(c.equations()); bestNorm < 0 || n < bestNorm {
			bestNorm, bestT = n, c.t.Value()
		}
	}
	c.t.SetValue(bestT)
	return c
}

func (c *PointOnConstraint) equations() []*expr.Expression {
	pos := c.p.Position()
	on := c.e.PointOn(expr.Ref(c.t))
	return []*expr.Expression{
		expr.Sub(on.X, pos.X),
		expr.Sub(on.Y, pos.Y),
	}
}

func (c *PointOnConstraint) Type() Type { return TypePointOn }

func (c *PointOnConstraint) Parameters() []*expr.Parameter {
	params := append([]*expr.Parameter{}, c.p.Parameters()...)
	params = append(params, c.e.Parameters()...)
	return append(params, c.t)
}

func (c *PointOnConstraint) Equations() []*expr.Expression { return c.equations() }

func (c *PointOnConstraint) Value() *expr.Parameter { return c.t }
func (c *PointOnConstraint) Reference() bool         { return true }
