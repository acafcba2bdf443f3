// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/cpmech/sketch/entity"
	"github.com/cpmech/sketch/expr"
)

// MidPointConstraint pins P2 to the midpoint of P0 and P1. It owns a
// value parameter v, fixed at 2 and never re-solved after construction.
type MidPointConstraint struct {
	p0, p1, p2 *entity.Entity
	v          *expr.Parameter
}

// NewMidPoint constructs a MidPoint(P0, P1, P2) constraint.
func NewMidPoint(p0, p1, p2 *entity.Entity) *MidPointConstraint {
	return &MidPointConstraint{p0: p0, p1: p1, p2: p2, v: expr.NewParameter("mid_point.v", 2)}
}

func (c *MidPointConstraint) Type() Type { return TypeMidPoint }

func (c *MidPointConstraint) Parameters() []*expr.Parameter {
	params := append([]*expr.Parameter{}, c.p0.Parameters()...)
	params = append(params, c.p1.Parameters()...)
	params = append(params, c.p2.Parameters()...)
	return append(params, c.v)
}

func (c *MidPointConstraint) Equations() []*expr.Expression {
	a, b, m := c.p0.Position(), c.p1.Position(), c.p2.Position()
	v := expr.Ref(c.v)
	return []*expr.Expression{
		expr.Sub(expr.Add(a.X, b.X), expr.Mul(v, m.X)),
		expr.Sub(expr.Add(a.Y, b.Y), expr.Mul(v, m.Y)),
	}
}

func (c *MidPointConstraint) Value() *expr.Parameter { return c.v }
func (c *MidPointConstraint) Reference() bool         { return false }
