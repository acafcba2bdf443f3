// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/cpmech/sketch/entity"
	"github.com/cpmech/sketch/expr"
)

// DiameterConstraint pins a Circle's diameter to a value parameter.
type DiameterConstraint struct {
	e *entity.Entity
	d *expr.Parameter
}

// NewDiameter constructs a Diameter(E, D) constraint. Unlike Length or
// PointsDistance, D is taken as the caller's literal with no local
// satisfy pass seeding it against current geometry first.
func NewDiameter(e *entity.Entity, diameter float64) *DiameterConstraint {
	return &DiameterConstraint{e: e, d: expr.NewParameter("diameter.d", diameter)}
}

func (c *DiameterConstraint) Type() Type { return TypeDiameter }

func (c *DiameterConstraint) Parameters() []*expr.Parameter {
	return append(c.e.Parameters(), c.d)
}

func (c *DiameterConstraint) Equations() []*expr.Expression {
	return []*expr.Expression{expr.Sub(expr.Mul(expr.Const(2), c.e.RadiusExpr()), expr.Ref(c.d))}
}

func (c *DiameterConstraint) Value() *expr.Parameter { return c.d }
func (c *DiameterConstraint) Reference() bool         { return false }
