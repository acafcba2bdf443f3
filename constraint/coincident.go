// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/cpmech/sketch/entity"
	"github.com/cpmech/sketch/expr"
)

// CoincidentConstraint pins two Points to the same location. It owns no
// parameters of its own.
type CoincidentConstraint struct {
	p0, p1 *entity.Entity
}

// NewCoincident constructs a PointsCoincident(P0, P1) constraint.
func NewCoincident(p0, p1 *entity.Entity) *CoincidentConstraint {
	return &CoincidentConstraint{p0: p0, p1: p1}
}

func (c *CoincidentConstraint) Type() Type { return TypePointsCoincident }

func (c *CoincidentConstraint) Parameters() []*expr.Parameter {
	return append(c.p0.Parameters(), c.p1.Parameters()...)
}

func (c *CoincidentConstraint) Equations() []*expr.Expression {
	a, b := c.p0.Position(), c.p1.Position()
	return []*expr.Expression{expr.Sub(a.X, b.X), expr.Sub(a.Y, b.Y)}
}
