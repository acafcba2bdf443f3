// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/cpmech/sketch/entity"
	"github.com/cpmech/sketch/expr"
)

// HVConstraint pins a segment to be vertical (axis OX pins the x
// coordinates equal) or horizontal (axis OY pins the y coordinates equal).
// It owns no parameters.
type HVConstraint struct {
	p0, p1 *entity.Entity
	axis   Axis
}

// NewHV constructs an HV(P0, P1, axis) constraint.
func NewHV(p0, p1 *entity.Entity, axis Axis) *HVConstraint {
	return &HVConstraint{p0: p0, p1: p1, axis: axis}
}

// NewLineHV constructs an HV(L, axis) constraint using L's endpoints.
func NewLineHV(l *entity.Entity, axis Axis) *HVConstraint {
	return &HVConstraint{p0: l.Source, p1: l.Target, axis: axis}
}

func (c *HVConstraint) Type() Type { return TypeHorizontalVertical }

func (c *HVConstraint) Parameters() []*expr.Parameter {
	return append(c.p0.Parameters(), c.p1.Parameters()...)
}

func (c *HVConstraint) Equations() []*expr.Expression {
	a, b := c.p0.Position(), c.p1.Position()
	if c.axis == AxisOX {
		return []*expr.Expression{expr.Sub(a.X, b.X)}
	}
	return []*expr.Expression{expr.Sub(a.Y, b.Y)}
}
