// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/cpmech/sketch/entity"
	"github.com/cpmech/sketch/expr"
)

// OrthogonalConstraint forces two lines' directions to be perpendicular.
// It owns no parameters.
type OrthogonalConstraint struct {
	l0, l1 *entity.Entity
}

// NewOrthogonal constructs an Orthogonal(L0, L1) constraint.
func NewOrthogonal(l0, l1 *entity.Entity) *OrthogonalConstraint {
	return &OrthogonalConstraint{l0: l0, l1: l1}
}

func (c *OrthogonalConstraint) Type() Type { return TypeOrthogonal }

func (c *OrthogonalConstraint) Parameters() []*expr.Parameter {
	return append(c.l0.Parameters(), c.l1.Parameters()...)
}

func (c *OrthogonalConstraint) Equations() []*expr.Expression {
	d0, d1 := direction(c.l0), direction(c.l1)
	dot := expr.Add(expr.Mul(d0.X, d1.X), expr.Mul(d0.Y, d1.Y))
	return []*expr.Expression{dot}
}
