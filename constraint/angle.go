// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"math"

	"github.com/cpmech/sketch/entity"
	"github.com/cpmech/sketch/expr"
)

// AngleConstraint pins the signed angle between two lines' directions to
// a value parameter theta. When |theta| exceeds pi/2 at construction,
// theta is flipped to its supplementary value and L1's direction is
// reversed in the residual, keeping atan2 away from its branch cut.
// Unlike Length or PointsDistance, theta is taken as the caller's
// literal (after the flip) with no local satisfy pass against current
// geometry.
type AngleConstraint struct {
	l0, l1        *entity.Entity
	theta         *expr.Parameter
	supplementary bool
}

// NewAngle constructs an Angle(L0, L1, theta) constraint.
func NewAngle(l0, l1 *entity.Entity, theta float64) *AngleConstraint {
	c := &AngleConstraint{l0: l0, l1: l1, theta: expr.NewParameter("angle.theta", theta)}
	if math.Abs(theta) > math.Pi/2 {
		sign := 1.0
		if theta < 0 {
			sign = -1.0
		}
		c.theta.SetValue(-(sign*math.Pi - theta))
		c.supplementary = true
	}
	return c
}

func (c *AngleConstraint) Type() Type { return TypeAngle }

func (c *AngleConstraint) Parameters() []*expr.Parameter {
	params := append([]*expr.Parameter{}, c.l0.Parameters()...)
	params = append(params, c.l1.Parameters()...)
	return append(params, c.theta)
}

func (c *AngleConstraint) Equations() []*expr.Expression {
	d0 := direction(c.l0)
	d1 := direction(c.l1)
	if c.supplementary {
		d1 = expr.Vec3{X: expr.Neg(d1.X), Y: expr.Neg(d1.Y), Z: expr.Neg(d1.Z)}
	}
	alpha := angle2d(d0, d1, false)
	return []*expr.Expression{expr.Sub(alpha, expr.Ref(c.theta))}
}

func (c *AngleConstraint) Value() *expr.Parameter { return c.theta }
func (c *AngleConstraint) Reference() bool         { return false }
func (c *AngleConstraint) Supplementary() bool     { return c.supplementary }
