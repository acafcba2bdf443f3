// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/cpmech/sketch/entity"
	"github.com/cpmech/sketch/expr"
)

// CentroidConstraint pins P3 to the centroid of the triangle P0,P1,P2.
// It owns a value parameter v, fixed at 3 and never re-solved.
type CentroidConstraint struct {
	p0, p1, p2, p3 *entity.Entity
	v              *expr.Parameter
}

// NewCentroid constructs a PointCenterTriangle(P0..P3) constraint.
func NewCentroid(p0, p1, p2, p3 *entity.Entity) *CentroidConstraint {
	return &CentroidConstraint{p0: p0, p1: p1, p2: p2, p3: p3, v: expr.NewParameter("centroid.v", 3)}
}

func (c *CentroidConstraint) Type() Type { return TypePointCenterTriangle }

func (c *CentroidConstraint) Parameters() []*expr.Parameter {
	params := append([]*expr.Parameter{}, c.p0.Parameters()...)
	params = append(params, c.p1.Parameters()...)
	params = append(params, c.p2.Parameters()...)
	params = append(params, c.p3.Parameters()...)
	return append(params, c.v)
}

func (c *CentroidConstraint) Equations() []*expr.Expression {
	a, b, d, m := c.p0.Position(), c.p1.Position(), c.p2.Position(), c.p3.Position()
	v := expr.Ref(c.v)
	sumX := expr.Add(expr.Add(a.X, b.X), d.X)
	sumY := expr.Add(expr.Add(a.Y, b.Y), d.Y)
	return []*expr.Expression{
		expr.Sub(sumX, expr.Mul(v, m.X)),
		expr.Sub(sumY, expr.Mul(v, m.Y)),
	}
}

func (c *CentroidConstraint) Value() *expr.Parameter { return c.v }
func (c *CentroidConstraint) Reference() bool         { return false }
