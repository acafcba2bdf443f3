// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/cpmech/sketch/entity"
	"github.com/cpmech/sketch/expr"
)

// DistanceConstraint pins the distance between two points to a value
// parameter. The two points may be given directly, or derived from a
// single Line's endpoints.
type DistanceConstraint struct {
	q0, q1 *entity.Entity
	d      *expr.Parameter
}

// NewPointsDistance constructs a PointsDistance(P0, P1, d) constraint.
func NewPointsDistance(p0, p1 *entity.Entity, dist float64) *DistanceConstraint {
	return newDistance(p0, p1, dist)
}

// NewLineDistance constructs a PointsDistance(L, d) constraint, using L's
// source and target as the two endpoints.
func NewLineDistance(l *entity.Entity, dist float64) *DistanceConstraint {
	return newDistance(l.Source, l.Target, dist)
}

// newDistance seeds d against the current geometry (priming it for the
// first global solve), then resets it to the caller's requested
// setpoint.
func newDistance(q0, q1 *entity.Entity, dist float64) *DistanceConstraint {
	c := &DistanceConstraint{q0: q0, q1: q1, d: expr.NewParameter("distance.d", dist)}
	localSatisfy("points_distance", []*expr.Parameter{c.d}, c.Equations())
	c.d.SetValue(dist)
	return c
}

func (c *DistanceConstraint) Type() Type { return TypePointsDistance }

func (c *DistanceConstraint) Parameters() []*expr.Parameter {
	params := append([]*expr.Parameter{}, c.q0.Parameters()...)
	params = append(params, c.q1.Parameters()...)
	return append(params, c.d)
}

func (c *DistanceConstraint) Equations() []*expr.Expression {
	q0, q1 := c.q0.Position(), c.q1.Position()
	norm := q1.Sub(q0).Magnitude()
	return []*expr.Expression{expr.Sub(norm, expr.Ref(c.d))}
}

func (c *DistanceConstraint) Value() *expr.Parameter { return c.d }
func (c *DistanceConstraint) Reference() bool         { return false }
