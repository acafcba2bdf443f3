// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/cpmech/sketch/entity"
	"github.com/cpmech/sketch/expr"
)

// direction returns L.point_on(0) - L.point_on(1), the convention used
// for every line-direction residual.
func direction(l *entity.Entity) expr.Vec3 {
	zero, one := expr.Const(0), expr.Const(1)
	return l.PointOn(zero).Sub(l.PointOn(one))
}

// ParallelOption names which of the two angle branches a Parallel
// constraint has settled on.
type ParallelOption int

const (
	ParallelCo ParallelOption = iota
	ParallelAnti
)

// ParallelConstraint forces two lines' directions to agree (co) or
// oppose (anti). It owns no parameters; the option is chosen once at
// construction by comparing residual norms and is not re-evaluated
// until the constraint is rebuilt.
type ParallelConstraint struct {
	l0, l1 *entity.Entity
	option ParallelOption
}

// NewParallel constructs a Parallel(L0, L1) constraint, picking whichever
// of {co, anti} has the smaller residual norm at the lines' current
// orientation.
func NewParallel(l0, l1 *entity.Entity) *ParallelConstraint {
	c := &ParallelConstraint{l0: l0, l1: l1, option: ParallelCo}
	coNorm := residualNorm(c.equationsFor(ParallelCo))
	antiNorm := residualNorm(c.equationsFor(ParallelAnti))
	if antiNorm < coNorm {
		c.option = ParallelAnti
	}
	return c
}

func (c *ParallelConstraint) equationsFor(opt ParallelOption) []*expr.Expression {
	d0, d1 := direction(c.l0), direction(c.l1)
	alpha := angle2d(d0, d1, false)
	if opt == ParallelCo {
		return []*expr.Expression{alpha}
	}
	return []*expr.Expression{expr.Sub(expr.Abs(alpha), piConst())}
}

func (c *ParallelConstraint) Type() Type { return TypeParallel }

func (c *ParallelConstraint) Parameters() []*expr.Parameter {
	return append(c.l0.Parameters(), c.l1.Parameters()...)
}

func (c *ParallelConstraint) Equations() []*expr.Expression {
	return c.equationsFor(c.option)
}

func (c *ParallelConstraint) Option() ParallelOption { return c.option }
