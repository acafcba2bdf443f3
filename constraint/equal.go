// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/cpmech/sketch/entity"
	"github.com/cpmech/sketch/expr"
)

// EqualConstraint pins L0.length to k times L1.length.
type EqualConstraint struct {
	l0, l1 *entity.Entity
	k      *expr.Parameter
}

// NewEqual constructs an Equal(L0, L1, k=1) constraint.
func NewEqual(l0, l1 *entity.Entity) *EqualConstraint {
	return newEqual(l0, l1, 1)
}

// NewEqualRatio constructs an Equal(L0, L1, k=factor) constraint, pinning
// L0's length to factor times L1's length instead of the default 1:1
// ratio.
func NewEqualRatio(l0, l1 *entity.Entity, factor float64) *EqualConstraint {
	return newEqual(l0, l1, factor)
}

// newEqual seeds k against the current geometry (priming it for the
// first global solve), then resets it to the caller's requested ratio.
func newEqual(l0, l1 *entity.Entity, factor float64) *EqualConstraint {
	c := &EqualConstraint{l0: l0, l1: l1, k: expr.NewParameter("equal.k", factor)}
	localSatisfy("equal", []*expr.Parameter{c.k}, c.Equations())
	c.k.SetValue(factor)
	return c
}

func (c *EqualConstraint) Type() Type { return TypeEqual }

func (c *EqualConstraint) Parameters() []*expr.Parameter {
	params := append([]*expr.Parameter{}, c.l0.Parameters()...)
	params = append(params, c.l1.Parameters()...)
	return append(params, c.k)
}

func (c *EqualConstraint) Equations() []*expr.Expression {
	return []*expr.Expression{expr.Sub(c.l0.Length(), expr.Mul(expr.Ref(c.k), c.l1.Length()))}
}

func (c *EqualConstraint) Value() *expr.Parameter { return c.k }
func (c *EqualConstraint) Reference() bool         { return false }
