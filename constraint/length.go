// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/cpmech/sketch/entity"
	"github.com/cpmech/sketch/expr"
)

// LengthConstraint pins an entity's length (a Line's endpoint distance,
// or a Circle's circumference) to a value parameter.
type LengthConstraint struct {
	e *entity.Entity
	l *expr.Parameter
}

// NewLength constructs a Length(E, l) constraint. l is first locally
// solved against the entity's current geometry to seed a reasonable
// initial value, then reset to the caller's requested setpoint: the
// local solve primes the parameter for the first global solve, it
// does not replace what the caller asked for.
func NewLength(e *entity.Entity, length float64) *LengthConstraint {
	c := &LengthConstraint{e: e, l: expr.NewParameter("length.l", length)}
	localSatisfy("length", []*expr.Parameter{c.l}, c.Equations())
	c.l.SetValue(length)
	return c
}

func (c *LengthConstraint) Type() Type { return TypeLength }

func (c *LengthConstraint) Parameters() []*expr.Parameter {
	return append(c.e.Parameters(), c.l)
}

func (c *LengthConstraint) Equations() []*expr.Expression {
	return []*expr.Expression{expr.Sub(c.e.Length(), expr.Ref(c.l))}
}

func (c *LengthConstraint) Value() *expr.Parameter { return c.l }
func (c *LengthConstraint) Reference() bool         { return false }
