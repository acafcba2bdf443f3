// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package expr implements the symbolic expression graph used by the
// constraint solver: parameters, scalar expressions, and 3-vectors of
// expressions, with evaluation, differentiation, substitution and
// peephole simplification.
package expr

// Parameter is a named mutable scalar unknown. Two parameters are equal
// iff they are the same object; Name is diagnostic only and several
// parameters may share a name.
type Parameter struct {
	Name     string // diagnostic name
	value    float64
	dragging bool        // transient flag set while this parameter is the target of a drag
	ref      *Expression // cached ParamRef leaf bound to this parameter
}

// NewParameter creates a new named parameter with an initial value.
func NewParameter(name string, value float64) *Parameter {
	return &Parameter{Name: name, value: value}
}

// Value returns the parameter's current value.
func (p *Parameter) Value() float64 { return p.value }

// SetValue mutates the parameter's current value in place.
func (p *Parameter) SetValue(v float64) { p.value = v }

// Dragging reports whether this parameter is currently a drag target.
func (p *Parameter) Dragging() bool { return p.dragging }

// SetDragging marks or clears this parameter as a drag target.
func (p *Parameter) SetDragging(d bool) { p.dragging = d }

// Expr returns a cached ParamRef leaf expression bound to this parameter
// by identity. The leaf is allocated once and reused on every call.
func (p *Parameter) Expr() *Expression {
	if p.ref == nil {
		p.ref = &Expression{kind: kindParamRef, param: p}
	}
	return p.ref
}

// Same reports whether two parameters are the identical object.
func (p *Parameter) Same(other *Parameter) bool { return p == other }
