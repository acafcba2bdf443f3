// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// Substitute returns an expression structurally identical to e except
// every ParamRef/Drag leaf bound to b is replaced by one bound to a.
// Shared nodes that do not mention b are returned unchanged (no new
// allocation); nodes that do are rebuilt.
func (e *Expression) Substitute(b, a *Parameter) *Expression {
	switch e.kind {
	case kindConstant:
		return e
	case kindParamRef:
		if e.param.Same(b) {
			return Ref(a)
		}
		return e
	case kindDrag:
		if e.param.Same(b) {
			return Drag(a)
		}
		return e
	case kindUnary:
		na := e.a.Substitute(b, a)
		if na == e.a {
			return e
		}
		return unary(e.uop, na)
	case kindBinary:
		na := e.a.Substitute(b, a)
		nb := e.b.Substitute(b, a)
		if na == e.a && nb == e.b {
			return e
		}
		return binary(e.bop, na, nb)
	}
	panic("expr: unreachable node kind")
}

// IsSubstitutionForm reports whether e is structurally ParamRef(x) −
// ParamRef(y) (or a commutative/negated equivalent: y−x, −(y−x),
// −(x−y)... all reduce to the same unordered pair), returning the two
// parameters it relates. This is the shape the equation system's
// substitution pass looks for to eliminate a parameter.
func (e *Expression) IsSubstitutionForm() (pa, pb *Parameter, ok bool) {
	if e.kind == kindBinary && e.bop == OpSub {
		if pa := e.a.Param(); pa != nil && e.a.kind == kindParamRef {
			if pb := e.b.Param(); pb != nil && e.b.kind == kindParamRef {
				return pa, pb, true
			}
		}
	}
	if e.kind == kindUnary && e.uop == OpNeg {
		return e.a.IsSubstitutionForm()
	}
	return nil, nil, false
}
