// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "math"

// Const builds a Constant leaf.
func Const(v float64) *Expression {
	return &Expression{kind: kindConstant, value: v}
}

// Ref builds (or reuses) the ParamRef leaf bound to p.
func Ref(p *Parameter) *Expression { return p.Expr() }

// Drag builds a residual leaf equal to ParamRef(p) but tagged so the
// equation system can suppress it once the drag-step window expires.
func Drag(p *Parameter) *Expression {
	return &Expression{kind: kindDrag, param: p}
}

func unary(op UnaryOp, x *Expression) *Expression {
	return &Expression{kind: kindUnary, uop: op, a: x}
}

func binary(op BinaryOp, x, y *Expression) *Expression {
	return &Expression{kind: kindBinary, bop: op, a: x, b: y}
}

// foldBinary applies constant folding to a binary node whose operands are both
// Constant, returning (folded, true) if it could fold.
func foldBinary(op BinaryOp, x, y *Expression) (*Expression, bool) {
	cx, okx := x.IsConstant()
	cy, oky := y.IsConstant()
	if !okx || !oky {
		return nil, false
	}
	var v float64
	switch op {
	case OpAdd:
		v = cx + cy
	case OpSub:
		v = cx - cy
	case OpMul:
		v = cx * cy
	case OpDiv:
		v = cx / cy
	case OpAtan2:
		v = math.Atan2(cx, cy)
	case OpPow:
		v = math.Pow(cx, cy)
	}
	return Const(v), true
}

func foldUnary(op UnaryOp, x *Expression) (*Expression, bool) {
	cx, ok := x.IsConstant()
	if !ok {
		return nil, false
	}
	var v float64
	switch op {
	case OpNeg:
		v = -cx
	case OpSin:
		v = math.Sin(cx)
	case OpCos:
		v = math.Cos(cx)
	case OpTan:
		v = math.Tan(cx)
	case OpAsin:
		v = math.Asin(cx)
	case OpAcos:
		v = math.Acos(cx)
	case OpAtan:
		v = math.Atan(cx)
	case OpSqrt:
		v = math.Sqrt(cx)
	case OpSqr:
		v = cx * cx
	case OpAbs:
		v = math.Abs(cx)
	case OpSign:
		v = math.Copysign(1, cx)
	case OpExp:
		v = math.Exp(cx)
	case OpLn:
		v = math.Log(cx)
	}
	return Const(v), true
}

// Add builds x+y with peephole simplification: x+0→x, 0+x→x, constant
// folding when both operands are Constant.
func Add(x, y *Expression) *Expression {
	if v, ok := foldBinary(OpAdd, x, y); ok {
		return v
	}
	if c, ok := y.IsConstant(); ok && c == 0 {
		return x
	}
	if c, ok := x.IsConstant(); ok && c == 0 {
		return y
	}
	return binary(OpAdd, x, y)
}

// Sub builds x−y with peephole simplification: x−0→x, 0−x→−x.
func Sub(x, y *Expression) *Expression {
	if v, ok := foldBinary(OpSub, x, y); ok {
		return v
	}
	if c, ok := y.IsConstant(); ok && c == 0 {
		return x
	}
	if c, ok := x.IsConstant(); ok && c == 0 {
		return Neg(y)
	}
	return binary(OpSub, x, y)
}

// Mul builds x×y with peephole simplification: x·0→0, x·1→x, 1·x→x.
func Mul(x, y *Expression) *Expression {
	if v, ok := foldBinary(OpMul, x, y); ok {
		return v
	}
	if c, ok := y.IsConstant(); ok {
		if c == 0 {
			return Const(0)
		}
		if c == 1 {
			return x
		}
	}
	if c, ok := x.IsConstant(); ok {
		if c == 0 {
			return Const(0)
		}
		if c == 1 {
			return y
		}
	}
	return binary(OpMul, x, y)
}

// Div builds x/y with peephole simplification: x/1→x.
func Div(x, y *Expression) *Expression {
	if v, ok := foldBinary(OpDiv, x, y); ok {
		return v
	}
	if c, ok := y.IsConstant(); ok && c == 1 {
		return x
	}
	return binary(OpDiv, x, y)
}

// Atan2 builds atan2(x, y), folding only when both are Constant.
func Atan2(x, y *Expression) *Expression {
	if v, ok := foldBinary(OpAtan2, x, y); ok {
		return v
	}
	return binary(OpAtan2, x, y)
}

// Pow builds x^y, folding only when both are Constant.
func Pow(x, y *Expression) *Expression {
	if v, ok := foldBinary(OpPow, x, y); ok {
		return v
	}
	return binary(OpPow, x, y)
}

// Neg builds −x with peephole simplification: −(−x)→x.
func Neg(x *Expression) *Expression {
	if v, ok := foldUnary(OpNeg, x); ok {
		return v
	}
	if x.kind == kindUnary && x.uop == OpNeg {
		return x.a
	}
	return unary(OpNeg, x)
}

func simpleUnary(op UnaryOp) func(*Expression) *Expression {
	return func(x *Expression) *Expression {
		if v, ok := foldUnary(op, x); ok {
			return v
		}
		return unary(op, x)
	}
}

var (
	Sin  = simpleUnary(OpSin)
	Cos  = simpleUnary(OpCos)
	Tan  = simpleUnary(OpTan)
	Asin = simpleUnary(OpAsin)
	Acos = simpleUnary(OpAcos)
	Atan = simpleUnary(OpAtan)
	Sqrt = simpleUnary(OpSqrt)
	Sqr  = simpleUnary(OpSqr)
	Abs  = simpleUnary(OpAbs)
	Sign = simpleUnary(OpSign)
	Exp  = simpleUnary(OpExp)
	Ln   = simpleUnary(OpLn)
)
