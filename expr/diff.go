// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// Derivative returns the symbolic partial derivative of e with respect
// to p, simplified by the same peephole combinators used for
// construction. d(Constant)/dp = 0; d(ParamRef q)/dp = 1 if q is p, else
// 0. Product, quotient and chain rules apply to every unary/binary op.
func (e *Expression) Derivative(p *Parameter) *Expression {
	switch e.kind {
	case kindConstant:
		return Const(0)
	case kindParamRef, kindDrag:
		if e.param.Same(p) {
			return Const(1)
		}
		return Const(0)
	case kindUnary:
		return e.derivUnary(p)
	case kindBinary:
		return e.derivBinary(p)
	}
	panic("expr: unreachable node kind")
}

func (e *Expression) derivUnary(p *Parameter) *Expression {
	x := e.a
	dx := x.Derivative(p)
	switch e.uop {
	case OpNeg:
		return Neg(dx)
	case OpSin:
		return Mul(Cos(x), dx)
	case OpCos:
		return Neg(Mul(Sin(x), dx))
	case OpTan:
		return Mul(Add(Const(1), Sqr(Tan(x))), dx)
	case OpAsin:
		return Mul(Div(Const(1), Sqrt(Sub(Const(1), Sqr(x)))), dx)
	case OpAcos:
		return Mul(Neg(Div(Const(1), Sqrt(Sub(Const(1), Sqr(x))))), dx)
	case OpAtan:
		return Mul(Div(Const(1), Add(Const(1), Sqr(x))), dx)
	case OpSqrt:
		return Mul(Div(Const(1), Mul(Const(2), Sqrt(x))), dx)
	case OpSqr:
		return Mul(Mul(Const(2), x), dx)
	case OpAbs:
		return Mul(Sign(x), dx)
	case OpSign:
		return Const(0)
	case OpExp:
		return Mul(Exp(x), dx)
	case OpLn:
		return Mul(Div(Const(1), x), dx)
	}
	panic("expr: unreachable unary op")
}

func (e *Expression) derivBinary(p *Parameter) *Expression {
	x, y := e.a, e.b
	dx, dy := x.Derivative(p), y.Derivative(p)
	switch e.bop {
	case OpAdd:
		return Add(dx, dy)
	case OpSub:
		return Sub(dx, dy)
	case OpMul:
		return Add(Mul(dx, y), Mul(x, dy))
	case OpDiv:
		// d(x/y) = (dx*y - x*dy) / y^2
		return Div(Sub(Mul(dx, y), Mul(x, dy)), Sqr(y))
	case OpAtan2:
		// d(atan2(x,y)) = (y*dx - x*dy) / (x^2+y^2)
		return Div(Sub(Mul(y, dx), Mul(x, dy)), Add(Sqr(x), Sqr(y)))
	case OpPow:
		// general case: d(x^y) = x^y * (dy*ln(x) + y*dx/x)
		return Mul(Pow(x, y), Add(Mul(dy, Ln(x)), Mul(y, Div(dx, x))))
	}
	panic("expr: unreachable binary op")
}
