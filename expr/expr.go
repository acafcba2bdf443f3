// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "math"

// kind tags the variant of an Expression node.
type kind int

const (
	kindConstant kind = iota
	kindParamRef
	kindDrag
	kindUnary
	kindBinary
)

// UnaryOp enumerates the supported unary operators.
type UnaryOp int

const (
	OpNeg UnaryOp = iota
	OpSin
	OpCos
	OpTan
	OpAsin
	OpAcos
	OpAtan
	OpSqrt
	OpSqr
	OpAbs
	OpSign
	OpExp
	OpLn
)

// BinaryOp enumerates the supported binary operators.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpAtan2
	OpPow
)

// Expression is an immutable node of the symbolic expression DAG. Nodes
// are plain heap values: Go's garbage collector already gives the
// cycle-free, shared-ownership semantics the graph requires, so no
// separate arena bookkeeping is needed. Identity is by pointer.
type Expression struct {
	kind  kind
	value float64 // payload for kindConstant
	param *Parameter // payload for kindParamRef / kindDrag

	uop UnaryOp // payload for kindUnary
	bop BinaryOp // payload for kindBinary
	a   *Expression
	b   *Expression // nil unless kindBinary
}

// Eval recursively evaluates the expression against the current value of
// every referenced parameter. Soft numeric errors (log/sqrt of a
// negative number, division by zero, asin/acos out of range) are never
// turned into panics or errors here: IEEE NaN/Inf propagates and the
// outer Newton iteration rejects the step via its convergence test.
func (e *Expression) Eval() float64 {
	switch e.kind {
	case kindConstant:
		return e.value
	case kindParamRef, kindDrag:
		return e.param.Value()
	case kindUnary:
		x := e.a.Eval()
		switch e.uop {
		case OpNeg:
			return -x
		case OpSin:
			return math.Sin(x)
		case OpCos:
			return math.Cos(x)
		case OpTan:
			return math.Tan(x)
		case OpAsin:
			return math.Asin(x)
		case OpAcos:
			return math.Acos(x)
		case OpAtan:
			return math.Atan(x)
		case OpSqrt:
			return math.Sqrt(x)
		case OpSqr:
			return x * x
		case OpAbs:
			return math.Abs(x)
		case OpSign:
			return math.Copysign(1, x)
		case OpExp:
			return math.Exp(x)
		case OpLn:
			return math.Log(x)
		}
	case kindBinary:
		x, y := e.a.Eval(), e.b.Eval()
		switch e.bop {
		case OpAdd:
			return x + y
		case OpSub:
			return x - y
		case OpMul:
			return x * y
		case OpDiv:
			return x / y
		case OpAtan2:
			return math.Atan2(x, y)
		case OpPow:
			return math.Pow(x, y)
		}
	}
	panic("expr: unreachable node kind")
}

// IsDrag reports whether any leaf reachable from this expression is a
// Drag node. An equation built from such an expression is suppressed by
// the equation system once the drag-step window expires.
func (e *Expression) IsDrag() bool {
	switch e.kind {
	case kindDrag:
		return true
	case kindConstant, kindParamRef:
		return false
	case kindUnary:
		return e.a.IsDrag()
	case kindBinary:
		return e.a.IsDrag() || e.b.IsDrag()
	}
	return false
}

// IsConstant reports whether this node is a Constant leaf and, if so,
// returns its value.
func (e *Expression) IsConstant() (float64, bool) {
	if e.kind == kindConstant {
		return e.value, true
	}
	return 0, false
}

// Param returns the parameter referenced by a ParamRef or Drag leaf, and
// nil otherwise.
func (e *Expression) Param() *Parameter {
	if e.kind == kindParamRef || e.kind == kindDrag {
		return e.param
	}
	return nil
}
