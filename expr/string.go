// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "github.com/cpmech/gosl/io"

var unaryName = map[UnaryOp]string{
	OpNeg: "neg", OpSin: "sin", OpCos: "cos", OpTan: "tan",
	OpAsin: "asin", OpAcos: "acos", OpAtan: "atan",
	OpSqrt: "sqrt", OpSqr: "sqr", OpAbs: "abs", OpSign: "sign",
	OpExp: "exp", OpLn: "ln",
}

var binaryName = map[BinaryOp]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/",
	OpAtan2: "atan2", OpPow: "pow",
}

// String returns an unambiguous debug form of the expression, in the
// house io.Sf formatting style used across the pack instead of raw
// fmt.Sprintf.
func (e *Expression) String() string {
	switch e.kind {
	case kindConstant:
		return io.Sf("%g", e.value)
	case kindParamRef:
		return io.Sf("%s", e.param.Name)
	case kindDrag:
		return io.Sf("drag(%s)", e.param.Name)
	case kindUnary:
		return io.Sf("%s(%s)", unaryName[e.uop], e.a.String())
	case kindBinary:
		if e.bop == OpAtan2 || e.bop == OpPow {
			return io.Sf("%s(%s, %s)", binaryName[e.bop], e.a.String(), e.b.String())
		}
		return io.Sf("(%s %s %s)", e.a.String(), binaryName[e.bop], e.b.String())
	}
	return "?"
}
