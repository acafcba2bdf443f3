// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package entity

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/sketch/expr"
)

func Test_point_ignores_t(tst *testing.T) {
	chk.PrintTitle("point_ignores_t")
	p := NewPoint("P", 3, 4, 0)
	for _, tv := range []float64{0, 0.5, 1, -3} {
		pos := p.PointOn(expr.Const(tv))
		chk.Scalar(tst, "x", 1e-15, pos.X.Eval(), 3)
		chk.Scalar(tst, "y", 1e-15, pos.Y.Eval(), 4)
	}
}

func Test_line_endpoints(tst *testing.T) {
	chk.PrintTitle("line_endpoints")
	a := NewPoint("A", 0, 0, 0)
	b := NewPoint("B", 10, 0, 0)
	l := NewLine(a, b)

	p0 := l.PointOn(expr.Const(0))
	chk.Scalar(tst, "point_on(0).x", 1e-13, p0.X.Eval(), a.X.Value())
	chk.Scalar(tst, "point_on(0).y", 1e-13, p0.Y.Eval(), a.Y.Value())

	p1 := l.PointOn(expr.Const(1))
	chk.Scalar(tst, "point_on(1).x", 1e-13, p1.X.Eval(), b.X.Value())
	chk.Scalar(tst, "point_on(1).y", 1e-13, p1.Y.Eval(), b.Y.Value())

	chk.Scalar(tst, "length", 1e-13, l.Length().Eval(), 10)
}

func Test_circle_traces_full_revolution(tst *testing.T) {
	chk.PrintTitle("circle_traces_full_revolution")
	center := NewPoint("C", 0, 0, 0)
	c := NewCircle("c1", center, 2.0)

	p0 := c.PointOn(expr.Const(0))
	chk.Scalar(tst, "point_on(0).x", 1e-12, p0.X.Eval(), 2.0)
	chk.Scalar(tst, "point_on(0).y", 1e-12, p0.Y.Eval(), 0.0)

	pQuarter := c.PointOn(expr.Const(0.25))
	chk.Scalar(tst, "point_on(0.25).x", 1e-12, pQuarter.X.Eval(), 0.0)
	chk.Scalar(tst, "point_on(0.25).y", 1e-12, pQuarter.Y.Eval(), 2.0)

	chk.Scalar(tst, "circumference", 1e-12, c.Length().Eval(), 2*math.Pi*2.0)
}

func Test_circle_radius_capability(tst *testing.T) {
	chk.PrintTitle("circle_radius_capability")
	center := NewPoint("C", 0, 0, 0)
	c := NewCircle("c1", center, 3.5)
	chk.Scalar(tst, "radius", 1e-15, c.RadiusExpr().Eval(), 3.5)
}

func Test_point_radius_is_programmer_error(tst *testing.T) {
	chk.PrintTitle("point_radius_is_programmer_error")
	defer func() {
		if r := recover(); r == nil {
			tst.Fatalf("expected panic when asking a Point for its radius")
		}
	}()
	p := NewPoint("P", 0, 0, 0)
	p.RadiusExpr()
}

func Test_drag_to_produces_residuals(tst *testing.T) {
	chk.PrintTitle("drag_to_produces_residuals")
	p := NewPoint("P", 0, 0, 0)
	res := p.DragTo([3]float64{1, 2, 0})
	chk.Scalar(tst, "residual x", 1e-15, res[0].Eval(), -1)
	chk.Scalar(tst, "residual y", 1e-15, res[1].Eval(), -2)
	if !res[0].IsDrag() {
		tst.Fatalf("drag residual must be tagged as drag")
	}
}
