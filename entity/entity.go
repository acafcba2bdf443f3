// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package entity implements the geometric objects (points, lines,
// circles) that own parameters and expose parameterized positions,
// tangents, lengths and radii to the constraint layer.
//
// Entities are modeled as a single tagged variant with a dispatch-by-kind
// implementation instead of an interface-per-kind hierarchy, following
// the tagged-variant-plus-allocator idiom of mdl/solid.Model/New(name).
// Capabilities that do not apply to a given kind (e.g. Radius on a
// Line) are programmer errors and panic via gosl/chk.Panic, exactly as
// gofem's element/model constructors do for unknown configuration.
package entity

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/sketch/expr"
)

// Kind tags which geometric variant an Entity is.
type Kind int

const (
	KindPoint Kind = iota
	KindLine
	KindCircle
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	}
	return "unknown"
}

// Entity is a tagged-variant geometric object: Point, Line or Circle.
type Entity struct {
	Kind Kind

	// Point fields (also used as Line.Source/Target and Circle.Center)
	X, Y, Z *expr.Parameter

	// Line fields
	Source, Target *Entity

	// Circle fields
	Center *Entity
	Radius *expr.Parameter
}

// NewPoint creates a Point entity owning three fresh parameters.
func NewPoint(name string, x, y, z float64) *Entity {
	return &Entity{
		Kind: KindPoint,
		X:    expr.NewParameter(name+".x", x),
		Y:    expr.NewParameter(name+".y", y),
		Z:    expr.NewParameter(name+".z", z),
	}
}

// NewLine creates a Line entity between two (owned-by-reference) Points.
func NewLine(source, target *Entity) *Entity {
	mustKind(source, KindPoint, "NewLine: source")
	mustKind(target, KindPoint, "NewLine: target")
	return &Entity{Kind: KindLine, Source: source, Target: target}
}

// NewCircle creates a Circle entity with a center Point and a radius parameter.
func NewCircle(name string, center *Entity, radius float64) *Entity {
	mustKind(center, KindPoint, "NewCircle: center")
	return &Entity{
		Kind:   KindCircle,
		Center: center,
		Radius: expr.NewParameter(name+".r", radius),
	}
}

func mustKind(e *Entity, want Kind, ctx string) {
	if e.Kind != want {
		chk.Panic("%s: expected a %v entity, got %v", ctx, want, e.Kind)
	}
}

// Parameters returns the parameters this entity owns (not sub-entities'
// parameters, except for Line/Circle which own their Source/Target/Center
// Points by reference and therefore report those points' parameters too).
func (e *Entity) Parameters() []*expr.Parameter {
	switch e.Kind {
	case KindPoint:
		return []*expr.Parameter{e.X, e.Y, e.Z}
	case KindLine:
		out := e.Source.Parameters()
		return append(out, e.Target.Parameters()...)
	case KindCircle:
		out := e.Center.Parameters()
		return append(out, e.Radius)
	}
	chk.Panic("Parameters: unknown entity kind %v", e.Kind)
	return nil
}

// Position returns this Point's (x,y,z) as a symbolic vector. Valid only
// for KindPoint; use PointOn for Line/Circle.
func (e *Entity) Position() expr.Vec3 {
	mustKind(e, KindPoint, "Position")
	return expr.Vec3{X: expr.Ref(e.X), Y: expr.Ref(e.Y), Z: expr.Ref(e.Z)}
}

// PointOn returns the symbolic position at curve parameter t.
//   - Point: ignores t, returns its own position.
//   - Line: source + t*(target-source).
//   - Circle: center + r*(cos 2*pi*t, sin 2*pi*t, 0).
func (e *Entity) PointOn(t *expr.Expression) expr.Vec3 {
	switch e.Kind {
	case KindPoint:
		return e.Position()
	case KindLine:
		src, tgt := e.Source.Position(), e.Target.Position()
		return src.Add(tgt.Sub(src).Scale(t))
	case KindCircle:
		c := e.Center.Position()
		r := expr.Ref(e.Radius)
		two_pi_t := expr.Mul(expr.Const(2*math.Pi), t)
		offset := expr.Vec3{
			X: expr.Mul(r, expr.Cos(two_pi_t)),
			Y: expr.Mul(r, expr.Sin(two_pi_t)),
			Z: expr.Const(0),
		}
		return c.Add(offset)
	}
	chk.Panic("PointOn: unknown entity kind %v", e.Kind)
	return expr.Vec3{}
}

// TangentAt returns the symbolic derivative of PointOn wrt t.
//   - Line: target - source (constant in t).
//   - Circle: d/dt of the parameterization.
//   - Point: a programmer error (points have no tangent).
func (e *Entity) TangentAt(t *expr.Expression) expr.Vec3 {
	switch e.Kind {
	case KindLine:
		src, tgt := e.Source.Position(), e.Target.Position()
		return tgt.Sub(src)
	case KindCircle:
		r := expr.Ref(e.Radius)
		two_pi_t := expr.Mul(expr.Const(2*math.Pi), t)
		dtdt := expr.Const(2 * math.Pi)
		return expr.Vec3{
			X: expr.Mul(expr.Neg(expr.Mul(r, expr.Sin(two_pi_t))), dtdt),
			Y: expr.Mul(expr.Mul(r, expr.Cos(two_pi_t)), dtdt),
			Z: expr.Const(0),
		}
	}
	chk.Panic("TangentAt: entity kind %v has no tangent", e.Kind)
	return expr.Vec3{}
}

// Length returns the symbolic length of a Line (distance source-target)
// or the circumference of a Circle (2*pi*r). A programmer error for Point.
func (e *Entity) Length() *expr.Expression {
	switch e.Kind {
	case KindLine:
		src, tgt := e.Source.Position(), e.Target.Position()
		return tgt.Sub(src).Magnitude()
	case KindCircle:
		return expr.Mul(expr.Const(2*math.Pi), expr.Ref(e.Radius))
	}
	chk.Panic("Length: entity kind %v has no length", e.Kind)
	return nil
}

// RadiusExpr returns the symbolic radius of a Circle. A programmer error
// for Point/Line.
func (e *Entity) RadiusExpr() *expr.Expression {
	if e.Kind != KindCircle {
		chk.Panic("RadiusExpr: entity kind %v has no radius", e.Kind)
	}
	return expr.Ref(e.Radius)
}

// DragTo produces residual expressions Drag(p_i) - target_i for each
// coordinate of the entity's own driving Point (itself for a Point,
// the center for a Circle). A programmer error for Line.
func (e *Entity) DragTo(target [3]float64) []*expr.Expression {
	var p *Entity
	switch e.Kind {
	case KindPoint:
		p = e
	case KindCircle:
		p = e.Center
	default:
		chk.Panic("DragTo: entity kind %v cannot be dragged", e.Kind)
	}
	return []*expr.Expression{
		expr.Sub(expr.Drag(p.X), expr.Const(target[0])),
		expr.Sub(expr.Drag(p.Y), expr.Const(target[1])),
		expr.Sub(expr.Drag(p.Z), expr.Const(target[2])),
	}
}
