// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// Vec3 is an ordered (x, y, z) triple of expression references,
// supporting componentwise addition/subtraction and a scalar magnitude.
type Vec3 struct {
	X, Y, Z *Expression
}

// NewVec3 builds a vector from three expressions.
func NewVec3(x, y, z *Expression) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// ZeroVec3 builds the (0,0,0) vector.
func ZeroVec3() Vec3 { return Vec3{X: Const(0), Y: Const(0), Z: Const(0)} }

// Add returns the componentwise sum v+w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{Add(v.X, w.X), Add(v.Y, w.Y), Add(v.Z, w.Z)}
}

// Sub returns the componentwise difference v−w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{Sub(v.X, w.X), Sub(v.Y, w.Y), Sub(v.Z, w.Z)}
}

// Scale returns the componentwise product of v and a scalar expression.
func (v Vec3) Scale(s *Expression) Vec3 {
	return Vec3{Mul(v.X, s), Mul(v.Y, s), Mul(v.Z, s)}
}

// Magnitude returns sqrt(x^2 + y^2 + z^2).
func (v Vec3) Magnitude() *Expression {
	return Sqrt(Add(Add(Sqr(v.X), Sqr(v.Y)), Sqr(v.Z)))
}
