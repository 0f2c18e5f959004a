// Copyright (c) 2026, The Padkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "fmt"

// Vector2 is a 2D vector or point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Set sets this vector's X and Y components.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Add adds the other given vector to this one and returns the result.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vec2(v.X+other.X, v.Y+other.Y)
}

// Sub subtracts the other given vector from this one and returns the result.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vec2(v.X-other.X, v.Y-other.Y)
}

// MulScalar multiplies each component of this vector by the given
// scalar and returns the result.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vec2(v.X*s, v.Y*s)
}

// DivScalar divides each component of this vector by the given scalar
// and returns the result. It does not check for divide by zero.
func (v Vector2) DivScalar(s float32) Vector2 {
	return Vec2(v.X/s, v.Y/s)
}

// Negate returns the vector with each component negated.
func (v Vector2) Negate() Vector2 {
	return Vec2(-v.X, -v.Y)
}

// Length returns the length (magnitude) of this vector.
func (v Vector2) Length() float32 {
	return Hypot(v.X, v.Y)
}

// ClampLength returns this vector with its length clamped to at most max,
// preserving direction. Zero vectors are returned unchanged.
func (v Vector2) ClampLength(max float32) Vector2 {
	l := v.Length()
	if l <= max || l == 0 {
		return v
	}
	return v.MulScalar(max / l)
}

// Rotate returns this vector rotated by the given angle in radians.
// In the screen convention where +Y points down, a positive angle
// rotates visually clockwise, matching CSS transform rotation.
func (v Vector2) Rotate(radians float32) Vector2 {
	sin, cos := Sincos(radians)
	return Vec2(v.X*cos-v.Y*sin, v.X*sin+v.Y*cos)
}
