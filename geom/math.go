// Copyright (c) 2026, The Padkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the float32 2D geometry used by the padkit
// widget controllers: scalar math, vectors, and anchor rectangles.
package geom

import (
	"math"

	"github.com/chewxy/math32"
)

// These are mostly just wrappers around chewxy/math32, which has
// some optimized implementations.

const (
	// Pi is the float64 circle constant; use with float32 conversion as needed.
	Pi = math.Pi

	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = float32(Pi / 180)

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = float32(180 / Pi)
)

// DegToRad converts a number from degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * DegToRadFactor
}

// RadToDeg converts a number from radians to degrees.
func RadToDeg(radians float32) float32 {
	return radians * RadToDegFactor
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Atan2 returns the arc tangent of y/x, using the signs
// of the two to determine the quadrant of the return value.
func Atan2(y, x float32) float32 {
	return math32.Atan2(y, x)
}

// Hypot returns Sqrt(p*p + q*q), taking care to avoid
// unnecessary overflow and underflow.
func Hypot(p, q float32) float32 {
	return math32.Hypot(p, q)
}

// Sincos returns Sin(x), Cos(x).
func Sincos(x float32) (sin, cos float32) {
	return math32.Sincos(x)
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Round returns the nearest integer, rounding half away from zero.
func Round(x float32) float32 {
	return math32.Round(x)
}

// RoundN rounds x to the given number of decimal places.
func RoundN(x float32, decimals int) float32 {
	p := math32.Pow(10, float32(decimals))
	return math32.Round(x*p) / p
}

// Min returns the smaller of x or y.
func Min(x, y float32) float32 {
	return math32.Min(x, y)
}

// Max returns the larger of x or y.
func Max(x, y float32) float32 {
	return math32.Max(x, y)
}

// Clamp clamps x to the provided closed interval [a, b].
func Clamp(x, a, b float32) float32 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}
