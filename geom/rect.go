// Copyright (c) 2026, The Padkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "fmt"

// Rect is an axis-aligned rectangle in the host's coordinate space,
// given by its top-left corner and its size. It is the snapshot of a
// widget's on-screen bounding box taken at contact-acquire time.
type Rect struct {
	Left   float32
	Top    float32
	Width  float32
	Height float32
}

// R returns a new [Rect] with the given top-left corner and size.
func R(left, top, width, height float32) Rect {
	return Rect{left, top, width, height}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%v, %v, %vx%v)", r.Left, r.Top, r.Width, r.Height)
}

// IsValid returns whether the rectangle has positive size.
func (r Rect) IsValid() bool {
	return r.Width > 0 && r.Height > 0
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.Left + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float32 {
	return r.Top + r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vector2 {
	return Vec2(r.Left+0.5*r.Width, r.Top+0.5*r.Height)
}

// Size returns the size of the rectangle as a [Vector2].
func (r Rect) Size() Vector2 {
	return Vec2(r.Width, r.Height)
}

// MinDim returns the smaller of the width and height.
func (r Rect) MinDim() float32 {
	return Min(r.Width, r.Height)
}

// ContainsPoint returns whether the given point is inside the rectangle.
func (r Rect) ContainsPoint(p Vector2) bool {
	return p.X >= r.Left && p.X < r.Right() && p.Y >= r.Top && p.Y < r.Bottom()
}
