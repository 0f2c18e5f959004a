// Copyright (c) 2026, The Padkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect(t *testing.T) {
	r := R(10, 20, 100, 50)
	assert.True(t, r.IsValid())
	assert.Equal(t, float32(110), r.Right())
	assert.Equal(t, float32(70), r.Bottom())
	assert.Equal(t, Vec2(60, 45), r.Center())
	assert.Equal(t, Vec2(100, 50), r.Size())
	assert.Equal(t, float32(50), r.MinDim())

	assert.True(t, r.ContainsPoint(Vec2(10, 20)))
	assert.True(t, r.ContainsPoint(Vec2(60, 45)))
	assert.False(t, r.ContainsPoint(Vec2(110, 45)))
	assert.False(t, r.ContainsPoint(Vec2(60, 70)))

	assert.False(t, Rect{}.IsValid())
	assert.False(t, R(0, 0, 10, 0).IsValid())
	assert.False(t, R(0, 0, -5, 10).IsValid())
}
