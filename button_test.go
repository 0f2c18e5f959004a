// Copyright (c) 2026, The Padkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package padkit

import (
	"testing"

	"github.com/padkit/padkit/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testButton(t *testing.T, opts ButtonOptions) *Button {
	t.Helper()
	if opts.Measure == nil {
		opts.Measure = func() geom.Rect { return geom.R(0, 0, 60, 60) }
	}
	bt, err := NewButton(opts)
	require.NoError(t, err)
	return bt
}

func TestButtonEdges(t *testing.T) {
	presses, releases := 0, 0
	bt := testButton(t, ButtonOptions{
		OnChange:  func() { presses++ },
		OnRelease: func() { releases++ },
	})

	bt.Start(1, geom.Vec2(30, 30))
	assert.True(t, bt.IsPressed())
	assert.Equal(t, 1, presses)

	// moves within the press never re-fire the press edge
	bt.Move(1, geom.Vec2(31, 30))
	bt.Move(1, geom.Vec2(10, 50))
	assert.Equal(t, 1, presses)

	bt.End(1)
	assert.False(t, bt.IsPressed())
	assert.Equal(t, 1, releases)
}

func TestButtonRedundantAcquire(t *testing.T) {
	presses := 0
	bt := testButton(t, ButtonOptions{OnChange: func() { presses++ }})

	bt.Start(1, geom.Vec2(30, 30))
	bt.Start(2, geom.Vec2(30, 30))
	assert.Equal(t, 1, presses)
	assert.True(t, bt.IsPressed())

	bt.End(1)
	assert.False(t, bt.IsPressed())
}

func TestButtonReleaseIdempotence(t *testing.T) {
	releases := 0
	bt := testButton(t, ButtonOptions{OnRelease: func() { releases++ }})

	bt.Start(1, geom.Vec2(30, 30))
	bt.End(1)
	bt.End(1)
	assert.Equal(t, 2, releases)
	assert.False(t, bt.IsPressed())
}
