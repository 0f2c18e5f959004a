// Copyright (c) 2026, The Padkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	b := &bytes.Buffer{}
	lg := slog.New(NewHandler(b))

	lg.Info("pressed", "widget", "joystick-1")
	out := b.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "pressed")
	assert.Contains(t, out, "widget=joystick-1")
}

func TestHandlerLevelGate(t *testing.T) {
	old := UserLevel
	defer func() { UserLevel = old }()

	b := &bytes.Buffer{}
	h := NewHandler(b)

	UserLevel = slog.LevelWarn
	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))

	UserLevel = slog.LevelDebug
	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))
}

func TestHandlerGroupsAttrs(t *testing.T) {
	b := &bytes.Buffer{}
	h := NewHandler(b).WithAttrs([]slog.Attr{slog.String("pad", "left")})
	lg := slog.New(h.WithGroup("stick"))

	lg.Warn("drift", "x", 0.1)
	out := b.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "pad=left")
	assert.Contains(t, out, "stick.x=0.1")
}
