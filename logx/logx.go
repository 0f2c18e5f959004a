// Copyright (c) 2026, The Padkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides a simple but effective logging system based on
// log/slog with a user-settable verbosity level and colored level tags.
// Library code logs through the standard slog default logger; programs
// call [Init] (or set their own handler) to control formatting.
package logx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity level that the user has selected.
// Only messages at or above this level are printed by [Handler].
// It defaults to [slog.LevelInfo].
var UserLevel = slog.LevelInfo

// Init sets the default slog logger to a [Handler] writing to the
// given writer. Programs typically call this once at startup.
func Init(w io.Writer) {
	slog.SetDefault(slog.New(NewHandler(w)))
}

// Handler is a [slog.Handler] that prints compact, optionally colored
// lines without timestamps, gated on [UserLevel].
type Handler struct {
	mu     *sync.Mutex
	w      io.Writer
	out    *termenv.Output
	attrs  []slog.Attr
	groups []string
}

// NewHandler returns a new [Handler] writing to the given writer.
func NewHandler(w io.Writer) *Handler {
	return &Handler{
		mu:  &sync.Mutex{},
		w:   w,
		out: termenv.NewOutput(w),
	}
}

// Enabled reports whether the given level is at or above [UserLevel].
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

// levelColor returns the termenv color used for the given level tag.
func (h *Handler) levelColor(level slog.Level) termenv.Color {
	p := h.out.ColorProfile()
	switch {
	case level >= slog.LevelError:
		return p.Color("1") // red
	case level >= slog.LevelWarn:
		return p.Color("3") // yellow
	case level >= slog.LevelInfo:
		return p.Color("4") // blue
	default:
		return p.Color("8") // gray
	}
}

// Handle formats and writes the given record.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	b := &bytes.Buffer{}
	tag := h.out.String(r.Level.String()).Foreground(h.levelColor(r.Level))
	fmt.Fprintf(b, "%s %s", tag, r.Message)
	for _, a := range h.attrs {
		fmt.Fprintf(b, " %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(b, a)
		return true
	})
	b.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(b.Bytes())
	return err
}

func (h *Handler) appendAttr(b *bytes.Buffer, a slog.Attr) {
	key := a.Key
	for i := len(h.groups) - 1; i >= 0; i-- {
		key = h.groups[i] + "." + key
	}
	fmt.Fprintf(b, " %s=%v", key, a.Value)
}

// WithAttrs returns a new Handler with the given attributes added,
// with any open group names already folded into the attribute keys.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		for i := len(h.groups) - 1; i >= 0; i-- {
			a.Key = h.groups[i] + "." + a.Key
		}
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

// WithGroup returns a new Handler with the given group name added.
func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}
