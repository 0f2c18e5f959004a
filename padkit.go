// Copyright (c) 2026, The Padkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package padkit implements headless controllers for on-screen game
// input widgets: a virtual joystick, a directional pad, a retractable
// slider, and a push button. The host renders the widgets and feeds
// each controller normalized contact events ([events.ContactStart],
// [events.ContactMove], [events.ContactEnd], [events.ContactCancel]);
// the controller tracks one contact at a time, maps its position into
// the widget's output domain, and fires injected callbacks on changes
// and on release.
package padkit

import (
	"errors"
	"fmt"
	"sync"

	"github.com/padkit/padkit/events"
	"github.com/padkit/padkit/geom"
)

// ErrConfig is wrapped by all construction-time configuration errors.
// A widget either constructs fully or not at all; there is no partial
// failure state.
var ErrConfig = errors.New("invalid configuration")

// MeasureFunc returns a widget's current on-screen bounding box in the
// host coordinate space. It is called fresh at every contact acquire
// and on [WidgetBase.Remeasure], never continuously, to avoid layout
// thrashing mid-gesture.
type MeasureFunc func() geom.Rect

// Widget is the interface shared by all four controllers.
type Widget interface {

	// WidgetName returns the instance name, used to prefix
	// verbose trace lines.
	WidgetName() string

	// HandleEvent dispatches a normalized contact event to the
	// controller's registered listeners.
	HandleEvent(ev *events.Event)

	// Start notifies the controller that a contact touched down at the
	// given position. Ignored if a contact is already being tracked.
	Start(contact int64, pos geom.Vector2)

	// Move notifies the controller that a contact moved. Ignored if
	// idle or if the contact is not the tracked one.
	Move(contact int64, pos geom.Vector2)

	// End notifies the controller that a contact lifted off.
	End(contact int64)

	// Cancel is treated identically to [Widget.End].
	Cancel(contact int64)

	// Bounds returns the widget's current on-screen bounding box from
	// a fresh measurement.
	Bounds() geom.Rect

	// Remeasure refreshes the anchor rectangle and derived travel
	// constants after a host layout change (e.g. viewport resize).
	Remeasure()
}

// Options is the construction-time configuration shared by all
// widgets. Geometry and style fields are pass-through: the controllers
// never interpret them, but a host or scene renderer can. When Measure
// is nil, the static geometry serves as the mount: the anchor
// rectangle is taken from Left/Top/Width/Height.
type Options struct {

	// Name is the instance name, used as the verbose trace prefix.
	// Auto-generated ("joystick-1", "dpad-2", ...) when empty.
	Name string `yaml:"name" toml:"name"`

	// Left and Top anchor the widget on screen.
	Left float32 `yaml:"left" toml:"left"`
	Top  float32 `yaml:"top" toml:"top"`

	// Width and Height are the dimensions of the interactive surface.
	Width  float32 `yaml:"width" toml:"width"`
	Height float32 `yaml:"height" toml:"height"`

	// Rotation is the visual rotation of the widget in degrees.
	// Output is always reported in the unrotated logical frame: the
	// inverse rotation is applied to contact offsets, so a joystick
	// rotated 90 degrees still reports (0, 1) when pushed toward its
	// visual top.
	Rotation float32 `yaml:"rotation" toml:"rotation"`

	// Color and Background are opaque style strings passed through to
	// the host renderer.
	Color      string `yaml:"color" toml:"color"`
	Background string `yaml:"background" toml:"background"`

	// Verbose emits human-readable trace lines for every state
	// transition, prefixed with the widget name.
	Verbose bool `yaml:"verbose" toml:"verbose"`

	// Measure overrides the static geometry as the source of the
	// anchor rectangle, for hosts with dynamic layout.
	Measure MeasureFunc `yaml:"-" toml:"-"`
}

// errConfigf returns a construction error wrapping [ErrConfig],
// prefixed with the widget instance name.
func errConfigf(name, format string, args ...any) error {
	return fmt.Errorf("%w: %s: "+format, append([]any{ErrConfig, name}, args...)...)
}

var (
	widgetCounts   = map[string]int{}
	widgetCountsMu sync.Mutex
)

// nextWidgetName returns an auto-generated instance name for the
// given widget kind.
func nextWidgetName(kind string) string {
	widgetCountsMu.Lock()
	defer widgetCountsMu.Unlock()
	widgetCounts[kind]++
	return fmt.Sprintf("%s-%d", kind, widgetCounts[kind])
}
