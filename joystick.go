// Copyright (c) 2026, The Padkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package padkit

import (
	"github.com/padkit/padkit/geom"
)

// Joystick is a virtual analog stick. While a contact is tracked, it
// reports a continuous 2D vector clamped to the unit disc, in the
// widget's unrotated logical frame with "up" positive: pushing the
// thumb to the visual top yields (0, 1) regardless of the configured
// rotation. At rest the output is (0, 0).
type Joystick struct {
	WidgetBase

	// ThumbSize is the diameter of the thumb knob in host units.
	// Half of it is subtracted from the widget radius when computing
	// the maximum travel distance, so the thumb stays inside the well.
	ThumbSize float32

	// travel is the maximum travel radius, recomputed at acquire time
	// and on Remeasure from the current anchor.
	travel float32

	// at is the last emitted output vector.
	at geom.Vector2

	changed  func(x, y float32)
	released func(x, y float32)
}

// JoystickOptions configures a [Joystick].
type JoystickOptions struct {
	Options `yaml:",inline"`

	// ThumbSize is the thumb knob diameter; see [Joystick.ThumbSize].
	// Defaults to a quarter of the smaller widget dimension.
	ThumbSize float32 `yaml:"thumb_size" toml:"thumb_size"`

	// OnChange is called with the mapped (x, y) whenever the output
	// changes while a contact is tracked.
	OnChange func(x, y float32) `yaml:"-" toml:"-"`

	// OnRelease is called with (0, 0) whenever the contact is
	// released or canceled.
	OnRelease func(x, y float32) `yaml:"-" toml:"-"`
}

// NewJoystick returns a new [Joystick] for the given options,
// or an error wrapping [ErrConfig] if the configuration is invalid.
func NewJoystick(opts JoystickOptions) (*Joystick, error) {
	js := &Joystick{}
	if err := js.initBase("joystick", opts.Options); err != nil {
		return nil, err
	}
	if opts.ThumbSize < 0 {
		return nil, errConfigf(js.Name, "negative thumb size %v", opts.ThumbSize)
	}
	js.ThumbSize = opts.ThumbSize
	js.changed = opts.OnChange
	js.released = opts.OnRelease
	js.mapContact = js.mapMove
	js.resetState = js.reset
	js.measured = js.computeTravel
	return js, nil
}

// SetOnChange sets the change callback; see [JoystickOptions.OnChange].
func (js *Joystick) SetOnChange(fun func(x, y float32)) {
	js.changed = fun
}

// SetOnRelease sets the release callback; see [JoystickOptions.OnRelease].
func (js *Joystick) SetOnRelease(fun func(x, y float32)) {
	js.released = fun
}

// At returns the last emitted output vector, (0, 0) at rest.
func (js *Joystick) At() (x, y float32) {
	return js.at.X, js.at.Y
}

// computeTravel derives the maximum travel radius from the current
// anchor: the widget radius minus half the thumb, so the thumb's edge
// reaches the well's edge at full deflection. A thumb as large as the
// widget degenerates to the plain radius.
func (js *Joystick) computeTravel() {
	thumb := js.ThumbSize
	if thumb == 0 {
		thumb = js.anchor.MinDim() * 0.25
	}
	js.travel = 0.5 * (js.anchor.MinDim() - thumb)
	if js.travel <= 0 {
		js.travel = 0.5 * js.anchor.MinDim()
	}
}

// mapMove maps the contact position to the output vector: offset from
// the anchor center, disc-clamped to the travel radius, rotated into
// the logical frame, then normalized with "up" positive and rounded to
// two decimals.
func (js *Joystick) mapMove(pos geom.Vector2) {
	d := pos.Sub(js.anchor.Center())
	d = d.ClampLength(js.travel)
	if js.Rotation != 0 {
		d = d.Rotate(-geom.DegToRad(js.Rotation))
	}
	out := geom.Vec2(geom.RoundN(d.X/js.travel, 2), geom.RoundN(-d.Y/js.travel, 2))
	if out == js.at {
		return
	}
	js.at = out
	js.trace("moved", "x", out.X, "y", out.Y)
	if js.changed != nil {
		js.changed(out.X, out.Y)
	}
}

// reset returns the stick to center and fires the release callback.
func (js *Joystick) reset() {
	js.at = geom.Vector2{}
	if js.released != nil {
		js.released(0, 0)
	}
}
