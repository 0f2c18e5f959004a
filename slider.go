// Copyright (c) 2026, The Padkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package padkit

import (
	"fmt"

	"github.com/padkit/padkit/geom"
)

// Axes is the sliding direction of a [Slider].
type Axes int32

const (
	// Vertical sliders report 100 at the top edge and 0 at the bottom.
	Vertical Axes = iota

	// Horizontal sliders report 0 at the left edge and 100 at the right.
	Horizontal
)

var axesNames = map[Axes]string{
	Vertical:   "vertical",
	Horizontal: "horizontal",
}

func (a Axes) String() string {
	if s, ok := axesNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Axes(%d)", int32(a))
}

// AxesFromString returns the [Axes] named by the given string
// ("vertical" or "horizontal"); the empty string means [Vertical].
func AxesFromString(s string) (Axes, error) {
	switch s {
	case "", "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	}
	return Vertical, fmt.Errorf("%q is not a valid axis", s)
}

// Slider is a retractable virtual slider: while a contact is tracked
// it reports an integer percentage in [0, 100] along the configured
// axis, and on release it snaps back to 0.
type Slider struct {
	WidgetBase

	// Axis is the sliding direction.
	Axis Axes

	// value is the last emitted percentage.
	value int

	changed  func(value int)
	released func()
}

// SliderOptions configures a [Slider].
type SliderOptions struct {
	Options `yaml:",inline"`

	// Axis is "vertical" (default) or "horizontal".
	Axis string `yaml:"axis" toml:"axis"`

	// OnChange is called with the new percentage whenever the value
	// changes while a contact is tracked.
	OnChange func(value int) `yaml:"-" toml:"-"`

	// OnRelease is called whenever the contact is released or
	// canceled; the value has already snapped back to 0.
	OnRelease func() `yaml:"-" toml:"-"`
}

// NewSlider returns a new [Slider] for the given options,
// or an error wrapping [ErrConfig] if the configuration is invalid.
func NewSlider(opts SliderOptions) (*Slider, error) {
	sr := &Slider{}
	if err := sr.initBase("slider", opts.Options); err != nil {
		return nil, err
	}
	axis, err := AxesFromString(opts.Axis)
	if err != nil {
		return nil, errConfigf(sr.Name, "%v", err)
	}
	sr.Axis = axis
	sr.changed = opts.OnChange
	sr.released = opts.OnRelease
	sr.mapContact = sr.mapMove
	sr.resetState = sr.reset
	return sr, nil
}

// SetOnChange sets the change callback; see [SliderOptions.OnChange].
func (sr *Slider) SetOnChange(fun func(value int)) {
	sr.changed = fun
}

// SetOnRelease sets the release callback; see [SliderOptions.OnRelease].
func (sr *Slider) SetOnRelease(fun func()) {
	sr.released = fun
}

// Value returns the last emitted percentage, 0 at rest.
func (sr *Slider) Value() int {
	return sr.value
}

// mapMove maps the contact position along the axis into [0, 100]:
// vertical runs top = 100 to bottom = 0, horizontal runs left = 0 to
// right = 100, clamped and rounded to the nearest integer.
func (sr *Slider) mapMove(pos geom.Vector2) {
	var v float32
	if sr.Axis == Vertical {
		v = 100 - (pos.Y-sr.anchor.Top)/sr.anchor.Height*100
	} else {
		v = (pos.X - sr.anchor.Left) / sr.anchor.Width * 100
	}
	val := int(geom.Round(geom.Clamp(v, 0, 100)))
	if val == sr.value {
		return
	}
	sr.value = val
	sr.trace("slid", "value", val)
	if sr.changed != nil {
		sr.changed(val)
	}
}

// reset snaps the slider back to 0 and fires the release callback.
func (sr *Slider) reset() {
	sr.value = 0
	if sr.released != nil {
		sr.released()
	}
}
