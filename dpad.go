// Copyright (c) 2026, The Padkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package padkit

import (
	"fmt"

	"github.com/padkit/padkit/geom"
)

// Direction is the 9-way output of a [Dpad]: center plus the 8
// compass bearings. Exactly one direction is active at a time;
// diagonals are single values, never two simultaneous presses.
type Direction int32

const (
	// DirCenter is the rest direction, reported inside the dead zone.
	DirCenter Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
	DirUpRight
	DirUpLeft
	DirDownRight
	DirDownLeft
)

var directionNames = map[Direction]string{
	DirCenter:    "center",
	DirUp:        "up",
	DirDown:      "down",
	DirLeft:      "left",
	DirRight:     "right",
	DirUpRight:   "up-right",
	DirUpLeft:    "up-left",
	DirDownRight: "down-right",
	DirDownLeft:  "down-left",
}

func (d Direction) String() string {
	if s, ok := directionNames[d]; ok {
		return s
	}
	return fmt.Sprintf("Direction(%d)", int32(d))
}

// directionFor classifies an angle in degrees, in the logical frame
// with 0 pointing right and angles increasing counterclockwise, into
// one of the 8 compass bearings. Sectors are 45 degrees wide and
// centered on the bearings; the upper bound of each sector is
// inclusive, the lower bound exclusive, so exactly 22.5 is still
// right, not up-right.
func directionFor(angle float32) Direction {
	switch {
	case angle > -22.5 && angle <= 22.5:
		return DirRight
	case angle > 22.5 && angle <= 67.5:
		return DirUpRight
	case angle > 67.5 && angle <= 112.5:
		return DirUp
	case angle > 112.5 && angle <= 157.5:
		return DirUpLeft
	case angle > 157.5 || angle <= -157.5:
		return DirLeft
	case angle > -157.5 && angle <= -112.5:
		return DirDownLeft
	case angle > -112.5 && angle <= -67.5:
		return DirDown
	default: // (-67.5, -22.5]
		return DirDownRight
	}
}

// Dpad is a virtual directional pad. It classifies the tracked
// contact's offset from the widget center into a [Direction], with a
// configurable circular dead zone around the center, and fires its
// change callback only on direction transitions.
type Dpad struct {
	WidgetBase

	// DeadZone is the fraction of the widget's half-extent (half the
	// smaller dimension) within which input registers as [DirCenter].
	DeadZone float32

	// register is the dead-zone radius in host units, recomputed at
	// acquire time and on Remeasure from the current anchor.
	register float32

	// dir is the last emitted direction.
	dir Direction

	changed  func(dir Direction)
	released func(dir Direction)
}

// DpadOptions configures a [Dpad].
type DpadOptions struct {
	Options `yaml:",inline"`

	// DeadZone is the dead-zone fraction in [0, 1]; see
	// [Dpad.DeadZone]. Defaults to 0.25.
	DeadZone *float32 `yaml:"dead_zone" toml:"dead_zone"`

	// OnChange is called with the new direction on every direction
	// transition while a contact is tracked.
	OnChange func(dir Direction) `yaml:"-" toml:"-"`

	// OnRelease is called with [DirCenter] whenever the contact is
	// released or canceled.
	OnRelease func(dir Direction) `yaml:"-" toml:"-"`
}

// DefaultDeadZone is the dead-zone fraction used when none is given.
const DefaultDeadZone = float32(0.25)

// NewDpad returns a new [Dpad] for the given options,
// or an error wrapping [ErrConfig] if the configuration is invalid.
func NewDpad(opts DpadOptions) (*Dpad, error) {
	dp := &Dpad{}
	if err := dp.initBase("dpad", opts.Options); err != nil {
		return nil, err
	}
	dp.DeadZone = DefaultDeadZone
	if opts.DeadZone != nil {
		dz := *opts.DeadZone
		if dz < 0 || dz > 1 {
			return nil, errConfigf(dp.Name, "dead zone %v outside [0, 1]", dz)
		}
		dp.DeadZone = dz
	}
	dp.changed = opts.OnChange
	dp.released = opts.OnRelease
	dp.mapContact = dp.mapMove
	dp.resetState = dp.reset
	dp.measured = dp.computeRegister
	return dp, nil
}

// SetOnChange sets the change callback; see [DpadOptions.OnChange].
func (dp *Dpad) SetOnChange(fun func(dir Direction)) {
	dp.changed = fun
}

// SetOnRelease sets the release callback; see [DpadOptions.OnRelease].
func (dp *Dpad) SetOnRelease(fun func(dir Direction)) {
	dp.released = fun
}

// Direction returns the last emitted direction, [DirCenter] at rest.
func (dp *Dpad) Direction() Direction {
	return dp.dir
}

// computeRegister derives the dead-zone radius in host units from the
// current anchor.
func (dp *Dpad) computeRegister() {
	dp.register = 0.5 * dp.anchor.MinDim() * dp.DeadZone
}

// mapMove classifies the contact position: offset from the anchor
// center, rotated into the logical frame, then either center (inside
// the dead zone, boundary inclusive) or the 45-degree sector its angle
// falls in. The change callback fires only on transitions, so repeated
// moves within one sector fire exactly once.
func (dp *Dpad) mapMove(pos geom.Vector2) {
	d := pos.Sub(dp.anchor.Center())
	if dp.Rotation != 0 {
		d = d.Rotate(-geom.DegToRad(dp.Rotation))
	}
	dir := DirCenter
	if d.Length() > dp.register {
		angle := geom.RadToDeg(geom.Atan2(-d.Y, d.X))
		dir = directionFor(angle)
	}
	if dir == dp.dir {
		return
	}
	dp.dir = dir
	dp.trace("direction changed", "direction", dir)
	if dp.changed != nil {
		dp.changed(dir)
	}
}

// reset returns the pad to center and fires the release callback.
func (dp *Dpad) reset() {
	dp.dir = DirCenter
	if dp.released != nil {
		dp.released(DirCenter)
	}
}
