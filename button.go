// Copyright (c) 2026, The Padkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package padkit

import (
	"github.com/padkit/padkit/geom"
)

// Button is a virtual push button: a binary edge detector with no
// geometry. The press callback fires once when the contact is
// acquired, never again for moves within the same press, and the
// release callback fires on release, the same edge-triggered
// discipline the other controllers enforce on their outputs.
type Button struct {
	WidgetBase

	// pressed is the current binary state.
	pressed bool

	changed  func()
	released func()
}

// ButtonOptions configures a [Button].
type ButtonOptions struct {
	Options `yaml:",inline"`

	// OnChange is called once when the button becomes pressed.
	OnChange func() `yaml:"-" toml:"-"`

	// OnRelease is called whenever the contact is released or canceled.
	OnRelease func() `yaml:"-" toml:"-"`
}

// NewButton returns a new [Button] for the given options,
// or an error wrapping [ErrConfig] if the configuration is invalid.
func NewButton(opts ButtonOptions) (*Button, error) {
	bt := &Button{}
	if err := bt.initBase("button", opts.Options); err != nil {
		return nil, err
	}
	bt.changed = opts.OnChange
	bt.released = opts.OnRelease
	bt.mapContact = bt.mapPress
	bt.resetState = bt.reset
	return bt, nil
}

// SetOnChange sets the press callback; see [ButtonOptions.OnChange].
func (bt *Button) SetOnChange(fun func()) {
	bt.changed = fun
}

// SetOnRelease sets the release callback; see [ButtonOptions.OnRelease].
func (bt *Button) SetOnRelease(fun func()) {
	bt.released = fun
}

// IsPressed returns the current binary state.
func (bt *Button) IsPressed() bool {
	return bt.pressed
}

// mapPress is the press edge: a no-op if already pressed, so moves
// within a press never re-fire the callback.
func (bt *Button) mapPress(pos geom.Vector2) {
	if bt.pressed {
		return
	}
	bt.pressed = true
	bt.trace("pressed")
	if bt.changed != nil {
		bt.changed()
	}
}

// reset clears the pressed state and fires the release callback.
func (bt *Button) reset() {
	bt.pressed = false
	if bt.released != nil {
		bt.released()
	}
}
