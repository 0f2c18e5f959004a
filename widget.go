// Copyright (c) 2026, The Padkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package padkit

import (
	"log/slog"

	"github.com/padkit/padkit/events"
	"github.com/padkit/padkit/geom"
)

// WidgetBase implements the contact-tracking state machine shared by
// all controllers: Idle -> (acquire) -> Tracking -> (release | cancel)
// -> Idle. It owns the contact session (tracked contact id and the
// anchor rectangle snapshotted at acquire time) and routes incoming
// events through guards so that the concrete controllers only ever see
// a well-ordered acquire / move / release sequence for one contact.
//
// All methods must be called from a single goroutine; the state is
// touched only by the widget's own handlers, invoked serially by the
// hosting event loop.
type WidgetBase struct {

	// Name is the instance name, used to prefix verbose trace lines.
	Name string

	// Rotation is the visual rotation in degrees; see [Options.Rotation].
	Rotation float32

	// Verbose emits trace lines for every state transition.
	Verbose bool

	measure   MeasureFunc
	listeners events.Listeners

	// contact session: anchor is only valid while active is true and
	// is recomputed fresh on every acquire.
	active  bool
	contact int64
	anchor  geom.Rect

	// hooks set by the concrete controller
	mapContact func(pos geom.Vector2) // map offset to output, gate, fire change callback
	resetState func()                 // reset output to rest, fire release callback
	measured   func()                 // recompute derived constants from a fresh anchor
}

// initBase validates the shared options, fills in defaults, and
// registers the state machine's event listeners. kind names the widget
// type for auto-generated instance names.
func (wb *WidgetBase) initBase(kind string, opts Options) error {
	wb.Name = opts.Name
	if wb.Name == "" {
		wb.Name = nextWidgetName(kind)
	}
	wb.Rotation = opts.Rotation
	wb.Verbose = opts.Verbose
	wb.measure = opts.Measure
	if wb.measure == nil {
		static := geom.R(opts.Left, opts.Top, opts.Width, opts.Height)
		if !static.IsValid() {
			return errConfigf(wb.Name, "no mount target: no Measure func and no valid static geometry (got %v)", static)
		}
		wb.measure = func() geom.Rect { return static }
	}
	wb.listeners.Add(events.ContactStart, wb.start)
	wb.listeners.Add(events.ContactMove, wb.move)
	wb.listeners.Add(events.ContactEnd, wb.end)
	wb.listeners.Add(events.ContactCancel, wb.end)
	return nil
}

// On adds a listener function for the given event type, called before
// the widget's own handler for that type.
func (wb *WidgetBase) On(typ events.Types, fun func(ev *events.Event)) {
	wb.listeners.Add(typ, fun)
}

// HandleEvent dispatches the given event to the registered listeners.
func (wb *WidgetBase) HandleEvent(ev *events.Event) {
	wb.listeners.Call(ev)
}

// WidgetName returns the instance name.
func (wb *WidgetBase) WidgetName() string {
	return wb.Name
}

// IsTracking returns whether a contact is currently being tracked.
func (wb *WidgetBase) IsTracking() bool {
	return wb.active
}

// Bounds returns the widget's current bounding box from a fresh
// measurement.
func (wb *WidgetBase) Bounds() geom.Rect {
	return wb.measure()
}

// Remeasure refreshes the anchor rectangle and derived constants after
// a host layout change. While idle it is a no-op, since the anchor is
// snapshotted fresh at the next acquire anyway.
func (wb *WidgetBase) Remeasure() {
	if !wb.active {
		return
	}
	wb.anchor = wb.measure()
	if wb.measured != nil {
		wb.measured()
	}
	wb.trace("remeasured", "anchor", wb.anchor)
}

// Start notifies the controller that a contact touched down.
func (wb *WidgetBase) Start(contact int64, pos geom.Vector2) {
	wb.HandleEvent(events.NewStart(contact, pos))
}

// Move notifies the controller that a contact moved.
func (wb *WidgetBase) Move(contact int64, pos geom.Vector2) {
	wb.HandleEvent(events.NewMove(contact, pos))
}

// End notifies the controller that a contact lifted off.
func (wb *WidgetBase) End(contact int64) {
	wb.HandleEvent(events.NewEnd(contact))
}

// Cancel is treated identically to [WidgetBase.End].
func (wb *WidgetBase) Cancel(contact int64) {
	wb.HandleEvent(events.NewCancel(contact))
}

// start acquires the contact: ignored if already tracking (first
// contact wins until release). It snapshots the anchor rectangle,
// recomputes derived constants, and immediately runs the move mapping
// on the acquire position, so press location is meaningful.
func (wb *WidgetBase) start(ev *events.Event) {
	if wb.active {
		return
	}
	wb.anchor = wb.measure()
	if !wb.anchor.IsValid() {
		return
	}
	wb.contact = ev.Contact
	wb.active = true
	if wb.measured != nil {
		wb.measured()
	}
	wb.trace("contact acquired", "contact", wb.contact, "pos", ev.Pos, "anchor", wb.anchor)
	wb.mapContact(ev.Pos)
}

// move runs the mapping for a tracked contact. No-op while idle, and
// events for a foreign contact are ignored.
func (wb *WidgetBase) move(ev *events.Event) {
	if !wb.active || ev.Contact != wb.contact {
		return
	}
	wb.mapContact(ev.Pos)
}

// end releases the contact. A release for a foreign contact while
// tracking is ignored. Otherwise the output resets to its rest value
// and the release callback fires unconditionally, even when already at
// rest: "released" is itself the signal, so a redundant release fires
// the callback again rather than being gated on change.
func (wb *WidgetBase) end(ev *events.Event) {
	if wb.active && ev.Contact != wb.contact {
		return
	}
	wb.active = false
	wb.trace("contact released", "contact", ev.Contact)
	wb.resetState()
}

// trace emits a verbose log line prefixed with the widget name.
func (wb *WidgetBase) trace(msg string, args ...any) {
	if !wb.Verbose {
		return
	}
	slog.Info(wb.Name+": "+msg, args...)
}
