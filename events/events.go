// Copyright (c) 2026, The Padkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the abstract contact-event surface that hosts
// feed into padkit widget controllers. A host (browser shim, test
// harness, trace replayer) normalizes its raw pointer and touch events
// into plain [Event] values carrying a contact identifier and a
// position in the same coordinate space as the widget anchor
// rectangles; the controllers never see pointer-vs-touch distinctions.
package events

import (
	"fmt"
	"time"

	"github.com/padkit/padkit/geom"
)

//go:generate stringer -type=Types

// Types determines the type of contact event. The type covers the
// full pointer-down-to-pointer-up lifecycle of a single contact
// (mouse button, touch point, or stylus).
type Types int32

const (
	// UnknownType is the zero value, an unknown event type.
	UnknownType Types = iota

	// ContactStart happens when a new contact touches down on a widget
	// surface. It carries the position of the initial touch, which is
	// meaningful: controllers map it immediately, so press location
	// matters, not just press existence.
	ContactStart

	// ContactMove happens when a tracked contact moves. These can be
	// numerous; they are not unique and are subject to compression in
	// a [Queue], where only the latest position matters.
	ContactMove

	// ContactEnd happens when a contact lifts off. Position is not
	// meaningful for this type.
	ContactEnd

	// ContactCancel happens when the host cancels a contact (e.g. the
	// browser reclaims the gesture). Controllers treat it identically
	// to ContactEnd.
	ContactCancel
)

// Event is a single normalized contact event. All controller input
// flows through these; see the package documentation.
type Event struct {

	// Typ is the type of the event.
	Typ Types

	// Contact identifies the pointer or touch point this event belongs
	// to, so that unrelated contacts elsewhere on the page can be
	// filtered out.
	Contact int64

	// Pos is the event position in the host coordinate space.
	Pos geom.Vector2

	// Tm is the time the event was generated.
	Tm time.Time

	handled bool
}

// New returns a new [Event] of the given type, contact id, and position,
// stamped with the current time.
func New(typ Types, contact int64, pos geom.Vector2) *Event {
	return &Event{Typ: typ, Contact: contact, Pos: pos, Tm: time.Now()}
}

// NewStart returns a new [ContactStart] event.
func NewStart(contact int64, pos geom.Vector2) *Event {
	return New(ContactStart, contact, pos)
}

// NewMove returns a new [ContactMove] event.
func NewMove(contact int64, pos geom.Vector2) *Event {
	return New(ContactMove, contact, pos)
}

// NewEnd returns a new [ContactEnd] event.
func NewEnd(contact int64) *Event {
	return New(ContactEnd, contact, geom.Vector2{})
}

// NewCancel returns a new [ContactCancel] event.
func NewCancel(contact int64) *Event {
	return New(ContactCancel, contact, geom.Vector2{})
}

// Type returns the type of the event.
func (ev *Event) Type() Types {
	return ev.Typ
}

// IsHandled returns whether the event has been marked as handled.
func (ev *Event) IsHandled() bool {
	return ev.handled
}

// SetHandled marks the event as handled, stopping any further
// listener processing.
func (ev *Event) SetHandled() {
	ev.handled = true
}

// HasPos returns whether position is meaningful for this event type.
func (ev *Event) HasPos() bool {
	return ev.Typ == ContactStart || ev.Typ == ContactMove
}

func (ev *Event) String() string {
	if ev.HasPos() {
		return fmt.Sprintf("%v{Contact: %d, Pos: %v, Time: %v}", ev.Typ, ev.Contact, ev.Pos, ev.Tm.Format("04:05"))
	}
	return fmt.Sprintf("%v{Contact: %d, Time: %v}", ev.Typ, ev.Contact, ev.Tm.Format("04:05"))
}
