// Copyright (c) 2026, The Padkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package replay drives padkit widgets from recorded gesture traces.
// It stands in for the browser event loop: steps are queued through an
// [events.Queue] and routed to widgets the way a real host would,
// hit-testing contact starts against widget bounds and broadcasting
// moves and releases, which the widgets' own guards filter.
package replay

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/padkit/padkit"
	"github.com/padkit/padkit/events"
	"github.com/padkit/padkit/geom"
)

// Step is one recorded gesture event.
type Step struct {

	// Type is one of "start", "move", "end", or "cancel".
	Type string `yaml:"type"`

	// Contact is the contact identifier the step belongs to.
	Contact int64 `yaml:"contact"`

	// X and Y are the position in the host coordinate space,
	// meaningful for start and move steps.
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// Trace is a recorded gesture: an ordered list of steps.
type Trace []Step

// Open reads a [Trace] from the given YAML file.
func Open(filename string) (Trace, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var tr Trace
	if err := yaml.Unmarshal(b, &tr); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return tr, nil
}

// Event converts the step to an [events.Event].
func (st Step) Event() (*events.Event, error) {
	pos := geom.Vec2(st.X, st.Y)
	switch st.Type {
	case "start":
		return events.NewStart(st.Contact, pos), nil
	case "move":
		return events.NewMove(st.Contact, pos), nil
	case "end":
		return events.NewEnd(st.Contact), nil
	case "cancel":
		return events.NewCancel(st.Contact), nil
	}
	return nil, fmt.Errorf("unknown step type %q", st.Type)
}

// Dispatch routes one event to the given widgets: starts go only to
// widgets whose bounds contain the position, everything else is
// broadcast and filtered by the widgets' contact guards.
func Dispatch(ws []padkit.Widget, ev *events.Event) {
	for _, w := range ws {
		if ev.Typ == events.ContactStart && !w.Bounds().ContainsPoint(ev.Pos) {
			continue
		}
		w.HandleEvent(ev)
	}
}

// Run queues the whole trace and drains it into the given widgets.
// It fails on the first malformed step, before any event is delivered.
func Run(ws []padkit.Widget, tr Trace) error {
	q := &events.Queue{}
	for i, st := range tr {
		ev, err := st.Event()
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		q.Send(ev)
	}
	for ev := q.NextEvent(); ev != nil; ev = q.NextEvent() {
		Dispatch(ws, ev)
	}
	return nil
}
