// Copyright (c) 2026, The Padkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"github.com/padkit/padkit/geom"
	"github.com/stretchr/testify/assert"
)

func TestEvent(t *testing.T) {
	ev := NewStart(3, geom.Vec2(10, 20))
	assert.Equal(t, ContactStart, ev.Type())
	assert.Equal(t, int64(3), ev.Contact)
	assert.True(t, ev.HasPos())
	assert.False(t, ev.IsHandled())

	ev.SetHandled()
	assert.True(t, ev.IsHandled())

	assert.False(t, NewEnd(3).HasPos())
	assert.False(t, NewCancel(3).HasPos())
	assert.True(t, NewMove(3, geom.Vec2(1, 1)).HasPos())
}

func TestTypesString(t *testing.T) {
	assert.Equal(t, "ContactStart", ContactStart.String())
	assert.Equal(t, "ContactCancel", ContactCancel.String())
	assert.Equal(t, "Types(99)", Types(99).String())
}

func TestListeners(t *testing.T) {
	var ls Listeners
	order := []int{}
	ls.Add(ContactStart, func(ev *Event) { order = append(order, 1) })
	ls.Add(ContactStart, func(ev *Event) { order = append(order, 2) })
	ls.Add(ContactMove, func(ev *Event) { order = append(order, 3) })

	ls.Call(NewStart(0, geom.Vector2{}))
	// reverse order: last added runs first
	assert.Equal(t, []int{2, 1}, order)

	order = nil
	ls.Add(ContactStart, func(ev *Event) {
		order = append(order, 4)
		ev.SetHandled()
	})
	ls.Call(NewStart(0, geom.Vector2{}))
	// handled stops propagation
	assert.Equal(t, []int{4}, order)

	handled := NewMove(0, geom.Vector2{})
	handled.SetHandled()
	ls.Call(handled)
	assert.Equal(t, []int{4}, order)
}

func TestQueueCompression(t *testing.T) {
	q := &Queue{}
	q.Send(NewStart(1, geom.Vec2(0, 0)))
	q.Send(NewMove(1, geom.Vec2(1, 0)))
	q.Send(NewMove(1, geom.Vec2(2, 0)))
	q.Send(NewMove(1, geom.Vec2(3, 0)))
	q.Send(NewEnd(1))
	assert.Equal(t, 3, q.Len())

	assert.Equal(t, ContactStart, q.NextEvent().Type())
	mv := q.NextEvent()
	assert.Equal(t, ContactMove, mv.Type())
	assert.Equal(t, geom.Vec2(3, 0), mv.Pos)
	assert.Equal(t, ContactEnd, q.NextEvent().Type())
	assert.Nil(t, q.NextEvent())
}

func TestQueueNoCrossContactCompression(t *testing.T) {
	q := &Queue{}
	q.Send(NewMove(1, geom.Vec2(1, 0)))
	q.Send(NewMove(2, geom.Vec2(2, 0)))
	assert.Equal(t, 2, q.Len())
}
