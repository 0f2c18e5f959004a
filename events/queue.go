// Copyright (c) 2026, The Padkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"log/slog"
	"sync"
)

// TraceEventCompression can be set to true to log when move events
// are being compressed to eliminate laggy behavior.
var TraceEventCompression = false

// Queue is a FIFO event queue with move compression: a [ContactMove]
// event sent while the last queued event is a ContactMove for the same
// contact replaces that event instead of being appended, so a slow
// consumer always sees the latest position instead of a backlog of
// stale ones. All other event types are unique and always appended.
type Queue struct {
	mu     sync.Mutex
	events []*Event
}

// Send adds an event to the end of the queue, compressing
// consecutive move events for the same contact.
func (q *Queue) Send(ev *Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := len(q.events)
	if ev.Typ == ContactMove && n > 0 {
		last := q.events[n-1]
		if last.Typ == ContactMove && last.Contact == ev.Contact {
			if TraceEventCompression {
				slog.Info("compressed move event", "old", last, "new", ev)
			}
			q.events[n-1] = ev
			return
		}
	}
	q.events = append(q.events, ev)
}

// NextEvent removes and returns the next event in the queue.
// It returns nil if the queue is empty.
func (q *Queue) NextEvent() *Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev
}

// Len returns the number of events in the queue.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
