package broadcast

import (
	"errors"
	"sync"

	"github.com/atomicstack/overlay-player-control/internal/logging/events"
	"github.com/atomicstack/overlay-player-control/internal/window"
)

// ErrTargetGone is returned by Send when the window has already closed.
var ErrTargetGone = errors.New("target window is gone")

// Resolver resolves the focused and full window sets at send time.
type Resolver interface {
	Focused() (*window.Window, bool)
	All() []*window.Window
}

type targetKind int

const (
	targetHandle targetKind = iota
	targetFocused
	targetAll
)

// Target selects which windows receive a notification.
type Target struct {
	kind   targetKind
	handle window.Handle
}

var (
	// Focused resolves to the focused window at send time.
	Focused = Target{kind: targetFocused}
	// All resolves to every live window at send time.
	All = Target{kind: targetAll}
)

// To targets a single window.
func To(h window.Handle) Target {
	return Target{kind: targetHandle, handle: h}
}

func (t Target) String() string {
	switch t.kind {
	case targetFocused:
		return "focused"
	case targetAll:
		return "all"
	default:
		return string(t.handle)
	}
}

// Broadcaster owns one mailbox per open window.
type Broadcaster struct {
	windows Resolver

	mu    sync.Mutex
	boxes map[window.Handle]*Mailbox
}

func New(windows Resolver) *Broadcaster {
	return &Broadcaster{windows: windows, boxes: make(map[window.Handle]*Mailbox)}
}

// Open returns the mailbox for h, creating it on first use.
func (b *Broadcaster) Open(h window.Handle) *Mailbox {
	b.mu.Lock()
	defer b.mu.Unlock()
	if box, ok := b.boxes[h]; ok {
		return box
	}
	box := newMailbox(h)
	b.boxes[h] = box
	return box
}

// Close stops accepting messages for h. Closing an unknown handle is a no-op.
func (b *Broadcaster) Close(h window.Handle) {
	b.mu.Lock()
	box, ok := b.boxes[h]
	delete(b.boxes, h)
	b.mu.Unlock()
	if ok {
		box.close()
	}
}

func (b *Broadcaster) Mailbox(h window.Handle) (*Mailbox, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	box, ok := b.boxes[h]
	return box, ok
}

// Send queues one message for h.
func (b *Broadcaster) Send(h window.Handle, event Event, payload interface{}) error {
	box, ok := b.Mailbox(h)
	if !ok || !box.push(Message{Event: event, Payload: payload}) {
		events.Broadcast.Drop(string(h), string(event), "closed")
		return ErrTargetGone
	}
	events.Broadcast.Send(string(h), string(event))
	return nil
}

// Notify is the fire-and-forget form of Send. It resolves target at call
// time and returns how many windows the message was queued for; closed or
// missing targets are dropped silently.
func (b *Broadcaster) Notify(target Target, event Event, payload interface{}) int {
	var handles []window.Handle
	switch target.kind {
	case targetHandle:
		handles = []window.Handle{target.handle}
	case targetFocused:
		if b.windows != nil {
			if w, ok := b.windows.Focused(); ok {
				handles = []window.Handle{w.Handle}
			}
		}
	case targetAll:
		if b.windows != nil {
			for _, w := range b.windows.All() {
				handles = append(handles, w.Handle)
			}
		}
	}
	if len(handles) == 0 {
		events.Broadcast.Drop(target.String(), string(event), "no target")
		return 0
	}
	queued := 0
	for _, h := range handles {
		if err := b.Send(h, event, payload); err == nil {
			queued++
		}
	}
	return queued
}
