package broadcast

import (
	"context"
	"sync"

	"github.com/atomicstack/overlay-player-control/internal/window"
)

// Mailbox is an unbounded FIFO queue for a single window. Producers never
// block; the consumer waits on Next or polls with Drain.
type Mailbox struct {
	handle window.Handle

	mu     sync.Mutex
	queue  []Message
	closed bool
	ready  chan struct{}
}

func newMailbox(h window.Handle) *Mailbox {
	return &Mailbox{handle: h, ready: make(chan struct{}, 1)}
}

func (m *Mailbox) Handle() window.Handle {
	return m.handle
}

func (m *Mailbox) push(msg Message) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return false
	}
	m.queue = append(m.queue, msg)
	m.signal()
	return true
}

// signal must be called with mu held.
func (m *Mailbox) signal() {
	select {
	case m.ready <- struct{}{}:
	default:
	}
}

// Next returns the oldest queued message, waiting for one if the queue is
// empty. It reports false once the mailbox is closed and drained, or when
// ctx is done.
func (m *Mailbox) Next(ctx context.Context) (Message, bool) {
	for {
		m.mu.Lock()
		if len(m.queue) > 0 {
			msg := m.queue[0]
			m.queue[0] = Message{}
			m.queue = m.queue[1:]
			if len(m.queue) > 0 {
				m.signal()
			}
			m.mu.Unlock()
			return msg, true
		}
		if m.closed {
			m.mu.Unlock()
			return Message{}, false
		}
		m.mu.Unlock()

		select {
		case <-ctx.Done():
			return Message{}, false
		case <-m.ready:
		}
	}
}

// Ready is signalled whenever a message is queued or the mailbox closes.
// A receive from Ready may be stale; callers still go through Next or Drain.
func (m *Mailbox) Ready() <-chan struct{} {
	return m.ready
}

// Drain removes and returns every queued message without waiting.
func (m *Mailbox) Drain() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.queue) == 0 {
		return nil
	}
	out := m.queue
	m.queue = nil
	return out
}

// Len reports the number of undelivered messages.
func (m *Mailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

func (m *Mailbox) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *Mailbox) close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	m.signal()
}
