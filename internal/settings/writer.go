package settings

import (
	"sync"

	"github.com/atomicstack/overlay-player-control/internal/logging"
	"github.com/atomicstack/overlay-player-control/internal/logging/events"
)

// Saver persists one snapshot.
type Saver interface {
	Save(Settings) error
	Path() string
}

// Writer persists snapshots on a background goroutine so callers never wait
// for disk I/O. Snapshots are written in submission order; when several queue
// up behind a slow write only the newest is written, since each one is a full
// replacement of the previous.
type Writer struct {
	saver Saver

	mu      sync.Mutex
	cond    *sync.Cond
	pending *Settings
	busy    bool
	closed  bool
	lastErr error

	wake chan struct{}
	done chan struct{}
}

// NewWriter starts a writer goroutine backed by saver.
func NewWriter(saver Saver) *Writer {
	w := &Writer{
		saver: saver,
		wake:  make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
	w.cond = sync.NewCond(&w.mu)
	go w.loop()
	return w
}

// Save queues a snapshot and returns immediately. Calls after Close are ignored.
func (w *Writer) Save(s Settings) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	snapshot := s
	w.pending = &snapshot
	select {
	case w.wake <- struct{}{}:
	default:
	}
	w.mu.Unlock()
}

// Flush blocks until every queued snapshot has been written and returns the
// error of the last write, if any.
func (w *Writer) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for w.pending != nil || w.busy {
		w.cond.Wait()
	}
	return w.lastErr
}

// Close writes any queued snapshot and stops the goroutine.
func (w *Writer) Close() error {
	err := w.Flush()
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.wake)
	}
	w.mu.Unlock()
	<-w.done
	return err
}

func (w *Writer) loop() {
	defer close(w.done)
	for range w.wake {
		for {
			w.mu.Lock()
			next := w.pending
			if next == nil {
				w.mu.Unlock()
				break
			}
			w.pending = nil
			w.busy = true
			w.mu.Unlock()

			err := w.saver.Save(*next)
			if err != nil {
				logging.Error(err)
				events.Settings.SaveFailed(w.saver.Path(), err)
			}

			w.mu.Lock()
			w.busy = false
			w.lastErr = err
			w.cond.Broadcast()
			w.mu.Unlock()
		}
	}
}
