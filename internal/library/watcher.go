package library

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/atomicstack/overlay-player-control/internal/logging/events"
)

// DefaultDebounce is the quiet period before a folder change is reported.
const DefaultDebounce = 250 * time.Millisecond

// Event reports that the watched folder's videos changed, or a watch error.
type Event struct {
	Dir string
	Err error
}

// Watcher follows one video folder at a time and publishes debounced change
// events. Watch may be called again to retarget it.
type Watcher struct {
	fs        *fsnotify.Watcher
	debouncer *debouncer
	events    chan Event

	mu  sync.Mutex
	dir string
}

func NewWatcher(debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create folder watcher: %w", err)
	}
	return &Watcher{
		fs:        fsw,
		debouncer: newDebouncer(debounce),
		events:    make(chan Event, 1),
	}, nil
}

// Watch replaces the watched folder with dir. An empty dir stops watching.
func (w *Watcher) Watch(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", dir, err)
		}
		dir = abs
	}
	if dir == w.dir {
		return nil
	}
	if w.dir != "" {
		_ = w.fs.Remove(w.dir)
		w.debouncer.cancel()
	}
	w.dir = ""
	if dir == "" {
		return nil
	}
	if err := w.fs.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.dir = dir
	events.Library.Watch(dir, false)
	return nil
}

// Dir returns the folder currently watched.
func (w *Watcher) Dir() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dir
}

// Events returns the channel of change notifications. Pending notifications
// coalesce, so a slow reader sees at most one queued event.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Run pumps filesystem events until ctx is done, then releases the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			w.handle(ev)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.publish(Event{Dir: w.Dir(), Err: err})
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	dir := w.Dir()
	if dir == "" || filepath.Dir(ev.Name) != dir {
		return
	}
	if !IsVideo(ev.Name) {
		return
	}
	if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) == 0 {
		return
	}
	w.debouncer.trigger(func() {
		if w.Dir() != dir {
			return
		}
		events.Library.Changed(dir)
		w.publish(Event{Dir: dir})
	})
}

func (w *Watcher) publish(ev Event) {
	select {
	case w.events <- ev:
	default:
	}
}

func (w *Watcher) close() {
	w.debouncer.cancel()
	_ = w.fs.Close()
}
