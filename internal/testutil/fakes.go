// Package testutil provides in-memory collaborators for router and console
// tests.
package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/atomicstack/overlay-player-control/internal/picker"
	"github.com/atomicstack/overlay-player-control/internal/settings"
	"github.com/atomicstack/overlay-player-control/internal/window"
)

// Surface records every call the router makes on a window surface.
type Surface struct {
	mu           sync.Mutex
	X, Y         int
	Width        int
	Height       int
	ClickThrough bool
	Toggles      int
	Closed       bool
}

func (s *Surface) SetClickThrough(ignore bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ClickThrough = ignore
	s.Toggles++
}

func (s *Surface) SetPosition(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.X, s.Y = x, y
}

func (s *Surface) SetSize(w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Width, s.Height = w, h
}

func (s *Surface) Position() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.X, s.Y
}

func (s *Surface) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Closed = true
}

// Factory creates Surface values and remembers them by handle.
type Factory struct {
	Err      error
	Specs    []window.Spec
	Surfaces map[window.Handle]*Surface
}

func NewFactory() *Factory {
	return &Factory{Surfaces: make(map[window.Handle]*Surface)}
}

func (f *Factory) Create(spec window.Spec) (window.Surface, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.Specs = append(f.Specs, spec)
	s := &Surface{X: spec.Position.X, Y: spec.Position.Y, Width: spec.Size.Width, Height: spec.Size.Height}
	if f.Surfaces == nil {
		f.Surfaces = make(map[window.Handle]*Surface)
	}
	f.Surfaces[spec.Handle] = s
	return s, nil
}

// FileCall captures one PickFile invocation.
type FileCall struct {
	Title   string
	Default string
	Filter  picker.Filter
}

type FilePicker struct {
	Result picker.Result
	Err    error
	Calls  []FileCall
}

func (p *FilePicker) PickFile(_ context.Context, title, defaultPath string, filter picker.Filter) (picker.Result, error) {
	p.Calls = append(p.Calls, FileCall{Title: title, Default: defaultPath, Filter: filter})
	return p.Result, p.Err
}

// FolderCall captures one PickFolder invocation.
type FolderCall struct {
	Title   string
	Default string
}

type FolderPicker struct {
	Result picker.Result
	Err    error
	Calls  []FolderCall
}

func (p *FolderPicker) PickFolder(_ context.Context, title, defaultPath string) (picker.Result, error) {
	p.Calls = append(p.Calls, FolderCall{Title: title, Default: defaultPath})
	return p.Result, p.Err
}

type ColorPicker struct {
	Result  picker.Result
	Err     error
	Initial []string
}

func (p *ColorPicker) PickColor(_ context.Context, initial string) (picker.Result, error) {
	p.Initial = append(p.Initial, initial)
	return p.Result, p.Err
}

// Persister records every snapshot handed to it.
type Persister struct {
	Saved []settings.Settings
}

func (p *Persister) Save(s settings.Settings) {
	p.Saved = append(p.Saved, s)
}

// Last returns the newest snapshot, or false when nothing was saved.
func (p *Persister) Last() (settings.Settings, bool) {
	if len(p.Saved) == 0 {
		return settings.Settings{}, false
	}
	return p.Saved[len(p.Saved)-1], true
}

// Watcher records folder retargets.
type Watcher struct {
	Dirs []string
	Err  error
}

func (w *Watcher) Watch(dir string) error {
	if w.Err != nil {
		return w.Err
	}
	w.Dirs = append(w.Dirs, dir)
	return nil
}

// Library serves canned listings keyed by folder.
type Library struct {
	Default string
	Listing map[string][]string
}

func (l *Library) DefaultDir() string {
	return l.Default
}

func (l *Library) Resolve(folder string) string {
	if folder != "" {
		return folder
	}
	return l.Default
}

func (l *Library) Videos(folder string) []string {
	if paths, ok := l.Listing[l.Resolve(folder)]; ok {
		return append([]string(nil), paths...)
	}
	return []string{}
}

// ErrFactory is a convenience failure for factory tests.
var ErrFactory = errors.New("surface creation failed")
