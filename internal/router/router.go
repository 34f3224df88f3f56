// Package router turns user and window intents into state mutations,
// persistence, window notifications and menu rebuilds. Router is owned by the
// event loop; picker dialogs run in tea.Cmd goroutines and report back as
// further intents.
package router

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/overlay-player-control/internal/broadcast"
	"github.com/atomicstack/overlay-player-control/internal/logging"
	"github.com/atomicstack/overlay-player-control/internal/logging/events"
	"github.com/atomicstack/overlay-player-control/internal/menu"
	"github.com/atomicstack/overlay-player-control/internal/picker"
	"github.com/atomicstack/overlay-player-control/internal/settings"
	"github.com/atomicstack/overlay-player-control/internal/state"
	"github.com/atomicstack/overlay-player-control/internal/window"
)

// Persister accepts settings snapshots without waiting for the write.
type Persister interface {
	Save(settings.Settings)
}

// Library resolves and lists video folders.
type Library interface {
	DefaultDir() string
	Resolve(folder string) string
	Videos(folder string) []string
}

// FolderWatcher follows the chosen video folder.
type FolderWatcher interface {
	Watch(dir string) error
}

type Options struct {
	Context   context.Context
	State     state.Store
	Persist   Persister
	Windows   *window.Registry
	Factory   window.Factory
	Broadcast *broadcast.Broadcaster
	Library   Library
	Watcher   FolderWatcher
	Files     picker.FilePicker
	Folders   picker.FolderPicker
	Colors    picker.ColorPicker
	Platform  menu.Platform
	// VideosDir is the folder picker's fallback start directory.
	VideosDir string
	// OnMenu receives every rebuilt application menu.
	OnMenu func(*menu.Tree)
}

type Router struct {
	ctx       context.Context
	state     state.Store
	persist   Persister
	windows   *window.Registry
	factory   window.Factory
	bus       *broadcast.Broadcaster
	library   Library
	watcher   FolderWatcher
	files     picker.FilePicker
	folders   picker.FolderPicker
	colors    picker.ColorPicker
	platform  menu.Platform
	videosDir string
	onMenu    func(*menu.Tree)

	menu     *menu.Tree
	picking  map[window.Handle]picker.Kind
	quitting bool
}

func New(opts Options) *Router {
	r := &Router{
		ctx:       opts.Context,
		state:     opts.State,
		persist:   opts.Persist,
		windows:   opts.Windows,
		factory:   opts.Factory,
		bus:       opts.Broadcast,
		library:   opts.Library,
		watcher:   opts.Watcher,
		files:     opts.Files,
		folders:   opts.Folders,
		colors:    opts.Colors,
		platform:  opts.Platform,
		videosDir: opts.VideosDir,
		onMenu:    opts.OnMenu,
		picking:   make(map[window.Handle]picker.Kind),
	}
	if r.ctx == nil {
		r.ctx = context.Background()
	}
	if r.windows == nil {
		r.windows = window.NewRegistry()
	}
	if r.bus == nil {
		r.bus = broadcast.New(r.windows)
	}
	if r.platform == "" {
		r.platform = menu.Current()
	}
	r.menu = menu.Build(r.state.Settings(), r.platform)
	return r
}

// Menu returns the application menu currently displayed.
func (r *Router) Menu() *menu.Tree {
	return r.menu
}

func (r *Router) Settings() settings.Settings {
	return r.state.Settings()
}

func (r *Router) Windows() *window.Registry {
	return r.windows
}

func (r *Router) Broadcaster() *broadcast.Broadcaster {
	return r.bus
}

func (r *Router) Platform() menu.Platform {
	return r.platform
}

// Picking reports whether a picker opened for h is still outstanding.
func (r *Router) Picking(h window.Handle) bool {
	_, ok := r.picking[h]
	return ok
}

// Dispatch runs the effect chain for in and returns any asynchronous
// follow-up.
func (r *Router) Dispatch(in Intent) tea.Cmd {
	if in == nil {
		return nil
	}
	events.Command.Queue(in.Name(), "")
	if r.windows.Len() == 0 && !allowedWithoutWindows(in) {
		events.Command.NoOp(in.Name(), "no windows")
		return nil
	}
	switch v := in.(type) {
	case ToggleLock:
		r.toggleLock()
	case ToggleSlider:
		s := r.state.ToggleSlider()
		r.save(s)
		r.bus.Notify(broadcast.Focused, broadcast.UpdateSliderVisibility, s.SliderVisible)
		r.rebuildMenu(in.Name())
	case ToggleTransparency:
		s := r.state.ToggleTransparency()
		r.save(s)
		r.bus.Notify(broadcast.Focused, broadcast.UpdateTransparency, s.TransparencyEnabled)
		r.rebuildMenu(in.Name())
	case SetPresetColor:
		r.setColor(in.Name(), v.Color, broadcast.Focused)
	case RequestCustomColor:
		r.bus.Notify(broadcast.Focused, broadcast.SelectChromaKeyColor, nil)
	case PickChromaKeyColor:
		return r.pickColor(v)
	case ColorPicked:
		r.colorPicked(v)
	case UpdateChromaKeyColor:
		if !r.alive(in.Name(), v.Requester) {
			return nil
		}
		r.setColor(in.Name(), v.Color, broadcast.Focused)
	case SelectVideoFromMenu:
		r.bus.Notify(broadcast.Focused, broadcast.SelectVideo, nil)
	case SelectVideo:
		return r.pickVideo(v)
	case VideoChosen:
		r.videoChosen(v)
	case SelectVideoFolder:
		return r.pickFolder(v)
	case FolderChosen:
		r.folderChosen(v)
	case Resize:
		r.resize(v.Scale)
	case NewWindow:
		r.newWindow()
	case Activate:
		if r.windows.Len() == 0 {
			r.newWindow()
		}
	case Relay:
		r.relay(in.Name(), v.Requester, v.Event)
	case RelayFocused:
		if w, ok := r.windows.Focused(); ok {
			r.relay(in.Name(), w.Handle, v.Event)
		}
	case MoveWindow:
		r.move(v)
	case Focus:
		if r.windows.Focus(v.Handle) {
			events.Window.Focus(string(v.Handle))
		} else {
			events.Command.NoOp(in.Name(), "target gone")
		}
	case FocusNext:
		if w, ok := r.windows.FocusNext(); ok {
			events.Window.Focus(string(w.Handle))
		}
	case ShowContextMenu:
		if !r.alive(in.Name(), v.Requester) {
			return nil
		}
		msg := ContextMenuMsg{Requester: v.Requester, Tree: menu.BuildContext()}
		return func() tea.Msg { return msg }
	case CloseWindow:
		return r.closeWindow(v.Requester)
	case LibraryChanged:
		r.bus.Notify(broadcast.All, broadcast.LoadVideos, nil)
	case Quit:
		return r.quit()
	default:
		events.Command.Skip(in.Name(), fmt.Sprintf("%T", in))
	}
	return nil
}

func allowedWithoutWindows(in Intent) bool {
	switch in.(type) {
	case NewWindow, Activate, Quit, LibraryChanged, ColorPicked, VideoChosen, FolderChosen:
		return true
	}
	return false
}

// alive reports whether h is still registered, tracing a no-op otherwise.
func (r *Router) alive(name string, h window.Handle) bool {
	if _, ok := r.windows.Lookup(h); ok {
		return true
	}
	events.Command.NoOp(name, "target gone")
	return false
}

func (r *Router) save(s settings.Settings) {
	if r.persist != nil {
		r.persist.Save(s)
	}
}

func (r *Router) rebuildMenu(reason string) {
	r.menu = menu.Build(r.state.Settings(), r.platform)
	events.UI.MenuRebuild(reason, len(r.menu.Actions()))
	if r.onMenu != nil {
		r.onMenu(r.menu)
	}
}

func (r *Router) toggleLock() {
	s := r.state.ToggleLocked()
	r.save(s)
	if w, ok := r.windows.Focused(); ok {
		applyClickThrough(w, s.WindowLocked)
	}
	r.rebuildMenu(ToggleLock{}.Name())
}

func applyClickThrough(w *window.Window, locked bool) {
	w.Surface.SetClickThrough(!locked)
	events.Window.ClickThrough(string(w.Handle), !locked)
}

func (r *Router) setColor(name, color string, target broadcast.Target) {
	s, err := r.state.SetChromaKeyColor(color)
	if err != nil {
		logging.Error(fmt.Errorf("%s: %w", name, err))
		events.Command.Error(name, err)
		return
	}
	r.save(s)
	r.bus.Notify(target, broadcast.UpdateChromaKeyColor, s.ChromaKeyColor)
}

func (r *Router) resize(scale float64) {
	w, ok := r.windows.Focused()
	if !ok {
		events.Command.NoOp(Resize{}.Name(), "no focused window")
		return
	}
	size := window.SizeForScale(scale)
	w.Surface.SetSize(size.Width, size.Height)
	w.Scale = scale
	events.Window.Resize(string(w.Handle), scale, size.Width, size.Height)
	r.bus.Notify(broadcast.To(w.Handle), broadcast.ResizeCanvas, nil)
}

func (r *Router) newWindow() {
	if r.factory == nil {
		logging.Errorf("new window: no surface factory")
		return
	}
	h := window.NewHandle()
	pos := window.CascadePosition(r.windows.Len())
	size := window.SizeForScale(window.ScaleMedium)
	surface, err := r.factory.Create(window.Spec{Handle: h, Position: pos, Size: size})
	if err != nil {
		logging.Error(fmt.Errorf("create window: %w", err))
		events.Command.Error(NewWindow{}.Name(), err)
		return
	}
	w := &window.Window{Handle: h, Surface: surface, Scale: window.ScaleMedium}
	r.windows.Register(w)
	r.windows.Focus(h)
	r.bus.Open(h)
	events.Window.Create(string(h), pos.X, pos.Y, size.Width, size.Height)

	s := r.state.Settings()
	applyClickThrough(w, s.WindowLocked)
	target := broadcast.To(h)
	r.bus.Notify(target, broadcast.LoadVideos, nil)
	r.bus.Notify(target, broadcast.UpdateSliderVisibility, s.SliderVisible)
	r.bus.Notify(target, broadcast.UpdateTransparency, s.TransparencyEnabled)
	r.bus.Notify(target, broadcast.UpdateChromaKeyColor, s.ChromaKeyColor)
}

func (r *Router) relay(name string, h window.Handle, ev broadcast.Event) {
	if !ev.IsRelay() {
		events.Command.Skip(name, string(ev))
		return
	}
	if !r.alive(name, h) {
		return
	}
	r.bus.Notify(broadcast.To(h), ev, nil)
}

func (r *Router) move(v MoveWindow) {
	w, ok := r.windows.Lookup(v.Requester)
	if !ok {
		events.Command.NoOp(v.Name(), "target gone")
		return
	}
	x, y := w.Surface.Position()
	x, y = x+v.DX, y+v.DY
	w.Surface.SetPosition(x, y)
	events.Window.Move(string(w.Handle), x, y)
}

// WindowPosition answers a window's position query; gone windows report the
// origin.
func (r *Router) WindowPosition(h window.Handle) (int, int) {
	w, ok := r.windows.Lookup(h)
	if !ok {
		return 0, 0
	}
	return w.Surface.Position()
}

// VideoList answers a window's request for the playable videos.
func (r *Router) VideoList(h window.Handle) []string {
	if _, ok := r.windows.Lookup(h); !ok || r.library == nil {
		return []string{}
	}
	return r.library.Videos(r.state.Settings().VideoFolder)
}

func (r *Router) closeWindow(h window.Handle) tea.Cmd {
	if h == "" {
		w, ok := r.windows.Focused()
		if !ok {
			events.Command.NoOp(CloseWindow{}.Name(), "no focused window")
			return nil
		}
		h = w.Handle
	}
	w, ok := r.windows.Lookup(h)
	if !ok {
		events.Command.NoOp(CloseWindow{}.Name(), "target gone")
		return nil
	}
	w.Surface.Close()
	r.windows.Unregister(h)
	r.bus.Close(h)
	delete(r.picking, h)
	events.Window.Close(string(h), r.windows.Len())
	if r.windows.Len() == 0 && r.platform.QuitsOnLastClose() {
		return r.quit()
	}
	return nil
}

func (r *Router) quit() tea.Cmd {
	r.quitting = true
	return tea.Quit
}

// Quitting reports whether the router has asked the program to exit.
func (r *Router) Quitting() bool {
	return r.quitting
}
