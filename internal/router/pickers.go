package router

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/overlay-player-control/internal/broadcast"
	"github.com/atomicstack/overlay-player-control/internal/logging"
	"github.com/atomicstack/overlay-player-control/internal/logging/events"
	"github.com/atomicstack/overlay-player-control/internal/picker"
	"github.com/atomicstack/overlay-player-control/internal/window"
)

// busy refuses a second picker for h while one is outstanding.
func (r *Router) busy(name string, h window.Handle) bool {
	if _, ok := r.picking[h]; ok {
		events.Command.NoOp(name, "picker already open")
		return true
	}
	return false
}

func (r *Router) open(kind picker.Kind, h window.Handle, def string) {
	r.picking[h] = kind
	events.Picker.Open(string(kind), string(h), def)
}

// settle clears the outstanding picker for h and traces its outcome. It
// returns the result with failures folded into cancellation.
func (r *Router) settle(kind picker.Kind, h window.Handle, res picker.Result, err error) picker.Result {
	delete(r.picking, h)
	if err != nil {
		logging.Error(fmt.Errorf("%s picker: %w", kind, err))
		events.Picker.Failed(string(kind), string(h), err)
		return picker.Cancelled
	}
	if res.IsCancelled() {
		events.Picker.Cancelled(string(kind), string(h))
		return res
	}
	events.Picker.Selected(string(kind), string(h), res.Value)
	return res
}

func (r *Router) pickColor(v PickChromaKeyColor) tea.Cmd {
	if !r.alive(v.Name(), v.Requester) {
		return nil
	}
	if r.colors == nil {
		events.Command.Skip(v.Name(), "no colour picker")
		return nil
	}
	target := v.Requester
	if w, ok := r.windows.Focused(); ok {
		target = w.Handle
	}
	if r.busy(v.Name(), target) {
		return nil
	}
	initial := r.state.Settings().ChromaKeyColor
	r.open(picker.KindColor, target, initial)
	ctx, colors := r.ctx, r.colors
	return func() tea.Msg {
		res, err := colors.PickColor(ctx, initial)
		return ColorPicked{Target: target, Result: res, Err: err}
	}
}

// colorPicked applies the final colour. Cancelled or rejected picks re-send
// the current colour so the window restores it.
func (r *Router) colorPicked(v ColorPicked) {
	res := r.settle(picker.KindColor, v.Target, v.Result, v.Err)
	if !r.alive(v.Name(), v.Target) {
		return
	}
	target := broadcast.To(v.Target)
	if res.IsCancelled() {
		r.bus.Notify(target, broadcast.UpdateChromaKeyColor, r.state.Settings().ChromaKeyColor)
		return
	}
	s, err := r.state.SetChromaKeyColor(res.Value)
	if err != nil {
		logging.Error(fmt.Errorf("%s: %w", v.Name(), err))
		events.Command.Error(v.Name(), err)
		r.bus.Notify(target, broadcast.UpdateChromaKeyColor, s.ChromaKeyColor)
		return
	}
	r.save(s)
	r.bus.Notify(target, broadcast.UpdateChromaKeyColor, s.ChromaKeyColor)
}

func (r *Router) pickVideo(v SelectVideo) tea.Cmd {
	if !r.alive(v.Name(), v.Requester) {
		return nil
	}
	if r.files == nil {
		events.Command.Skip(v.Name(), "no file picker")
		return nil
	}
	if r.busy(v.Name(), v.Requester) {
		return nil
	}
	def := r.state.Settings().VideoFolder
	if r.library != nil {
		def = r.library.Resolve(def)
	}
	r.open(picker.KindFile, v.Requester, def)
	ctx, files, h := r.ctx, r.files, v.Requester
	return func() tea.Msg {
		res, err := files.PickFile(ctx, picker.VideoTitle, def, picker.VideoFilter)
		return VideoChosen{Requester: h, Result: res, Err: err}
	}
}

// videoChosen always answers the requester so it can tell a decline from
// silence: a nil payload means no selection.
func (r *Router) videoChosen(v VideoChosen) {
	res := r.settle(picker.KindFile, v.Requester, v.Result, v.Err)
	var payload interface{}
	if !res.IsCancelled() {
		payload = res.Value
	}
	r.bus.Notify(broadcast.To(v.Requester), broadcast.VideoSelected, payload)
}

func (r *Router) pickFolder(v SelectVideoFolder) tea.Cmd {
	h := v.Requester
	if h == "" {
		w, ok := r.windows.Focused()
		if !ok {
			events.Command.NoOp(v.Name(), "no focused window")
			return nil
		}
		h = w.Handle
	}
	if !r.alive(v.Name(), h) {
		return nil
	}
	if r.folders == nil {
		events.Command.Skip(v.Name(), "no folder picker")
		return nil
	}
	if r.busy(v.Name(), h) {
		return nil
	}
	def := r.state.Settings().VideoFolder
	if def == "" {
		def = r.videosDir
	}
	r.open(picker.KindFolder, h, def)
	ctx, folders := r.ctx, r.folders
	return func() tea.Msg {
		res, err := folders.PickFolder(ctx, picker.FolderTitle, def)
		return FolderChosen{Requester: h, Result: res, Err: err}
	}
}

func (r *Router) folderChosen(v FolderChosen) {
	res := r.settle(picker.KindFolder, v.Requester, v.Result, v.Err)
	if res.IsCancelled() || !r.alive(v.Name(), v.Requester) {
		return
	}
	s, err := r.state.SetVideoFolder(res.Value)
	if err != nil {
		logging.Error(fmt.Errorf("%s: %w", v.Name(), err))
		events.Command.Error(v.Name(), err)
		return
	}
	r.save(s)
	if r.watcher != nil {
		if err := r.watcher.Watch(s.VideoFolder); err != nil {
			logging.Error(err)
		}
	}
	r.bus.Notify(broadcast.To(v.Requester), broadcast.LoadVideos, nil)
}
