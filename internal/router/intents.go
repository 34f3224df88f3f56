package router

import (
	"github.com/atomicstack/overlay-player-control/internal/broadcast"
	"github.com/atomicstack/overlay-player-control/internal/menu"
	"github.com/atomicstack/overlay-player-control/internal/picker"
	"github.com/atomicstack/overlay-player-control/internal/window"
)

// Intent is a user or window request handled by Router.Dispatch. Intents
// are also valid tea.Msg values, so picker results re-enter the loop as
// ordinary messages.
type Intent interface {
	Name() string
}

type ToggleLock struct{}

type ToggleSlider struct{}

type ToggleTransparency struct{}

// SetPresetColor applies one of the preset chroma-key colours.
type SetPresetColor struct {
	Color string
}

// RequestCustomColor asks the focused window to start its colour picker.
type RequestCustomColor struct{}

// PickChromaKeyColor opens the colour picker on behalf of a window.
type PickChromaKeyColor struct {
	Requester window.Handle
}

// ColorPicked carries the colour picker's final answer. Target is the window
// that was focused when the picker opened.
type ColorPicked struct {
	Target window.Handle
	Result picker.Result
	Err    error
}

// UpdateChromaKeyColor is a window setting the colour directly.
type UpdateChromaKeyColor struct {
	Requester window.Handle
	Color     string
}

// SelectVideoFromMenu asks the focused window to request a video.
type SelectVideoFromMenu struct{}

type SelectVideo struct {
	Requester window.Handle
}

type VideoChosen struct {
	Requester window.Handle
	Result    picker.Result
	Err       error
}

// SelectVideoFolder opens the folder picker. An empty Requester targets the
// focused window.
type SelectVideoFolder struct {
	Requester window.Handle
}

type FolderChosen struct {
	Requester window.Handle
	Result    picker.Result
	Err       error
}

type Resize struct {
	Scale float64
}

type NewWindow struct{}

// Relay re-emits a playback event to the window that sent it.
type Relay struct {
	Requester window.Handle
	Event     broadcast.Event
}

// RelayFocused is the menu-driven form of Relay.
type RelayFocused struct {
	Event broadcast.Event
}

type MoveWindow struct {
	Requester window.Handle
	DX, DY    int
}

type Focus struct {
	Handle window.Handle
}

type FocusNext struct{}

type ShowContextMenu struct {
	Requester window.Handle
}

// CloseWindow closes Requester, or the focused window when Requester is
// empty.
type CloseWindow struct {
	Requester window.Handle
}

// Activate is the dock re-activation signal.
type Activate struct{}

// LibraryChanged reports that the watched folder's videos changed.
type LibraryChanged struct {
	Dir string
}

type Quit struct{}

// ContextMenuMsg is returned to the host when a window asks for its context
// menu.
type ContextMenuMsg struct {
	Requester window.Handle
	Tree      *menu.Tree
}

func (ToggleLock) Name() string           { return "toggle-lock" }
func (ToggleSlider) Name() string         { return "toggle-slider" }
func (ToggleTransparency) Name() string   { return "toggle-transparency" }
func (SetPresetColor) Name() string       { return "set-preset-color" }
func (RequestCustomColor) Name() string   { return "request-custom-color" }
func (PickChromaKeyColor) Name() string   { return "pick-chroma-key-color" }
func (ColorPicked) Name() string          { return "color-picked" }
func (UpdateChromaKeyColor) Name() string { return "update-chroma-key-color" }
func (SelectVideoFromMenu) Name() string  { return "select-video-menu" }
func (SelectVideo) Name() string          { return "select-video" }
func (VideoChosen) Name() string          { return "video-chosen" }
func (SelectVideoFolder) Name() string    { return "select-video-folder" }
func (FolderChosen) Name() string         { return "folder-chosen" }
func (Resize) Name() string               { return "resize" }
func (NewWindow) Name() string            { return "new-window" }
func (Relay) Name() string                { return "relay" }
func (RelayFocused) Name() string         { return "relay-focused" }
func (MoveWindow) Name() string           { return "move-window" }
func (Focus) Name() string                { return "focus" }
func (FocusNext) Name() string            { return "focus-next" }
func (ShowContextMenu) Name() string      { return "show-context-menu" }
func (CloseWindow) Name() string          { return "close-window" }
func (Activate) Name() string             { return "activate" }
func (LibraryChanged) Name() string       { return "library-changed" }
func (Quit) Name() string                 { return "quit" }
