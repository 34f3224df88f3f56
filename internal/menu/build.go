package menu

import (
	"fmt"

	"github.com/atomicstack/overlay-player-control/internal/settings"
)

// AppName labels the darwin application submenu.
const AppName = "Overlay Media Player"

// Application menu ids.
const (
	IDApp             = "app"
	IDFile            = "file"
	IDNewWindow       = "file:new-window"
	IDSelectVideo     = "file:select-video"
	IDSelectFolder    = "file:select-folder"
	IDLock            = "file:lock"
	IDResize          = "file:resize"
	IDResizeSmall     = "file:resize:small"
	IDResizeMedium    = "file:resize:medium"
	IDResizeLarge     = "file:resize:large"
	IDToggleSlider    = "file:slider"
	IDTransparency    = "file:transparency"
	IDChroma          = "file:chroma"
	IDChromaBlack     = "file:chroma:black"
	IDChromaGreen     = "file:chroma:green"
	IDChromaBlue      = "file:chroma:blue"
	IDChromaCustom    = "file:chroma:custom"
	IDClose           = "file:close"
	IDQuit            = "file:quit"
	IDAppQuit         = "app:quit"
	IDContext         = "context"
	IDContextPause    = "context:pause-play"
	IDContextVideo    = "context:select-video"
	IDContextFolder   = "context:select-folder"
	IDContextRandom   = "context:random"
	IDContextPrevious = "context:previous"
	IDContextClose    = "context:close"
)

// LockLabel is the only label that depends on settings.
func LockLabel(locked bool) string {
	if locked {
		return "Unlock Window"
	}
	return "Lock Window"
}

// ResizeLabel formats a scale option, e.g. "Small (50%)".
func ResizeLabel(name string, scale float64) string {
	return fmt.Sprintf("%s (%d%%)", name, int(scale*100+0.5))
}

func leaf(id, label, accel string) *Node {
	return &Node{Item: Item{ID: id, Label: label, Accelerator: accel}}
}

func role(id string, r Role) *Node {
	return &Node{Item: Item{ID: id, Label: string(r), Role: r}}
}

func separator(id string) *Node {
	return &Node{Item: Item{ID: id, Separator: true}}
}

func submenu(id, label string, children ...*Node) *Node {
	return &Node{Item: Item{ID: id, Label: label}, Children: children}
}

// Build returns the application menu for s on platform p.
func Build(s settings.Settings, p Platform) *Tree {
	var top []*Node
	if p == Darwin {
		top = append(top, submenu(IDApp, AppName,
			role("app:about", RoleAbout),
			separator("app:sep-1"),
			role("app:services", RoleServices),
			separator("app:sep-2"),
			role("app:hide", RoleHide),
			role("app:hide-others", RoleHideOthers),
			role("app:unhide", RoleUnhide),
			separator("app:sep-3"),
			role(IDAppQuit, RoleQuit),
		))
	}

	last := role(IDQuit, RoleQuit)
	if p == Darwin {
		last = role(IDClose, RoleClose)
	}

	top = append(top, submenu(IDFile, "File",
		leaf(IDNewWindow, "New Window", "Shift+CmdOrCtrl+N"),
		leaf(IDSelectVideo, "Select Video", "CmdOrCtrl+O"),
		leaf(IDSelectFolder, "Select Video Folder", ""),
		leaf(IDLock, LockLabel(s.WindowLocked), "CmdOrCtrl+L"),
		submenu(IDResize, "Resize",
			leaf(IDResizeSmall, ResizeLabel("Small", 0.5), ""),
			leaf(IDResizeMedium, ResizeLabel("Medium", 1.0), ""),
			leaf(IDResizeLarge, ResizeLabel("Large", 1.5), ""),
		),
		leaf(IDToggleSlider, "Toggle Slider", "CmdOrCtrl+T"),
		leaf(IDTransparency, "Toggle Transparency", "CmdOrCtrl+R"),
		submenu(IDChroma, "Chroma Key Color",
			leaf(IDChromaBlack, "Black", ""),
			leaf(IDChromaGreen, "Green", ""),
			leaf(IDChromaBlue, "Blue", ""),
			leaf(IDChromaCustom, "Custom", ""),
		),
		last,
	))
	return newTree("Menu", top...)
}

// BuildContext returns the per-window context menu. It does not depend on
// settings.
func BuildContext() *Tree {
	return newTree("Window",
		leaf(IDContextPause, "Pause/Play", ""),
		leaf(IDContextVideo, "Select Video", ""),
		leaf(IDContextFolder, "Select Video Folder", ""),
		leaf(IDContextRandom, "Random", ""),
		leaf(IDContextPrevious, "Previous", ""),
		leaf(IDContextClose, "Close", ""),
	)
}
