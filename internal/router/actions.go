package router

import (
	"github.com/atomicstack/overlay-player-control/internal/broadcast"
	"github.com/atomicstack/overlay-player-control/internal/menu"
	"github.com/atomicstack/overlay-player-control/internal/settings"
	"github.com/atomicstack/overlay-player-control/internal/window"
)

// MenuActions maps application menu item ids to the intents they trigger.
func MenuActions() map[string]Intent {
	return map[string]Intent{
		menu.IDNewWindow:    NewWindow{},
		menu.IDSelectVideo:  SelectVideoFromMenu{},
		menu.IDSelectFolder: SelectVideoFolder{},
		menu.IDLock:         ToggleLock{},
		menu.IDResizeSmall:  Resize{Scale: window.ScaleSmall},
		menu.IDResizeMedium: Resize{Scale: window.ScaleMedium},
		menu.IDResizeLarge:  Resize{Scale: window.ScaleLarge},
		menu.IDToggleSlider: ToggleSlider{},
		menu.IDTransparency: ToggleTransparency{},
		menu.IDChromaBlack:  SetPresetColor{Color: settings.ColorBlack},
		menu.IDChromaGreen:  SetPresetColor{Color: settings.ColorGreen},
		menu.IDChromaBlue:   SetPresetColor{Color: settings.ColorBlue},
		menu.IDChromaCustom: RequestCustomColor{},
		menu.IDClose:        CloseWindow{},
		menu.IDQuit:         Quit{},
		menu.IDAppQuit:      Quit{},
	}
}

// ContextActions maps context menu item ids to intents for the window that
// opened the menu.
func ContextActions(h window.Handle) map[string]Intent {
	return map[string]Intent{
		menu.IDContextPause:    Relay{Requester: h, Event: broadcast.TogglePausePlay},
		menu.IDContextVideo:    SelectVideo{Requester: h},
		menu.IDContextFolder:   SelectVideoFolder{Requester: h},
		menu.IDContextRandom:   Relay{Requester: h, Event: broadcast.PlayRandom},
		menu.IDContextPrevious: Relay{Requester: h, Event: broadcast.PlayPrevious},
		menu.IDContextClose:    CloseWindow{Requester: h},
	}
}
