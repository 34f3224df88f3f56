package state

import (
	"github.com/atomicstack/overlay-player-control/internal/logging/events"
	"github.com/atomicstack/overlay-player-control/internal/settings"
)

// Store is the read/write surface of the settings singleton. Only the router
// holds a Store; everything else receives settings.Settings copies.
type Store interface {
	Settings() settings.Settings
	SetVideoFolder(path string) (settings.Settings, error)
	ToggleLocked() settings.Settings
	ToggleSlider() settings.Settings
	ToggleTransparency() settings.Settings
	SetChromaKeyColor(color string) (settings.Settings, error)
}

// Model holds the authoritative settings while the process runs. It is not
// safe for concurrent use; the event loop is its only caller.
type Model struct {
	current settings.Settings
}

// New wraps the settings produced by the config store.
func New(initial settings.Settings) *Model {
	return &Model{current: initial}
}

// Settings returns a copy of the current settings.
func (m *Model) Settings() settings.Settings {
	return m.current
}

// SetVideoFolder records a new video folder. The folder must be an existing
// absolute directory; otherwise the previous folder is kept.
func (m *Model) SetVideoFolder(path string) (settings.Settings, error) {
	if err := settings.ValidateVideoFolder(path); err != nil {
		return m.current, err
	}
	m.current.VideoFolder = path
	events.Settings.Change(settings.FieldVideoFolder, path)
	return m.current, nil
}

func (m *Model) ToggleLocked() settings.Settings {
	m.current.WindowLocked = !m.current.WindowLocked
	events.Settings.Change(settings.FieldWindowLocked, m.current.WindowLocked)
	return m.current
}

func (m *Model) ToggleSlider() settings.Settings {
	m.current.SliderVisible = !m.current.SliderVisible
	events.Settings.Change(settings.FieldSliderVisible, m.current.SliderVisible)
	return m.current
}

func (m *Model) ToggleTransparency() settings.Settings {
	m.current.TransparencyEnabled = !m.current.TransparencyEnabled
	events.Settings.Change(settings.FieldTransparencyEnabled, m.current.TransparencyEnabled)
	return m.current
}

// SetChromaKeyColor stores a hex colour. Invalid colours are rejected and the
// previous colour is retained.
func (m *Model) SetChromaKeyColor(color string) (settings.Settings, error) {
	if _, err := settings.ParseColor(color); err != nil {
		return m.current, err
	}
	m.current.ChromaKeyColor = color
	events.Settings.Change(settings.FieldChromaKeyColor, color)
	return m.current, nil
}
