package ui

import (
	"unicode"

	"github.com/atomicstack/overlay-player-control/internal/broadcast"
	"github.com/atomicstack/overlay-player-control/internal/logging/events"
	"github.com/atomicstack/overlay-player-control/internal/router"
	"github.com/atomicstack/overlay-player-control/internal/window"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// moveStep is how far alt+arrow drags the focused window.
const moveStep = 10

// menuAccelerators mirror the application menu's shortcuts.
var menuAccelerators = map[string]router.Intent{
	"ctrl+n": router.NewWindow{},
	"ctrl+o": router.SelectVideoFromMenu{},
	"ctrl+l": router.ToggleLock{},
	"ctrl+t": router.ToggleSlider{},
	"ctrl+r": router.ToggleTransparency{},
	"ctrl+w": router.CloseWindow{},
	"tab":    router.FocusNext{},
}

// windowKeys act as if pressed inside the focused window.
var windowKeys = map[string]func(h window.Handle) router.Intent{
	"alt+up":    func(h window.Handle) router.Intent { return router.MoveWindow{Requester: h, DY: -moveStep} },
	"alt+down":  func(h window.Handle) router.Intent { return router.MoveWindow{Requester: h, DY: moveStep} },
	"alt+left":  func(h window.Handle) router.Intent { return router.MoveWindow{Requester: h, DX: -moveStep} },
	"alt+right": func(h window.Handle) router.Intent { return router.MoveWindow{Requester: h, DX: moveStep} },
	"alt+m":     func(h window.Handle) router.Intent { return router.ShowContextMenu{Requester: h} },
	"alt+ ":     func(h window.Handle) router.Intent { return router.Relay{Requester: h, Event: broadcast.TogglePausePlay} },
	"alt+r":     func(h window.Handle) router.Intent { return router.Relay{Requester: h, Event: broadcast.PlayRandom} },
	"alt+p":     func(h window.Handle) router.Intent { return router.Relay{Requester: h, Event: broadcast.PlayPrevious} },
	"alt+c":     func(h window.Handle) router.Intent { return router.PickChromaKeyColor{Requester: h} },
	"alt+v":     func(h window.Handle) router.Intent { return router.SelectVideo{Requester: h} },
}

// handleAccelerator runs shortcut keys. The bool result reports whether the
// key was a shortcut at all.
func (m *Model) handleAccelerator(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()
	if in, ok := menuAccelerators[key]; ok {
		return m.dispatch(in), true
	}
	build, ok := windowKeys[key]
	if !ok {
		return nil, false
	}
	w, ok := m.router.Windows().Focused()
	if !ok {
		events.Command.NoOp(key, "no focused window")
		return nil, true
	}
	if m.router.Picking(w.Handle) {
		events.Command.NoOp(key, "picker already open")
		return nil, true
	}
	return m.dispatch(build(w.Handle)), true
}

func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	current := m.currentLevel()
	if current == nil {
		return false
	}
	switch msg.String() {
	case "ctrl+u":
		if !current.ClearFilter() {
			return false
		}
		m.forceClearInfo()
		m.errMsg = ""
		events.Filter.Cleared(current.ID)
		m.syncViewport(current)
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeFilterRune()
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToFilter(" ")
	}
	return false
}

func (m *Model) appendToFilter(text string) bool {
	current := m.currentLevel()
	if current == nil || !current.AppendFilter(text) {
		return false
	}
	m.forceClearInfo()
	m.errMsg = ""
	events.Filter.Append(current.ID, current.Filter)
	m.syncViewport(current)
	return true
}

func (m *Model) removeFilterRune() bool {
	current := m.currentLevel()
	if current == nil || !current.BackspaceFilter() {
		return false
	}
	m.forceClearInfo()
	m.errMsg = ""
	events.Filter.Backspace(current.ID, current.Filter)
	m.syncViewport(current)
	return true
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	prompt := render(styles.FilterPrompt, "» ")
	current := m.currentLevel()
	if current == nil || current.Filter == "" {
		return prompt + render(styles.FilterPlaceholder, "(type to search)")
	}
	return prompt + render(styles.Filter, current.Filter) + render(styles.Cursor, " ")
}
