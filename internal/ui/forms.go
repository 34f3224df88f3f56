package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/overlay-player-control/internal/logging/events"
	"github.com/atomicstack/overlay-player-control/internal/picker"
	"github.com/atomicstack/overlay-player-control/internal/settings"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// colorForm stands in for a native colour dialog. It answers exactly one
// picker.ColorRequest.
type colorForm struct {
	input   textinput.Model
	request picker.ColorRequest
	initial string
	err     string
}

func newColorForm(req picker.ColorRequest) *colorForm {
	ti := textinput.New()
	ti.Placeholder = "#RRGGBB"
	ti.CharLimit = 7
	ti.Cursor.SetMode(cursor.CursorStatic)
	if req.Initial != "" {
		ti.SetValue(req.Initial)
		ti.CursorEnd()
	}
	ti.Focus()
	return &colorForm{input: ti, request: req, initial: req.Initial}
}

func (f *colorForm) Title() string     { return "Chroma Key Color" }
func (f *colorForm) Help() string      { return "Press Enter to apply. Esc to cancel." }
func (f *colorForm) InputView() string { return f.input.View() }
func (f *colorForm) Error() string     { return f.err }

// Value returns the typed colour with a leading '#' added when missing.
func (f *colorForm) Value() string {
	v := strings.TrimSpace(f.input.Value())
	if v != "" && !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	return v
}

// Update returns (cmd, done, cancel).
func (f *colorForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+u":
			if f.input.Value() != "" {
				f.input.SetValue("")
				f.input.CursorStart()
			}
			f.err = ""
			return nil, false, false
		}
		switch key.Type {
		case tea.KeyEsc:
			f.request.Resolve(picker.Cancelled)
			events.UI.ColorPromptDone("", true)
			return nil, false, true
		case tea.KeyEnter:
			value := f.Value()
			if !settings.ValidColor(value) {
				f.err = fmt.Sprintf("%q is not a #RRGGBB colour", value)
				return nil, false, false
			}
			f.request.Resolve(picker.Selected(value))
			events.UI.ColorPromptDone(value, false)
			return nil, true, false
		}
	}
	f.err = ""
	updated, cmd := f.input.Update(msg)
	f.input = updated
	return cmd, false, false
}

func (m *Model) startColorForm(req picker.ColorRequest) {
	events.UI.ColorPrompt(req.Initial)
	m.colorForm = newColorForm(req)
	m.mode = ModeColorForm
}

// handleColorForm claims key presses while the form is open. Everything
// else keeps flowing through the normal handlers.
func (m *Model) handleColorForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.colorForm == nil {
		return false, nil
	}
	if _, ok := msg.(tea.KeyMsg); !ok {
		return false, nil
	}
	cmd, done, cancel := m.colorForm.Update(msg)
	if done || cancel {
		m.colorForm = nil
		m.mode = ModeMenu
		if m.colors != nil {
			cmd = tea.Batch(cmd, waitForColorRequest(m.colors))
		}
	}
	return true, cmd
}

func (m *Model) viewColorFormWithHeader(header string) string {
	lines := []string{}
	if header != "" {
		lines = append(lines, header)
	}
	lines = append(lines, m.colorForm.Title(), "", m.colorForm.InputView())
	if swatch := renderSwatch(m.colorForm.Value()); swatch != "" {
		lines = append(lines, "", swatch)
	}
	if err := m.colorForm.Error(); err != "" {
		lines = append(lines, "", styles.Error.Render(err))
	}
	lines = append(lines, "", m.colorForm.Help())
	return strings.Join(lines, "\n")
}
