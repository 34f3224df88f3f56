package ui

import (
	"testing"

	"github.com/atomicstack/overlay-player-control/internal/broadcast"
	"github.com/atomicstack/overlay-player-control/internal/menu"
	"github.com/atomicstack/overlay-player-control/internal/picker"
	"github.com/atomicstack/overlay-player-control/internal/router"
	tea "github.com/charmbracelet/bubbletea"
)

func TestHandleTextInputFilters(t *testing.T) {
	f := newFixture(t, menu.Linux)
	f.selectPath(t, menu.IDFile)
	current := f.model().currentLevel()

	f.typeText("toggle sl")
	if current.Filter != "toggle sl" {
		t.Fatalf("expected filter 'toggle sl', got %q", current.Filter)
	}
	if len(current.Items) != 1 || current.Items[0].ID != menu.IDToggleSlider {
		t.Fatalf("expected only the slider toggle, got %#v", current.Items)
	}

	f.key(tea.KeyBackspace)
	if current.Filter != "toggle s" {
		t.Fatalf("expected backspace to drop a rune, got %q", current.Filter)
	}
	f.key(tea.KeyCtrlU)
	if current.Filter != "" || len(current.Items) != len(current.Full) {
		t.Fatalf("expected ctrl+u to clear the filter")
	}
}

func TestAltArrowsMoveFocusedWindow(t *testing.T) {
	f := newFixture(t, menu.Linux)
	w, _ := f.newWindow(t)
	x, y := w.Surface.Position()

	f.harness.Send(tea.KeyMsg{Type: tea.KeyRight, Alt: true})
	f.harness.Send(tea.KeyMsg{Type: tea.KeyDown, Alt: true})
	f.harness.Send(tea.KeyMsg{Type: tea.KeyDown, Alt: true})

	if gx, gy := f.router.WindowPosition(w.Handle); gx != x+moveStep || gy != y+2*moveStep {
		t.Fatalf("expected (%d,%d), got (%d,%d)", x+moveStep, y+2*moveStep, gx, gy)
	}
}

func TestPlaybackKeysRelayToFocusedWindow(t *testing.T) {
	f := newFixture(t, menu.Linux)
	_, panel := f.newWindow(t)

	f.harness.Send(tea.KeyMsg{Type: tea.KeySpace, Alt: true})
	if !panel.Snapshot().Paused {
		t.Fatalf("expected alt+space to pause")
	}
	f.alt('r')
	if got := panel.Snapshot().Current; got != bundleDir+"/b.webm" {
		t.Fatalf("expected random to pick the other video, got %q", got)
	}
	f.alt('p')
	if got := panel.Snapshot().Current; got != bundleDir+"/a.mp4" {
		t.Fatalf("expected previous to return to a.mp4, got %q", got)
	}
}

func TestWindowKeysIgnoredWhilePickerOpen(t *testing.T) {
	f := newFixture(t, menu.Linux)
	w, _ := f.newWindow(t)
	// leave the picker outstanding by never running its command
	if cmd := f.router.Dispatch(router.SelectVideo{Requester: w.Handle}); cmd == nil {
		t.Fatalf("expected picker command")
	}
	cmd, handled := f.model().handleAccelerator(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v"), Alt: true})
	if !handled || cmd != nil {
		t.Fatalf("expected alt+v swallowed while picking, got handled=%v cmd=%v", handled, cmd != nil)
	}
}

func TestWindowRequestsDroppedWhilePickerOpen(t *testing.T) {
	f := newFixture(t, menu.Linux)
	w, _ := f.newWindow(t)
	f.router.Dispatch(router.SelectVideo{Requester: w.Handle})
	f.router.Broadcaster().Notify(broadcast.To(w.Handle), broadcast.SelectVideo, nil)
	if cmds := f.model().deliver(); len(cmds) != 0 {
		t.Fatalf("expected duplicate request dropped, got %d commands", len(cmds))
	}
}

// messagesOf runs cmd and flattens batches without running anything the
// resulting messages would trigger.
func messagesOf(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, next := range msg {
			out = append(out, messagesOf(next)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}

func TestRepeatedSelectVideoOpensOnePicker(t *testing.T) {
	f := newFixture(t, menu.Linux)
	f.newWindow(t)
	f.files.Result = picker.Selected(bundleDir + "/b.webm")
	m := f.model()

	_, first := m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	_, second := m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	requests := append(messagesOf(first), messagesOf(second)...)
	if len(requests) != 2 {
		t.Fatalf("expected both presses to reach the window, got %d requests", len(requests))
	}

	var pickers []tea.Cmd
	for _, msg := range requests {
		if _, cmd := m.Update(msg); cmd != nil {
			pickers = append(pickers, cmd)
		}
	}
	for _, cmd := range pickers {
		f.harness.processCmd(cmd)
	}
	if got := len(f.files.Calls); got != 1 {
		t.Fatalf("expected one file picker for the window, got %d", got)
	}
}

func TestTabCyclesFocus(t *testing.T) {
	f := newFixture(t, menu.Linux)
	first, _ := f.newWindow(t)
	f.newWindow(t)
	f.key(tea.KeyTab)
	if w, _ := f.router.Windows().Focused(); w.Handle != first.Handle {
		t.Fatalf("expected focus to wrap to the first window")
	}
}
