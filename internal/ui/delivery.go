package ui

import (
	"github.com/atomicstack/overlay-player-control/internal/library"
	"github.com/atomicstack/overlay-player-control/internal/logging"
	"github.com/atomicstack/overlay-player-control/internal/logging/events"
	"github.com/atomicstack/overlay-player-control/internal/picker"
	"github.com/atomicstack/overlay-player-control/internal/router"
	tea "github.com/charmbracelet/bubbletea"
)

// deliver drains every live window's mailbox into its panel. Requests the
// panels make in response come back as commands yielding intents.
func (m *Model) deliver() []tea.Cmd {
	var cmds []tea.Cmd
	bus := m.router.Broadcaster()
	for _, w := range m.router.Windows().All() {
		box, ok := bus.Mailbox(w.Handle)
		if !ok {
			continue
		}
		panel, ok := m.panels.Panel(w.Handle)
		if !ok {
			continue
		}
		for _, msg := range box.Drain() {
			res := m.dispatcher.Handle(panel, msg)
			for _, in := range res.Intents {
				if m.router.Picking(w.Handle) {
					events.Command.NoOp(in.Name(), "picker already open")
					continue
				}
				cmds = append(cmds, emit(in))
			}
		}
	}
	m.panels.Prune()
	return cmds
}

func emit(in router.Intent) tea.Cmd {
	return func() tea.Msg { return in }
}

func waitForLibraryEvent(src LibraryEvents) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-src.Events()
		if !ok {
			return libraryDoneMsg{}
		}
		return libraryEventMsg{event: evt}
	}
}

type libraryEventMsg struct {
	event library.Event
}

type libraryDoneMsg struct{}

func (m *Model) handleLibraryEventMsg(msg tea.Msg) tea.Cmd {
	evt, ok := msg.(libraryEventMsg)
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	if evt.event.Err != nil {
		logging.Error(evt.event.Err)
		m.errMsg = evt.event.Err.Error()
	} else {
		cmd = m.dispatch(router.LibraryChanged{Dir: evt.event.Dir})
	}
	if m.library == nil {
		return cmd
	}
	return tea.Batch(cmd, waitForLibraryEvent(m.library))
}

func (m *Model) handleLibraryDoneMsg(tea.Msg) tea.Cmd {
	m.library = nil
	return nil
}

func waitForColorRequest(src ColorRequests) tea.Cmd {
	return func() tea.Msg {
		req, ok := <-src.Requests()
		if !ok {
			return colorRequestsClosedMsg{}
		}
		return colorRequestMsg{request: req}
	}
}

type colorRequestMsg struct {
	request picker.ColorRequest
}

type colorRequestsClosedMsg struct{}

func (m *Model) handleColorRequestMsg(msg tea.Msg) tea.Cmd {
	req, ok := msg.(colorRequestMsg)
	if !ok {
		return nil
	}
	m.startColorForm(req.request)
	return nil
}

func (m *Model) handleColorRequestsClosedMsg(tea.Msg) tea.Cmd {
	m.colors = nil
	return nil
}
