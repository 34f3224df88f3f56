package ui

import (
	"fmt"

	"github.com/atomicstack/overlay-player-control/internal/logging/events"
	"github.com/atomicstack/overlay-player-control/internal/menu"
	"github.com/atomicstack/overlay-player-control/internal/router"
	"github.com/atomicstack/overlay-player-control/internal/ui/command"
	uistate "github.com/atomicstack/overlay-player-control/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleEscapeKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	if current.ClearFilter() {
		events.Filter.Cleared(current.ID)
		m.syncViewport(current)
		return nil
	}
	if len(m.stack) <= 1 {
		return nil
	}
	m.stack = m.stack[:len(m.stack)-1]
	if parent := m.currentLevel(); parent != nil {
		if idx := parent.IndexOf(current.ID); idx >= 0 {
			parent.Cursor = idx
		}
		m.syncViewport(parent)
	}
	m.errMsg = ""
	m.forceClearInfo()
	return nil
}

// handleEnterKey opens the submenu under the cursor or runs its intent.
func (m *Model) handleEnterKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	item, ok := current.Current()
	if !ok {
		return nil
	}
	events.UI.MenuEnter(current.ID, item.ID, item.Label, current.Filter)
	current.ClearFilter()

	if current.Target != "" {
		in, ok := router.ContextActions(current.Target)[item.ID]
		m.stack = m.stack[:len(m.stack)-1]
		if !ok {
			return nil
		}
		return m.bus.Execute(command.Request{ID: item.ID, Label: item.Label, Intent: in})
	}

	if node, ok := m.tree.Find(item.ID); ok && !node.Leaf() {
		lvl := uistate.NewLevel(node.ID, node.Label, node.Items())
		m.syncViewport(lvl)
		m.stack = append(m.stack, lvl)
		m.errMsg = ""
		m.forceClearInfo()
		return nil
	}

	in, ok := router.MenuActions()[item.ID]
	if !ok {
		if item.Role != "" {
			m.setInfo(fmt.Sprintf("%s is provided by the operating system", item.Label))
		}
		return m.bus.Execute(command.Request{ID: item.ID, Label: item.Label})
	}
	m.errMsg = ""
	m.forceClearInfo()
	return m.bus.Execute(command.Request{ID: item.ID, Label: item.Label, Intent: in})
}

func (m *Model) moveCursor(delta int) {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursor(delta) {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorHome() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorHome() {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorEnd() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorEnd() {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.mode != ModeMenu {
		return nil
	}
	if cmd, ok := m.handleAccelerator(keyMsg); ok {
		return cmd
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return m.dispatch(router.Quit{})
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "up":
		m.moveCursor(-1)
	case "down":
		m.moveCursor(1)
	case "pgup":
		m.moveCursor(-m.pageSize())
	case "pgdown":
		m.moveCursor(m.pageSize())
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	}
	return nil
}

func (m *Model) pageSize() int {
	if n := m.maxVisibleItems(); n > 0 {
		return n
	}
	return 1
}

// handleContextMenuMsg pushes a window's context menu. Only one context
// menu is open at a time.
func (m *Model) handleContextMenuMsg(msg tea.Msg) tea.Cmd {
	ctxMsg, ok := msg.(router.ContextMenuMsg)
	if !ok || ctxMsg.Tree == nil {
		return nil
	}
	if current := m.currentLevel(); current != nil && current.Target != "" {
		m.stack = m.stack[:len(m.stack)-1]
	}
	root := ctxMsg.Tree.Root()
	lvl := uistate.NewLevel(menu.IDContext, root.Label+" "+ctxMsg.Requester.Short(), root.Items())
	lvl.Target = ctxMsg.Requester
	m.syncViewport(lvl)
	m.stack = append(m.stack, lvl)
	events.UI.ContextMenu(string(ctxMsg.Requester))
	return nil
}

func (m *Model) currentLevel() *level {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}
