package state

import (
	"github.com/atomicstack/overlay-player-control/internal/menu"
	"github.com/atomicstack/overlay-player-control/internal/window"
)

// Level is one entry on the menu stack.
type Level struct {
	ID             string
	Title          string
	Items          []menu.Item
	Full           []menu.Item
	Filter         string
	Cursor         int
	LastCursor     int
	ViewportOffset int
	// Target is the window a context menu was opened for. Zero for the
	// application menu.
	Target window.Handle
}

// NewLevel builds a level from items, dropping separators.
func NewLevel(id, title string, items []menu.Item) *Level {
	l := &Level{ID: id, Title: title, LastCursor: -1}
	l.UpdateItems(items)
	return l
}

// UpdateItems replaces the level's items. The cursor follows the previously
// selected id when it still exists.
func (l *Level) UpdateItems(items []menu.Item) {
	current := ""
	if item, ok := l.Current(); ok {
		current = item.ID
	}
	l.Full = selectable(items)
	l.applyFilter()
	if current == "" {
		l.clampCursor()
		return
	}
	if idx := l.IndexOf(current); idx >= 0 {
		l.Cursor = idx
		return
	}
	l.clampCursor()
}

// Current returns the item under the cursor.
func (l *Level) Current() (menu.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// IndexOf returns the visible index of id, or -1.
func (l *Level) IndexOf(id string) int {
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func selectable(items []menu.Item) []menu.Item {
	out := make([]menu.Item, 0, len(items))
	for _, item := range items {
		if item.Separator {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (l *Level) clampCursor() {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
}
