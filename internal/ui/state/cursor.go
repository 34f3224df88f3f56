package state

// MoveCursor moves the cursor by delta, wrapping at both ends.
func (l *Level) MoveCursor(delta int) bool {
	n := len(l.Items)
	if n == 0 || delta == 0 {
		return false
	}
	next := ((l.Cursor+delta)%n + n) % n
	if next == l.Cursor {
		return false
	}
	l.Cursor = next
	return true
}

// MoveCursorHome jumps to the first item.
func (l *Level) MoveCursorHome() bool {
	if len(l.Items) == 0 || l.Cursor == 0 {
		return false
	}
	l.Cursor = 0
	return true
}

// MoveCursorEnd jumps to the last item.
func (l *Level) MoveCursorEnd() bool {
	last := len(l.Items) - 1
	if last < 0 || l.Cursor == last {
		return false
	}
	l.Cursor = last
	return true
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	l.clampCursor()
	if len(l.Items) == 0 || maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if l.Cursor >= l.ViewportOffset+maxVisible {
		l.ViewportOffset = l.Cursor - maxVisible + 1
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
}
