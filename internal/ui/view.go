package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/overlay-player-control/internal/format/table"
	"github.com/atomicstack/overlay-player-control/internal/surface"
	"github.com/atomicstack/overlay-player-control/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const footerText = "↑/↓ move  enter select  esc back  tab focus  ctrl+n new  alt+m window menu  ctrl+c quit"

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	header := m.menuHeader()
	if m.mode == ModeColorForm && m.colorForm != nil {
		return m.viewColorFormWithHeader(styles.Header.Render(header))
	}
	return m.viewVertical(header)
}

func (m *Model) viewVertical(header string) string {
	lines := make([]styledLine, 0, 16)
	if header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
	}
	if current := m.currentLevel(); current != nil {
		m.syncViewport(current)
		start := 0
		displayItems := current.Items
		if maxItems := m.maxVisibleItems(); maxItems > 0 && len(displayItems) > maxItems {
			start = current.ViewportOffset
			if start+maxItems > len(displayItems) {
				start = len(displayItems) - maxItems
				current.ViewportOffset = start
			}
			displayItems = displayItems[start : start+maxItems]
		}
		if len(current.Items) == 0 {
			msg := "(no entries)"
			if current.Filter != "" {
				msg = fmt.Sprintf("No matches for %q", current.Filter)
			}
			lines = append(lines, styledLine{text: msg, style: styles.Info})
		} else {
			for i, item := range displayItems {
				lines = append(lines, m.buildItemLine(item.Label, item.Accelerator, start+i, current.Cursor, m.width))
			}
		}
	}
	lines = append(lines, m.windowLines()...)
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerText, style: styles.Footer})
	}
	// Reserve 2 rows for the bottom bar (error/status + prompt).
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	bottomLines := applyWidth([]styledLine{
		statusLine,
		{text: m.filterPrompt(), raw: true},
	}, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

// buildItemLine renders one menu entry. When width > 0 the text is padded
// so the selected item's background spans the full row.
func (m *Model) buildItemLine(label, accel string, idx, cursor, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + label
	if accel != "" {
		fullText += "  (" + accel + ")"
	}
	if width > 0 {
		if pad := width - ansi.StringWidth(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

// windowLines renders the open windows as a table, focused window first
// marked with '*'.
func (m *Model) windowLines() []styledLine {
	wins := m.router.Windows().All()
	lines := []styledLine{{}, {text: fmt.Sprintf("Windows (%d)", len(wins)), style: styles.PanelTitle}}
	if len(wins) == 0 {
		return append(lines, styledLine{text: "no windows open; ctrl+n opens one", style: styles.Info})
	}
	focused := ""
	if w, ok := m.router.Windows().Focused(); ok {
		focused = string(w.Handle)
	}
	rows := make([][]string, 0, len(wins))
	swatches := make([]string, 0, len(wins))
	for _, w := range wins {
		panel, ok := m.panels.Panel(w.Handle)
		if !ok {
			continue
		}
		snap := panel.Snapshot()
		mark := " "
		if string(w.Handle) == focused {
			mark = "*"
		}
		rows = append(rows, []string{
			mark,
			w.Handle.Short(),
			fmt.Sprintf("%d,%d", snap.Position.X, snap.Position.Y),
			fmt.Sprintf("%dx%d", snap.Size.Width, snap.Size.Height),
			flags(snap),
			playing(snap),
		})
		swatches = append(swatches, renderSwatch(snap.ChromaKeyColor))
	}
	aligns := []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight, table.AlignRight}
	for i, row := range table.Format(rows, aligns) {
		lines = append(lines, styledLine{text: row + "  " + swatches[i], raw: true})
	}
	return lines
}

func flags(s surface.Snapshot) string {
	out := []byte("----")
	if !s.ClickThrough {
		out[0] = 'L'
	}
	if s.SliderVisible {
		out[1] = 'S'
	}
	if s.Transparent {
		out[2] = 'T'
	}
	if s.Paused {
		out[3] = 'P'
	}
	return string(out)
}

func playing(s surface.Snapshot) string {
	if name := s.CurrentName(); name != "" {
		return fmt.Sprintf("%s (%d)", name, len(s.Videos))
	}
	return fmt.Sprintf("(idle, %d videos)", len(s.Videos))
}

// renderSwatch shows a colour sample followed by its hex value.
func renderSwatch(hex string) string {
	style, ok := theme.Swatch(hex)
	if !ok {
		return hex
	}
	return style.Render("  ") + " " + hex
}

func (m *Model) menuHeader() string {
	segments := m.headerSegments()
	if len(segments) == 0 {
		return ""
	}
	return strings.Join(segments, menuHeaderSeparator)
}

func (m *Model) headerSegments() []string {
	depth := len(m.stack)
	if depth == 0 {
		return nil
	}
	segments := make([]string, 0, depth)
	segments = append(segments, defaultRootTitle)
	for i := 1; i < depth; i++ {
		if segment := headerSegmentForLevel(m.stack[i]); segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}

func headerSegmentForLevel(l *level) string {
	if l == nil {
		return ""
	}
	if l.Target != "" {
		return strings.ToLower(strings.TrimSpace(l.Title))
	}
	candidate := strings.TrimSpace(l.ID)
	if idx := strings.LastIndex(candidate, ":"); idx >= 0 {
		candidate = candidate[idx+1:]
	}
	candidate = headerSegmentCleaner.Replace(candidate)
	fields := strings.Fields(strings.ToLower(candidate))
	return strings.Join(fields, " ")
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if current := m.currentLevel(); current != nil {
		m.syncViewport(current)
	}
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // bottom bar: error/status + filter prompt
	if header := m.menuHeader(); header != "" {
		used++
	}
	// blank + title + one row per window, or the empty hint
	windows := 1
	if m.router != nil {
		if n := m.router.Windows().Len(); n > 0 {
			windows = n
		}
	}
	used += 2 + windows
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText cuts text to width display cells, ANSI escapes included.
func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return ansi.Truncate(text, 1, "")
	}
	return ansi.Truncate(text, width, "…")
}
