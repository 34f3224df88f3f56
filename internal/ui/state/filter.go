package state

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/atomicstack/overlay-player-control/internal/menu"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter replaces the filter text. The cursor position from before the
// filter was started is restored when the filter is cleared.
func (l *Level) SetFilter(query string) {
	if query == l.Filter {
		return
	}
	if l.Filter == "" && query != "" {
		l.LastCursor = l.Cursor
	}
	l.Filter = query
	l.applyFilter()
	if query == "" {
		if l.LastCursor >= 0 {
			l.Cursor = l.LastCursor
		}
		l.LastCursor = -1
		l.clampCursor()
		return
	}
	l.Cursor = BestMatchIndex(l.Items, query)
}

// AppendFilter adds text to the end of the filter.
func (l *Level) AppendFilter(text string) bool {
	if text == "" {
		return false
	}
	l.SetFilter(l.Filter + text)
	return true
}

// BackspaceFilter removes the last rune of the filter.
func (l *Level) BackspaceFilter() bool {
	if l.Filter == "" {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(l.Filter)
	l.SetFilter(l.Filter[:len(l.Filter)-size])
	return true
}

// ClearFilter drops the filter entirely.
func (l *Level) ClearFilter() bool {
	if l.Filter == "" {
		return false
	}
	l.SetFilter("")
	return true
}

func (l *Level) applyFilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	l.ViewportOffset = 0
}

// FilterItems keeps the items whose label fuzzily matches query, ordered by
// match distance. Ties keep menu order.
func FilterItems(items []menu.Item, query string) []menu.Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]menu.Item(nil), items...)
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	out := make([]menu.Item, 0, len(ranks))
	for _, rank := range ranks {
		out = append(out, items[rank.OriginalIndex])
	}
	return out
}

// BestMatchIndex prefers an item whose label starts with query.
func BestMatchIndex(items []menu.Item, query string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), q) {
			return i
		}
	}
	return 0
}
