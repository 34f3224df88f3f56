package ui

import (
	"testing"

	"github.com/atomicstack/overlay-player-control/internal/menu"
	"github.com/atomicstack/overlay-player-control/internal/settings"
	"github.com/atomicstack/overlay-player-control/internal/window"
	tea "github.com/charmbracelet/bubbletea"
)

func TestSessionAcrossSeveralWindows(t *testing.T) {
	f := newFixture(t, menu.Linux)
	first, firstPanel := f.newWindow(t)
	second, secondPanel := f.newWindow(t)

	if x, y := f.router.WindowPosition(first.Handle); x != 100 || y != 100 {
		t.Fatalf("expected first window at (100,100), got (%d,%d)", x, y)
	}
	if x, y := f.router.WindowPosition(second.Handle); x != 120 || y != 120 {
		t.Fatalf("expected second window cascaded to (120,120), got (%d,%d)", x, y)
	}

	// Preset colour only reaches the focused window.
	f.selectPath(t, menu.IDFile, menu.IDChroma, menu.IDChromaGreen)
	if got := secondPanel.Snapshot().ChromaKeyColor; got != settings.ColorGreen {
		t.Fatalf("expected focused window green, got %q", got)
	}
	if got := firstPanel.Snapshot().ChromaKeyColor; got != settings.DefaultChromaKeyColor {
		t.Fatalf("expected unfocused window unchanged, got %q", got)
	}

	// Slider toggle persists globally and reaches the focused window only.
	f.key(tea.KeyTab)
	f.key(tea.KeyCtrlT)
	if !firstPanel.Snapshot().SliderVisible || secondPanel.Snapshot().SliderVisible {
		t.Fatalf("expected slider shown only in the newly focused window")
	}
	saved, ok := f.persist.Last()
	if !ok || !saved.SliderVisible || saved.ChromaKeyColor != settings.ColorGreen {
		t.Fatalf("expected persisted slider and colour, got %#v", saved)
	}

	// A third window picks up the stored settings.
	_, third := f.newWindow(t)
	snap := third.Snapshot()
	if !snap.SliderVisible || snap.ChromaKeyColor != settings.ColorGreen {
		t.Fatalf("expected new window to start from stored settings, got %#v", snap)
	}
	if snap.Size != window.SizeForScale(window.ScaleMedium) {
		t.Fatalf("expected medium size, got %#v", snap.Size)
	}
}
