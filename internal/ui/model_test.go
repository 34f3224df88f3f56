package ui

import (
	"errors"
	"testing"

	"github.com/atomicstack/overlay-player-control/internal/library"
	"github.com/atomicstack/overlay-player-control/internal/menu"
	"github.com/atomicstack/overlay-player-control/internal/picker"
	tea "github.com/charmbracelet/bubbletea"
)

func TestNewModelShowsApplicationMenu(t *testing.T) {
	f := newFixture(t, menu.Linux)
	root := f.model().currentLevel()
	if root.ID != menu.RootID {
		t.Fatalf("expected root level, got %q", root.ID)
	}
	if root.IndexOf(menu.IDFile) < 0 {
		t.Fatalf("expected File submenu at the root, got %#v", root.Items)
	}
	if root.IndexOf(menu.IDApp) >= 0 {
		t.Fatalf("app submenu is darwin only")
	}
	if got := f.model().menuHeader(); got != defaultRootTitle {
		t.Fatalf("expected header %q, got %q", defaultRootTitle, got)
	}
}

func TestNewWindowReceivesCurrentSettings(t *testing.T) {
	f := newFixture(t, menu.Linux)
	_, panel := f.newWindow(t)
	snap := panel.Snapshot()
	if snap.ChromaKeyColor != "#000000" {
		t.Fatalf("expected default chroma key colour, got %q", snap.ChromaKeyColor)
	}
	if len(snap.Videos) != 2 || snap.Current != bundleDir+"/a.mp4" {
		t.Fatalf("expected bundled videos with the first playing, got %#v", snap)
	}
	if snap.ClickThrough {
		t.Fatalf("locked windows must not be click-through")
	}
}

func TestToggleLockRelabelsOpenMenu(t *testing.T) {
	f := newFixture(t, menu.Linux)
	f.newWindow(t)
	f.selectPath(t, menu.IDFile)
	file := f.model().currentLevel()
	if idx := file.IndexOf(menu.IDLock); file.Items[idx].Label != "Unlock Window" {
		t.Fatalf("expected Unlock Window while locked, got %q", file.Items[idx].Label)
	}
	f.selectPath(t, menu.IDLock)
	file = f.model().currentLevel()
	if file.ID != menu.IDFile {
		t.Fatalf("expected to stay in the File menu, got %q", file.ID)
	}
	item, _ := file.Current()
	if item.ID != menu.IDLock || item.Label != "Lock Window" {
		t.Fatalf("expected cursor on relabelled lock item, got %#v", item)
	}
	if s, ok := f.persist.Last(); !ok || s.WindowLocked {
		t.Fatalf("expected unlocked settings saved, got %#v", s)
	}
}

func TestMenuSelectVideoRoutesThroughFocusedWindow(t *testing.T) {
	f := newFixture(t, menu.Linux)
	f.newWindow(t)
	_, panel := f.newWindow(t)
	f.files.Result = picker.Selected("/elsewhere/clip.webm")

	f.key(tea.KeyCtrlO)

	if len(f.files.Calls) != 1 {
		t.Fatalf("expected one file picker call, got %d", len(f.files.Calls))
	}
	if got := f.files.Calls[0].Default; got != bundleDir {
		t.Fatalf("expected picker to start in %s, got %s", bundleDir, got)
	}
	if got := panel.Snapshot().Current; got != "/elsewhere/clip.webm" {
		t.Fatalf("expected focused window to play the pick, got %q", got)
	}
}

func TestCancelledVideoPickKeepsPlaying(t *testing.T) {
	f := newFixture(t, menu.Linux)
	_, panel := f.newWindow(t)
	f.files.Result = picker.Cancelled

	f.alt('v')

	if got := panel.Snapshot().Current; got != bundleDir+"/a.mp4" {
		t.Fatalf("expected playback unchanged, got %q", got)
	}
	if f.router.Picking(panel.Handle()) {
		t.Fatalf("expected picker to be settled")
	}
}

func TestCustomColourFromMenu(t *testing.T) {
	f := newFixture(t, menu.Linux)
	_, panel := f.newWindow(t)
	f.colors.Result = picker.Selected("#123456")

	f.selectPath(t, menu.IDFile, menu.IDChroma, menu.IDChromaCustom)

	if len(f.colors.Initial) != 1 || f.colors.Initial[0] != "#000000" {
		t.Fatalf("expected picker seeded with current colour, got %#v", f.colors.Initial)
	}
	if got := panel.Snapshot().ChromaKeyColor; got != "#123456" {
		t.Fatalf("expected panel colour #123456, got %q", got)
	}
	if got := f.router.Settings().ChromaKeyColor; got != "#123456" {
		t.Fatalf("expected stored colour #123456, got %q", got)
	}
}

func TestLibraryEventReloadsEveryWindow(t *testing.T) {
	f := newFixture(t, menu.Linux)
	_, first := f.newWindow(t)
	_, second := f.newWindow(t)
	f.library.Listing[bundleDir] = []string{bundleDir + "/c.mp4"}

	f.harness.Send(libraryEventMsg{event: library.Event{Dir: bundleDir}})

	if got := first.Snapshot().Current; got != bundleDir+"/c.mp4" {
		t.Fatalf("expected first window reloaded, got %q", got)
	}
	if got := second.Snapshot().Videos; len(got) != 1 {
		t.Fatalf("expected second window reloaded, got %#v", got)
	}
}

func TestLibraryEventErrorIsShown(t *testing.T) {
	f := newFixture(t, menu.Linux)
	f.harness.Send(libraryEventMsg{event: library.Event{Dir: bundleDir, Err: errors.New("watch lost")}})
	if f.model().errMsg != "watch lost" {
		t.Fatalf("expected watcher error surfaced, got %q", f.model().errMsg)
	}
}

func TestShortcutsWithoutWindowsAreNoOps(t *testing.T) {
	f := newFixture(t, menu.Linux)
	f.key(tea.KeyCtrlL)
	f.key(tea.KeyCtrlT)
	if len(f.persist.Saved) != 0 {
		t.Fatalf("expected nothing saved without windows, got %d", len(f.persist.Saved))
	}
	if !f.router.Settings().WindowLocked || f.router.Settings().SliderVisible {
		t.Fatalf("expected settings untouched, got %#v", f.router.Settings())
	}
}

func TestClosingLastWindowQuitsOffDarwin(t *testing.T) {
	f := newFixture(t, menu.Linux)
	f.newWindow(t)
	f.key(tea.KeyCtrlW)
	if !f.harness.Quit() {
		t.Fatalf("expected quit after closing the last window")
	}
	if f.harness.View() != "" {
		t.Fatalf("expected empty view once quitting")
	}
}

func TestCtrlCQuitsAndClearsView(t *testing.T) {
	f := newFixture(t, menu.Darwin)
	f.newWindow(t)
	f.key(tea.KeyCtrlC)
	if !f.harness.Quit() || !f.router.Quitting() {
		t.Fatalf("expected ctrl+c to quit")
	}
	if f.harness.View() != "" {
		t.Fatalf("expected empty view once quitting")
	}
}

func TestClosingLastWindowStaysOnDarwin(t *testing.T) {
	f := newFixture(t, menu.Darwin)
	f.newWindow(t)
	f.key(tea.KeyCtrlW)
	if f.harness.Quit() {
		t.Fatalf("darwin keeps running with no windows")
	}
	f.harness.Send(tea.FocusMsg{})
	if f.router.Windows().Len() != 1 {
		t.Fatalf("expected regaining focus to reopen a window")
	}
	f.harness.Send(tea.FocusMsg{})
	if f.router.Windows().Len() != 1 {
		t.Fatalf("expected focus with an open window to change nothing, got %d windows", f.router.Windows().Len())
	}
}
