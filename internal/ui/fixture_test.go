package ui

import (
	"context"
	"testing"

	"github.com/atomicstack/overlay-player-control/internal/menu"
	"github.com/atomicstack/overlay-player-control/internal/router"
	"github.com/atomicstack/overlay-player-control/internal/settings"
	"github.com/atomicstack/overlay-player-control/internal/state"
	"github.com/atomicstack/overlay-player-control/internal/surface"
	"github.com/atomicstack/overlay-player-control/internal/testutil"
	"github.com/atomicstack/overlay-player-control/internal/window"
	tea "github.com/charmbracelet/bubbletea"
)

const bundleDir = "/bundle/videos"

type fixture struct {
	harness *Harness
	router  *router.Router
	panels  *surface.Factory
	persist *testutil.Persister
	files   *testutil.FilePicker
	folders *testutil.FolderPicker
	colors  *testutil.ColorPicker
	watcher *testutil.Watcher
	library *testutil.Library
}

func newFixture(t *testing.T, platform menu.Platform) *fixture {
	t.Helper()
	f := &fixture{
		panels:  surface.NewFactory(),
		persist: &testutil.Persister{},
		files:   &testutil.FilePicker{},
		folders: &testutil.FolderPicker{},
		colors:  &testutil.ColorPicker{},
		watcher: &testutil.Watcher{},
		library: &testutil.Library{
			Default: bundleDir,
			Listing: map[string][]string{bundleDir: {bundleDir + "/a.mp4", bundleDir + "/b.webm"}},
		},
	}
	f.router = router.New(router.Options{
		Context:   context.Background(),
		State:     state.New(settings.Defaults()),
		Persist:   f.persist,
		Factory:   f.panels,
		Library:   f.library,
		Watcher:   f.watcher,
		Files:     f.files,
		Folders:   f.folders,
		Colors:    f.colors,
		Platform:  platform,
		VideosDir: "/home/user/Videos",
	})
	model := NewModel(Options{Router: f.router, Panels: f.panels, Width: 80, Height: 40})
	f.harness = NewHarness(model)
	return f
}

func (f *fixture) model() *Model {
	return f.harness.Model()
}

func (f *fixture) key(k tea.KeyType) {
	f.harness.Send(tea.KeyMsg{Type: k})
}

func (f *fixture) alt(r rune) {
	f.harness.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true})
}

func (f *fixture) typeText(s string) {
	f.harness.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (f *fixture) newWindow(t *testing.T) (*window.Window, *surface.Panel) {
	t.Helper()
	f.key(tea.KeyCtrlN)
	w, ok := f.router.Windows().Focused()
	if !ok {
		t.Fatalf("expected a focused window after ctrl+n")
	}
	p, ok := f.panels.Panel(w.Handle)
	if !ok {
		t.Fatalf("expected a panel for %s", w.Handle)
	}
	return w, p
}

// selectPath walks the menu by item ids from the current level and presses
// enter on each.
func (f *fixture) selectPath(t *testing.T, ids ...string) {
	t.Helper()
	for _, id := range ids {
		current := f.model().currentLevel()
		idx := current.IndexOf(id)
		if idx < 0 {
			t.Fatalf("item %q not found in level %q: %#v", id, current.ID, current.Items)
		}
		current.Cursor = idx
		f.key(tea.KeyEnter)
	}
}
