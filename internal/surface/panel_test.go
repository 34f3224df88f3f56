package surface

import (
	"testing"

	"github.com/atomicstack/overlay-player-control/internal/window"
)

func newTestPanel() *Panel {
	return NewPanel(window.Spec{
		Handle:   window.NewHandle(),
		Position: window.CascadePosition(0),
		Size:     window.SizeForScale(window.ScaleMedium),
	})
}

func TestPanelGeometry(t *testing.T) {
	p := newTestPanel()
	if x, y := p.Position(); x != 100 || y != 100 {
		t.Fatalf("expected 100,100 got %d,%d", x, y)
	}
	p.SetSize(330, 353)
	if snap := p.Snapshot(); snap.Canvas.Width != 660 {
		t.Fatalf("expected canvas unchanged before resize-canvas, got %+v", snap.Canvas)
	}
	p.FitCanvas()
	if snap := p.Snapshot(); snap.Canvas != (window.Size{Width: 330, Height: 353}) {
		t.Fatalf("expected canvas fitted, got %+v", snap.Canvas)
	}
}

func TestPanelPlaylist(t *testing.T) {
	p := newTestPanel()
	p.SetVideos([]string{"/v/a.webm", "/v/b.mp4", "/v/c.mp4"})
	if snap := p.Snapshot(); snap.Current != "/v/a.webm" || snap.CurrentName() != "a.webm" {
		t.Fatalf("expected first video playing, got %q", snap.Current)
	}

	p.Play("/v/c.mp4")
	p.TogglePause()
	if !p.Snapshot().Paused {
		t.Fatalf("expected paused")
	}
	p.PlayPrevious()
	snap := p.Snapshot()
	if snap.Current != "/v/a.webm" || snap.Paused {
		t.Fatalf("expected previous video resumed, got %+v", snap)
	}
	p.PlayPrevious()
	if p.Snapshot().Current != "/v/a.webm" {
		t.Fatalf("expected empty history to keep current video")
	}
}

func TestPanelPlayRandomAvoidsCurrent(t *testing.T) {
	p := newTestPanel()
	p.SetVideos([]string{"/v/a.webm", "/v/b.mp4", "/v/c.mp4"})
	for i := 0; i < 2; i++ {
		pick := i
		p.intn = func(int) int { return pick }
		p.Play("/v/a.webm")
		p.PlayRandom()
		if got := p.Snapshot().Current; got == "/v/a.webm" {
			t.Fatalf("expected a different video, got %s", got)
		}
	}
}

func TestPanelReloadKeepsListedVideo(t *testing.T) {
	p := newTestPanel()
	p.SetVideos([]string{"/v/a.webm", "/v/b.mp4"})
	p.Play("/v/b.mp4")
	p.SetVideos([]string{"/v/b.mp4", "/v/d.mp4"})
	if got := p.Snapshot().Current; got != "/v/b.mp4" {
		t.Fatalf("expected current video kept, got %s", got)
	}
	p.SetVideos(nil)
	if got := p.Snapshot().Current; got != "" {
		t.Fatalf("expected nothing playing, got %s", got)
	}
}

func TestFactoryTracksPanels(t *testing.T) {
	f := NewFactory()
	h := window.NewHandle()
	s, err := f.Create(window.Spec{Handle: h})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, ok := f.Panel(h); !ok {
		t.Fatalf("expected panel lookup to succeed")
	}
	s.Close()
	if _, ok := f.Panel(h); ok {
		t.Fatalf("expected closed panel hidden")
	}
	f.Prune()
	if f.Len() != 0 {
		t.Fatalf("expected closed panel pruned")
	}
}
