// Package surface provides the console's in-process window surfaces. A Panel
// stands in for a native overlay window and the renderer inside it: the
// router moves and sizes it, and the message dispatcher feeds it playback
// state.
package surface

import (
	"math/rand"
	"path/filepath"
	"sync"

	"github.com/atomicstack/overlay-player-control/internal/window"
)

const historyLimit = 32

// Panel is safe for concurrent use; the router and the view read it from the
// event loop while tests inspect it directly.
type Panel struct {
	handle window.Handle

	mu           sync.Mutex
	pos          window.Point
	size         window.Size
	canvas       window.Size
	clickThrough bool
	closed       bool

	videos   []string
	current  string
	history  []string
	paused   bool
	slider   bool
	trans    bool
	chroma   string
	activity []string

	intn func(int) int
}

func NewPanel(spec window.Spec) *Panel {
	return &Panel{
		handle: spec.Handle,
		pos:    spec.Position,
		size:   spec.Size,
		canvas: spec.Size,
		intn:   rand.Intn,
	}
}

func (p *Panel) Handle() window.Handle {
	return p.handle
}

func (p *Panel) SetClickThrough(ignore bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clickThrough = ignore
}

func (p *Panel) SetPosition(x, y int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pos = window.Point{X: x, Y: y}
}

func (p *Panel) SetSize(width, height int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.size = window.Size{Width: width, Height: height}
}

func (p *Panel) Position() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pos.X, p.pos.Y
}

func (p *Panel) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
}

func (p *Panel) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// SetVideos replaces the playlist. Playback starts on the first video when
// nothing is playing or the current video is no longer listed.
func (p *Panel) SetVideos(paths []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.videos = append([]string(nil), paths...)
	if len(p.videos) == 0 {
		p.current = ""
		return
	}
	if p.current == "" || indexOf(p.videos, p.current) < 0 {
		p.playLocked(p.videos[0])
	}
}

// Play switches to path.
func (p *Panel) Play(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playLocked(path)
}

func (p *Panel) playLocked(path string) {
	if p.current != "" && p.current != path {
		p.history = append(p.history, p.current)
		if len(p.history) > historyLimit {
			p.history = p.history[len(p.history)-historyLimit:]
		}
	}
	p.current = path
	p.paused = false
}

func (p *Panel) TogglePause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current != "" {
		p.paused = !p.paused
	}
}

// PlayRandom picks a different video from the playlist when there is one.
func (p *Panel) PlayRandom() {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := len(p.videos)
	if n == 0 {
		return
	}
	if n == 1 {
		p.playLocked(p.videos[0])
		return
	}
	idx := p.intn(n - 1)
	if cur := indexOf(p.videos, p.current); cur >= 0 && idx >= cur {
		idx++
	}
	p.playLocked(p.videos[idx])
}

// PlayPrevious returns to the last video played before the current one.
func (p *Panel) PlayPrevious() {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := len(p.history)
	if n == 0 {
		return
	}
	prev := p.history[n-1]
	p.history = p.history[:n-1]
	p.current = prev
	p.paused = false
}

func (p *Panel) SetSliderVisible(v bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.slider = v
}

func (p *Panel) SetTransparency(v bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.trans = v
}

func (p *Panel) SetChromaKeyColor(color string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.chroma = color
}

// FitCanvas resizes the drawing canvas to the current window size.
func (p *Panel) FitCanvas() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.canvas = p.size
}

// Record appends a line to the panel's recent activity.
func (p *Panel) Record(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activity = append(p.activity, line)
	if len(p.activity) > historyLimit {
		p.activity = p.activity[len(p.activity)-historyLimit:]
	}
}

// Snapshot is a point-in-time copy of a panel for rendering.
type Snapshot struct {
	Handle         window.Handle
	Position       window.Point
	Size           window.Size
	Canvas         window.Size
	ClickThrough   bool
	Videos         []string
	Current        string
	Paused         bool
	SliderVisible  bool
	Transparent    bool
	ChromaKeyColor string
	Activity       []string
}

// CurrentName returns the base name of the playing video.
func (s Snapshot) CurrentName() string {
	if s.Current == "" {
		return ""
	}
	return filepath.Base(s.Current)
}

func (p *Panel) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		Handle:         p.handle,
		Position:       p.pos,
		Size:           p.size,
		Canvas:         p.canvas,
		ClickThrough:   p.clickThrough,
		Videos:         append([]string(nil), p.videos...),
		Current:        p.current,
		Paused:         p.paused,
		SliderVisible:  p.slider,
		Transparent:    p.trans,
		ChromaKeyColor: p.chroma,
		Activity:       append([]string(nil), p.activity...),
	}
}

func indexOf(list []string, v string) int {
	for i, item := range list {
		if item == v {
			return i
		}
	}
	return -1
}
