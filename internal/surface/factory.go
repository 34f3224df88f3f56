package surface

import (
	"github.com/atomicstack/overlay-player-control/internal/window"
)

// Factory creates panels and keeps them addressable by handle. It is used
// from the event loop only.
type Factory struct {
	panels map[window.Handle]*Panel
}

func NewFactory() *Factory {
	return &Factory{panels: make(map[window.Handle]*Panel)}
}

func (f *Factory) Create(spec window.Spec) (window.Surface, error) {
	p := NewPanel(spec)
	f.panels[spec.Handle] = p
	return p, nil
}

// Panel returns the live panel for h.
func (f *Factory) Panel(h window.Handle) (*Panel, bool) {
	p, ok := f.panels[h]
	if !ok || p.Closed() {
		return nil, false
	}
	return p, true
}

// Prune forgets closed panels.
func (f *Factory) Prune() {
	for h, p := range f.panels {
		if p.Closed() {
			delete(f.panels, h)
		}
	}
}

func (f *Factory) Len() int {
	return len(f.panels)
}
