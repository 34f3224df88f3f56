package window

// Registry tracks live windows in creation order along with the focused one.
// It is owned by the event loop and is not safe for concurrent use; callers
// that hand windows to other goroutines use the copy returned by All.
type Registry struct {
	windows []*Window
	focused Handle
	seq     int
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds w. Registering a handle twice is ignored.
func (r *Registry) Register(w *Window) {
	if w == nil {
		return
	}
	if _, ok := r.Lookup(w.Handle); ok {
		return
	}
	r.seq++
	w.Seq = r.seq
	if w.Scale == 0 {
		w.Scale = ScaleMedium
	}
	r.windows = append(r.windows, w)
}

// Unregister removes h and reports whether it was present. When the focused
// window goes away focus moves to the newest remaining window.
func (r *Registry) Unregister(h Handle) bool {
	idx := r.indexOf(h)
	if idx < 0 {
		return false
	}
	r.windows = append(r.windows[:idx], r.windows[idx+1:]...)
	if r.focused == h {
		r.focused = ""
		if n := len(r.windows); n > 0 {
			r.focused = r.windows[n-1].Handle
		}
	}
	return true
}

// All returns a snapshot of the live windows in creation order.
func (r *Registry) All() []*Window {
	if len(r.windows) == 0 {
		return nil
	}
	dup := make([]*Window, len(r.windows))
	copy(dup, r.windows)
	return dup
}

func (r *Registry) Len() int {
	return len(r.windows)
}

func (r *Registry) Lookup(h Handle) (*Window, bool) {
	idx := r.indexOf(h)
	if idx < 0 {
		return nil, false
	}
	return r.windows[idx], true
}

// Focus marks h as focused. Unknown handles are ignored.
func (r *Registry) Focus(h Handle) bool {
	if r.indexOf(h) < 0 {
		return false
	}
	r.focused = h
	return true
}

func (r *Registry) Focused() (*Window, bool) {
	if r.focused == "" {
		return nil, false
	}
	return r.Lookup(r.focused)
}

// FocusNext moves focus to the next window in creation order, wrapping around.
func (r *Registry) FocusNext() (*Window, bool) {
	if len(r.windows) == 0 {
		return nil, false
	}
	next := 0
	if idx := r.indexOf(r.focused); idx >= 0 {
		next = (idx + 1) % len(r.windows)
	}
	r.focused = r.windows[next].Handle
	return r.windows[next], true
}

func (r *Registry) indexOf(h Handle) int {
	if h == "" {
		return -1
	}
	for i, w := range r.windows {
		if w.Handle == h {
			return i
		}
	}
	return -1
}
