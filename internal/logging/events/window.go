package events

import "github.com/atomicstack/overlay-player-control/internal/logging"

type WindowTracer struct{}

var Window = WindowTracer{}

func (WindowTracer) Create(handle string, x, y, width, height int) {
	logging.Trace("window.create", map[string]interface{}{
		"handle": handle,
		"x":      x,
		"y":      y,
		"width":  width,
		"height": height,
	})
}

func (WindowTracer) Close(handle string, remaining int) {
	logging.Trace("window.close", map[string]interface{}{"handle": handle, "remaining": remaining})
}

func (WindowTracer) Focus(handle string) {
	logging.Trace("window.focus", map[string]interface{}{"handle": handle})
}

func (WindowTracer) ClickThrough(handle string, ignore bool) {
	logging.Trace("window.click-through", map[string]interface{}{"handle": handle, "ignore": ignore})
}

func (WindowTracer) Resize(handle string, scale float64, width, height int) {
	logging.Trace("window.resize", map[string]interface{}{
		"handle": handle,
		"scale":  scale,
		"width":  width,
		"height": height,
	})
}

func (WindowTracer) Move(handle string, x, y int) {
	logging.Trace("window.move", map[string]interface{}{"handle": handle, "x": x, "y": y})
}
