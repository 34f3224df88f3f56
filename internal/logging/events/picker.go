package events

import "github.com/atomicstack/overlay-player-control/internal/logging"

type PickerTracer struct{}

var Picker = PickerTracer{}

func (PickerTracer) Open(kind, requester, defaultValue string) {
	logging.Trace("picker.open", map[string]interface{}{
		"kind":      kind,
		"requester": requester,
		"default":   defaultValue,
	})
}

func (PickerTracer) Selected(kind, requester, value string) {
	logging.Trace("picker.selected", map[string]interface{}{"kind": kind, "requester": requester, "value": value})
}

func (PickerTracer) Cancelled(kind, requester string) {
	logging.Trace("picker.cancelled", map[string]interface{}{"kind": kind, "requester": requester})
}

func (PickerTracer) Failed(kind, requester string, err error) {
	payload := map[string]interface{}{"kind": kind, "requester": requester}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("picker.failed", payload)
}
