package events

import "github.com/atomicstack/overlay-player-control/internal/logging"

type SettingsTracer struct{}

var Settings = SettingsTracer{}

func (SettingsTracer) Load(path string, found bool) {
	logging.Trace("settings.load", map[string]interface{}{"path": path, "found": found})
}

// FieldRejected records a persisted or requested value that failed validation.
func (SettingsTracer) FieldRejected(field, value, reason string) {
	logging.Trace("settings.field.rejected", map[string]interface{}{
		"field":  field,
		"value":  value,
		"reason": reason,
	})
}

func (SettingsTracer) Save(path string, bytes int) {
	logging.Trace("settings.save", map[string]interface{}{"path": path, "bytes": bytes})
}

func (SettingsTracer) SaveFailed(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("settings.save.failed", payload)
}

func (SettingsTracer) Change(field string, value interface{}) {
	logging.Trace("settings.change", map[string]interface{}{"field": field, "value": value})
}
