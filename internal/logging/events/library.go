package events

import "github.com/atomicstack/overlay-player-control/internal/logging"

type LibraryTracer struct{}

var Library = LibraryTracer{}

func (LibraryTracer) List(dir string, count int) {
	logging.Trace("library.list", map[string]interface{}{"dir": dir, "count": count})
}

func (LibraryTracer) CreateDefault(dir string) {
	logging.Trace("library.default.create", map[string]interface{}{"dir": dir})
}

func (LibraryTracer) Watch(dir string, polling bool) {
	logging.Trace("library.watch", map[string]interface{}{"dir": dir, "polling": polling})
}

func (LibraryTracer) Changed(dir string) {
	logging.Trace("library.changed", map[string]interface{}{"dir": dir})
}
