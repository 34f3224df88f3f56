package events

import "github.com/atomicstack/overlay-player-control/internal/logging"

type BroadcastTracer struct{}

var Broadcast = BroadcastTracer{}

func (BroadcastTracer) Send(target, event string) {
	logging.Trace("broadcast.send", map[string]interface{}{"target": target, "event": event})
}

func (BroadcastTracer) Drop(target, event, reason string) {
	logging.Trace("broadcast.drop", map[string]interface{}{"target": target, "event": event, "reason": reason})
}

func (BroadcastTracer) Deliver(target, event string) {
	logging.Trace("broadcast.deliver", map[string]interface{}{"target": target, "event": event})
}
