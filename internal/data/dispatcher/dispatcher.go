package dispatcher

import (
	"fmt"

	"github.com/atomicstack/overlay-player-control/internal/broadcast"
	"github.com/atomicstack/overlay-player-control/internal/logging"
	"github.com/atomicstack/overlay-player-control/internal/logging/events"
	"github.com/atomicstack/overlay-player-control/internal/router"
	"github.com/atomicstack/overlay-player-control/internal/surface"
	"github.com/atomicstack/overlay-player-control/internal/window"
)

// VideoSource answers a window's video list request.
type VideoSource interface {
	VideoList(h window.Handle) []string
}

// Result lists the requests a panel sends back after handling a message.
type Result struct {
	Intents  []router.Intent
	Reloaded bool
}

type Dispatcher struct {
	videos VideoSource
}

func New(videos VideoSource) *Dispatcher {
	return &Dispatcher{videos: videos}
}

// Handle applies one delivered message to p, the way the renderer inside a
// window reacts to it.
func (d *Dispatcher) Handle(p *surface.Panel, msg broadcast.Message) Result {
	var res Result
	h := p.Handle()
	events.Broadcast.Deliver(string(h), string(msg.Event))
	p.Record(msg.String())
	switch msg.Event {
	case broadcast.LoadVideos:
		var paths []string
		if d.videos != nil {
			paths = d.videos.VideoList(h)
		}
		p.SetVideos(paths)
		res.Reloaded = true
	case broadcast.ResizeCanvas:
		p.FitCanvas()
	case broadcast.UpdateSliderVisibility:
		if v, ok := d.boolPayload(msg); ok {
			p.SetSliderVisible(v)
		}
	case broadcast.UpdateTransparency:
		if v, ok := d.boolPayload(msg); ok {
			p.SetTransparency(v)
		}
	case broadcast.UpdateChromaKeyColor:
		if v, ok := d.stringPayload(msg); ok {
			p.SetChromaKeyColor(v)
		}
	case broadcast.VideoSelected:
		// nil means the user declined; keep playing.
		if msg.Payload == nil {
			return res
		}
		if v, ok := d.stringPayload(msg); ok {
			p.Play(v)
		}
	case broadcast.TogglePausePlay:
		p.TogglePause()
	case broadcast.PlayRandom:
		p.PlayRandom()
	case broadcast.PlayPrevious:
		p.PlayPrevious()
	case broadcast.SelectVideo:
		res.Intents = append(res.Intents, router.SelectVideo{Requester: h})
	case broadcast.SelectChromaKeyColor:
		res.Intents = append(res.Intents, router.PickChromaKeyColor{Requester: h})
	default:
		logging.Errorf("unhandled event %s for %s", msg.Event, h.Short())
	}
	return res
}

func (d *Dispatcher) boolPayload(msg broadcast.Message) (bool, bool) {
	v, ok := msg.Payload.(bool)
	if !ok {
		logging.Error(fmt.Errorf("%s: expected bool payload, got %T", msg.Event, msg.Payload))
	}
	return v, ok
}

func (d *Dispatcher) stringPayload(msg broadcast.Message) (string, bool) {
	v, ok := msg.Payload.(string)
	if !ok {
		logging.Error(fmt.Errorf("%s: expected string payload, got %T", msg.Event, msg.Payload))
	}
	return v, ok
}
