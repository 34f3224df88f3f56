// Package broadcast delivers one-way notifications from the router to window
// surfaces through per-window FIFO mailboxes.
package broadcast

import "fmt"

// Event names a router→window notification.
type Event string

const (
	LoadVideos             Event = "load-videos"
	ResizeCanvas           Event = "resize-canvas"
	UpdateSliderVisibility Event = "update-slider-visibility"
	UpdateTransparency     Event = "update-transparency"
	UpdateChromaKeyColor   Event = "update-chroma-key-color"
	// VideoSelected carries the chosen path, or a nil payload when the user
	// declined the picker.
	VideoSelected        Event = "video-selected"
	TogglePausePlay      Event = "toggle-pause-play"
	PlayRandom           Event = "play-random"
	PlayPrevious         Event = "play-previous"
	SelectVideo          Event = "select-video"
	SelectChromaKeyColor Event = "select-chroma-key-color"
)

// IsRelay reports whether e is a pass-through playback event.
func (e Event) IsRelay() bool {
	switch e {
	case TogglePausePlay, PlayRandom, PlayPrevious:
		return true
	}
	return false
}

// Message is one queued notification.
type Message struct {
	Event   Event
	Payload interface{}
}

func (m Message) String() string {
	if m.Payload == nil {
		return string(m.Event)
	}
	return fmt.Sprintf("%s(%v)", m.Event, m.Payload)
}
