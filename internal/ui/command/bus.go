package command

import (
	"fmt"

	"github.com/atomicstack/overlay-player-control/internal/logging/events"
	"github.com/atomicstack/overlay-player-control/internal/router"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates a menu selection.
type Request struct {
	ID     string
	Label  string
	Intent router.Intent
}

// Bus turns menu selections into intents that re-enter the event loop.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps the request's intent into a Bubble Tea command while
// emitting trace logs. Requests without an intent are skipped.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	if req.Intent == nil {
		events.Command.Skip(req.ID, req.Label)
		return nil
	}
	in := req.Intent
	return func() tea.Msg {
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", in))
		return in
	}
}
