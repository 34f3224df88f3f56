package ui

import (
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/overlay-player-control/internal/data/dispatcher"
	"github.com/atomicstack/overlay-player-control/internal/library"
	"github.com/atomicstack/overlay-player-control/internal/menu"
	"github.com/atomicstack/overlay-player-control/internal/picker"
	"github.com/atomicstack/overlay-player-control/internal/router"
	"github.com/atomicstack/overlay-player-control/internal/surface"
	"github.com/atomicstack/overlay-player-control/internal/theme"
	"github.com/atomicstack/overlay-player-control/internal/ui/command"
	uistate "github.com/atomicstack/overlay-player-control/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

type Mode int

const (
	ModeMenu Mode = iota
	ModeColorForm
)

const (
	menuHeaderSeparator = "→"
	defaultRootTitle    = "menu"
)

var styles = theme.Default()

var headerSegmentCleaner = strings.NewReplacer("_", " ", "-", " ")

type msgHandler func(tea.Msg) tea.Cmd

// LibraryEvents is the folder watcher as seen by the console.
type LibraryEvents interface {
	Events() <-chan library.Event
}

// ColorRequests feeds colour prompts to the console.
type ColorRequests interface {
	Requests() <-chan picker.ColorRequest
}

// Options configures a Model.
type Options struct {
	Router     *router.Router
	Panels     *surface.Factory
	Library    LibraryEvents
	Colors     ColorRequests
	Width      int
	Height     int
	ShowFooter bool
}

// Model implements the Bubble Tea model for the player control console.
type Model struct {
	stack       []*level
	tree        *menu.Tree
	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	colorForm   *colorForm
	quitting    bool

	handlers map[reflect.Type]msgHandler

	router     *router.Router
	panels     *surface.Factory
	dispatcher *dispatcher.Dispatcher
	bus        *command.Bus
	library    LibraryEvents
	colors     ColorRequests
	mode       Mode
}

// NewModel initialises the console with the router's current menu.
func NewModel(opts Options) *Model {
	m := &Model{
		router:     opts.Router,
		panels:     opts.Panels,
		dispatcher: dispatcher.New(opts.Router),
		bus:        command.New(),
		library:    opts.Library,
		colors:     opts.Colors,
		showFooter: opts.ShowFooter,
		mode:       ModeMenu,
	}
	if m.panels == nil {
		m.panels = surface.NewFactory()
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.tree = m.router.Menu()
	root := uistate.NewLevel(menu.RootID, defaultRootTitle, m.tree.Items(menu.RootID))
	m.stack = []*level{root}
	m.syncViewport(root)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.library != nil {
		cmds = append(cmds, waitForLibraryEvent(m.library))
	}
	if m.colors != nil {
		cmds = append(cmds, waitForColorRequest(m.colors))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages. Every update ends by delivering
// queued window messages, so window state is current before View runs.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handled, cmd := m.handleActiveForm(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if in, ok := msg.(router.Intent); ok {
		if cmd := m.dispatch(in); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	switch m.mode {
	case ModeColorForm:
		return m.handleColorForm(msg)
	default:
		return false, nil
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):             m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):      m.handleWindowSizeMsg,
		reflect.TypeOf(tea.FocusMsg{}):           m.handleFocusMsg,
		reflect.TypeOf(router.ContextMenuMsg{}):  m.handleContextMenuMsg,
		reflect.TypeOf(colorRequestMsg{}):        m.handleColorRequestMsg,
		reflect.TypeOf(colorRequestsClosedMsg{}): m.handleColorRequestsClosedMsg,
		reflect.TypeOf(libraryEventMsg{}):        m.handleLibraryEventMsg,
		reflect.TypeOf(libraryDoneMsg{}):         m.handleLibraryDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// dispatch hands in to the router and refreshes the menu if the router
// rebuilt it.
func (m *Model) dispatch(in router.Intent) tea.Cmd {
	cmd := m.router.Dispatch(in)
	m.quitting = m.router.Quitting()
	m.syncMenu()
	return cmd
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	cmds = append(cmds, m.deliver()...)
	m.dropStaleContextMenus()
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// handleFocusMsg treats the terminal regaining focus as the application
// being re-activated.
func (m *Model) handleFocusMsg(tea.Msg) tea.Cmd {
	return m.dispatch(router.Activate{})
}

// syncMenu refreshes every application menu level on the stack when the
// router has replaced its menu tree.
func (m *Model) syncMenu() {
	tree := m.router.Menu()
	if tree == m.tree {
		return
	}
	m.tree = tree
	for _, lvl := range m.stack {
		if lvl.Target != "" {
			continue
		}
		if _, ok := tree.Find(lvl.ID); !ok {
			continue
		}
		lvl.UpdateItems(tree.Items(lvl.ID))
		m.syncViewport(lvl)
	}
}

// dropStaleContextMenus pops context menus whose window has closed.
func (m *Model) dropStaleContextMenus() {
	kept := m.stack[:0]
	for _, lvl := range m.stack {
		if lvl.Target != "" {
			if _, ok := m.router.Windows().Lookup(lvl.Target); !ok {
				continue
			}
		}
		kept = append(kept, lvl)
	}
	m.stack = kept
}
