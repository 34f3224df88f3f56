package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/atomicstack/overlay-player-control/internal/library"
	"github.com/atomicstack/overlay-player-control/internal/logging"
	"github.com/atomicstack/overlay-player-control/internal/logging/events"
	"github.com/atomicstack/overlay-player-control/internal/menu"
	"github.com/atomicstack/overlay-player-control/internal/picker"
	"github.com/atomicstack/overlay-player-control/internal/router"
	"github.com/atomicstack/overlay-player-control/internal/settings"
	"github.com/atomicstack/overlay-player-control/internal/state"
	"github.com/atomicstack/overlay-player-control/internal/surface"
	"github.com/atomicstack/overlay-player-control/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

// Config describes user-provided application options.
type Config struct {
	ConfigDir  string
	VideosDir  string
	Platform   menu.Platform
	Width      int
	Height     int
	ShowFooter bool
}

// Run loads the persisted settings, opens the first window and executes the
// Bubble Tea program until it quits. The folder watcher runs alongside the
// program and queued settings are written before Run returns.
func Run(cfg Config) (err error) {
	store := settings.NewStore(cfg.ConfigDir)
	initial, loadErr := store.Load()
	if loadErr != nil {
		logging.Error(fmt.Errorf("load settings: %w", loadErr))
	}
	writer := settings.NewWriter(store)
	defer func() {
		if closeErr := writer.Close(); closeErr != nil {
			logging.Error(fmt.Errorf("flush settings: %w", closeErr))
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	lib := library.New(cfg.VideosDir)
	var folders router.FolderWatcher
	var changes ui.LibraryEvents
	watcher, watchErr := library.NewWatcher(library.DefaultDebounce)
	if watchErr != nil {
		logging.Error(watchErr)
	} else {
		folders = watcher
		changes = watcher
		g.Go(func() error {
			return watcher.Run(gctx)
		})
	}

	colors := picker.NewPromptColorPicker()
	panels := surface.NewFactory()
	r := router.New(router.Options{
		Context:   gctx,
		State:     state.New(initial),
		Persist:   writer,
		Factory:   panels,
		Library:   lib,
		Watcher:   folders,
		Files:     picker.Native{},
		Folders:   picker.Native{},
		Colors:    colors,
		Platform:  cfg.Platform,
		VideosDir: library.UserVideosDir(),
	})
	r.Dispatch(router.NewWindow{})
	if folders != nil {
		if err := watchLibrary(folders, lib, r.Settings().VideoFolder); err != nil {
			logging.Error(err)
		}
	}

	model := ui.NewModel(ui.Options{
		Router:     r,
		Panels:     panels,
		Library:    changes,
		Colors:     colors,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus(), tea.WithContext(gctx))
	g.Go(func() error {
		defer cancel()
		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("run console: %w", err)
		}
		return nil
	})

	err = g.Wait()
	reason := "quit"
	if err != nil {
		reason = err.Error()
	}
	events.App.Stop(reason)
	return err
}

// watchLibrary points w at the folder in use, creating the bundled default
// folder first when no folder has been chosen.
func watchLibrary(w router.FolderWatcher, lib *library.Library, folder string) error {
	dir, err := lib.Prepare(folder)
	if err != nil {
		return err
	}
	return w.Watch(dir)
}
