package picker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sqweek/dialog"
)

// Native opens the operating system's file and folder dialogs.
type Native struct{}

func (Native) PickFile(ctx context.Context, title, defaultPath string, filter Filter) (Result, error) {
	return await(ctx, func() (string, error) {
		b := dialog.File().Title(title)
		if len(filter.Extensions) > 0 {
			b = b.Filter(filter.Description, filter.Extensions...)
		}
		if dir := startDir(defaultPath); dir != "" {
			b = b.SetStartDir(dir)
		}
		return b.Load()
	})
}

func (Native) PickFolder(ctx context.Context, title, defaultPath string) (Result, error) {
	return await(ctx, func() (string, error) {
		b := dialog.Directory().Title(title)
		if dir := startDir(defaultPath); dir != "" {
			b = b.SetStartDir(dir)
		}
		return b.Browse()
	})
}

// await runs a blocking dialog off the caller's goroutine. The dialog itself
// cannot be dismissed programmatically; on ctx cancellation its answer is
// discarded.
func await(ctx context.Context, open func() (string, error)) (Result, error) {
	type answer struct {
		path string
		err  error
	}
	ch := make(chan answer, 1)
	go func() {
		path, err := open()
		ch <- answer{path: path, err: err}
	}()
	select {
	case <-ctx.Done():
		return Cancelled, ctx.Err()
	case a := <-ch:
		if errors.Is(a.err, dialog.ErrCancelled) {
			return Cancelled, nil
		}
		if a.err != nil {
			return Cancelled, fmt.Errorf("native dialog: %w", a.err)
		}
		if a.path == "" {
			return Cancelled, nil
		}
		return Selected(a.path), nil
	}
}

// startDir returns path when it is a directory, otherwise its parent.
func startDir(path string) string {
	if path == "" {
		return ""
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}
