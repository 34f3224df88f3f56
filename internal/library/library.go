// Package library lists the playable videos in a folder and watches that
// folder for changes.
package library

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/overlay-player-control/internal/logging"
	"github.com/atomicstack/overlay-player-control/internal/logging/events"
)

// Extensions are the file suffixes treated as videos. Matching is
// case-sensitive.
var Extensions = []string{".webm", ".mp4"}

// IsVideo reports whether name carries one of the video extensions.
func IsVideo(name string) bool {
	for _, ext := range Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// List returns the absolute paths of the videos directly inside dir, sorted
// by name. Subdirectories are not descended into.
func List(dir string) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read videos directory: %w", err)
	}
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !IsVideo(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(abs, entry.Name()))
	}
	events.Library.List(abs, len(paths))
	return paths, nil
}

// Library resolves the folder to list: the user's chosen folder when set,
// otherwise the bundled default folder.
type Library struct {
	defaultDir string
}

func New(defaultDir string) *Library {
	return &Library{defaultDir: defaultDir}
}

func (l *Library) DefaultDir() string {
	return l.defaultDir
}

// Resolve returns folder, or the default folder when folder is empty.
func (l *Library) Resolve(folder string) string {
	if folder != "" {
		return folder
	}
	return l.defaultDir
}

// Videos lists the videos for folder. The default folder is created when it
// is used and missing. Failures are logged and yield an empty list.
func (l *Library) Videos(folder string) []string {
	dir, err := l.Prepare(folder)
	if err != nil {
		logging.Error(err)
		return []string{}
	}
	if dir == "" {
		return []string{}
	}
	paths, err := List(dir)
	if err != nil {
		logging.Error(err)
		return []string{}
	}
	if len(paths) == 0 {
		logging.Errorf("no .webm or .mp4 videos found in %s", dir)
	}
	return paths
}

// Prepare resolves folder and creates the default folder when it is the one
// in use, so the result can be listed or watched.
func (l *Library) Prepare(folder string) (string, error) {
	dir := l.Resolve(folder)
	if dir == "" || folder != "" {
		return dir, nil
	}
	if err := l.ensureDefault(); err != nil {
		return "", err
	}
	return dir, nil
}

func (l *Library) ensureDefault() error {
	if _, err := os.Stat(l.defaultDir); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat default videos directory: %w", err)
	}
	if err := os.MkdirAll(l.defaultDir, 0o755); err != nil {
		return fmt.Errorf("create default videos directory: %w", err)
	}
	events.Library.CreateDefault(l.defaultDir)
	return nil
}

// UserVideosDir returns the user's Videos directory, falling back to the home
// directory when it cannot be determined.
func UserVideosDir() string {
	if dir := os.Getenv("XDG_VIDEOS_DIR"); filepath.IsAbs(dir) {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Videos")
}
