// Package settings owns the persisted presentation settings of the player and
// their on-disk representation.
package settings

import (
	"os"
	"path/filepath"
)

const (
	// DefaultChromaKeyColor is used whenever no valid colour has been stored.
	DefaultChromaKeyColor = "#000000"

	appDirName = "OverlayMediaPlayer"
	fileName   = "config.json"
)

// Settings is the global state shared by every window.
type Settings struct {
	// VideoFolder is empty when no folder has been chosen.
	VideoFolder         string
	WindowLocked        bool
	SliderVisible       bool
	TransparencyEnabled bool
	ChromaKeyColor      string
}

// Defaults returns the settings used before anything is loaded from disk.
func Defaults() Settings {
	return Settings{
		WindowLocked:   true,
		ChromaKeyColor: DefaultChromaKeyColor,
	}
}

// HasVideoFolder reports whether a folder has been selected.
func (s Settings) HasVideoFolder() bool {
	return s.VideoFolder != ""
}

// DefaultDir returns the per-user application data directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", &PersistenceError{Op: "locate", Path: appDirName, Err: err}
	}
	return filepath.Join(base, appDirName), nil
}

// ValidateVideoFolder checks that path is an absolute path to an existing directory.
func ValidateVideoFolder(path string) error {
	if !filepath.IsAbs(path) {
		return &ValidationError{Field: FieldVideoFolder, Value: path, Err: ErrNotAbsolute}
	}
	info, err := os.Stat(path)
	if err != nil {
		return &ValidationError{Field: FieldVideoFolder, Value: path, Err: err}
	}
	if !info.IsDir() {
		return &ValidationError{Field: FieldVideoFolder, Value: path, Err: ErrNotDirectory}
	}
	return nil
}
