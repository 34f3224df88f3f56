package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"github.com/atomicstack/overlay-player-control/internal/logging/events"
)

// record is the on-disk shape of Settings. Field order fixes key order.
type record struct {
	VideoFolder         *string `json:"videoFolder"`
	WindowLocked        bool    `json:"windowLocked"`
	SliderVisible       bool    `json:"sliderVisible"`
	TransparencyEnabled bool    `json:"transparencyEnabled"`
	ChromaKeyColor      string  `json:"chromaKeyColor"`
}

// Store reads and writes config.json inside a directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the location of config.json.
func (s *Store) Path() string {
	return filepath.Join(s.dir, fileName)
}

// Load reads the persisted settings. It always returns usable settings: a
// missing file yields defaults with a nil error, while unreadable or
// malformed content yields defaults plus a *PersistenceError. Individual
// fields are validated independently; rejected fields fall back to their
// defaults and are reported as joined *ValidationError values.
func (s *Store) Load() (Settings, error) {
	path := s.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			events.Settings.Load(path, false)
			return Defaults(), nil
		}
		return Defaults(), &PersistenceError{Op: "read", Path: path, Err: err}
	}
	events.Settings.Load(path, true)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Defaults(), &PersistenceError{Op: "parse", Path: path, Err: err}
	}
	return decodeFields(fields)
}

func decodeFields(fields map[string]json.RawMessage) (Settings, error) {
	out := Defaults()
	var problems []error
	reject := func(err *ValidationError) {
		events.Settings.FieldRejected(err.Field, err.Value, err.Err.Error())
		problems = append(problems, err)
	}

	if raw, ok := fields[FieldVideoFolder]; ok && !isNull(raw) {
		var folder string
		if err := json.Unmarshal(raw, &folder); err != nil {
			reject(&ValidationError{Field: FieldVideoFolder, Value: string(raw), Err: ErrWrongType})
		} else if err := ValidateVideoFolder(folder); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				reject(verr)
			}
		} else {
			out.VideoFolder = folder
		}
	}

	boolFields := []struct {
		name string
		dst  *bool
	}{
		{FieldWindowLocked, &out.WindowLocked},
		{FieldSliderVisible, &out.SliderVisible},
		{FieldTransparencyEnabled, &out.TransparencyEnabled},
	}
	for _, f := range boolFields {
		raw, ok := fields[f.name]
		if !ok || isNull(raw) {
			continue
		}
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			reject(&ValidationError{Field: f.name, Value: string(raw), Err: ErrWrongType})
			continue
		}
		*f.dst = v
	}

	if raw, ok := fields[FieldChromaKeyColor]; ok && !isNull(raw) {
		var color string
		if err := json.Unmarshal(raw, &color); err != nil {
			reject(&ValidationError{Field: FieldChromaKeyColor, Value: string(raw), Err: ErrWrongType})
		} else if _, err := ParseColor(color); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				reject(verr)
			}
		} else {
			out.ChromaKeyColor = color
		}
	}

	return out, errors.Join(problems...)
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// Marshal renders settings exactly as Save writes them.
func Marshal(s Settings) ([]byte, error) {
	rec := record{
		WindowLocked:        s.WindowLocked,
		SliderVisible:       s.SliderVisible,
		TransparencyEnabled: s.TransparencyEnabled,
		ChromaKeyColor:      s.ChromaKeyColor,
	}
	if s.VideoFolder != "" {
		folder := s.VideoFolder
		rec.VideoFolder = &folder
	}
	return json.MarshalIndent(rec, "", "  ")
}

// Save writes the full snapshot, creating the directory when missing. The
// content goes to a temp file that is renamed over config.json so readers
// never observe a partial record.
func (s *Store) Save(settings Settings) error {
	path := s.Path()
	data, err := Marshal(settings)
	if err != nil {
		return &PersistenceError{Op: "encode", Path: path, Err: err}
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &PersistenceError{Op: "mkdir", Path: s.dir, Err: err}
	}

	tmp, err := os.CreateTemp(s.dir, fileName+".tmp-*")
	if err != nil {
		return &PersistenceError{Op: "write", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &PersistenceError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &PersistenceError{Op: "write", Path: path, Err: fmt.Errorf("close temp file: %w", err)}
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return &PersistenceError{Op: "rename", Path: path, Err: err}
	}
	events.Settings.Save(path, len(data))
	return nil
}
