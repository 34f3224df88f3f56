package settings

import (
	"errors"
	"fmt"
)

// Persisted field names.
const (
	FieldVideoFolder         = "videoFolder"
	FieldWindowLocked        = "windowLocked"
	FieldSliderVisible       = "sliderVisible"
	FieldTransparencyEnabled = "transparencyEnabled"
	FieldChromaKeyColor      = "chromaKeyColor"
)

var (
	ErrNotAbsolute  = errors.New("path is not absolute")
	ErrNotDirectory = errors.New("path is not a directory")
	ErrInvalidColor = errors.New("not a hex colour")
	ErrWrongType    = errors.New("unexpected JSON type")
)

// PersistenceError reports an I/O failure while reading or writing config.json.
// The in-memory settings stay authoritative when one occurs.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("settings %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ValidationError reports a field value that was rejected. The previous or
// default value is kept for that field only.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
