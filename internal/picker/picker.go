// Package picker defines the asynchronous file, folder and colour choosers
// the router consults, and their native and console implementations.
package picker

import "context"

// Kind labels a picker in traces.
type Kind string

const (
	KindFile   Kind = "file"
	KindFolder Kind = "folder"
	KindColor  Kind = "color"
)

// Result is the outcome of a picker: a selected value, or a cancellation.
// Cancelling is not an error.
type Result struct {
	Value string
	OK    bool
}

func Selected(value string) Result {
	return Result{Value: value, OK: true}
}

// Cancelled is the result of a dismissed picker.
var Cancelled = Result{}

func (r Result) IsCancelled() bool {
	return !r.OK
}

// Filter restricts a file picker to the listed extensions (without dots).
type Filter struct {
	Description string
	Extensions  []string
}

// VideoFilter matches the playable formats.
var VideoFilter = Filter{Description: "Video Files", Extensions: []string{"webm", "mp4"}}

const (
	VideoTitle  = "Select a WebM or MP4 Video"
	FolderTitle = "Select a Folder with WebM or MP4 Videos"
)

type FilePicker interface {
	PickFile(ctx context.Context, title, defaultPath string, filter Filter) (Result, error)
}

type FolderPicker interface {
	PickFolder(ctx context.Context, title, defaultPath string) (Result, error)
}

type ColorPicker interface {
	PickColor(ctx context.Context, initial string) (Result, error)
}
