// Package window tracks the live overlay windows and the geometry rules used
// to place and size them.
package window

import (
	"github.com/google/uuid"
)

// Handle identifies one live window surface.
type Handle string

// NewHandle returns a fresh random handle.
func NewHandle() Handle {
	return Handle(uuid.NewString())
}

// Short returns an abbreviated handle for display.
func (h Handle) Short() string {
	if len(h) <= 8 {
		return string(h)
	}
	return string(h[:8])
}

// Surface is the native window primitive behind a handle.
type Surface interface {
	// SetClickThrough makes pointer input pass to the windows underneath when
	// ignore is true.
	SetClickThrough(ignore bool)
	SetPosition(x, y int)
	SetSize(width, height int)
	Position() (x, y int)
	Close()
}

// Spec describes a surface to create.
type Spec struct {
	Handle   Handle
	Position Point
	Size     Size
}

// Factory creates borderless, always-on-top surfaces.
type Factory interface {
	Create(Spec) (Surface, error)
}

// Window binds a handle to its surface.
type Window struct {
	Handle  Handle
	Surface Surface
	Seq     int
	Scale   float64
}
