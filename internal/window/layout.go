package window

import "math"

const (
	BaseWidth  = 660
	BaseHeight = 706

	CascadeOrigin = 100
	CascadeStep   = 20
)

// Scale presets offered by the Resize menu.
const (
	ScaleSmall  = 0.5
	ScaleMedium = 1.0
	ScaleLarge  = 1.5
)

type Point struct {
	X int
	Y int
}

type Size struct {
	Width  int
	Height int
}

// CascadePosition returns where a new window goes given how many windows are
// already open. Windows that have been moved since are not taken into account.
func CascadePosition(existing int) Point {
	if existing < 0 {
		existing = 0
	}
	offset := CascadeOrigin + existing*CascadeStep
	return Point{X: offset, Y: offset}
}

// SizeForScale applies scale to the base window size.
func SizeForScale(scale float64) Size {
	return Size{
		Width:  int(math.Round(BaseWidth * scale)),
		Height: int(math.Round(BaseHeight * scale)),
	}
}
