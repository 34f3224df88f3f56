package settings

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Chroma-key presets offered by the menu.
const (
	ColorBlack = "#000000"
	ColorGreen = "#00FF00"
	ColorBlue  = "#0000FF"
)

// ParseColor parses a #RRGGBB or #RGB hex triplet.
func ParseColor(value string) (colorful.Color, error) {
	if !isHexTriplet(value) {
		return colorful.Color{}, &ValidationError{Field: FieldChromaKeyColor, Value: value, Err: ErrInvalidColor}
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return colorful.Color{}, &ValidationError{Field: FieldChromaKeyColor, Value: value, Err: err}
	}
	return c, nil
}

// ValidColor reports whether value parses as a hex triplet.
func ValidColor(value string) bool {
	_, err := ParseColor(value)
	return err == nil
}

// fmt-based hex scanning in go-colorful tolerates trailing garbage, so the
// shape is checked first.
func isHexTriplet(value string) bool {
	if len(value) != 7 && len(value) != 4 {
		return false
	}
	if !strings.HasPrefix(value, "#") {
		return false
	}
	for _, r := range value[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
