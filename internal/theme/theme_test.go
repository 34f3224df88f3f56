package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSwatchRejectsInvalidColour(t *testing.T) {
	if _, ok := Swatch("green"); ok {
		t.Fatalf("expected named colour to be rejected")
	}
}

func TestSwatchPicksReadableForeground(t *testing.T) {
	cases := map[string]lipgloss.Color{
		"#000000": "#FFFFFF",
		"#00FF00": "#000000",
		"#FFFFFF": "#000000",
	}
	for hex, want := range cases {
		style, ok := Swatch(hex)
		if !ok {
			t.Fatalf("expected %s to parse", hex)
		}
		got, ok := style.GetForeground().(lipgloss.Color)
		if !ok || got != want {
			t.Fatalf("expected %s text on %s, got %v", want, hex, style.GetForeground())
		}
	}
}
