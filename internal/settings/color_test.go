package settings

import (
	"errors"
	"testing"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{"#000000", true},
		{"#00FF00", true},
		{"#0000ff", true},
		{"#abc", true},
		{"notacolor", false},
		{"000000", false},
		{"#12345g", false},
		{"#1234567", false},
		{"", false},
		{"#ff", false},
	}
	for _, tc := range cases {
		_, err := ParseColor(tc.in)
		if tc.valid && err != nil {
			t.Fatalf("expected %q to parse, got %v", tc.in, err)
		}
		if !tc.valid {
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError for %q, got %v", tc.in, err)
			}
			if verr.Field != FieldChromaKeyColor {
				t.Fatalf("unexpected field %q", verr.Field)
			}
		}
	}
}

func TestParseColorValues(t *testing.T) {
	c, err := ParseColor(ColorGreen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, g, b := c.RGB255()
	if r != 0 || g != 255 || b != 0 {
		t.Fatalf("expected pure green, got %d,%d,%d", r, g, b)
	}
}
