package render

import (
	"math"
	"testing"

	"github.com/cfortier/sheetsvg/geom"
)

func TestStrokeWidth(t *testing.T) {
	tests := []struct {
		weight int
		inches float64
	}{
		{WeightThin, 0.0071},
		{WeightNormal, 0.0098},
		{WeightThick, 0.0138},
		{WeightThick2, 0.0197},
		{WeightThick3, 0.0276},
		{WeightThick4, 0.0394},
		{WeightThick5, 0.0551},
		{WeightThick6, 0.0787},
	}
	for _, tt := range tests {
		want := tt.inches * 25.4
		if got := StrokeWidth(tt.weight); got != want {
			t.Errorf("StrokeWidth(%d) = %v, want %v", tt.weight, got, want)
		}
	}
}

func TestStrokeWidthFallback(t *testing.T) {
	want := 0.0098 * 25.4
	for _, weight := range []int{-1, 8, 99} {
		if got := StrokeWidth(weight); got != want {
			t.Errorf("StrokeWidth(%d) = %v, want normal %v", weight, got, want)
		}
	}
}

func TestDashPattern(t *testing.T) {
	if got := DashPattern(StyleSolid, 1); got != "" {
		t.Errorf("solid dash = %q, want empty", got)
	}
	if got := DashPattern(99, 1); got != "" {
		t.Errorf("unknown style dash = %q, want empty", got)
	}
	// Width 1 makes the base unit exactly DashScale.
	if got := DashPattern(StyleDashed, 1); got != "18 9" {
		t.Errorf("dashed = %q, want \"18 9\"", got)
	}
	if got := DashPattern(StyleStitch, 1); got != "4.5 4.5" {
		t.Errorf("stitch = %q, want \"4.5 4.5\"", got)
	}
}

func TestPackedColor(t *testing.T) {
	tests := []struct {
		packed int
		want   string
	}{
		{0x0000ff, "#ff0000"}, // host stores blue-green-red
		{0xff0000, "#0000ff"},
		{0x00ff00, "#00ff00"},
		{0xffffff, "#ffffff"},
	}
	for _, tt := range tests {
		if got := PackedColor(tt.packed); got != tt.want {
			t.Errorf("PackedColor(%#x) = %q, want %q", tt.packed, got, tt.want)
		}
	}
}

func TestNamedColor(t *testing.T) {
	if got, ok := NamedColor("RED"); !ok || got != "#ff0000" {
		t.Errorf("NamedColor(RED) = %q, %v", got, ok)
	}
	if _, ok := NamedColor("not-a-color"); ok {
		t.Error("unknown name resolved")
	}
}

func TestArcFlags(t *testing.T) {
	center := geom.Point{}
	// Start at angle 0, end at angle pi/2.
	start := geom.Point{X: 1, Y: 0}
	end := geom.Point{X: 0, Y: 1}

	sweep, large := arcFlags(center, start, end, 1)
	if sweep != 0 || large != 0 {
		t.Errorf("ccw quarter arc: sweep=%d large=%d, want 0 0", sweep, large)
	}

	// Clockwise from 0 to pi/2 travels the long way round: -3pi/2.
	sweep, large = arcFlags(center, start, end, -1)
	if sweep != 1 || large != 1 {
		t.Errorf("cw from 0 to pi/2: sweep=%d large=%d, want 1 1", sweep, large)
	}
}

func TestArcFlagsHalfTurn(t *testing.T) {
	center := geom.Point{}
	start := geom.Point{X: 1, Y: 0}
	end := geom.Point{X: -1, Y: math.Sin(math.Pi)} // angle pi

	sweep, large := arcFlags(center, start, end, 1)
	if sweep != 0 || large != 0 {
		t.Errorf("ccw half turn: sweep=%d large=%d, want 0 0", sweep, large)
	}
	sweep, large = arcFlags(center, start, end, -1)
	if sweep != 1 || large != 0 {
		t.Errorf("cw half turn: sweep=%d large=%d, want 1 0", sweep, large)
	}
}
