package record

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cfortier/sheetsvg/geom"
)

// breakHeader assembles the shared 10-value group header.
func breakHeader(style BreakLineStyle, segments, arcs, splines int) []float64 {
	// style, color, line type, line style, line weight, layer id,
	// layer override, then the three per-style counts.
	return []float64{
		float64(style), 64, 1, 0, 2, 3, 0,
		float64(segments), float64(arcs), float64(splines),
	}
}

func TestDecodeBreakLinesStraight(t *testing.T) {
	buf := breakHeader(BreakStraight, 2, 0, 0)
	buf = append(buf,
		0.1, 0.2, 0, 0.1, 0.25, 0,
		0.12, 0.2, 0, 0.12, 0.25, 0,
	)

	groups := DecodeBreakLines(buf)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}

	want := []BreakSegment{
		{Start: geom.Point{X: 0.1, Y: 0.2}, End: geom.Point{X: 0.1, Y: 0.25}},
		{Start: geom.Point{X: 0.12, Y: 0.2}, End: geom.Point{X: 0.12, Y: 0.25}},
	}
	if diff := cmp.Diff(want, groups[0].Segments); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
	if groups[0].Color != 64 || groups[0].LineWeight != 2 || groups[0].LayerID != 3 {
		t.Errorf("header fields wrong: %+v", groups[0])
	}
}

func TestDecodeBreakLinesCurve(t *testing.T) {
	buf := breakHeader(BreakCurve, 0, 2, 0)
	buf = append(buf,
		1, 0.1, 0.2, 0, 0.15, 0.25, 0, 0.125, 0.225, 0,
		-1, 0.3, 0.2, 0, 0.35, 0.25, 0, 0.325, 0.225, 0,
	)

	groups := DecodeBreakLines(buf)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	arcs := groups[0].Arcs
	if len(arcs) != 2 {
		t.Fatalf("got %d arcs, want 2", len(arcs))
	}
	if arcs[0].Direction != 1 || arcs[1].Direction != -1 {
		t.Errorf("directions = %d, %d; want 1, -1", arcs[0].Direction, arcs[1].Direction)
	}
	if arcs[0].Center != (geom.Point{X: 0.125, Y: 0.225}) {
		t.Errorf("center = %v", arcs[0].Center)
	}
}

func TestDecodeBreakLinesJagged(t *testing.T) {
	buf := breakHeader(BreakJagged, 0, 0, 3)
	// First spline: 3 points. Second: zero points, skipped. Third: 2 points.
	buf = append(buf, 3, 0.1, 0.1, 0, 0.11, 0.12, 0, 0.12, 0.1, 0)
	buf = append(buf, 0)
	buf = append(buf, 2, 0.2, 0.1, 0, 0.2, 0.2, 0)

	groups := DecodeBreakLines(buf)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	splines := groups[0].Splines
	if len(splines) != 2 {
		t.Fatalf("got %d splines, want 2 (empty one skipped)", len(splines))
	}
	if len(splines[0]) != 3 || len(splines[1]) != 2 {
		t.Errorf("spline sizes = %d, %d; want 3, 2", len(splines[0]), len(splines[1]))
	}
}

func TestDecodeBreakLinesMultipleGroups(t *testing.T) {
	buf := breakHeader(BreakZigZag, 1, 0, 0)
	buf = append(buf, 0.1, 0.1, 0, 0.1, 0.2, 0)
	buf = append(buf, breakHeader(BreakSmallZigZag, 1, 0, 0)...)
	buf = append(buf, 0.3, 0.1, 0, 0.3, 0.2, 0)

	groups := DecodeBreakLines(buf)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Style != BreakZigZag || groups[1].Style != BreakSmallZigZag {
		t.Errorf("styles = %v, %v", groups[0].Style, groups[1].Style)
	}
}

func TestDecodeBreakLinesUnknownStyleStops(t *testing.T) {
	buf := breakHeader(BreakStraight, 1, 0, 0)
	buf = append(buf, 0.1, 0.1, 0, 0.1, 0.2, 0)
	buf = append(buf, breakHeader(BreakLineStyle(9), 1, 0, 0)...)
	buf = append(buf, 0.3, 0.1, 0, 0.3, 0.2, 0)

	groups := DecodeBreakLines(buf)
	if len(groups) != 1 {
		t.Errorf("got %d groups, want 1 (unknown style stops decoding)", len(groups))
	}
}

func TestDecodeBreakLinesTruncatedPayload(t *testing.T) {
	buf := breakHeader(BreakStraight, 2, 0, 0)
	buf = append(buf, 0.1, 0.1, 0, 0.1, 0.2, 0) // only one of two segments

	groups := DecodeBreakLines(buf)
	if len(groups) != 0 {
		t.Errorf("got %d groups, want 0 for truncated payload", len(groups))
	}
}

func TestDecodeBreakLinesEmpty(t *testing.T) {
	if got := DecodeBreakLines(nil); len(got) != 0 {
		t.Errorf("nil buffer: got %d groups", len(got))
	}
	if got := DecodeBreakLines([]float64{1, 2, 3}); len(got) != 0 {
		t.Errorf("short buffer: got %d groups", len(got))
	}
}
