package geom

import (
	"math"
	"testing"
)

func TestBoundsZeroValueEmpty(t *testing.T) {
	var b Bounds
	if b.IsSet() {
		t.Error("zero-value bounds should be empty")
	}
	if b.Width() != 0 || b.Height() != 0 {
		t.Error("empty bounds should report zero extent")
	}
}

func TestBoundsMonotonic(t *testing.T) {
	points := []Point{
		{3, 4},
		{-1, 10},
		{7, -2},
		{0, 0},
	}

	var b Bounds
	for _, p := range points {
		b.UpdatePoint(p)
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	if b.MinX != minX || b.MaxX != maxX || b.MinY != minY || b.MaxY != maxY {
		t.Errorf("bounds = (%v,%v)-(%v,%v), want (%v,%v)-(%v,%v)",
			b.MinX, b.MinY, b.MaxX, b.MaxY, minX, minY, maxX, maxY)
	}
}

func TestBoundsSinglePoint(t *testing.T) {
	var b Bounds
	b.Update(5, -3)
	if b.MinX != 5 || b.MaxX != 5 || b.MinY != -3 || b.MaxY != -3 {
		t.Errorf("single-point bounds wrong: %+v", b)
	}
}

func TestRectDisjointFrom(t *testing.T) {
	sheet := NewRect(0, 0, 420, 297)

	tests := []struct {
		name    string
		outline Rect
		want    bool
	}{
		{"entirely left", NewRect(-50, 10, 40, 40), true},
		{"entirely right", NewRect(430, 10, 40, 40), true},
		{"entirely below", NewRect(10, -60, 40, 40), true},
		{"entirely above", NewRect(10, 300, 40, 40), true},
		{"overlapping", NewRect(-10, -10, 40, 40), false},
		{"contained", NewRect(100, 100, 40, 40), false},
		{"touching left edge", NewRect(-40, 10, 40, 40), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outline.DisjointFrom(sheet); got != tt.want {
				t.Errorf("DisjointFrom = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointDistance(t *testing.T) {
	d := Point{0, 0}.Distance(Point{3, 4})
	if d != 5 {
		t.Errorf("distance = %v, want 5", d)
	}
}
